package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cosca/portal/internal/models"
)

const courseColumns = "id, name, type, department, adviser, subjects, tuition_per_unit, misc_fee"

// SaveCourse creates the course or replaces the one with the same ID.
func (s *SQLiteStore) SaveCourse(ctx context.Context, c *models.Course) error {
	subjects, err := jsonColumn(c.Subjects)
	if err != nil {
		return fmt.Errorf("failed to encode subjects: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO courses (`+courseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			department = excluded.department,
			adviser = excluded.adviser,
			subjects = excluded.subjects,
			tuition_per_unit = excluded.tuition_per_unit,
			misc_fee = excluded.misc_fee
	`,
		c.ID, c.Name, c.Type, c.Department, c.Adviser, subjects,
		c.TuitionPerUnit.String(), c.MiscFee.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}
	return nil
}

// GetCourse retrieves a course by ID.
func (s *SQLiteStore) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+courseColumns+" FROM courses WHERE id = ?", id)
	c, err := scanCourse(row)
	if isNoRows(err) {
		return nil, notFound("course", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return c, nil
}

// ListCourses retrieves every course ordered by ID.
func (s *SQLiteStore) ListCourses(ctx context.Context) ([]*models.Course, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+courseColumns+" FROM courses ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}

func scanCourse(row scanner) (*models.Course, error) {
	var (
		c        models.Course
		subjects string
	)
	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Department, &c.Adviser, &subjects, &c.TuitionPerUnit, &c.MiscFee)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(subjects), &c.Subjects); err != nil {
		return nil, fmt.Errorf("failed to decode subjects: %w", err)
	}
	return &c, nil
}
