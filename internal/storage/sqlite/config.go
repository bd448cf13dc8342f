package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cosca/portal/internal/models"
)

// GetConfig returns the saved system configuration, or an empty one.
func (s *SQLiteStore) GetConfig(ctx context.Context) (*models.SystemConfig, error) {
	var (
		cfg  models.SystemConfig
		deps string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT academic_year, semester, departments FROM system_config WHERE id = 1",
	).Scan(&cfg.AcademicYear, &cfg.Semester, &deps)
	if isNoRows(err) {
		return &models.SystemConfig{Departments: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	if err := json.Unmarshal([]byte(deps), &cfg.Departments); err != nil {
		return nil, fmt.Errorf("failed to decode departments: %w", err)
	}
	return &cfg, nil
}

// SaveConfig replaces the system configuration.
func (s *SQLiteStore) SaveConfig(ctx context.Context, cfg *models.SystemConfig) error {
	deps, err := jsonColumn(cfg.Departments)
	if err != nil {
		return fmt.Errorf("failed to encode departments: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO system_config (id, academic_year, semester, departments)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			academic_year = excluded.academic_year,
			semester = excluded.semester,
			departments = excluded.departments
	`, cfg.AcademicYear, cfg.Semester, deps)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

const requestColumns = "id, user_id, user_type, email, status, request_date"

// CreatePasswordRequest inserts a reset ticket.
func (s *SQLiteStore) CreatePasswordRequest(ctx context.Context, r *models.PasswordRequest) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.RequestDate == 0 {
		r.RequestDate = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO password_requests ("+requestColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		r.ID, r.UserID, r.UserType, r.Email, r.Status, r.RequestDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create password request: %w", err)
	}
	return nil
}

// ListPasswordRequests returns tickets with the given status, oldest first.
func (s *SQLiteStore) ListPasswordRequests(ctx context.Context, status models.RequestStatus) ([]*models.PasswordRequest, error) {
	query := "SELECT " + requestColumns + " FROM password_requests"
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY request_date, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list password requests: %w", err)
	}
	defer rows.Close()

	var out []*models.PasswordRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan password request: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate password requests: %w", err)
	}
	return out, nil
}

// UpdatePasswordRequest applies fn to the stored ticket and writes the result.
func (s *SQLiteStore) UpdatePasswordRequest(ctx context.Context, id string, fn func(*models.PasswordRequest) error) (*models.PasswordRequest, error) {
	var out *models.PasswordRequest
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, "SELECT "+requestColumns+" FROM password_requests WHERE id = ?", id)
		r, err := scanRequest(row)
		if isNoRows(err) {
			return notFound("password request", id)
		}
		if err != nil {
			return fmt.Errorf("failed to get password request: %w", err)
		}
		if err := fn(r); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			"UPDATE password_requests SET user_id = ?, email = ?, status = ? WHERE id = ?",
			r.UserID, r.Email, r.Status, id,
		)
		if err != nil {
			return fmt.Errorf("failed to update password request: %w", err)
		}
		r.ID = id
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanRequest(row scanner) (*models.PasswordRequest, error) {
	r := &models.PasswordRequest{}
	if err := row.Scan(&r.ID, &r.UserID, &r.UserType, &r.Email, &r.Status, &r.RequestDate); err != nil {
		return nil, err
	}
	return r, nil
}
