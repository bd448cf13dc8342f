package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cosca/portal/internal/ledger"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
)

const studentColumns = `
	id, first_name, last_name, email, contact_number, password_hash,
	is_password_changed, type, course_id, year_level, enrollment_status,
	balance, academic_records, documents, created_at`

// CreateStudent inserts a student and its initial transactions.
func (s *SQLiteStore) CreateStudent(ctx context.Context, st *models.Student) error {
	if st.CreatedAt == 0 {
		st.CreatedAt = time.Now().Unix()
	}
	if err := storage.CheckLedger(nil, st.Transactions); err != nil {
		return err
	}
	st.Balance = ledger.Balance(st.Transactions)

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM students WHERE id = ?", st.ID).Scan(&exists)
		if err == nil {
			return fmt.Errorf("student %s: %w", st.ID, storage.ErrAlreadyExists)
		}
		if !isNoRows(err) {
			return fmt.Errorf("failed to check student: %w", err)
		}
		return writeStudent(ctx, tx, st)
	})
}

// GetStudent retrieves a student with its full ledger.
func (s *SQLiteStore) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return getStudent(ctx, s.db, id)
}

// ListStudents retrieves every student ordered by ID.
func (s *SQLiteStore) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.queryStudents(ctx, "SELECT "+studentColumns+" FROM students ORDER BY id")
}

// FindStudentsByFirstName matches first names case-insensitively.
func (s *SQLiteStore) FindStudentsByFirstName(ctx context.Context, firstName string) ([]*models.Student, error) {
	return s.queryStudents(ctx,
		"SELECT "+studentColumns+" FROM students WHERE first_name = ? COLLATE NOCASE ORDER BY id",
		firstName,
	)
}

// FindStudentByEmail retrieves the first student with the given email.
func (s *SQLiteStore) FindStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	students, err := s.queryStudents(ctx,
		"SELECT "+studentColumns+" FROM students WHERE email = ? COLLATE NOCASE ORDER BY id LIMIT 1",
		email,
	)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, notFound("student with email", email)
	}
	return students[0], nil
}

// UpdateStudent applies fn to the stored student and writes the result.
// The ID cannot be changed and the balance is always recomputed.
func (s *SQLiteStore) UpdateStudent(ctx context.Context, id string, fn func(*models.Student) error) (*models.Student, error) {
	var out *models.Student
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getStudent(ctx, tx, id)
		if err != nil {
			return err
		}
		old := append([]models.Transaction(nil), current.Transactions...)

		if err := fn(current); err != nil {
			return err
		}
		current.ID = id

		if err := storage.CheckLedger(old, current.Transactions); err != nil {
			return err
		}
		current.Balance = ledger.Balance(current.Transactions)

		if err := writeStudent(ctx, tx, current); err != nil {
			return err
		}
		out = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// writeStudent upserts the student row and its transactions. Transactions are
// keyed by student and ID; existing ones only get their status updated.
func writeStudent(ctx context.Context, q querier, st *models.Student) error {
	records, err := jsonColumn(st.AcademicRecords)
	if err != nil {
		return fmt.Errorf("failed to encode academic records: %w", err)
	}
	docs, err := jsonColumn(st.Documents)
	if err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO students (`+studentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			contact_number = excluded.contact_number,
			password_hash = excluded.password_hash,
			is_password_changed = excluded.is_password_changed,
			type = excluded.type,
			course_id = excluded.course_id,
			year_level = excluded.year_level,
			enrollment_status = excluded.enrollment_status,
			balance = excluded.balance,
			academic_records = excluded.academic_records,
			documents = excluded.documents
	`,
		st.ID, st.FirstName, st.LastName, st.Email, st.ContactNumber, st.PasswordHash,
		st.IsPasswordChanged, st.Type, st.CourseID, st.YearLevel, st.EnrollmentStatus,
		st.Balance.String(), records, docs, st.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to write student: %w", err)
	}

	for i, t := range st.Transactions {
		_, err = q.ExecContext(ctx, `
			INSERT INTO transactions (id, student_id, seq, date, amount, type, description, recorded_by, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(student_id, id) DO UPDATE SET status = excluded.status
		`,
			t.ID, st.ID, i, t.Date.UnixMicro(), t.Amount.String(), t.Type, t.Description, t.RecordedBy, t.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to write transaction %s: %w", t.ID, err)
		}
	}
	return nil
}

func getStudent(ctx context.Context, q querier, id string) (*models.Student, error) {
	row := q.QueryRowContext(ctx, "SELECT "+studentColumns+" FROM students WHERE id = ?", id)
	st, err := scanStudent(row)
	if isNoRows(err) {
		return nil, notFound("student", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	txs, err := loadTransactions(ctx, q, "WHERE student_id = ?", id)
	if err != nil {
		return nil, err
	}
	st.Transactions = txs[id]
	if st.Transactions == nil {
		st.Transactions = []models.Transaction{}
	}
	return st, nil
}

func (s *SQLiteStore) queryStudents(ctx context.Context, query string, args ...any) ([]*models.Student, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}

	var students []*models.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, st)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}
	if len(students) == 0 {
		return students, nil
	}

	var txs map[string][]models.Transaction
	if len(students) == 1 {
		txs, err = loadTransactions(ctx, s.db, "WHERE student_id = ?", students[0].ID)
	} else {
		txs, err = loadTransactions(ctx, s.db, "")
	}
	if err != nil {
		return nil, err
	}
	for _, st := range students {
		st.Transactions = txs[st.ID]
		if st.Transactions == nil {
			st.Transactions = []models.Transaction{}
		}
	}
	return students, nil
}

// loadTransactions groups transactions by student ID in posting order.
func loadTransactions(ctx context.Context, q querier, where string, args ...any) (map[string][]models.Transaction, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT student_id, id, date, amount, type, description, recorded_by, status
		FROM transactions `+where+`
		ORDER BY student_id, seq
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]models.Transaction)
	for rows.Next() {
		var (
			studentID string
			t         models.Transaction
			date      int64
		)
		if err := rows.Scan(&studentID, &t.ID, &date, &t.Amount, &t.Type, &t.Description, &t.RecordedBy, &t.Status); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Date = time.UnixMicro(date).UTC()
		out[studentID] = append(out[studentID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner) (*models.Student, error) {
	var (
		st            models.Student
		records, docs string
	)
	err := row.Scan(
		&st.ID, &st.FirstName, &st.LastName, &st.Email, &st.ContactNumber, &st.PasswordHash,
		&st.IsPasswordChanged, &st.Type, &st.CourseID, &st.YearLevel, &st.EnrollmentStatus,
		&st.Balance, &records, &docs, &st.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(records), &st.AcademicRecords); err != nil {
		return nil, fmt.Errorf("failed to decode academic records: %w", err)
	}
	if err := json.Unmarshal([]byte(docs), &st.Documents); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return &st, nil
}
