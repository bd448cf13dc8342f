// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cosca/portal/internal/ledger"
	"github.com/cosca/portal/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// ErrLedgerRewrite is returned when a write would remove a transaction or
	// change anything but its status.
	ErrLedgerRewrite = errors.New("ledger entries cannot be removed or rewritten")
)

// StudentStore persists student accounts together with their transactions.
// Every write recomputes Student.Balance from the transaction list.
type StudentStore interface {
	// CreateStudent inserts a new account. Returns ErrAlreadyExists if the ID is taken.
	CreateStudent(ctx context.Context, s *models.Student) error

	// GetStudent returns ErrNotFound if there is no such student.
	GetStudent(ctx context.Context, id string) (*models.Student, error)

	// ListStudents returns every account ordered by ID.
	ListStudents(ctx context.Context) ([]*models.Student, error)

	// FindStudentsByFirstName matches case-insensitively.
	FindStudentsByFirstName(ctx context.Context, firstName string) ([]*models.Student, error)

	// FindStudentByEmail returns ErrNotFound if nobody has that email.
	FindStudentByEmail(ctx context.Context, email string) (*models.Student, error)

	// UpdateStudent loads the student, applies fn and writes the result in one
	// transaction. Returning an error from fn aborts the write. Transactions may
	// only be appended or moved along the void workflow.
	UpdateStudent(ctx context.Context, id string, fn func(*models.Student) error) (*models.Student, error)
}

// UserStore persists staff accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id string, fn func(*models.User) error) (*models.User, error)
}

// CourseStore persists courses and their curricula.
type CourseStore interface {
	// SaveCourse creates or replaces the course with c.ID.
	SaveCourse(ctx context.Context, c *models.Course) error
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
}

// ConfigStore persists the single system configuration row.
type ConfigStore interface {
	// GetConfig returns an empty config if none was saved yet.
	GetConfig(ctx context.Context) (*models.SystemConfig, error)
	SaveConfig(ctx context.Context, c *models.SystemConfig) error
}

// RequestStore persists password reset tickets.
type RequestStore interface {
	CreatePasswordRequest(ctx context.Context, r *models.PasswordRequest) error

	// ListPasswordRequests filters by status; an empty status lists all.
	ListPasswordRequests(ctx context.Context, status models.RequestStatus) ([]*models.PasswordRequest, error)
	UpdatePasswordRequest(ctx context.Context, id string, fn func(*models.PasswordRequest) error) (*models.PasswordRequest, error)
}

// Store defines the full persistence surface of the portal.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	StudentStore
	UserStore
	CourseStore
	ConfigStore
	RequestStore

	// IsEmpty reports whether no students, users or courses exist yet.
	IsEmpty(ctx context.Context) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}

// CheckLedger verifies that next is old with entries appended and statuses
// moved along the void workflow. Backends call it before persisting a student.
func CheckLedger(old, next []models.Transaction) error {
	if len(next) < len(old) {
		return fmt.Errorf("%w: %d entries removed", ErrLedgerRewrite, len(old)-len(next))
	}
	for i, o := range old {
		n := next[i]
		if n.ID != o.ID || !n.Amount.Equal(o.Amount) || n.Type != o.Type ||
			!n.Date.Equal(o.Date) || n.Description != o.Description || n.RecordedBy != o.RecordedBy {
			return fmt.Errorf("%w: %s", ErrLedgerRewrite, o.ID)
		}
		if n.Status != o.Status {
			if err := ledger.Transition(o.Status, n.Status); err != nil {
				return fmt.Errorf("transaction %s: %w", o.ID, err)
			}
		}
	}

	seen := make(map[string]bool, len(next))
	for _, t := range next {
		if seen[t.ID] {
			return fmt.Errorf("transaction %s: %w", t.ID, ErrAlreadyExists)
		}
		seen[t.ID] = true
	}
	for _, t := range next[len(old):] {
		if err := ledger.Validate(t); err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}
	}
	return nil
}
