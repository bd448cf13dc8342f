// Package seed loads the demo dataset and reads or writes the students
// snapshot, a JSON array of student accounts with plaintext passwords.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
)

//go:embed demo.json
var demoJSON []byte

// StudentRecord is a student as it appears in a snapshot. Password is
// plaintext and only read on import; exports leave it empty.
type StudentRecord struct {
	models.Student
	Password string `json:"password,omitempty"`
}

// Snapshot is a full dataset.
type Snapshot struct {
	Config   models.SystemConfig `json:"config"`
	Courses  []*models.Course    `json:"courses"`
	Users    []*models.User      `json:"users"`
	Students []StudentRecord     `json:"students"`
}

// Demo returns the bundled demo dataset.
func Demo() (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(demoJSON, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode demo data: %w", err)
	}
	return &snap, nil
}

// LoadIfEmpty applies the demo dataset when the store has no data yet.
// It reports whether anything was loaded.
func LoadIfEmpty(ctx context.Context, store storage.Store) (bool, error) {
	empty, err := store.IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		return false, nil
	}

	snap, err := Demo()
	if err != nil {
		return false, err
	}
	if err := Apply(ctx, store, snap); err != nil {
		return false, err
	}
	slog.Info("Demo data loaded",
		"courses", len(snap.Courses),
		"users", len(snap.Users),
		"students", len(snap.Students),
	)
	return true, nil
}

// Apply writes every collection of snap to store. Users and students that
// already exist are skipped.
func Apply(ctx context.Context, store storage.Store, snap *Snapshot) error {
	if err := store.SaveConfig(ctx, &snap.Config); err != nil {
		return err
	}
	for _, c := range snap.Courses {
		if err := store.SaveCourse(ctx, c); err != nil {
			return fmt.Errorf("course %s: %w", c.ID, err)
		}
	}
	for _, u := range snap.Users {
		if err := store.CreateUser(ctx, u); err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}
	}
	_, err := ImportStudents(ctx, store, snap.Students)
	return err
}

// ImportStudents creates each student, hashing plaintext passwords. Students
// whose ID already exists are skipped. It returns how many were created.
func ImportStudents(ctx context.Context, store storage.StudentStore, records []StudentRecord) (int, error) {
	created := 0
	for _, r := range records {
		s := r.Student
		if r.Password != "" {
			hash, err := auth.HashPassword(r.Password)
			if err != nil {
				return created, err
			}
			s.PasswordHash = hash
		}
		if s.Transactions == nil {
			s.Transactions = []models.Transaction{}
		}

		err := store.CreateStudent(ctx, &s)
		if errors.Is(err, storage.ErrAlreadyExists) {
			slog.Warn("Skipping existing student", "student_id", s.ID)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("student %s: %w", s.ID, err)
		}
		created++
	}
	return created, nil
}

// ReadStudents decodes a students snapshot.
func ReadStudents(r io.Reader) ([]StudentRecord, error) {
	var records []StudentRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode students: %w", err)
	}
	return records, nil
}

// WriteStudents encodes students as a snapshot without credentials.
func WriteStudents(w io.Writer, students []*models.Student) error {
	records := make([]StudentRecord, len(students))
	for i, s := range students {
		records[i] = StudentRecord{Student: *s.Public()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
