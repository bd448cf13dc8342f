package models

import "github.com/shopspring/decimal"

// EnrollmentStatus is the registrar-facing lifecycle of a student.
type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "pending"
	EnrollmentEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentGraduated EnrollmentStatus = "graduated"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// Valid reports whether s is a known enrollment status.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentPending, EnrollmentEnrolled, EnrollmentGraduated, EnrollmentDropped:
		return true
	}
	return false
}

// SubjectStatus is the per-student state of an enrolled subject.
type SubjectStatus string

const (
	SubjectEnrolled  SubjectStatus = "enrolled"
	SubjectCompleted SubjectStatus = "completed"
	SubjectDropped   SubjectStatus = "dropped"
	SubjectFailed    SubjectStatus = "failed"
)

// EnrolledSubject is a curriculum subject plus the student's result in it.
type EnrolledSubject struct {
	Subject

	// Grade is free text ("1.75", "INC", or empty while in progress).
	Grade string `json:"grade,omitempty"`

	Status     SubjectStatus `json:"status"`
	Term       string        `json:"term,omitempty"`
	Instructor string        `json:"instructor,omitempty"`
}

// DocumentStatus is the review state of an uploaded document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// EnrollmentDocument is a file submitted for enrollment (Form 137, IDs, ...).
type EnrollmentDocument struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	UploadDate string         `json:"uploadDate"`
	URL        string         `json:"url"`
	Status     DocumentStatus `json:"status"`
}

// Student represents a learner account.
type Student struct {
	// ID is the student number, e.g. "2024-0042".
	ID string `json:"id"`

	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber,omitempty"`

	// PasswordHash is the bcrypt hash of the student's password.
	// It is persisted but never returned to clients.
	PasswordHash string `json:"passwordHash,omitempty"`

	// IsPasswordChanged is false until the student replaces the
	// generated password; until then only the password screen is reachable.
	IsPasswordChanged bool `json:"isPasswordChanged"`

	Type      StudentType `json:"type"`
	CourseID  string      `json:"courseId"`
	YearLevel int         `json:"yearLevel"`

	EnrollmentStatus EnrollmentStatus `json:"enrollmentStatus"`

	// Balance is the outstanding amount. It is derived from Transactions
	// and recomputed by the store on every write.
	Balance decimal.Decimal `json:"balance"`

	Transactions    []Transaction        `json:"transactions"`
	AcademicRecords []EnrolledSubject    `json:"academicRecords"`
	Documents       []EnrollmentDocument `json:"documents"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// FullName returns "First Last".
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// FindTransaction returns the index of the transaction with the given ID, or -1.
func (s *Student) FindTransaction(id string) int {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return i
		}
	}
	return -1
}

// Public returns a copy without credential fields.
func (s *Student) Public() *Student {
	out := *s
	out.PasswordHash = ""
	return &out
}
