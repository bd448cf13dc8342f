package models

// SystemConfig holds the current term and the department list.
type SystemConfig struct {
	AcademicYear string   `json:"academicYear"`
	Semester     string   `json:"semester"`
	Departments  []string `json:"departments"`
}

// Term returns the label used on newly enrolled subjects,
// e.g. "1st Semester 2024-2025".
func (c *SystemConfig) Term() string {
	if c.Semester == "" {
		return c.AcademicYear
	}
	if c.AcademicYear == "" {
		return c.Semester
	}
	return c.Semester + " " + c.AcademicYear
}

// RequestStatus is the state of a password reset ticket.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestResolved RequestStatus = "resolved"
)

// Password request user types.
const (
	UserTypeStudent = "student"
	UserTypeStaff   = "staff"
)

// PasswordRequest is a self-service password reset ticket, resolved by a
// super admin.
type PasswordRequest struct {
	ID       string `json:"id"`
	UserID   string `json:"userId,omitempty"`
	UserType string `json:"userType"` // UserTypeStudent or UserTypeStaff
	Email    string `json:"email"`

	Status RequestStatus `json:"status"`

	// RequestDate is the Unix timestamp of the request.
	RequestDate int64 `json:"requestDate"`
}
