package models

// Role identifies what a session is allowed to see and do.
type Role string

const (
	RoleRegistrar  Role = "registrar"
	RoleFinance    Role = "finance"
	RoleTeacher    Role = "teacher"
	RoleSuperAdmin Role = "super_admin"

	// RoleStudent is only ever carried by student sessions; staff users
	// cannot be created with it.
	RoleStudent Role = "student"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleRegistrar, RoleFinance, RoleTeacher, RoleSuperAdmin, RoleStudent:
		return true
	}
	return false
}

// IsStaff reports whether r belongs to a staff account.
func (r Role) IsStaff() bool {
	return r.Valid() && r != RoleStudent
}

// CanEditBilling reports whether r may post transactions and request voids.
func (r Role) CanEditBilling() bool {
	return r == RoleFinance || r == RoleSuperAdmin
}

// User represents a staff account.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`

	// Username is the login name (unique).
	Username string `json:"username"`

	// Role decides which views and operations the user can reach.
	Role Role `json:"role"`

	// Name is the display name.
	Name string `json:"name"`

	// Department is only meaningful for teachers; it limits which
	// students they can see and grade.
	Department string `json:"department,omitempty"`

	// Email is optional contact information.
	Email string `json:"email,omitempty"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}
