package auth

import (
	"context"

	"github.com/cosca/portal/internal/models"
)

// Identity is who a successful login resolved to: a staff user or a student.
type Identity struct {
	// UserID is the staff user ID or the student number.
	UserID string
	Role   models.Role
	Name   string

	// PasswordChanged is always true for staff.
	PasswordChanged bool
}

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping login rules without changing the service
// layer code.
type Authenticator interface {
	// Authenticate resolves a username and credential to an identity.
	// Returns ErrInvalidCredentials if nobody matches.
	Authenticate(ctx context.Context, username, credential string) (*Identity, error)

	// ValidateCredential checks if a new credential meets the requirements.
	ValidateCredential(credential string) error
}
