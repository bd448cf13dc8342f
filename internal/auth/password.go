package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

// MinPasswordLength is the shortest password a student may choose.
const MinPasswordLength = 6

// AccountStorage is the subset of the store the authenticator reads.
type AccountStorage interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindStudentsByFirstName(ctx context.Context, firstName string) ([]*models.Student, error)
}

// PasswordAuthenticator implements the portal login rules.
//
// Staff match on username alone; staff accounts carry no credential.
// Students match on first name (any case) and bcrypt-checked password. Unless
// strict, a student login with an empty password matches on name alone.
type PasswordAuthenticator struct {
	storage AccountStorage
	strict  bool
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage AccountStorage, strict bool) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
		strict:  strict,
	}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Authenticate resolves username and password to a staff or student identity.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, credential string) (*Identity, error) {
	if username == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := a.storage.GetUserByUsername(ctx, username)
	switch {
	case err == nil && user.Username == username:
		return &Identity{
			UserID:          user.ID,
			Role:            user.Role,
			Name:            user.Name,
			PasswordChanged: true,
		}, nil
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	students, err := a.storage.FindStudentsByFirstName(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}
	for _, s := range students {
		if credential == "" {
			if a.strict {
				continue
			}
		} else if !CheckPassword(s.PasswordHash, credential) {
			continue
		}
		return &Identity{
			UserID:          s.ID,
			Role:            models.RoleStudent,
			Name:            s.FullName(),
			PasswordChanged: s.IsPasswordChanged,
		}, nil
	}

	return nil, ErrInvalidCredentials
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches hash. An empty hash never matches.
func CheckPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GeneratePassword returns an 8-character uppercase alphanumeric password for
// new accounts and resets.
func GeneratePassword() string {
	return rand.Text()[:8]
}
