package middleware

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
)

// ErrPasswordChangeRequired is returned to students who still hold a generated password.
var ErrPasswordChangeRequired = errors.New("password change required")

// StudentLookup is the subset of the store the password gate reads.
type StudentLookup interface {
	GetStudent(ctx context.Context, id string) (*models.Student, error)
}

// PasswordGate blocks students who have not changed their generated password
// from every procedure except the ones listed in allowed. The flag is read
// from the store on each call so a change takes effect without a new token.
// It must run after RequireAuth.
func PasswordGate(students StudentLookup, allowed ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]bool, len(allowed))
	for _, p := range allowed {
		open[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if GetRole(ctx) != models.RoleStudent || open[req.Spec().Procedure] {
				return next(ctx, req)
			}

			student, err := students.GetStudent(ctx, GetUserID(ctx))
			if errors.Is(err, storage.ErrNotFound) {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			if err != nil {
				return nil, connect.NewError(connect.CodeInternal, err)
			}
			if !student.IsPasswordChanged {
				return nil, connect.NewError(connect.CodeFailedPrecondition, ErrPasswordChangeRequired)
			}
			return next(ctx, req)
		}
	}
}
