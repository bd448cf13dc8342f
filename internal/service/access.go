package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"connectrpc.com/connect"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/middleware"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
)

var errPermissionDenied = errors.New("permission denied")

// actor is the authenticated caller of an RPC.
type actor struct {
	ID   string
	Role models.Role
	Name string
}

func currentActor(ctx context.Context) (actor, error) {
	a := actor{ID: middleware.GetUserID(ctx), Role: middleware.GetRole(ctx), Name: middleware.GetName(ctx)}
	if a.ID == "" {
		return a, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return a, nil
}

// requireRole returns the caller if they hold one of roles.
func requireRole(ctx context.Context, roles ...models.Role) (actor, error) {
	a, err := currentActor(ctx)
	if err != nil {
		return a, err
	}
	if !slices.Contains(roles, a.Role) {
		return a, connect.NewError(connect.CodePermissionDenied,
			fmt.Errorf("%w: %s cannot call this operation", errPermissionDenied, a.Role))
	}
	return a, nil
}

// canSeeStudent decides whether a may read st. Students see only themselves
// and teachers only students of their department's courses.
func canSeeStudent(ctx context.Context, store storage.Store, a actor, st *models.Student) error {
	switch a.Role {
	case models.RoleStudent:
		if a.ID == st.ID {
			return nil
		}
	case models.RoleTeacher:
		dept, err := teacherDepartment(ctx, store, a.ID)
		if err != nil {
			return err
		}
		course, err := store.GetCourse(ctx, st.CourseID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		if course != nil && dept != "" && course.Department == dept {
			return nil
		}
	case models.RoleRegistrar, models.RoleFinance, models.RoleSuperAdmin:
		return nil
	}
	return connect.NewError(connect.CodePermissionDenied,
		fmt.Errorf("%w: student %s", errPermissionDenied, st.ID))
}

func teacherDepartment(ctx context.Context, store storage.Store, userID string) (string, error) {
	u, err := store.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Department, nil
}

// loadVisibleStudent fetches a student and checks a may see it. Students that
// exist but are hidden from a are reported as PermissionDenied.
func loadVisibleStudent(ctx context.Context, store storage.Store, a actor, id string) (*models.Student, error) {
	st, err := store.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canSeeStudent(ctx, store, a, st); err != nil {
		return nil, err
	}
	return st, nil
}
