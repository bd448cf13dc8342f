package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
	"github.com/cosca/portal/pkg/api"
)

// errNoStaffPassword is returned when staff try to change a password they do not have.
var errNoStaffPassword = errors.New("staff accounts have no portal password")

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	store         storage.Store
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, store storage.Store, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		store:         store,
		logger:        logger,
	}
}

// Login authenticates staff by username and students by first name and
// password, and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request", "username", req.Msg.Username)

	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	id, err := s.authenticator.Authenticate(ctx, strings.TrimSpace(req.Msg.Username), req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "username", req.Msg.Username, "error", err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
		}
		return nil, toConnectError(err)
	}

	token, err := s.jwtManager.Generate(id)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", id.UserID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	session := sessionOf(id)
	session.ExpiresAt = time.Now().Add(s.jwtManager.TokenDuration()).Unix()

	s.logger.Info("User logged in", "user_id", id.UserID, "role", id.Role)
	return connect.NewResponse(&api.LoginResponse{Token: token, Session: session}), nil
}

// GetSession returns the caller's session. The password flag of students is
// read from the store, so it reflects changes made after the token was issued.
func (s *AuthService) GetSession(ctx context.Context, req *connect.Request[api.GetSessionRequest]) (*connect.Response[api.GetSessionResponse], error) {
	a, err := currentActor(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.identity(ctx, a)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetSessionResponse{Session: sessionOf(id)}), nil
}

// ChangePassword replaces a student's password and lifts the password gate.
func (s *AuthService) ChangePassword(ctx context.Context, req *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	a, err := currentActor(ctx)
	if err != nil {
		return nil, err
	}
	if a.Role != models.RoleStudent {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errNoStaffPassword)
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}
	if err := s.authenticator.ValidateCredential(req.Msg.NewPassword); err != nil {
		return nil, toConnectError(err)
	}

	hash, err := auth.HashPassword(req.Msg.NewPassword)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	student, err := s.store.UpdateStudent(ctx, a.ID, func(st *models.Student) error {
		st.PasswordHash = hash
		st.IsPasswordChanged = true
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to change password", "student_id", a.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Password changed", "student_id", a.ID)
	return connect.NewResponse(&api.ChangePasswordResponse{
		Session: &api.Session{
			UserID:          student.ID,
			Role:            string(models.RoleStudent),
			Name:            student.FullName(),
			PasswordChanged: true,
		},
	}), nil
}

// RequestPasswordReset files a ticket for a super admin. The response does not
// reveal whether the email belongs to an account.
func (s *AuthService) RequestPasswordReset(ctx context.Context, req *connect.Request[api.RequestPasswordResetRequest]) (*connect.Response[api.RequestPasswordResetResponse], error) {
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	userType := req.Msg.UserType
	if userType == "" {
		userType = models.UserTypeStudent
	}

	r := &models.PasswordRequest{
		ID:          uuid.New().String(),
		UserType:    userType,
		Email:       strings.TrimSpace(req.Msg.Email),
		Status:      models.RequestPending,
		RequestDate: time.Now().Unix(),
	}
	if userType == models.UserTypeStudent {
		st, err := s.store.FindStudentByEmail(ctx, r.Email)
		switch {
		case err == nil:
			r.UserID = st.ID
		case !errors.Is(err, storage.ErrNotFound):
			return nil, toConnectError(err)
		}
	}

	if err := s.store.CreatePasswordRequest(ctx, r); err != nil {
		s.logger.Error("Failed to create password request", "email", r.Email, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Password reset requested", "request_id", r.ID, "user_type", userType)
	return connect.NewResponse(&api.RequestPasswordResetResponse{RequestID: r.ID}), nil
}

// identity rebuilds the caller's identity from the store.
func (s *AuthService) identity(ctx context.Context, a actor) (*auth.Identity, error) {
	if a.Role != models.RoleStudent {
		return &auth.Identity{UserID: a.ID, Role: a.Role, Name: a.Name, PasswordChanged: true}, nil
	}
	st, err := s.store.GetStudent(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	return &auth.Identity{
		UserID:          st.ID,
		Role:            models.RoleStudent,
		Name:            st.FullName(),
		PasswordChanged: st.IsPasswordChanged,
	}, nil
}

func sessionOf(id *auth.Identity) *api.Session {
	return &api.Session{
		UserID:          id.UserID,
		Role:            string(id.Role),
		Name:            id.Name,
		PasswordChanged: id.PasswordChanged,
	}
}
