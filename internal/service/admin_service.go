package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
	"github.com/cosca/portal/pkg/api"
)

var (
	errRequestResolved = errors.New("password request already resolved")
	errNoStudentEmail  = errors.New("no student account uses this email")
)

// AdminService implements the super admin RPCs: staff accounts, courses,
// system settings and password reset tickets.
type AdminService struct {
	store storage.Store
	now   func() time.Time
}

// NewAdminService creates a new AdminService.
func NewAdminService(store storage.Store) *AdminService {
	return &AdminService{store: store, now: time.Now}
}

func (s *AdminService) ListUsers(ctx context.Context, req *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error) {
	if _, err := requireRole(ctx, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	out := make([]*api.User, 0, len(users))
	for _, u := range users {
		out = append(out, toAPIUser(u))
	}
	return connect.NewResponse(&api.ListUsersResponse{Users: out}), nil
}

// CreateUser adds a staff account. Department is kept only for teachers.
func (s *AdminService) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	a, err := requireRole(ctx, models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	u := &models.User{
		ID:        uuid.New().String(),
		Username:  strings.TrimSpace(req.Msg.Username),
		Role:      models.Role(req.Msg.Role),
		Name:      strings.TrimSpace(req.Msg.Name),
		Email:     strings.TrimSpace(req.Msg.Email),
		CreatedAt: s.now().Unix(),
	}
	if u.Role == models.RoleTeacher {
		u.Department = strings.TrimSpace(req.Msg.Department)
	}

	if err := s.store.CreateUser(ctx, u); err != nil {
		slog.Error("Failed to create user", "username", u.Username, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Created user", "user_id", u.ID, "role", u.Role, "by", a.ID)
	return connect.NewResponse(&api.CreateUserResponse{User: toAPIUser(u)}), nil
}

// UpdateUser changes a staff account. Moving a teacher to another role drops
// their department.
func (s *AdminService) UpdateUser(ctx context.Context, req *connect.Request[api.UpdateUserRequest]) (*connect.Response[api.UpdateUserResponse], error) {
	if _, err := requireRole(ctx, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	m := req.Msg
	u, err := s.store.UpdateUser(ctx, m.UserID, func(u *models.User) error {
		if v := strings.TrimSpace(m.Name); v != "" {
			u.Name = v
		}
		if m.Role != "" {
			u.Role = models.Role(m.Role)
		}
		if v := strings.TrimSpace(m.Email); v != "" {
			u.Email = v
		}
		if v := strings.TrimSpace(m.Department); v != "" {
			u.Department = v
		}
		if u.Role != models.RoleTeacher {
			u.Department = ""
		}
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Updated user", "user_id", u.ID, "role", u.Role)
	return connect.NewResponse(&api.UpdateUserResponse{User: toAPIUser(u)}), nil
}

func (s *AdminService) ListCourses(ctx context.Context, req *connect.Request[api.ListCoursesRequest]) (*connect.Response[api.ListCoursesResponse], error) {
	if _, err := requireRole(ctx, models.RoleSuperAdmin, models.RoleRegistrar, models.RoleFinance); err != nil {
		return nil, err
	}
	courses, err := s.store.ListCourses(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	out := make([]*api.Course, 0, len(courses))
	for _, c := range courses {
		out = append(out, toAPICourse(c))
	}
	return connect.NewResponse(&api.ListCoursesResponse{Courses: out}), nil
}

// SaveCourse creates or replaces a course and its curriculum. Subject codes
// must be unique within the course.
func (s *AdminService) SaveCourse(ctx context.Context, req *connect.Request[api.SaveCourseRequest]) (*connect.Response[api.SaveCourseResponse], error) {
	if _, err := requireRole(ctx, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	course := fromAPICourse(req.Msg.Course)
	seen := make(map[string]bool, len(course.Subjects))
	for _, sub := range course.Subjects {
		if seen[sub.Code] {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("duplicate subject code %s", sub.Code))
		}
		seen[sub.Code] = true
	}

	if err := s.store.SaveCourse(ctx, course); err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Saved course", "course_id", course.ID, "subjects", len(course.Subjects))
	return connect.NewResponse(&api.SaveCourseResponse{Course: toAPICourse(course)}), nil
}

func (s *AdminService) GetSystemConfig(ctx context.Context, req *connect.Request[api.GetSystemConfigRequest]) (*connect.Response[api.GetSystemConfigResponse], error) {
	if _, err := currentActor(ctx); err != nil {
		return nil, err
	}
	cfg, err := s.store.GetConfig(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetSystemConfigResponse{Config: toAPIConfig(cfg)}), nil
}

// UpdateSystemConfig sets the current term and the department list.
// Departments are trimmed and deduplicated keeping their order.
func (s *AdminService) UpdateSystemConfig(ctx context.Context, req *connect.Request[api.UpdateSystemConfigRequest]) (*connect.Response[api.UpdateSystemConfigResponse], error) {
	if _, err := requireRole(ctx, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	departments := make([]string, 0, len(req.Msg.Departments))
	for _, d := range req.Msg.Departments {
		d = strings.TrimSpace(d)
		if !slices.Contains(departments, d) {
			departments = append(departments, d)
		}
	}
	cfg := &models.SystemConfig{
		AcademicYear: strings.TrimSpace(req.Msg.AcademicYear),
		Semester:     strings.TrimSpace(req.Msg.Semester),
		Departments:  departments,
	}
	if err := s.store.SaveConfig(ctx, cfg); err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Updated system config", "term", cfg.Term(), "departments", len(cfg.Departments))
	return connect.NewResponse(&api.UpdateSystemConfigResponse{Config: toAPIConfig(cfg)}), nil
}

// ListPasswordRequests returns the pending reset tickets.
func (s *AdminService) ListPasswordRequests(ctx context.Context, req *connect.Request[api.ListPasswordRequestsRequest]) (*connect.Response[api.ListPasswordRequestsResponse], error) {
	if _, err := requireRole(ctx, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	requests, err := s.store.ListPasswordRequests(ctx, models.RequestPending)
	if err != nil {
		return nil, toConnectError(err)
	}
	out := make([]*api.PasswordRequest, 0, len(requests))
	for _, r := range requests {
		out = append(out, toAPIPasswordRequest(r))
	}
	return connect.NewResponse(&api.ListPasswordRequestsResponse{Requests: out}), nil
}

// ResolvePasswordRequest closes a reset ticket. For students it issues a new
// generated password and puts them back behind the password gate; the new
// password is only returned here. Staff tickets are closed without one.
func (s *AdminService) ResolvePasswordRequest(ctx context.Context, req *connect.Request[api.ResolvePasswordRequestRequest]) (*connect.Response[api.ResolvePasswordRequestResponse], error) {
	a, err := requireRole(ctx, models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	tickets, err := s.store.ListPasswordRequests(ctx, "")
	if err != nil {
		return nil, toConnectError(err)
	}
	i := slices.IndexFunc(tickets, func(r *models.PasswordRequest) bool { return r.ID == req.Msg.RequestID })
	if i < 0 {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("password request %s: %w", req.Msg.RequestID, storage.ErrNotFound))
	}
	ticket := tickets[i]
	if ticket.Status == models.RequestResolved {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errRequestResolved)
	}

	var student *models.Student
	if ticket.UserType != models.UserTypeStaff {
		if student, err = s.studentFor(ctx, ticket); err != nil {
			return nil, toConnectError(err)
		}
	}

	// Only the resolver that claims the ticket issues a password.
	resolved, err := s.store.UpdatePasswordRequest(ctx, ticket.ID, func(r *models.PasswordRequest) error {
		if r.Status == models.RequestResolved {
			return errRequestResolved
		}
		r.Status = models.RequestResolved
		return nil
	})
	if errors.Is(err, errRequestResolved) {
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	}
	if err != nil {
		return nil, toConnectError(err)
	}

	var password string
	if student != nil {
		password = auth.GeneratePassword()
		if err := s.resetPassword(ctx, student.ID, password); err != nil {
			s.reopen(ctx, ticket.ID)
			return nil, toConnectError(err)
		}
	}

	slog.Info("Resolved password request", "request_id", resolved.ID, "user_type", resolved.UserType, "by", a.ID)
	return connect.NewResponse(&api.ResolvePasswordRequestResponse{
		Request:     toAPIPasswordRequest(resolved),
		NewPassword: password,
	}), nil
}

func (s *AdminService) resetPassword(ctx context.Context, studentID, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.store.UpdateStudent(ctx, studentID, func(st *models.Student) error {
		st.PasswordHash = hash
		st.IsPasswordChanged = false
		return nil
	})
	return err
}

// reopen puts a claimed ticket back in the queue after its password reset failed.
func (s *AdminService) reopen(ctx context.Context, id string) {
	_, err := s.store.UpdatePasswordRequest(context.WithoutCancel(ctx), id, func(r *models.PasswordRequest) error {
		r.Status = models.RequestPending
		return nil
	})
	if err != nil {
		slog.Error("Failed to reopen password request", "request_id", id, "error", err)
	}
}

func (s *AdminService) studentFor(ctx context.Context, r *models.PasswordRequest) (*models.Student, error) {
	if r.UserID != "" {
		st, err := s.store.GetStudent(ctx, r.UserID)
		if !errors.Is(err, storage.ErrNotFound) {
			return st, err
		}
	}
	st, err := s.store.FindStudentByEmail(ctx, r.Email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errNoStudentEmail)
	}
	return st, err
}
