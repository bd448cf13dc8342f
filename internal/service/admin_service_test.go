package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/cosca/portal/internal/middleware"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
	"github.com/cosca/portal/pkg/api"
)

func TestCreateUser(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	admin := srv.login(t, "admin", "")

	tests := []struct {
		name     string
		req      *api.CreateUserRequest
		wantDept string
		wantCode connect.Code
	}{
		{
			name:     "teacher keeps department",
			req:      &api.CreateUserRequest{Username: "honey", Name: "Ms. Honey", Role: "teacher", Department: "College of Science"},
			wantDept: "College of Science",
		},
		{
			name: "finance drops department",
			req:  &api.CreateUserRequest{Username: "cashier", Name: "Cash Ier", Role: "finance", Department: "College of Arts"},
		},
		{
			name:     "duplicate username",
			req:      &api.CreateUserRequest{Username: "Finance", Name: "Other", Role: "finance"},
			wantCode: connect.CodeAlreadyExists,
		},
		{
			name:     "student role",
			req:      &api.CreateUserRequest{Username: "kid", Name: "Kid", Role: "student"},
			wantCode: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := admin.admin.CreateUser(ctx, connect.NewRequest(tt.req))
			if tt.wantCode != 0 {
				assertCode(t, err, tt.wantCode)
				return
			}
			if err != nil {
				t.Fatalf("CreateUser failed: %v", err)
			}
			if resp.Msg.User.ID == "" {
				t.Error("expected non-empty user ID")
			}
			if resp.Msg.User.Department != tt.wantDept {
				t.Errorf("department: expected %q, got %q", tt.wantDept, resp.Msg.User.Department)
			}
		})
	}

	// The new teacher can sign in right away.
	srv.login(t, "honey", "")

	finance := srv.login(t, "finance", "")
	_, err := finance.admin.CreateUser(ctx, connect.NewRequest(&api.CreateUserRequest{
		Username: "x", Name: "X", Role: "registrar",
	}))
	assertCode(t, err, connect.CodePermissionDenied)
}

func TestUpdateUser(t *testing.T) {
	srv := setupTestServer(t)
	admin := srv.login(t, "admin", "")

	resp, err := admin.admin.UpdateUser(context.Background(), connect.NewRequest(&api.UpdateUserRequest{
		UserID: "u3", Role: "registrar",
	}))
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if resp.Msg.User.Role != "registrar" || resp.Msg.User.Department != "" {
		t.Errorf("unexpected user %+v", resp.Msg.User)
	}
	if resp.Msg.User.Name != "Mr. Keating" {
		t.Errorf("name must be unchanged, got %q", resp.Msg.User.Name)
	}

	_, err = admin.admin.UpdateUser(context.Background(), connect.NewRequest(&api.UpdateUserRequest{UserID: "nobody"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestSaveCourse(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	admin := srv.login(t, "admin", "")

	course := &api.Course{
		ID:             "BSA",
		Name:           "BS Accountancy",
		Type:           "college",
		Department:     "College of Business",
		TuitionPerUnit: decimal.NewFromInt(1100),
		MiscFee:        decimal.NewFromInt(4000),
		Subjects: []api.Subject{
			{Code: "ACC1", Name: "Basic Accounting", Units: 3, YearLevel: 1, Semester: 1},
		},
	}
	if _, err := admin.admin.SaveCourse(ctx, connect.NewRequest(&api.SaveCourseRequest{Course: course})); err != nil {
		t.Fatalf("SaveCourse failed: %v", err)
	}

	list, err := admin.admin.ListCourses(ctx, connect.NewRequest(&api.ListCoursesRequest{}))
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(list.Msg.Courses) != 5 {
		t.Errorf("expected 5 courses, got %d", len(list.Msg.Courses))
	}

	dup := *course
	dup.Subjects = append(dup.Subjects, api.Subject{Code: "ACC1", Name: "Again", Units: 3})
	_, err = admin.admin.SaveCourse(ctx, connect.NewRequest(&api.SaveCourseRequest{Course: &dup}))
	assertCode(t, err, connect.CodeInvalidArgument)

	negative := *course
	negative.MiscFee = decimal.NewFromInt(-1)
	_, err = admin.admin.SaveCourse(ctx, connect.NewRequest(&api.SaveCourseRequest{Course: &negative}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestUpdateSystemConfig(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	admin := srv.login(t, "admin", "")

	resp, err := admin.admin.UpdateSystemConfig(ctx, connect.NewRequest(&api.UpdateSystemConfigRequest{
		AcademicYear: "2025-2026",
		Semester:     "2nd Semester",
		Departments:  []string{"College of Science", " College of Science ", "High School"},
	}))
	if err != nil {
		t.Fatalf("UpdateSystemConfig failed: %v", err)
	}
	if got := resp.Msg.Config.Departments; len(got) != 2 || got[0] != "College of Science" || got[1] != "High School" {
		t.Errorf("unexpected departments %v", got)
	}

	registrar := srv.login(t, "registrar", "")
	cfg, err := registrar.admin.GetSystemConfig(ctx, connect.NewRequest(&api.GetSystemConfigRequest{}))
	if err != nil {
		t.Fatalf("GetSystemConfig failed: %v", err)
	}
	if cfg.Msg.Config.AcademicYear != "2025-2026" {
		t.Errorf("academic year: expected 2025-2026, got %s", cfg.Msg.Config.AcademicYear)
	}

	// New students are numbered from the configured year.
	created, err := registrar.students.CreateStudent(ctx, connect.NewRequest(&api.CreateStudentRequest{
		FirstName: "Ana", LastName: "Cruz", Email: "ana@crimson.edu", CourseID: "BSBA",
	}))
	if err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}
	if created.Msg.Student.ID[:5] != "2025-" {
		t.Errorf("expected a 2025 student number, got %s", created.Msg.Student.ID)
	}
}

func fileResetRequest(t *testing.T, srv *testServer, email string) string {
	t.Helper()
	resp, err := srv.anonymous().auth.RequestPasswordReset(context.Background(), connect.NewRequest(&api.RequestPasswordResetRequest{
		Email: email,
	}))
	if err != nil {
		t.Fatalf("RequestPasswordReset failed: %v", err)
	}
	return resp.Msg.RequestID
}

func TestResolvePasswordRequest_Concurrent(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	id := fileResetRequest(t, srv, "alice.r@crimson.edu")
	admin := srv.login(t, "admin", "")

	const resolvers = 4
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		passwords []string
		codes     []connect.Code
	)
	for range resolvers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := admin.admin.ResolvePasswordRequest(ctx, connect.NewRequest(&api.ResolvePasswordRequestRequest{RequestID: id}))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				codes = append(codes, connect.CodeOf(err))
				return
			}
			passwords = append(passwords, resp.Msg.NewPassword)
		}()
	}
	wg.Wait()

	if len(passwords) != 1 {
		t.Fatalf("expected exactly one resolver to win, got %d (codes %v)", len(passwords), codes)
	}
	for _, c := range codes {
		if c != connect.CodeFailedPrecondition {
			t.Errorf("losing resolver: expected FailedPrecondition, got %v", c)
		}
	}

	// the one password handed out is the one stored
	srv.login(t, "Alice", passwords[0])
	_, err := srv.anonymous().auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Username: "Alice", Password: "tempPassword123"}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

// failingResetStore rejects every student write.
type failingResetStore struct {
	storage.Store
}

func (failingResetStore) UpdateStudent(context.Context, string, func(*models.Student) error) (*models.Student, error) {
	return nil, errors.New("disk full")
}

func TestResolvePasswordRequest_ResetFailureReopensTicket(t *testing.T) {
	srv := setupTestServer(t)
	id := fileResetRequest(t, srv, "alice.r@crimson.edu")

	svc := NewAdminService(failingResetStore{Store: srv.store})
	ctx := middleware.WithSession(context.Background(), "u4", models.RoleSuperAdmin, "Admin")

	_, err := svc.ResolvePasswordRequest(ctx, connect.NewRequest(&api.ResolvePasswordRequestRequest{RequestID: id}))
	assertCode(t, err, connect.CodeInternal)

	pending, err := srv.store.ListPasswordRequests(context.Background(), models.RequestPending)
	if err != nil {
		t.Fatalf("ListPasswordRequests failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != id {
		t.Fatalf("expected the ticket back in the queue, got %+v", pending)
	}

	// the student keeps the old password
	srv.login(t, "Alice", "tempPassword123")

	// and a working store can still resolve it
	admin := srv.login(t, "admin", "")
	resp, err := admin.admin.ResolvePasswordRequest(context.Background(), connect.NewRequest(&api.ResolvePasswordRequestRequest{RequestID: id}))
	if err != nil {
		t.Fatalf("ResolvePasswordRequest failed: %v", err)
	}
	srv.login(t, "Alice", resp.Msg.NewPassword)
}

func TestResolvePasswordRequest_Staff(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()

	req, err := srv.anonymous().auth.RequestPasswordReset(ctx, connect.NewRequest(&api.RequestPasswordResetRequest{
		Email:    "finance@cosca.edu",
		UserType: models.UserTypeStaff,
	}))
	if err != nil {
		t.Fatalf("RequestPasswordReset failed: %v", err)
	}

	admin := srv.login(t, "admin", "")
	resp, err := admin.admin.ResolvePasswordRequest(ctx, connect.NewRequest(&api.ResolvePasswordRequestRequest{RequestID: req.Msg.RequestID}))
	if err != nil {
		t.Fatalf("ResolvePasswordRequest failed: %v", err)
	}
	if resp.Msg.NewPassword != "" {
		t.Errorf("staff tickets carry no password, got %q", resp.Msg.NewPassword)
	}
	if resp.Msg.Request.UserType != models.UserTypeStaff || resp.Msg.Request.Status != string(models.RequestResolved) {
		t.Errorf("request = %+v", resp.Msg.Request)
	}
}
