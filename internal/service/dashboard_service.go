package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/reports"
	"github.com/cosca/portal/internal/storage"
	"github.com/cosca/portal/pkg/api"
)

// DashboardService builds the landing page figures of each role.
type DashboardService struct {
	store storage.Store
}

func NewDashboardService(store storage.Store) *DashboardService {
	return &DashboardService{store: store}
}

// GetDashboard returns the dashboard of the caller's role.
func (s *DashboardService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	a, err := currentActor(ctx)
	if err != nil {
		return nil, err
	}

	res := &api.GetDashboardResponse{Role: string(a.Role)}
	switch a.Role {
	case models.RoleFinance:
		res.Finance, err = s.finance(ctx)
	case models.RoleRegistrar:
		res.Registrar, err = s.registrar(ctx)
	case models.RoleSuperAdmin:
		res.Admin, err = s.admin(ctx)
	case models.RoleTeacher:
		res.Teacher, err = s.teacher(ctx, a.ID)
	case models.RoleStudent:
		res.Student, err = s.student(ctx, a.ID)
	default:
		return nil, connect.NewError(connect.CodePermissionDenied, errPermissionDenied)
	}
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(res), nil
}

func (s *DashboardService) finance(ctx context.Context) (*api.FinanceDashboard, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	f := reports.BuildFinance(students)
	return &api.FinanceDashboard{
		TotalReceivables:    f.TotalReceivables,
		PaidCount:           f.PaidCount,
		UnpaidCount:         f.UnpaidCount,
		PendingVoidRequests: f.PendingVoidRequests,
		ReceivablesByCourse: toAPIFigures(f.ReceivablesByCourse),
	}, nil
}

func (s *DashboardService) registrar(ctx context.Context) (*api.RegistrarDashboard, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	r := reports.BuildRegistrar(students)
	byStatus := make(map[string]int, len(r.ByStatus))
	for status, n := range r.ByStatus {
		byStatus[string(status)] = n
	}
	return &api.RegistrarDashboard{
		TotalStudents:      r.TotalStudents,
		EnrollmentByCourse: toAPIFigures(r.EnrollmentByCourse),
		ByStatus:           byStatus,
		PendingDocuments:   r.PendingDocuments,
	}, nil
}

func (s *DashboardService) admin(ctx context.Context) (*api.AdminDashboard, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.store.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.store.ListPasswordRequests(ctx, models.RequestPending)
	if err != nil {
		return nil, err
	}

	d := reports.BuildAdmin(students, users, courses, len(pending))
	return &api.AdminDashboard{
		StaffCount:              d.StaffCount,
		StudentCount:            d.StudentCount,
		CourseCount:             d.CourseCount,
		TotalReceivables:        d.TotalReceivables,
		PendingPasswordRequests: d.PendingPasswordReq,
		ByCourse:                toAPIFigures(d.ByCourse),
	}, nil
}

// teacher lists the students of the teacher's department.
func (s *DashboardService) teacher(ctx context.Context, userID string) (*api.TeacherDashboard, error) {
	dept, err := teacherDepartment(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.store.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return &api.TeacherDashboard{
		Department: dept,
		Students:   toAPIStudents(reports.TeacherStudents(students, courses, dept)),
	}, nil
}

func (s *DashboardService) student(ctx context.Context, id string) (*api.StudentDashboard, error) {
	st, err := s.store.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	sum := reports.BuildStudent(st)
	return &api.StudentDashboard{
		Student:          toAPIStudent(st),
		Balance:          sum.Balance,
		EnrolledSubjects: sum.EnrolledSubjects,
		Documents:        sum.Documents,
	}, nil
}
