package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/enrollment"
	"github.com/cosca/portal/internal/metrics"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/reports"
	"github.com/cosca/portal/internal/storage"
	"github.com/cosca/portal/pkg/api"
)

// maxIDAttempts bounds student number generation on collisions.
const maxIDAttempts = 20

var errUnknownCourse = errors.New("unknown course")

// StudentService implements the StudentService RPC interface.
type StudentService struct {
	store storage.Store
	now   func() time.Time
}

// NewStudentService creates a new StudentService with the given storage backend.
func NewStudentService(store storage.Store) *StudentService {
	return &StudentService{store: store, now: time.Now}
}

// ListStudents returns the students visible to the caller, optionally
// filtered by a name or student number search.
func (s *StudentService) ListStudents(ctx context.Context, req *connect.Request[api.ListStudentsRequest]) (*connect.Response[api.ListStudentsResponse], error) {
	a, err := requireRole(ctx, models.RoleRegistrar, models.RoleFinance, models.RoleSuperAdmin, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	if a.Role == models.RoleTeacher {
		dept, err := teacherDepartment(ctx, s.store, a.ID)
		if err != nil {
			return nil, toConnectError(err)
		}
		courses, err := s.store.ListCourses(ctx)
		if err != nil {
			return nil, toConnectError(err)
		}
		students = reports.TeacherStudents(students, courses, dept)
	}

	matched := make([]*models.Student, 0, len(students))
	for _, st := range students {
		if reports.MatchStudent(st, req.Msg.Query) {
			matched = append(matched, st)
		}
	}
	return connect.NewResponse(&api.ListStudentsResponse{Students: toAPIStudents(matched)}), nil
}

// GetStudent returns one student if the caller may see it.
func (s *StudentService) GetStudent(ctx context.Context, req *connect.Request[api.GetStudentRequest]) (*connect.Response[api.GetStudentResponse], error) {
	a, err := currentActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	st, err := loadVisibleStudent(ctx, s.store, a, req.Msg.StudentID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetStudentResponse{Student: toAPIStudent(st)}), nil
}

// CreateStudent enrolls a new applicant: it generates the student number and
// an initial password, enrolls the first-semester subjects and posts the
// tuition assessment. The initial password is only returned here.
func (s *StudentService) CreateStudent(ctx context.Context, req *connect.Request[api.CreateStudentRequest]) (*connect.Response[api.CreateStudentResponse], error) {
	a, err := requireRole(ctx, models.RoleRegistrar, models.RoleFinance, models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	course, err := s.store.GetCourse(ctx, req.Msg.CourseID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: %s", errUnknownCourse, req.Msg.CourseID))
	}
	if err != nil {
		return nil, toConnectError(err)
	}
	cfg, err := s.store.GetConfig(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	password := auth.GeneratePassword()
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	applicant := enrollment.Applicant{
		FirstName:     strings.TrimSpace(req.Msg.FirstName),
		LastName:      strings.TrimSpace(req.Msg.LastName),
		Email:         strings.TrimSpace(req.Msg.Email),
		ContactNumber: strings.TrimSpace(req.Msg.ContactNumber),
		PasswordHash:  hash,
		RecordedBy:    a.ID,
	}

	var student *models.Student
	for attempt := 0; ; attempt++ {
		now := s.now()
		applicant.ID = enrollment.NewStudentID(cfg.AcademicYear, now)
		student = enrollment.NewAccount(applicant, course, cfg, now)
		err = s.store.CreateStudent(ctx, student)
		if !errors.Is(err, storage.ErrAlreadyExists) || attempt+1 >= maxIDAttempts {
			break
		}
	}
	if err != nil {
		slog.Error("Failed to create student", "error", err)
		return nil, toConnectError(err)
	}

	for _, t := range student.Transactions {
		metrics.LedgerTransactions.WithLabelValues(string(t.Type)).Inc()
	}

	slog.Info("Created student", "student_id", student.ID, "course_id", course.ID, "recorded_by", a.ID)
	return connect.NewResponse(&api.CreateStudentResponse{
		Student:         toAPIStudent(student),
		InitialPassword: password,
	}), nil
}

// UpdateStudent edits profile and enrollment fields. Empty fields are kept.
func (s *StudentService) UpdateStudent(ctx context.Context, req *connect.Request[api.UpdateStudentRequest]) (*connect.Response[api.UpdateStudentResponse], error) {
	if _, err := requireRole(ctx, models.RoleRegistrar, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	m := req.Msg
	student, err := s.store.UpdateStudent(ctx, m.StudentID, func(st *models.Student) error {
		if v := strings.TrimSpace(m.FirstName); v != "" {
			st.FirstName = v
		}
		if v := strings.TrimSpace(m.LastName); v != "" {
			st.LastName = v
		}
		if v := strings.TrimSpace(m.Email); v != "" {
			st.Email = v
		}
		if v := strings.TrimSpace(m.ContactNumber); v != "" {
			st.ContactNumber = v
		}
		if m.EnrollmentStatus != "" {
			st.EnrollmentStatus = models.EnrollmentStatus(m.EnrollmentStatus)
		}
		if m.YearLevel > 0 {
			st.YearLevel = m.YearLevel
		}
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Updated student", "student_id", student.ID)
	return connect.NewResponse(&api.UpdateStudentResponse{Student: toAPIStudent(student)}), nil
}

// AddSubject enrolls a student in a subject of their course for the current term.
func (s *StudentService) AddSubject(ctx context.Context, req *connect.Request[api.AddSubjectRequest]) (*connect.Response[api.AddSubjectResponse], error) {
	if _, err := requireRole(ctx, models.RoleRegistrar, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	cfg, err := s.store.GetConfig(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	current, err := s.store.GetStudent(ctx, req.Msg.StudentID)
	if err != nil {
		return nil, toConnectError(err)
	}
	// The store holds a single connection, so the course is read before the
	// update opens its transaction.
	course, err := s.store.GetCourse(ctx, current.CourseID)
	if err != nil {
		return nil, toConnectError(err)
	}

	student, err := s.store.UpdateStudent(ctx, req.Msg.StudentID, func(st *models.Student) error {
		return enrollment.AddSubject(st, course, req.Msg.SubjectCode, cfg.Term())
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Added subject", "student_id", student.ID, "subject", req.Msg.SubjectCode)
	return connect.NewResponse(&api.AddSubjectResponse{Student: toAPIStudent(student)}), nil
}

// PostGrade records a grade and optionally a subject status. Teachers may
// only grade students of their department.
func (s *StudentService) PostGrade(ctx context.Context, req *connect.Request[api.PostGradeRequest]) (*connect.Response[api.PostGradeResponse], error) {
	a, err := requireRole(ctx, models.RoleTeacher, models.RoleRegistrar, models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	if _, err := loadVisibleStudent(ctx, s.store, a, req.Msg.StudentID); err != nil {
		return nil, toConnectError(err)
	}

	student, err := s.store.UpdateStudent(ctx, req.Msg.StudentID, func(st *models.Student) error {
		for i := range st.AcademicRecords {
			r := &st.AcademicRecords[i]
			if r.Code != req.Msg.SubjectCode {
				continue
			}
			r.Grade = strings.TrimSpace(req.Msg.Grade)
			if req.Msg.Status != "" {
				r.Status = models.SubjectStatus(req.Msg.Status)
			}
			if a.Role == models.RoleTeacher {
				r.Instructor = a.Name
			}
			return nil
		}
		return fmt.Errorf("subject %s on %s: %w", req.Msg.SubjectCode, st.ID, storage.ErrNotFound)
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Posted grade", "student_id", student.ID, "subject", req.Msg.SubjectCode, "by", a.ID)
	return connect.NewResponse(&api.PostGradeResponse{Student: toAPIStudent(student)}), nil
}

// UploadDocument attaches an enrollment document. Students may upload their
// own; the registrar may upload for anyone.
func (s *StudentService) UploadDocument(ctx context.Context, req *connect.Request[api.UploadDocumentRequest]) (*connect.Response[api.UploadDocumentResponse], error) {
	a, err := requireRole(ctx, models.RoleStudent, models.RoleRegistrar, models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}
	if _, err := loadVisibleStudent(ctx, s.store, a, req.Msg.StudentID); err != nil {
		return nil, toConnectError(err)
	}

	doc := models.EnrollmentDocument{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(req.Msg.Name),
		Type:       req.Msg.Type,
		UploadDate: s.now().Format(time.DateOnly),
		URL:        req.Msg.URL,
		Status:     models.DocumentPending,
	}
	if _, err := s.store.UpdateStudent(ctx, req.Msg.StudentID, func(st *models.Student) error {
		st.Documents = append(st.Documents, doc)
		return nil
	}); err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Uploaded document", "student_id", req.Msg.StudentID, "document_id", doc.ID)
	d := toAPIDocument(doc)
	return connect.NewResponse(&api.UploadDocumentResponse{Document: &d}), nil
}

// ReviewDocument approves or rejects an uploaded document.
func (s *StudentService) ReviewDocument(ctx context.Context, req *connect.Request[api.ReviewDocumentRequest]) (*connect.Response[api.ReviewDocumentResponse], error) {
	if _, err := requireRole(ctx, models.RoleRegistrar, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	var reviewed models.EnrollmentDocument
	_, err := s.store.UpdateStudent(ctx, req.Msg.StudentID, func(st *models.Student) error {
		for i := range st.Documents {
			if st.Documents[i].ID == req.Msg.DocumentID {
				st.Documents[i].Status = models.DocumentStatus(req.Msg.Status)
				reviewed = st.Documents[i]
				return nil
			}
		}
		return fmt.Errorf("document %s: %w", req.Msg.DocumentID, storage.ErrNotFound)
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	d := toAPIDocument(reviewed)
	return connect.NewResponse(&api.ReviewDocumentResponse{Document: &d}), nil
}
