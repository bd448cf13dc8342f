// Package reports aggregates student accounts into the per-role dashboard figures.
package reports

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cosca/portal/internal/models"
)

// CourseFigure is a per-course aggregate.
type CourseFigure struct {
	CourseID string          `json:"courseId"`
	Students int             `json:"students"`
	Amount   decimal.Decimal `json:"amount"`
}

// Finance summarizes receivables.
type Finance struct {
	TotalReceivables    decimal.Decimal `json:"totalReceivables"`
	PaidCount           int             `json:"paidCount"`
	UnpaidCount         int             `json:"unpaidCount"`
	ReceivablesByCourse []CourseFigure  `json:"receivablesByCourse"`
	PendingVoidRequests int             `json:"pendingVoidRequests"`
}

// Registrar summarizes enrollment.
type Registrar struct {
	TotalStudents      int                             `json:"totalStudents"`
	EnrollmentByCourse []CourseFigure                  `json:"enrollmentByCourse"`
	ByStatus           map[models.EnrollmentStatus]int `json:"byStatus"`
	PendingDocuments   int                             `json:"pendingDocuments"`
}

// Admin is the super admin overview.
type Admin struct {
	StaffCount         int             `json:"staffCount"`
	StudentCount       int             `json:"studentCount"`
	CourseCount        int             `json:"courseCount"`
	TotalReceivables   decimal.Decimal `json:"totalReceivables"`
	ByCourse           []CourseFigure  `json:"byCourse"`
	PendingPasswordReq int             `json:"pendingPasswordRequests"`
}

// StudentSummary is what a student sees about themselves.
type StudentSummary struct {
	Balance          decimal.Decimal `json:"balance"`
	EnrolledSubjects int             `json:"enrolledSubjects"`
	Documents        int             `json:"documents"`
}

// BuildFinance computes the finance dashboard. Accounts with a balance of
// zero or less count as paid.
func BuildFinance(students []*models.Student) Finance {
	out := Finance{TotalReceivables: decimal.Zero}
	byCourse := make(map[string]*CourseFigure)

	for _, s := range students {
		out.TotalReceivables = out.TotalReceivables.Add(s.Balance)
		if s.Balance.LessThanOrEqual(decimal.Zero) {
			out.PaidCount++
		} else {
			out.UnpaidCount++
		}
		f := figure(byCourse, s.CourseID)
		f.Students++
		f.Amount = f.Amount.Add(s.Balance)

		for _, t := range s.Transactions {
			if t.Status == models.StatusVoidRequested {
				out.PendingVoidRequests++
			}
		}
	}

	out.ReceivablesByCourse = sortByAmount(byCourse)
	return out
}

// BuildRegistrar computes the registrar dashboard.
func BuildRegistrar(students []*models.Student) Registrar {
	out := Registrar{
		TotalStudents: len(students),
		ByStatus:      make(map[models.EnrollmentStatus]int),
	}
	byCourse := make(map[string]*CourseFigure)

	for _, s := range students {
		out.ByStatus[s.EnrollmentStatus]++
		figure(byCourse, s.CourseID).Students++
		for _, d := range s.Documents {
			if d.Status == models.DocumentPending {
				out.PendingDocuments++
			}
		}
	}

	out.EnrollmentByCourse = sortByStudents(byCourse)
	return out
}

// BuildAdmin computes the super admin overview.
func BuildAdmin(students []*models.Student, users []*models.User, courses []*models.Course, pendingRequests int) Admin {
	out := Admin{
		StaffCount:         len(users),
		StudentCount:       len(students),
		CourseCount:        len(courses),
		TotalReceivables:   decimal.Zero,
		PendingPasswordReq: pendingRequests,
	}
	byCourse := make(map[string]*CourseFigure)
	for _, c := range courses {
		figure(byCourse, c.ID)
	}
	for _, s := range students {
		out.TotalReceivables = out.TotalReceivables.Add(s.Balance)
		f := figure(byCourse, s.CourseID)
		f.Students++
		f.Amount = f.Amount.Add(s.Balance)
	}
	out.ByCourse = sortByStudents(byCourse)
	return out
}

// BuildStudent summarizes a single account.
func BuildStudent(s *models.Student) StudentSummary {
	out := StudentSummary{Balance: s.Balance, Documents: len(s.Documents)}
	for _, r := range s.AcademicRecords {
		if r.Status == models.SubjectEnrolled {
			out.EnrolledSubjects++
		}
	}
	return out
}

// TeacherStudents returns the students whose course belongs to department.
func TeacherStudents(students []*models.Student, courses []*models.Course, department string) []*models.Student {
	if department == "" {
		return nil
	}
	inDept := make(map[string]bool)
	for _, c := range courses {
		if c.Department == department {
			inDept[c.ID] = true
		}
	}
	var out []*models.Student
	for _, s := range students {
		if inDept[s.CourseID] {
			out = append(out, s)
		}
	}
	return out
}

// LogEntry is a transaction flattened with its owner.
type LogEntry struct {
	models.Transaction
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
}

// TransactionLogs flattens every student's transactions, newest first, keeping
// only entries whose student name, transaction ID or description contains
// query (case-insensitive). An empty query keeps everything.
func TransactionLogs(students []*models.Student, query string) []LogEntry {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []LogEntry
	for _, s := range students {
		name := s.FullName()
		for _, t := range s.Transactions {
			if q != "" &&
				!strings.Contains(strings.ToLower(name), q) &&
				!strings.Contains(strings.ToLower(t.ID), q) &&
				!strings.Contains(strings.ToLower(t.Description), q) {
				continue
			}
			out = append(out, LogEntry{Transaction: t, StudentID: s.ID, StudentName: name})
		}
	}

	slices.SortStableFunc(out, func(a, b LogEntry) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// VoidRequests returns every transaction awaiting void approval, oldest request first.
func VoidRequests(students []*models.Student) []LogEntry {
	var out []LogEntry
	for _, s := range students {
		for _, t := range s.Transactions {
			if t.Status == models.StatusVoidRequested {
				out = append(out, LogEntry{Transaction: t, StudentID: s.ID, StudentName: s.FullName()})
			}
		}
	}
	slices.SortStableFunc(out, func(a, b LogEntry) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// MatchStudent reports whether s matches a name or ID search.
func MatchStudent(s *models.Student, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.FullName()), q) || strings.Contains(strings.ToLower(s.ID), q)
}

func figure(m map[string]*CourseFigure, courseID string) *CourseFigure {
	f, ok := m[courseID]
	if !ok {
		f = &CourseFigure{CourseID: courseID, Amount: decimal.Zero}
		m[courseID] = f
	}
	return f
}

func sortByAmount(m map[string]*CourseFigure) []CourseFigure {
	out := collect(m)
	slices.SortFunc(out, func(a, b CourseFigure) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.CourseID, b.CourseID)
	})
	return out
}

func sortByStudents(m map[string]*CourseFigure) []CourseFigure {
	out := collect(m)
	slices.SortFunc(out, func(a, b CourseFigure) int {
		if c := cmp.Compare(b.Students, a.Students); c != 0 {
			return c
		}
		return cmp.Compare(a.CourseID, b.CourseID)
	})
	return out
}

func collect(m map[string]*CourseFigure) []CourseFigure {
	out := make([]CourseFigure, 0, len(m))
	for _, f := range m {
		out = append(out, *f)
	}
	return out
}
