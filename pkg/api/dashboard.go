package api

import "github.com/shopspring/decimal"

type GetDashboardRequest struct{}

// GetDashboardResponse carries the dashboard of the caller's role; the other
// fields are nil.
type GetDashboardResponse struct {
	Role      string              `json:"role"`
	Finance   *FinanceDashboard   `json:"finance,omitempty"`
	Registrar *RegistrarDashboard `json:"registrar,omitempty"`
	Admin     *AdminDashboard     `json:"admin,omitempty"`
	Teacher   *TeacherDashboard   `json:"teacher,omitempty"`
	Student   *StudentDashboard   `json:"student,omitempty"`
}

type FinanceDashboard struct {
	TotalReceivables    decimal.Decimal `json:"totalReceivables"`
	PaidCount           int             `json:"paidCount"`
	UnpaidCount         int             `json:"unpaidCount"`
	PendingVoidRequests int             `json:"pendingVoidRequests"`
	ReceivablesByCourse []CourseFigure  `json:"receivablesByCourse"`
}

type RegistrarDashboard struct {
	TotalStudents      int            `json:"totalStudents"`
	EnrollmentByCourse []CourseFigure `json:"enrollmentByCourse"`
	ByStatus           map[string]int `json:"byStatus"`
	PendingDocuments   int            `json:"pendingDocuments"`
}

type AdminDashboard struct {
	StaffCount              int             `json:"staffCount"`
	StudentCount            int             `json:"studentCount"`
	CourseCount             int             `json:"courseCount"`
	TotalReceivables        decimal.Decimal `json:"totalReceivables"`
	PendingPasswordRequests int             `json:"pendingPasswordRequests"`
	ByCourse                []CourseFigure  `json:"byCourse"`
}

type TeacherDashboard struct {
	Department string     `json:"department"`
	Students   []*Student `json:"students"`
}

type StudentDashboard struct {
	Student          *Student        `json:"student"`
	Balance          decimal.Decimal `json:"balance"`
	EnrolledSubjects int             `json:"enrolledSubjects"`
	Documents        int             `json:"documents"`
}
