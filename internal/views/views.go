// Package views decides which screen a session lands on.
package views

import "github.com/cosca/portal/internal/models"

// View names a screen of the portal.
type View string

const (
	Login              View = "login"
	ChangePassword     View = "change_password"
	FinanceDashboard   View = "finance_dashboard"
	StudentAccounts    View = "student_accounts"
	RegistrarDashboard View = "registrar_dashboard"
	StudentRecords     View = "student_records"
	StudentDashboard   View = "student_dashboard"
	TeacherDashboard   View = "teacher_dashboard"
	AdminDashboard     View = "admin_dashboard"
	UserManagement     View = "user_management"
	AcademicSettings   View = "academic_settings"
	SystemRequests     View = "system_requests"
	TransactionLogs    View = "transaction_logs"
	AccessDenied       View = "access_denied"
)

// Page keys requested by the client.
const (
	PageDashboard    = "dashboard"
	PageAccounts     = "accounts"
	PageRecords      = "records"
	PageGrades       = "grades"
	PageBilling      = "billing"
	PageUsers        = "users"
	PageAcademic     = "academic"
	PageRequests     = "requests"
	PageTransactions = "transactions"
)

// Session is the part of an authenticated session that routing depends on.
type Session struct {
	Role models.Role

	// PasswordChanged is only consulted for students.
	PasswordChanged bool
}

// MustChangePassword reports whether the session is held at the password screen.
func (s *Session) MustChangePassword() bool {
	return s != nil && s.Role == models.RoleStudent && !s.PasswordChanged
}

var adminPages = map[string]View{
	PageUsers:        UserManagement,
	PageAcademic:     AcademicSettings,
	PageRequests:     SystemRequests,
	PageTransactions: TransactionLogs,
}

// Resolve maps a session and requested page to the view to render.
// A student who has not changed the generated password gets ChangePassword
// whatever page is asked for.
func Resolve(s *Session, page string) View {
	if s == nil {
		return Login
	}
	if s.MustChangePassword() {
		return ChangePassword
	}

	switch s.Role {
	case models.RoleFinance:
		if page == PageAccounts {
			return StudentAccounts
		}
		return FinanceDashboard
	case models.RoleRegistrar:
		if page == PageRecords {
			return StudentRecords
		}
		return RegistrarDashboard
	case models.RoleStudent:
		return StudentDashboard
	case models.RoleTeacher:
		return TeacherDashboard
	case models.RoleSuperAdmin:
		if v, ok := adminPages[page]; ok {
			return v
		}
		return AdminDashboard
	default:
		return AccessDenied
	}
}

// NavItem is one entry of the sidebar.
type NavItem struct {
	Page  string `json:"page"`
	Label string `json:"label"`
}

// NavItems returns the sidebar for role. Unknown roles get none.
func NavItems(role models.Role) []NavItem {
	switch role {
	case models.RoleFinance:
		return []NavItem{{PageDashboard, "Dashboard"}, {PageAccounts, "Student Accounts"}}
	case models.RoleRegistrar:
		return []NavItem{{PageDashboard, "Dashboard"}, {PageRecords, "Student Records"}}
	case models.RoleTeacher:
		return []NavItem{{PageDashboard, "My Classes"}}
	case models.RoleStudent:
		return []NavItem{{PageDashboard, "Dashboard"}, {PageGrades, "My Grades"}, {PageBilling, "Billing"}}
	case models.RoleSuperAdmin:
		return []NavItem{
			{PageDashboard, "Overview"},
			{PageUsers, "User Management"},
			{PageAcademic, "Academic Settings"},
			{PageTransactions, "Transaction Logs"},
			{PageRequests, "System Requests"},
		}
	default:
		return nil
	}
}
