package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cosca/portal/internal/models"
)

func student(id, first, course string, balance int64, status models.EnrollmentStatus) *models.Student {
	return &models.Student{
		ID:               id,
		FirstName:        first,
		LastName:         "Test",
		CourseID:         course,
		Balance:          decimal.NewFromInt(balance),
		EnrollmentStatus: status,
	}
}

func TestBuildFinance(t *testing.T) {
	students := []*models.Student{
		student("1", "Alice", "BSCS", 5500, models.EnrollmentEnrolled),
		student("2", "John", "G12", 15500, models.EnrollmentEnrolled),
		student("3", "Paid", "BSCS", 0, models.EnrollmentEnrolled),
		student("4", "Credit", "BSBA", -200, models.EnrollmentPending),
	}
	students[0].Transactions = []models.Transaction{{ID: "t", Status: models.StatusVoidRequested}}

	got := BuildFinance(students)

	if !got.TotalReceivables.Equal(decimal.NewFromInt(20800)) {
		t.Errorf("TotalReceivables = %s, want 20800", got.TotalReceivables)
	}
	if got.PaidCount != 2 || got.UnpaidCount != 2 {
		t.Errorf("paid/unpaid = %d/%d, want 2/2", got.PaidCount, got.UnpaidCount)
	}
	if got.PendingVoidRequests != 1 {
		t.Errorf("PendingVoidRequests = %d, want 1", got.PendingVoidRequests)
	}

	wantOrder := []string{"G12", "BSCS", "BSBA"}
	for i, f := range got.ReceivablesByCourse {
		if f.CourseID != wantOrder[i] {
			t.Errorf("ReceivablesByCourse[%d] = %s, want %s", i, f.CourseID, wantOrder[i])
		}
	}
}

func TestBuildRegistrar(t *testing.T) {
	students := []*models.Student{
		student("1", "A", "BSCS", 0, models.EnrollmentEnrolled),
		student("2", "B", "BSCS", 0, models.EnrollmentPending),
		student("3", "C", "G12", 0, models.EnrollmentPending),
	}
	students[1].Documents = []models.EnrollmentDocument{
		{ID: "d1", Status: models.DocumentPending},
		{ID: "d2", Status: models.DocumentApproved},
	}

	got := BuildRegistrar(students)

	if got.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d", got.TotalStudents)
	}
	if got.ByStatus[models.EnrollmentPending] != 2 || got.ByStatus[models.EnrollmentEnrolled] != 1 {
		t.Errorf("ByStatus = %v", got.ByStatus)
	}
	if got.PendingDocuments != 1 {
		t.Errorf("PendingDocuments = %d, want 1", got.PendingDocuments)
	}
	if got.EnrollmentByCourse[0].CourseID != "BSCS" || got.EnrollmentByCourse[0].Students != 2 {
		t.Errorf("EnrollmentByCourse[0] = %+v", got.EnrollmentByCourse[0])
	}
}

func TestBuildAdmin_IncludesEmptyCourses(t *testing.T) {
	courses := []*models.Course{{ID: "BSCS"}, {ID: "BSBA"}}
	users := []*models.User{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}
	students := []*models.Student{student("1", "A", "BSCS", 100, models.EnrollmentEnrolled)}

	got := BuildAdmin(students, users, courses, 4)

	if got.StaffCount != 3 || got.StudentCount != 1 || got.CourseCount != 2 || got.PendingPasswordReq != 4 {
		t.Errorf("counts = %+v", got)
	}
	if len(got.ByCourse) != 2 {
		t.Fatalf("ByCourse = %d entries, want 2", len(got.ByCourse))
	}
	if got.ByCourse[1].CourseID != "BSBA" || got.ByCourse[1].Students != 0 {
		t.Errorf("ByCourse[1] = %+v", got.ByCourse[1])
	}
}

func TestTeacherStudents(t *testing.T) {
	courses := []*models.Course{
		{ID: "BSCS", Department: "College of Science"},
		{ID: "G12", Department: "High School"},
	}
	students := []*models.Student{
		student("1", "A", "BSCS", 0, models.EnrollmentEnrolled),
		student("2", "B", "G12", 0, models.EnrollmentEnrolled),
		student("3", "C", "UNKNOWN", 0, models.EnrollmentEnrolled),
	}

	got := TeacherStudents(students, courses, "High School")
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("TeacherStudents() = %v", got)
	}
	if got := TeacherStudents(students, courses, ""); got != nil {
		t.Errorf("no department should see nobody, got %d", len(got))
	}
}

func TestTransactionLogs(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.February, d, 0, 0, 0, 0, time.UTC) }
	alice := student("2024-001", "Alice", "BSCS", 0, models.EnrollmentEnrolled)
	alice.Transactions = []models.Transaction{
		{ID: "t1", Date: day(1), Description: "Tuition Fee"},
		{ID: "t2", Date: day(10), Description: "Partial payment"},
	}
	john := student("2024-002", "John", "G12", 0, models.EnrollmentEnrolled)
	john.Transactions = []models.Transaction{{ID: "TRX-ABC", Date: day(5), Description: "Lab fee"}}

	students := []*models.Student{alice, john}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"t2", "TRX-ABC", "t1"}},
		{"alice", []string{"t2", "t1"}},
		{"trx-abc", []string{"TRX-ABC"}},
		{"PAYMENT", []string{"t2"}},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := TransactionLogs(students, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("entries[%d] = %s, want %s", i, e.ID, tt.want[i])
				}
			}
		})
	}
}

func TestMatchStudent(t *testing.T) {
	s := student("2024-001", "Alice", "BSCS", 0, models.EnrollmentEnrolled)
	for q, want := range map[string]bool{"": true, "ali": true, "TEST": true, "2024-00": true, "bob": false} {
		if got := MatchStudent(s, q); got != want {
			t.Errorf("MatchStudent(%q) = %v, want %v", q, got, want)
		}
	}
}
