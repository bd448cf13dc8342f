package enrollment

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cosca/portal/internal/ledger"
	"github.com/cosca/portal/internal/models"
)

func bscs() *models.Course {
	return &models.Course{
		ID:             "BSCS",
		Name:           "BS Computer Science",
		Type:           models.TypeCollege,
		Department:     "College of Science",
		TuitionPerUnit: decimal.NewFromInt(1200),
		MiscFee:        decimal.NewFromInt(5000),
		Subjects: []models.Subject{
			{Code: "CS101", Name: "Intro to Computing", Units: 3, YearLevel: 1, Semester: 1},
			{Code: "CS102", Name: "Programming 1", Units: 3, YearLevel: 1, Semester: 1},
			{Code: "MATH1", Name: "College Algebra", Units: 4, YearLevel: 1, Semester: 1},
			{Code: "ENG1", Name: "Purposive Communication", Units: 3, YearLevel: 1, Semester: 1},
			{Code: "CS103", Name: "Programming 2", Units: 3, YearLevel: 1, Semester: 2},
			{Code: "CS104", Name: "Discrete Structures", Units: 3, YearLevel: 1, Semester: 2},
			{Code: "PE1", Name: "Physical Education", Units: 2},
		},
	}
}

func TestInitialSubjects(t *testing.T) {
	subjects := InitialSubjects(bscs(), "1st Semester 2024-2025")

	want := []string{"CS101", "CS102", "MATH1", "ENG1"}
	if len(subjects) != len(want) {
		t.Fatalf("got %d subjects, want %d", len(subjects), len(want))
	}
	for i, s := range subjects {
		if s.Code != want[i] {
			t.Errorf("subjects[%d] = %s, want %s", i, s.Code, want[i])
		}
		if s.Status != models.SubjectEnrolled {
			t.Errorf("%s status = %s, want enrolled", s.Code, s.Status)
		}
		if s.Instructor != DefaultInstructor {
			t.Errorf("%s instructor = %q, want %q", s.Code, s.Instructor, DefaultInstructor)
		}
		if s.Term != "1st Semester 2024-2025" {
			t.Errorf("%s term = %q", s.Code, s.Term)
		}
	}
}

func TestInitialSubjects_UntaggedCurriculum(t *testing.T) {
	course := &models.Course{
		ID:       "G11",
		Subjects: []models.Subject{{Code: "CORE1", Units: 3}, {Code: "CORE2", Units: 3}},
		MiscFee:  decimal.NewFromInt(15000),
	}
	if got := InitialSubjects(course, "term"); len(got) != 0 {
		t.Errorf("untagged curriculum enrolled %d subjects, want 0", len(got))
	}
}

func TestAssessment(t *testing.T) {
	course := bscs()
	got := Assessment(InitialSubjects(course, ""), course)

	// 13 units x 1200 + 5000
	if got.Units != 13 {
		t.Errorf("Units = %d, want 13", got.Units)
	}
	if !got.Tuition.Equal(decimal.NewFromInt(15600)) {
		t.Errorf("Tuition = %s, want 15600", got.Tuition)
	}
	if !got.Total.Equal(decimal.NewFromInt(20600)) {
		t.Errorf("Total = %s, want 20600", got.Total)
	}
}

func TestNewAccount(t *testing.T) {
	course := bscs()
	cfg := &models.SystemConfig{AcademicYear: "2024-2025", Semester: "1st Semester"}
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

	s := NewAccount(Applicant{
		ID:           "2024-0042",
		FirstName:    "Maria",
		LastName:     "Clara",
		Email:        "maria@example.com",
		PasswordHash: "hash",
		RecordedBy:   "u1",
	}, course, cfg, now)

	if s.EnrollmentStatus != models.EnrollmentPending {
		t.Errorf("EnrollmentStatus = %s, want pending", s.EnrollmentStatus)
	}
	if s.YearLevel != 1 {
		t.Errorf("YearLevel = %d, want 1", s.YearLevel)
	}
	if s.IsPasswordChanged {
		t.Error("IsPasswordChanged = true, want false")
	}
	if s.Type != models.TypeCollege || s.CourseID != "BSCS" {
		t.Errorf("Type/CourseID = %s/%s", s.Type, s.CourseID)
	}
	if len(s.AcademicRecords) != 4 {
		t.Errorf("AcademicRecords = %d, want 4", len(s.AcademicRecords))
	}

	if len(s.Transactions) != 1 {
		t.Fatalf("Transactions = %d, want 1", len(s.Transactions))
	}
	tx := s.Transactions[0]
	if tx.Type != models.TxTuition || tx.Status != models.StatusPosted {
		t.Errorf("initial transaction = %s/%s, want tuition/posted", tx.Type, tx.Status)
	}
	if tx.Description != InitialAssessmentDescription {
		t.Errorf("Description = %q", tx.Description)
	}
	if tx.RecordedBy != "u1" {
		t.Errorf("RecordedBy = %q, want u1", tx.RecordedBy)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(20600)) {
		t.Errorf("Amount = %s, want 20600", tx.Amount)
	}
	if !s.Balance.Equal(ledger.Balance(s.Transactions)) {
		t.Errorf("Balance = %s, want %s", s.Balance, ledger.Balance(s.Transactions))
	}
}

func TestCurrentAssessment(t *testing.T) {
	course := bscs()
	s := NewAccount(Applicant{ID: "x"}, course, &models.SystemConfig{}, time.Now())
	s.AcademicRecords[0].Status = models.SubjectCompleted // CS101, 3 units
	s.AcademicRecords[1].Status = models.SubjectDropped   // CS102, 3 units

	got := CurrentAssessment(s, course)
	if got.Units != 7 {
		t.Errorf("Units = %d, want 7", got.Units)
	}
	if !got.Total.Equal(decimal.NewFromInt(7*1200 + 5000)) {
		t.Errorf("Total = %s", got.Total)
	}
}

func TestAddSubject(t *testing.T) {
	course := bscs()
	s := NewAccount(Applicant{ID: "x"}, course, &models.SystemConfig{}, time.Now())

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{"second semester subject", "CS103", nil},
		{"duplicate", "CS101", ErrAlreadyEnrolled},
		{"not in curriculum", "BIO1", ErrSubjectNotInCurriculum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AddSubject(s, course, tt.code, "2nd Semester")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddSubject(%s) = %v, want %v", tt.code, err, tt.wantErr)
			}
		})
	}

	if len(s.AcademicRecords) != 5 {
		t.Errorf("AcademicRecords = %d, want 5", len(s.AcademicRecords))
	}
}

func TestNewStudentID(t *testing.T) {
	now := time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		year string
		want string
	}{
		{"2024-2025", `^2024-\d{4}$`},
		{"", `^2031-\d{4}$`},
		{"AY", `^2031-\d{4}$`},
	}
	for _, tt := range tests {
		got := NewStudentID(tt.year, now)
		if !regexp.MustCompile(tt.want).MatchString(got) {
			t.Errorf("NewStudentID(%q) = %q, want match %s", tt.year, got, tt.want)
		}
	}
}
