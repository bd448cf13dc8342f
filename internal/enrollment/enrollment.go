// Package enrollment builds new student accounts and computes assessments
// from a course's curriculum and fee schedule.
package enrollment

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cosca/portal/internal/ledger"
	"github.com/cosca/portal/internal/models"
)

var (
	ErrSubjectNotInCurriculum = errors.New("subject is not in the course curriculum")
	ErrAlreadyEnrolled        = errors.New("student already has this subject")
)

const (
	// InitialAssessmentDescription labels the transaction posted at account creation.
	InitialAssessmentDescription = "Initial Enrollment Assessment"

	// DefaultInstructor is shown until the registrar assigns one.
	DefaultInstructor = "TBA"

	// SystemActor is used as RecordedBy for entries posted without a staff actor.
	SystemActor = "system"
)

// InitialSubjects returns the first-year, first-semester subjects of course,
// ready to attach to a new student. Untagged subjects are not included.
func InitialSubjects(course *models.Course, term string) []models.EnrolledSubject {
	var out []models.EnrolledSubject
	for _, s := range course.Subjects {
		if s.YearLevel == 1 && s.Semester == 1 {
			out = append(out, enroll(s, term))
		}
	}
	return out
}

func enroll(s models.Subject, term string) models.EnrolledSubject {
	return models.EnrolledSubject{
		Subject:    s,
		Status:     models.SubjectEnrolled,
		Term:       term,
		Instructor: DefaultInstructor,
	}
}

// Breakdown itemizes an assessment.
type Breakdown struct {
	Units          int             `json:"units"`
	TuitionPerUnit decimal.Decimal `json:"tuitionPerUnit"`
	Tuition        decimal.Decimal `json:"tuition"`
	MiscFee        decimal.Decimal `json:"miscFee"`
	Total          decimal.Decimal `json:"total"`
}

// Assessment returns Σunits × TuitionPerUnit + MiscFee for subjects.
func Assessment(subjects []models.EnrolledSubject, course *models.Course) Breakdown {
	units := 0
	for _, s := range subjects {
		units += s.Units
	}
	tuition := course.TuitionPerUnit.Mul(decimal.NewFromInt(int64(units)))
	return Breakdown{
		Units:          units,
		TuitionPerUnit: course.TuitionPerUnit,
		Tuition:        tuition,
		MiscFee:        course.MiscFee,
		Total:          tuition.Add(course.MiscFee),
	}
}

// CurrentAssessment assesses only the student's subjects still marked enrolled.
func CurrentAssessment(student *models.Student, course *models.Course) Breakdown {
	var current []models.EnrolledSubject
	for _, r := range student.AcademicRecords {
		if r.Status == models.SubjectEnrolled {
			current = append(current, r)
		}
	}
	return Assessment(current, course)
}

// Applicant is the registrar-supplied part of a new account.
type Applicant struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	ContactNumber string
	PasswordHash  string
	RecordedBy    string
}

// NewAccount builds a pending first-year student enrolled in the course's
// first-semester subjects, with one tuition transaction for the assessment.
func NewAccount(a Applicant, course *models.Course, cfg *models.SystemConfig, now time.Time) *models.Student {
	subjects := InitialSubjects(course, cfg.Term())
	assessment := Assessment(subjects, course)

	recordedBy := a.RecordedBy
	if recordedBy == "" {
		recordedBy = SystemActor
	}

	student := &models.Student{
		ID:                a.ID,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Email:             a.Email,
		ContactNumber:     a.ContactNumber,
		PasswordHash:      a.PasswordHash,
		IsPasswordChanged: false,
		Type:              course.Type,
		CourseID:          course.ID,
		YearLevel:         1,
		EnrollmentStatus:  models.EnrollmentPending,
		AcademicRecords:   subjects,
		Documents:         []models.EnrollmentDocument{},
		Transactions: []models.Transaction{{
			ID:          ledger.NewID(),
			Date:        now,
			Amount:      assessment.Total,
			Type:        models.TxTuition,
			Description: InitialAssessmentDescription,
			RecordedBy:  recordedBy,
			Status:      models.StatusPosted,
		}},
		CreatedAt: now.Unix(),
	}
	student.Balance = ledger.Balance(student.Transactions)
	return student
}

// AddSubject enrolls the student in a curriculum subject for term.
func AddSubject(student *models.Student, course *models.Course, code, term string) error {
	subject, ok := course.FindSubject(code)
	if !ok {
		return fmt.Errorf("%w: %s not in %s", ErrSubjectNotInCurriculum, code, course.ID)
	}
	for _, r := range student.AcademicRecords {
		if r.Code == code {
			return fmt.Errorf("%w: %s", ErrAlreadyEnrolled, code)
		}
	}
	student.AcademicRecords = append(student.AcademicRecords, enroll(subject, term))
	return nil
}

// NewStudentID returns a candidate student number like "2024-0137", using the
// first year of academicYear ("2024-2025") or the current year when it has none.
// Callers retry on collision.
func NewStudentID(academicYear string, now time.Time) string {
	year, _, _ := strings.Cut(academicYear, "-")
	year = strings.TrimSpace(year)
	if len(year) != 4 {
		year = fmt.Sprintf("%04d", now.Year())
	}
	return fmt.Sprintf("%s-%04d", year, rand.IntN(10000))
}
