package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Session struct {
	UserID          string `json:"userId"`
	Role            string `json:"role"`
	Name            string `json:"name"`
	PasswordChanged bool   `json:"passwordChanged"`
	ExpiresAt       int64  `json:"expiresAt,omitempty"`
}

type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	RecordedBy  string          `json:"recordedBy"`
	Status      string          `json:"status"`
}

// LedgerEntry is a transaction with the running balance after it.
type LedgerEntry struct {
	Transaction
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
}

// LogEntry is a transaction together with its owner.
type LogEntry struct {
	Transaction
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
}

type Subject struct {
	Code      string `json:"code" validate:"required,notblank"`
	Name      string `json:"name" validate:"required,notblank"`
	Units     int    `json:"units" validate:"min=0"`
	YearLevel int    `json:"yearLevel,omitempty" validate:"min=0"`
	Semester  int    `json:"semester,omitempty" validate:"min=0,max=3"`
}

type AcademicRecord struct {
	Subject
	Grade      string `json:"grade,omitempty"`
	Status     string `json:"status"`
	Term       string `json:"term,omitempty"`
	Instructor string `json:"instructor,omitempty"`
}

type Document struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	UploadDate string `json:"uploadDate"`
	URL        string `json:"url"`
	Status     string `json:"status"`
}

type Student struct {
	ID                string           `json:"id"`
	FirstName         string           `json:"firstName"`
	LastName          string           `json:"lastName"`
	Email             string           `json:"email"`
	ContactNumber     string           `json:"contactNumber,omitempty"`
	IsPasswordChanged bool             `json:"isPasswordChanged"`
	Type              string           `json:"type"`
	CourseID          string           `json:"courseId"`
	YearLevel         int              `json:"yearLevel"`
	EnrollmentStatus  string           `json:"enrollmentStatus"`
	Balance           decimal.Decimal  `json:"balance"`
	Transactions      []Transaction    `json:"transactions"`
	AcademicRecords   []AcademicRecord `json:"academicRecords"`
	Documents         []Document       `json:"documents"`
	CreatedAt         int64            `json:"createdAt"`
}

type Course struct {
	ID             string          `json:"id" validate:"required,notblank"`
	Name           string          `json:"name" validate:"required,notblank"`
	Type           string          `json:"type" validate:"required,oneof=college highschool"`
	Department     string          `json:"department"`
	Adviser        string          `json:"adviser,omitempty"`
	Subjects       []Subject       `json:"subjects" validate:"dive"`
	TuitionPerUnit decimal.Decimal `json:"tuitionPerUnit" validate:"nonneg_decimal"`
	MiscFee        decimal.Decimal `json:"miscFee" validate:"nonneg_decimal"`
}

type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Email      string `json:"email,omitempty"`
	CreatedAt  int64  `json:"createdAt"`
}

type SystemConfig struct {
	AcademicYear string   `json:"academicYear"`
	Semester     string   `json:"semester"`
	Departments  []string `json:"departments"`
}

type PasswordRequest struct {
	ID          string `json:"id"`
	UserID      string `json:"userId,omitempty"`
	UserType    string `json:"userType"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	RequestDate int64  `json:"requestDate"`
}

type NavItem struct {
	Page  string `json:"page"`
	Label string `json:"label"`
}

type Assessment struct {
	Units          int             `json:"units"`
	TuitionPerUnit decimal.Decimal `json:"tuitionPerUnit"`
	Tuition        decimal.Decimal `json:"tuition"`
	MiscFee        decimal.Decimal `json:"miscFee"`
	Total          decimal.Decimal `json:"total"`
}

type CourseFigure struct {
	CourseID string          `json:"courseId"`
	Students int             `json:"students"`
	Amount   decimal.Decimal `json:"amount"`
}
