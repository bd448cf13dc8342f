package service

import (
	"github.com/cosca/portal/internal/enrollment"
	"github.com/cosca/portal/internal/ledger"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/reports"
	"github.com/cosca/portal/internal/views"
	"github.com/cosca/portal/pkg/api"
)

// Helper functions to convert between internal models and api messages.

func toAPITransaction(t models.Transaction) api.Transaction {
	return api.Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		RecordedBy:  t.RecordedBy,
		Status:      string(t.Status),
	}
}

func toAPISubject(s models.Subject) api.Subject {
	return api.Subject{Code: s.Code, Name: s.Name, Units: s.Units, YearLevel: s.YearLevel, Semester: s.Semester}
}

func fromAPISubject(s api.Subject) models.Subject {
	return models.Subject{Code: s.Code, Name: s.Name, Units: s.Units, YearLevel: s.YearLevel, Semester: s.Semester}
}

func toAPIDocument(d models.EnrollmentDocument) api.Document {
	return api.Document{
		ID:         d.ID,
		Name:       d.Name,
		Type:       d.Type,
		UploadDate: d.UploadDate,
		URL:        d.URL,
		Status:     string(d.Status),
	}
}

// toAPIStudent never carries the password hash.
func toAPIStudent(s *models.Student) *api.Student {
	out := &api.Student{
		ID:                s.ID,
		FirstName:         s.FirstName,
		LastName:          s.LastName,
		Email:             s.Email,
		ContactNumber:     s.ContactNumber,
		IsPasswordChanged: s.IsPasswordChanged,
		Type:              string(s.Type),
		CourseID:          s.CourseID,
		YearLevel:         s.YearLevel,
		EnrollmentStatus:  string(s.EnrollmentStatus),
		Balance:           s.Balance,
		Transactions:      make([]api.Transaction, 0, len(s.Transactions)),
		AcademicRecords:   make([]api.AcademicRecord, 0, len(s.AcademicRecords)),
		Documents:         make([]api.Document, 0, len(s.Documents)),
		CreatedAt:         s.CreatedAt,
	}
	for _, t := range s.Transactions {
		out.Transactions = append(out.Transactions, toAPITransaction(t))
	}
	for _, r := range s.AcademicRecords {
		out.AcademicRecords = append(out.AcademicRecords, api.AcademicRecord{
			Subject:    toAPISubject(r.Subject),
			Grade:      r.Grade,
			Status:     string(r.Status),
			Term:       r.Term,
			Instructor: r.Instructor,
		})
	}
	for _, d := range s.Documents {
		out.Documents = append(out.Documents, toAPIDocument(d))
	}
	return out
}

func toAPIStudents(students []*models.Student) []*api.Student {
	out := make([]*api.Student, 0, len(students))
	for _, s := range students {
		out = append(out, toAPIStudent(s))
	}
	return out
}

func toAPICourse(c *models.Course) *api.Course {
	out := &api.Course{
		ID:             c.ID,
		Name:           c.Name,
		Type:           string(c.Type),
		Department:     c.Department,
		Adviser:        c.Adviser,
		Subjects:       make([]api.Subject, 0, len(c.Subjects)),
		TuitionPerUnit: c.TuitionPerUnit,
		MiscFee:        c.MiscFee,
	}
	for _, s := range c.Subjects {
		out.Subjects = append(out.Subjects, toAPISubject(s))
	}
	return out
}

func fromAPICourse(c *api.Course) *models.Course {
	out := &models.Course{
		ID:             c.ID,
		Name:           c.Name,
		Type:           models.StudentType(c.Type),
		Department:     c.Department,
		Adviser:        c.Adviser,
		Subjects:       make([]models.Subject, 0, len(c.Subjects)),
		TuitionPerUnit: c.TuitionPerUnit,
		MiscFee:        c.MiscFee,
	}
	for _, s := range c.Subjects {
		out.Subjects = append(out.Subjects, fromAPISubject(s))
	}
	return out
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:         u.ID,
		Username:   u.Username,
		Role:       string(u.Role),
		Name:       u.Name,
		Department: u.Department,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
	}
}

func toAPIConfig(c *models.SystemConfig) *api.SystemConfig {
	departments := c.Departments
	if departments == nil {
		departments = []string{}
	}
	return &api.SystemConfig{AcademicYear: c.AcademicYear, Semester: c.Semester, Departments: departments}
}

func toAPIPasswordRequest(r *models.PasswordRequest) *api.PasswordRequest {
	return &api.PasswordRequest{
		ID:          r.ID,
		UserID:      r.UserID,
		UserType:    r.UserType,
		Email:       r.Email,
		Status:      string(r.Status),
		RequestDate: r.RequestDate,
	}
}

func toAPIAssessment(b enrollment.Breakdown) *api.Assessment {
	return &api.Assessment{
		Units:          b.Units,
		TuitionPerUnit: b.TuitionPerUnit,
		Tuition:        b.Tuition,
		MiscFee:        b.MiscFee,
		Total:          b.Total,
	}
}

func toAPILedger(entries []ledger.Entry) []api.LedgerEntry {
	out := make([]api.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.LedgerEntry{Transaction: toAPITransaction(e.Transaction), BalanceAfter: e.BalanceAfter})
	}
	return out
}

func toAPILogEntries(entries []reports.LogEntry) []api.LogEntry {
	out := make([]api.LogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.LogEntry{
			Transaction: toAPITransaction(e.Transaction),
			StudentID:   e.StudentID,
			StudentName: e.StudentName,
		})
	}
	return out
}

func toAPIFigures(figures []reports.CourseFigure) []api.CourseFigure {
	out := make([]api.CourseFigure, 0, len(figures))
	for _, f := range figures {
		out = append(out, api.CourseFigure{CourseID: f.CourseID, Students: f.Students, Amount: f.Amount})
	}
	return out
}

func toAPINavItems(items []views.NavItem) []api.NavItem {
	out := make([]api.NavItem, 0, len(items))
	for _, it := range items {
		out = append(out, api.NavItem{Page: it.Page, Label: it.Label})
	}
	return out
}
