package models

import "github.com/shopspring/decimal"

// StudentType distinguishes college programs from high school strands.
type StudentType string

const (
	TypeCollege    StudentType = "college"
	TypeHighSchool StudentType = "highschool"
)

// Subject is one curriculum entry.
type Subject struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Units int    `json:"units"`

	// YearLevel and Semester tag where the subject sits in the curriculum.
	// Zero means untagged (high school strands do not use them).
	YearLevel int `json:"yearLevel,omitempty"`
	Semester  int `json:"semester,omitempty"`
}

// Course is a program offered by a department.
type Course struct {
	// ID is a short code such as "BSCS" or "G11".
	ID string `json:"id"`

	Name string      `json:"name"`
	Type StudentType `json:"type"`

	// Department links the course to teachers of the same department.
	Department string `json:"department"`

	// Adviser is the display name of the assigned adviser.
	Adviser string `json:"adviser,omitempty"`

	// Subjects is the curriculum, in display order.
	Subjects []Subject `json:"subjects"`

	// TuitionPerUnit and MiscFee form the fee schedule used for assessments.
	TuitionPerUnit decimal.Decimal `json:"tuitionPerUnit"`
	MiscFee        decimal.Decimal `json:"miscFee"`
}

// FindSubject returns the curriculum entry with the given code.
func (c *Course) FindSubject(code string) (Subject, bool) {
	for _, s := range c.Subjects {
		if s.Code == code {
			return s, true
		}
	}
	return Subject{}, false
}
