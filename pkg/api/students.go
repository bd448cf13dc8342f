package api

type ListStudentsRequest struct {
	Query string `json:"query"`
}

type ListStudentsResponse struct {
	Students []*Student `json:"students"`
}

type GetStudentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

type GetStudentResponse struct {
	Student *Student `json:"student"`
}

type CreateStudentRequest struct {
	FirstName     string `json:"firstName" validate:"required,notblank"`
	LastName      string `json:"lastName" validate:"required,notblank"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contactNumber"`
	CourseID      string `json:"courseId" validate:"required"`
}

type CreateStudentResponse struct {
	Student *Student `json:"student"`

	// InitialPassword is only ever returned here.
	InitialPassword string `json:"initialPassword"`
}

// UpdateStudentRequest changes profile and enrollment fields. Empty fields
// are left unchanged.
type UpdateStudentRequest struct {
	StudentID        string `json:"studentId" validate:"required"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email" validate:"omitempty,email"`
	ContactNumber    string `json:"contactNumber"`
	EnrollmentStatus string `json:"enrollmentStatus" validate:"omitempty,enrollment_status"`
	YearLevel        int    `json:"yearLevel" validate:"min=0,max=12"`
}

type UpdateStudentResponse struct {
	Student *Student `json:"student"`
}

type AddSubjectRequest struct {
	StudentID   string `json:"studentId" validate:"required"`
	SubjectCode string `json:"subjectCode" validate:"required"`
}

type AddSubjectResponse struct {
	Student *Student `json:"student"`
}

type PostGradeRequest struct {
	StudentID   string `json:"studentId" validate:"required"`
	SubjectCode string `json:"subjectCode" validate:"required"`
	Grade       string `json:"grade" validate:"max=8"`
	Status      string `json:"status" validate:"omitempty,oneof=enrolled completed dropped failed"`
}

type PostGradeResponse struct {
	Student *Student `json:"student"`
}

type UploadDocumentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Name      string `json:"name" validate:"required,notblank"`
	Type      string `json:"type"`
	URL       string `json:"url" validate:"required,datauri"`
}

type UploadDocumentResponse struct {
	Document *Document `json:"document"`
}

type ReviewDocumentRequest struct {
	StudentID  string `json:"studentId" validate:"required"`
	DocumentID string `json:"documentId" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
}

type ReviewDocumentResponse struct {
	Document *Document `json:"document"`
}
