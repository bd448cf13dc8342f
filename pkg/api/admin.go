package api

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []*User `json:"users"`
}

type CreateUserRequest struct {
	Username   string `json:"username" validate:"required,notblank,max=64"`
	Name       string `json:"name" validate:"required,notblank"`
	Role       string `json:"role" validate:"required,staff_role"`
	Department string `json:"department"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type CreateUserResponse struct {
	User *User `json:"user"`
}

// UpdateUserRequest changes a staff account. Empty fields are left unchanged.
type UpdateUserRequest struct {
	UserID     string `json:"userId" validate:"required"`
	Name       string `json:"name"`
	Role       string `json:"role" validate:"omitempty,staff_role"`
	Department string `json:"department"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type UpdateUserResponse struct {
	User *User `json:"user"`
}

type ListCoursesRequest struct{}

type ListCoursesResponse struct {
	Courses []*Course `json:"courses"`
}

type SaveCourseRequest struct {
	Course *Course `json:"course" validate:"required"`
}

type SaveCourseResponse struct {
	Course *Course `json:"course"`
}

type GetSystemConfigRequest struct{}

type GetSystemConfigResponse struct {
	Config *SystemConfig `json:"config"`
}

type UpdateSystemConfigRequest struct {
	AcademicYear string   `json:"academicYear" validate:"required,notblank"`
	Semester     string   `json:"semester" validate:"required,notblank"`
	Departments  []string `json:"departments" validate:"dive,notblank"`
}

type UpdateSystemConfigResponse struct {
	Config *SystemConfig `json:"config"`
}

type ListPasswordRequestsRequest struct{}

type ListPasswordRequestsResponse struct {
	Requests []*PasswordRequest `json:"requests"`
}

type ResolvePasswordRequestRequest struct {
	RequestID string `json:"requestId" validate:"required"`
}

type ResolvePasswordRequestResponse struct {
	Request *PasswordRequest `json:"request"`

	// NewPassword is only ever returned here.
	NewPassword string `json:"newPassword"`
}
