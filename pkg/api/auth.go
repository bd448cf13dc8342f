package api

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string   `json:"token"`
	Session *Session `json:"session"`
}

type GetSessionRequest struct{}

type GetSessionResponse struct {
	Session *Session `json:"session"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type ChangePasswordResponse struct {
	Session *Session `json:"session"`
}

type RequestPasswordResetRequest struct {
	Email    string `json:"email" validate:"required,email"`
	UserType string `json:"userType" validate:"omitempty,oneof=student staff"`
}

type RequestPasswordResetResponse struct {
	RequestID string `json:"requestId"`
}

type NavigateRequest struct {
	Page string `json:"page"`
}

type NavigateResponse struct {
	View  string    `json:"view"`
	Items []NavItem `json:"items"`
}
