package dto

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type SwitchRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin doctor nurse reception patient"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
	Role         string   `json:"role"`
	Roles        []string `json:"roles,omitempty"`
	// MustChangePassword tells the caller to redirect to the
	// change-password flow before anything else.
	MustChangePassword bool `json:"must_change_password"`
}
