package dto

import (
	"encoding/json"
	"time"

	"inventory-api/auth"
)

type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type EmailUniqueRequest struct {
	Email string `json:"email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdatePasswordRequest accepts the reset code as a JSON number or string.
type UpdatePasswordRequest struct {
	Email           string      `json:"email" validate:"required"`
	Token           json.Number `json:"token" validate:"required"`
	Password        string      `json:"password" validate:"required"`
	PasswordConfirm string      `json:"password_confirm" validate:"required,eqfield=Password"`
}

type AuthResponse struct {
	AppEnv          string          `json:"app_env,omitempty"`
	Token           auth.TokenGrant `json:"token"`
	EmailVerifiedAt *time.Time      `json:"email_verified_at"`
	FName           string          `json:"fname"`
}
