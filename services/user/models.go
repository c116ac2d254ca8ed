package userservice

import (
	"errors"
	"fmt"

	"labtrack/models"
)

var (
	ErrForbidden        = errors.New("permission denied")
	ErrUserNotFound     = errors.New("user not found")
	ErrSelfChange       = errors.New("admins cannot change their own role or status")
	ErrFirebaseDisabled = errors.New("firebase sign-in is not configured")
)

const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeAccountInactive    = "account_inactive"
	CodeEmailTaken         = "email_taken"
	CodeUnknownEmail       = "unknown_email"
	CodeRoleNotAllowed     = "role_not_allowed"
)

// AuthError is returned by session operations. Code is stable for clients;
// Message is human readable.
type AuthError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func authError(code, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

type SignInReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpReq struct {
	Email      string      `json:"email" validate:"required,email"`
	Password   string      `json:"password" validate:"required,min=8"`
	FullName   string      `json:"full_name" validate:"required"`
	Role       models.Role `json:"role" validate:"required"`
	Department *string     `json:"department,omitempty"`
	Phone      *string     `json:"phone,omitempty"`
}

type ResetPasswordReq struct {
	Email string `json:"email" validate:"required,email"`
}

type FirebaseSignInReq struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ChangeRoleReq struct {
	Role models.Role `json:"role" validate:"required,oneof=admin technician staff guest"`
}

type Session struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type CurrentUser struct {
	*models.User
	Permissions []models.Permission `json:"permissions"`
}

// credentials is a directory row with its password hash.
type credentials struct {
	models.User
	PasswordHash string `db:"password_hash"`
}
