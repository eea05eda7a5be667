package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login success"
	MessageSuccessGetMe         = "user retrieved successfully"
	MessageSuccessUpdateUser    = "user updated successfully"
	MessageSuccessDeleteAccount = "account and all associated data deleted"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetMe         = "failed to retrieve user"
	MessageFailedUpdateUser    = "failed to update user"
	MessageFailedDeleteAccount = "failed to delete account"

	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrInvalidRole           = errors.New("invalid role")
	ErrDeleteAccountFailed   = errors.New("account deletion failed")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=150"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"omitempty,oneof=RESTAURANT NGO EVENTPLANNER"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Username string `json:"username" validate:"omitempty,min=3,max=150"`
		Email    string `json:"email" validate:"omitempty,email"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}

	LoginHistoryEntry struct {
		LoginTimestamp time.Time `json:"login_timestamp"`
		IPAddress      string    `json:"ip_address"`
	}
)
