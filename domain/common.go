package domain

import (
	"errors"
	"os"
)

const (
	RoleAdmin        = "ADMIN"
	RoleRestaurant   = "RESTAURANT"
	RoleNGO          = "NGO"
	RoleEventPlanner = "EVENTPLANNER"
)

// IsDonorRole reports whether the role posts donations (restaurants and event
// planners). NGOs and event planners may post requests; admins do neither.
func IsDonorRole(role string) bool {
	return role == RoleRestaurant || role == RoleEventPlanner
}

func IsRequesterRole(role string) bool {
	return role == RoleNGO || role == RoleEventPlanner
}

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedBodyRequest    = "failed to parse body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrRoleNotAllowed = errors.New("role not allowed for this action")
)
