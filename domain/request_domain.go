package domain

import (
	"errors"
	"time"
)

const (
	RequestStatusPending   = "PENDING"
	RequestStatusAccepted  = "ACCEPTED"
	RequestStatusFulfilled = "FULFILLED"
	RequestStatusCancelled = "CANCELLED"
)

var (
	MessageSuccessCreateRequest = "food request added successfully"
	MessageSuccessGetRequests   = "food requests retrieved successfully"
	MessageSuccessUpdateRequest = "food request updated successfully"
	MessageSuccessDeleteRequest = "food request deleted successfully"

	MessageFailedCreateRequest = "failed to add food request"
	MessageFailedGetRequests   = "failed to retrieve food requests"
	MessageFailedUpdateRequest = "failed to update food request"
	MessageFailedDeleteRequest = "failed to delete food request"

	ErrRequestNotFound           = errors.New("food request not found")
	ErrUnauthorizedRequestAccess = errors.New("unauthorized access to food request")
	ErrInvalidRequiredTiming     = errors.New("invalid required timing")
)

type (
	FoodRequestRequest struct {
		FoodType         string `json:"food_type" validate:"required,max=100"`
		QuantityRequired string `json:"quantity_required" validate:"required,max=50"`
		Location         string `json:"location" validate:"required,max=255"`
		RequiredTiming   string `json:"required_timing" validate:"required"`
		Description      string `json:"description" validate:"omitempty"`
	}

	FoodRequest struct {
		ID               string    `json:"id"`
		RequesterID      string    `json:"requester_id"`
		RequesterName    string    `json:"requester_name,omitempty"`
		FoodType         string    `json:"food_type"`
		QuantityRequired string    `json:"quantity_required"`
		Location         string    `json:"location"`
		RequiredTiming   time.Time `json:"required_timing"`
		Description      string    `json:"description"`
		Status           string    `json:"status"`
		RequestedAt      time.Time `json:"requested_at"`
	}
)
