package domain

import (
	"errors"
	"time"
)

const (
	CollaborationStatusPending   = "PENDING"
	CollaborationStatusActive    = "ACTIVE"
	CollaborationStatusCompleted = "COMPLETED"
	CollaborationStatusCancelled = "CANCELLED"
)

var (
	MessageSuccessRequestFood           = "request sent successfully"
	MessageSuccessFulfillRequest        = "request fulfilled successfully"
	MessageSuccessAcceptCollaboration   = "donation request accepted"
	MessageSuccessRejectCollaboration   = "donation request rejected"
	MessageSuccessCompleteCollaboration = "donation completed"
	MessageSuccessGetCollaborations     = "collaborations retrieved successfully"

	MessageFailedRequestFood           = "failed to send request"
	MessageFailedFulfillRequest        = "failed to fulfill request"
	MessageFailedAcceptCollaboration   = "failed to accept donation request"
	MessageFailedRejectCollaboration   = "failed to reject donation request"
	MessageFailedCompleteCollaboration = "failed to complete donation"
	MessageFailedGetCollaborations     = "failed to retrieve collaborations"

	ErrCollaborationNotFound           = errors.New("collaboration not found")
	ErrUnauthorizedCollaborationAccess = errors.New("unauthorized access to collaboration")
	ErrInvalidCollaborationState       = errors.New("collaboration is not in a valid state for this action")
	ErrCollaborationWithoutDonation    = errors.New("collaboration has no linked donation")
	ErrDonationNotAvailable            = errors.New("food donation is no longer available")
	ErrRequestNotPending               = errors.New("food request is not pending")
	ErrInvalidPeopleServed             = errors.New("people served must be a positive number")
)

type (
	RequestFoodRequest struct {
		DonationID string `json:"donation_id" validate:"required,uuid"`
		Notes      string `json:"notes" validate:"omitempty"`
	}

	FulfillRequestRequest struct {
		RequestID string `json:"request_id" validate:"required,uuid"`
		Notes     string `json:"notes" validate:"omitempty"`
	}

	CompleteCollaborationRequest struct {
		PeopleServed int `json:"people_served" validate:"required,min=1"`
	}

	Collaboration struct {
		ID                string        `json:"id"`
		DonorID           string        `json:"donor_id"`
		DonorName         string        `json:"donor_name,omitempty"`
		NgoID             string        `json:"ngo_id"`
		NgoName           string        `json:"ngo_name,omitempty"`
		FoodDonation      *FoodDonation `json:"food_donation,omitempty"`
		FoodRequest       *FoodRequest  `json:"food_request,omitempty"`
		Status            string        `json:"status"`
		CollaborationDate time.Time     `json:"collaboration_date"`
		Notes             string        `json:"notes,omitempty"`
		PeopleServed      *int          `json:"people_served,omitempty"`
		CompletionDate    *time.Time    `json:"completion_date,omitempty"`
	}
)
