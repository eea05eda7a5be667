package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateDonation = "food donation added successfully"
	MessageSuccessGetDonations   = "food donations retrieved successfully"
	MessageSuccessUpdateDonation = "food donation updated successfully"
	MessageSuccessDeleteDonation = "food donation removed successfully"

	MessageFailedCreateDonation = "failed to add food donation"
	MessageFailedGetDonations   = "failed to retrieve food donations"
	MessageFailedUpdateDonation = "failed to update food donation"
	MessageFailedDeleteDonation = "failed to remove food donation"

	ErrDonationNotFound           = errors.New("food donation not found")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to food donation")
	ErrInvalidExpiryDate          = errors.New("invalid expiry date")
)

type (
	FoodDonationRequest struct {
		FoodType    string                `json:"food_type" form:"food_type" validate:"required,max=100"`
		Quantity    string                `json:"quantity" form:"quantity" validate:"required,max=50"`
		Description string                `json:"description" form:"description" validate:"required"`
		ExpiryDate  string                `json:"expiry_date" form:"expiry_date" validate:"required"`
		Location    string                `json:"location" form:"location" validate:"required,max=255"`
		Image       *multipart.FileHeader `json:"image" form:"image"`
	}

	FoodDonation struct {
		ID          string    `json:"id"`
		DonorID     string    `json:"donor_id"`
		DonorName   string    `json:"donor_name,omitempty"`
		FoodType    string    `json:"food_type"`
		Quantity    string    `json:"quantity"`
		Description string    `json:"description"`
		ExpiryDate  time.Time `json:"expiry_date"`
		Location    string    `json:"location"`
		ImageURL    string    `json:"image_url,omitempty"`
		PostedAt    time.Time `json:"posted_at"`
		IsAccepted  bool      `json:"is_accepted"`
		IsAvailable bool      `json:"is_available"`
	}
)
