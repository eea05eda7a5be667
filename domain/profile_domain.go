package domain

import (
	"errors"
	"mime/multipart"
)

// ProfileKind tags which profile record a lookup resolved to.
const (
	ProfileKindRole   = "role"
	ProfileKindLegacy = "legacy"
	ProfileKindNone   = "none"
)

var (
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessGetDirectory  = "directory retrieved successfully"

	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedGetDirectory  = "failed to retrieve directory"

	ErrProfileNotFound = errors.New("profile not found")
)

type (
	UpdateProfileRequest struct {
		// Name maps to restaurant_name, organization_name or company_name
		// depending on the caller's role.
		Name                string                `json:"name" form:"name" validate:"required,max=255"`
		Address             string                `json:"address" form:"address" validate:"required,max=255"`
		ContactNumber       string                `json:"contact_number" form:"contact_number" validate:"required,max=20"`
		Description         string                `json:"description" form:"description" validate:"omitempty"`
		CuisineType         string                `json:"cuisine_type" form:"cuisine_type" validate:"omitempty,max=100"`
		OperatingHours      string                `json:"operating_hours" form:"operating_hours" validate:"omitempty,max=100"`
		MissionStatement    string                `json:"mission_statement" form:"mission_statement" validate:"omitempty"`
		TargetBeneficiaries string                `json:"target_beneficiaries" form:"target_beneficiaries" validate:"omitempty,max=255"`
		Specialization      string                `json:"specialization" form:"specialization" validate:"omitempty,max=255"`
		YearsOfExperience   int                   `json:"years_of_experience" form:"years_of_experience" validate:"omitempty,min=0"`
		ProfilePicture      *multipart.FileHeader `json:"profile_picture" form:"profile_picture"`
	}

	// ResolvedProfile is the single tagged result of profile resolution:
	// role-specific profile first, the legacy unified profile as fallback,
	// or none. Kind is one of the ProfileKind constants.
	ResolvedProfile struct {
		Kind                string `json:"kind"`
		Name                string `json:"name,omitempty"`
		Address             string `json:"address,omitempty"`
		ContactNumber       string `json:"contact_number,omitempty"`
		ProfilePicture      string `json:"profile_picture,omitempty"`
		Description         string `json:"description,omitempty"`
		CuisineType         string `json:"cuisine_type,omitempty"`
		OperatingHours      string `json:"operating_hours,omitempty"`
		MissionStatement    string `json:"mission_statement,omitempty"`
		TargetBeneficiaries string `json:"target_beneficiaries,omitempty"`
		Specialization      string `json:"specialization,omitempty"`
		YearsOfExperience   int    `json:"years_of_experience,omitempty"`
	}

	DirectoryEntry struct {
		User    *UserResponse    `json:"user"`
		Profile *ResolvedProfile `json:"profile"`
	}

	NgoDetails struct {
		Ngo            *UserResponse    `json:"ngo"`
		Profile        *ResolvedProfile `json:"profile"`
		Requests       []*FoodRequest   `json:"requests"`
		Collaborations []*Collaboration `json:"collaborations"`
	}

	RestaurantDetails struct {
		Restaurant     *UserResponse    `json:"restaurant"`
		Profile        *ResolvedProfile `json:"profile"`
		Donations      []*FoodDonation  `json:"donations"`
		Collaborations []*Collaboration `json:"collaborations"`
	}
)
