package domain

import (
	"errors"
)

const (
	BadgeBronze  = "BRONZE"
	BadgeSilver  = "SILVER"
	BadgeGold    = "GOLD"
	BadgeDiamond = "DIAMOND"

	TierSilver   = "SILVER"
	TierGold     = "GOLD"
	TierPlatinum = "PLATINUM"
)

var (
	MessageSuccessGetDashboard = "dashboard retrieved successfully"
	MessageFailedGetDashboard  = "failed to retrieve dashboard"

	ErrAnalysisNotFound = errors.New("analysis not found")
)

type (
	Analysis struct {
		FoodDonatedCount       int    `json:"food_donated_count"`
		NgosHelpedCount        int    `json:"ngos_helped_count"`
		CollaborationsCount    int    `json:"collaborations_count"`
		RequestsFulfilledCount int    `json:"requests_fulfilled_count"`
		TotalPeopleServed      int    `json:"total_people_served"`
		MonthlyPeopleServed    int    `json:"monthly_people_served"`
		MonthlyDonationsMade   int    `json:"monthly_donations_made"`
		BadgeLevel             string `json:"badge_level,omitempty"`
	}

	// Tier is the donor consistency rating, derived from donation cadence.
	// Display-only: it never affects permissions and is independent of the
	// monthly badge.
	Tier struct {
		Level  string `json:"level,omitempty"`
		Reason string `json:"reason"`
	}

	DonorDashboard struct {
		Donations               []*FoodDonation   `json:"donations"`
		TotalDonations          int64             `json:"total_donations"`
		PendingNgoRequests      []*FoodRequest    `json:"pending_ngo_requests"`
		Collaborations          []*Collaboration  `json:"collaborations"`
		PendingDonationRequests []*Collaboration  `json:"pending_donation_requests"`
		CompletedCollaborations []*Collaboration  `json:"completed_collaborations"`
		Analysis                *Analysis         `json:"analysis"`
		Tier                    *Tier             `json:"tier"`
		Ngos                    []*DirectoryEntry `json:"ngos"`
	}

	NgoDashboard struct {
		AvailableDonations   []*FoodDonation   `json:"available_donations"`
		Requests             []*FoodRequest    `json:"requests"`
		Collaborations       []*Collaboration  `json:"collaborations"`
		ActiveCollaborations []*Collaboration  `json:"active_collaborations"`
		Analysis             *Analysis         `json:"analysis"`
		Restaurants          []*DirectoryEntry `json:"restaurants"`
	}
)
