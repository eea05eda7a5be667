package entities

import (
	"github.com/google/uuid"
	"time"
)

// Collaboration links a donor and an NGO party around exactly one of a
// FoodDonation (requester-initiated) or a FoodRequest (donor-initiated).
type Collaboration struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID           uuid.UUID  `json:"donor_id"`
	NgoID             uuid.UUID  `json:"ngo_id"`
	FoodDonationID    *uuid.UUID `json:"food_donation_id,omitempty"`
	FoodRequestID     *uuid.UUID `json:"food_request_id,omitempty"`
	Status            string     `json:"status"` // PENDING, ACTIVE, COMPLETED, CANCELLED
	CollaborationDate time.Time  `json:"collaboration_date"`
	Notes             string     `json:"notes"`
	PeopleServed      *int       `json:"people_served,omitempty"`
	CompletionDate    *time.Time `json:"completion_date,omitempty"`

	Donor        *User         `gorm:"foreignKey:DonorID;constraint:OnDelete:CASCADE"`
	Ngo          *User         `gorm:"foreignKey:NgoID;constraint:OnDelete:CASCADE"`
	FoodDonation *FoodDonation `gorm:"foreignKey:FoodDonationID;constraint:OnDelete:CASCADE"`
	FoodRequest  *FoodRequest  `gorm:"foreignKey:FoodRequestID;constraint:OnDelete:CASCADE"`
	Timestamp
}
