package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodDonation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID     uuid.UUID `json:"donor_id"`
	FoodType    string    `json:"food_type"`
	Quantity    string    `json:"quantity"`
	Description string    `json:"description"`
	ExpiryDate  time.Time `json:"expiry_date"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url,omitempty"`
	PostedAt    time.Time `json:"posted_at"`
	IsAccepted  bool      `gorm:"default:false" json:"is_accepted"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`

	Donor *User `gorm:"foreignKey:DonorID;constraint:OnDelete:CASCADE"`
	Timestamp
}
