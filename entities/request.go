package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodRequest struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RequesterID      uuid.UUID `json:"requester_id"`
	FoodType         string    `json:"food_type"`
	QuantityRequired string    `json:"quantity_required"`
	Location         string    `json:"location"`
	RequiredTiming   time.Time `json:"required_timing"`
	Description      string    `json:"description"`
	Status           string    `json:"status"` // PENDING, ACCEPTED, FULFILLED, CANCELLED
	IsFulfilled      bool      `gorm:"default:false" json:"is_fulfilled"`
	RequestedAt      time.Time `json:"requested_at"`

	Requester *User `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	Timestamp
}
