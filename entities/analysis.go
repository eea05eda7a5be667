package entities

import (
	"github.com/google/uuid"
)

// Analysis is the per-user cache of aggregate metrics. The monthly fields and
// total_people_served are overwritten by dashboard recomputes; the plain
// counters are incremented when a collaboration completes.
type Analysis struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID                 uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	FoodDonatedCount       int       `gorm:"default:0" json:"food_donated_count"`
	NgosHelpedCount        int       `gorm:"default:0" json:"ngos_helped_count"`
	CollaborationsCount    int       `gorm:"default:0" json:"collaborations_count"`
	RequestsFulfilledCount int       `gorm:"default:0" json:"requests_fulfilled_count"`
	TotalPeopleServed      int       `gorm:"default:0" json:"total_people_served"`
	MonthlyPeopleServed    int       `gorm:"default:0" json:"monthly_people_served"`
	MonthlyDonationsMade   int       `gorm:"default:0" json:"monthly_donations_made"`
	BadgeLevel             string    `json:"badge_level,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
