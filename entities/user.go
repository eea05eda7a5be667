package entities

import (
	"github.com/google/uuid"
	"time"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"uniqueIndex" json:"username"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"` // ADMIN, RESTAURANT, NGO, EVENTPLANNER

	Donations      []*FoodDonation `gorm:"foreignKey:DonorID;constraint:OnDelete:CASCADE"`
	Requests       []*FoodRequest  `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	LoginHistories []*LoginHistory `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type LoginHistory struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	LoginTimestamp time.Time `json:"login_timestamp"`
	IPAddress      string    `json:"ip_address"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
