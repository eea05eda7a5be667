package entities

import (
	"github.com/google/uuid"
)

type RestaurantProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	RestaurantName string    `json:"restaurant_name"`
	Address        string    `json:"address"`
	ContactNumber  string    `json:"contact_number"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CuisineType    string    `json:"cuisine_type,omitempty"`
	Description    string    `json:"description,omitempty"`
	OperatingHours string    `json:"operating_hours,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type NGOProfile struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID              uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	OrganizationName    string    `json:"organization_name"`
	Address             string    `json:"address"`
	ContactNumber       string    `json:"contact_number"`
	ProfilePicture      string    `json:"profile_picture,omitempty"`
	MissionStatement    string    `json:"mission_statement,omitempty"`
	Description         string    `json:"description,omitempty"`
	TargetBeneficiaries string    `json:"target_beneficiaries,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type EventPlannerProfile struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	CompanyName       string    `json:"company_name"`
	Address           string    `json:"address"`
	ContactNumber     string    `json:"contact_number"`
	ProfilePicture    string    `json:"profile_picture,omitempty"`
	Specialization    string    `json:"specialization,omitempty"`
	Description       string    `json:"description,omitempty"`
	YearsOfExperience int       `gorm:"default:0" json:"years_of_experience"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// UserProfile is the legacy unified profile kept for accounts created before
// the per-role profiles existed. Read-only fallback, never written anymore.
type UserProfile struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Address          string    `json:"address"`
	ContactNumber    string    `json:"contact_number"`
	ProfilePicture   string    `json:"profile_picture,omitempty"`
	OrganizationName string    `json:"organization_name,omitempty"`
	Description      string    `json:"description,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
