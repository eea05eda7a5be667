package donation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gracebites-backend/domain"
	"gracebites-backend/entities"
	"gracebites-backend/internal/utils/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	schema := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password TEXT,
			role TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE food_donations (
			id TEXT PRIMARY KEY,
			donor_id TEXT NOT NULL,
			food_type TEXT,
			quantity TEXT,
			description TEXT,
			expiry_date DATETIME,
			location TEXT,
			image_url TEXT,
			posted_at DATETIME,
			is_accepted BOOLEAN DEFAULT FALSE,
			is_available BOOLEAN DEFAULT TRUE,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE collaborations (
			id TEXT PRIMARY KEY,
			donor_id TEXT NOT NULL,
			ngo_id TEXT NOT NULL,
			food_donation_id TEXT REFERENCES food_donations(id),
			food_request_id TEXT,
			status TEXT NOT NULL,
			collaboration_date DATETIME,
			notes TEXT,
			people_served INTEGER,
			completion_date DATETIME,
			created_at DATETIME,
			updated_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func newTestService(t *testing.T) (DonationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewDonationService(NewDonationRepository(db), storage.AwsS3{}), db
}

func TestCreateDonationRequiresDonorRole(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreateDonation(context.Background(), domain.FoodDonationRequest{
		FoodType:   "Bread",
		Quantity:   "30 loaves",
		ExpiryDate: "2026-09-01",
		Location:   "Bandung",
	}, uuid.NewString(), domain.RoleNGO)
	require.ErrorIs(t, err, domain.ErrRoleNotAllowed)
}

func TestCreateDonationAcceptsCommonDateFormats(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	donorID := uuid.NewString()

	for _, expiry := range []string{
		"2026-09-01",
		"2026-09-01T15:04",
		"2026-09-01T15:04:05Z",
	} {
		res, err := service.CreateDonation(ctx, domain.FoodDonationRequest{
			FoodType:   "Rice",
			Quantity:   "10 kg",
			ExpiryDate: expiry,
			Location:   "Jakarta",
		}, donorID, domain.RoleRestaurant)
		require.NoError(t, err, "expiry %q", expiry)
		require.True(t, res.IsAvailable)
		require.False(t, res.IsAccepted)
	}

	var count int64
	require.NoError(t, db.Model(&entities.FoodDonation{}).Where("donor_id = ?", donorID).Count(&count).Error)
	require.EqualValues(t, 3, count)
}

func TestCreateDonationRejectsBadExpiry(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreateDonation(context.Background(), domain.FoodDonationRequest{
		FoodType:   "Rice",
		Quantity:   "10 kg",
		ExpiryDate: "tomorrow",
		Location:   "Jakarta",
	}, uuid.NewString(), domain.RoleEventPlanner)
	require.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestUpdateDonationEnforcesOwnership(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	d := &entities.FoodDonation{
		ID:          uuid.New(),
		DonorID:     ownerID,
		FoodType:    "Soup",
		Quantity:    "20 liters",
		PostedAt:    time.Now(),
		IsAvailable: true,
	}
	require.NoError(t, db.Create(d).Error)

	_, err := service.UpdateDonation(ctx, d.ID.String(), domain.FoodDonationRequest{
		FoodType:   "Soup",
		Quantity:   "25 liters",
		ExpiryDate: "2026-09-01",
		Location:   "Surabaya",
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrUnauthorizedDonationAccess)

	updated, err := service.UpdateDonation(ctx, d.ID.String(), domain.FoodDonationRequest{
		FoodType:   "Soup",
		Quantity:   "25 liters",
		ExpiryDate: "2026-09-01",
		Location:   "Surabaya",
	}, ownerID.String())
	require.NoError(t, err)
	require.Equal(t, "25 liters", updated.Quantity)
}

func TestDeleteDonationEnforcesOwnership(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	d := &entities.FoodDonation{ID: uuid.New(), DonorID: ownerID, PostedAt: time.Now()}
	require.NoError(t, db.Create(d).Error)

	require.ErrorIs(t, service.DeleteDonation(ctx, d.ID.String(), uuid.NewString()), domain.ErrUnauthorizedDonationAccess)
	require.NoError(t, service.DeleteDonation(ctx, d.ID.String(), ownerID.String()))
	require.ErrorIs(t, service.DeleteDonation(ctx, d.ID.String(), ownerID.String()), domain.ErrDonationNotFound)
}

func TestDeleteDonationRemovesReferencingCollaborations(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	claimed := &entities.FoodDonation{ID: uuid.New(), DonorID: ownerID, PostedAt: time.Now()}
	other := &entities.FoodDonation{ID: uuid.New(), DonorID: ownerID, PostedAt: time.Now()}
	require.NoError(t, db.Create(claimed).Error)
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, db.Create(&entities.Collaboration{
		ID: uuid.New(), DonorID: ownerID, NgoID: uuid.New(),
		FoodDonationID: &claimed.ID,
		Status:         domain.CollaborationStatusActive,
	}).Error)
	require.NoError(t, db.Create(&entities.Collaboration{
		ID: uuid.New(), DonorID: ownerID, NgoID: uuid.New(),
		FoodDonationID: &other.ID,
		Status:         domain.CollaborationStatusPending,
	}).Error)

	require.NoError(t, service.DeleteDonation(ctx, claimed.ID.String(), ownerID.String()))

	var collabCount int64
	require.NoError(t, db.Model(&entities.Collaboration{}).
		Where("food_donation_id = ?", claimed.ID).
		Count(&collabCount).Error)
	require.Zero(t, collabCount)

	// The other donation and its collaboration are untouched.
	require.NoError(t, db.Model(&entities.Collaboration{}).
		Where("food_donation_id = ?", other.ID).
		Count(&collabCount).Error)
	require.EqualValues(t, 1, collabCount)
}
