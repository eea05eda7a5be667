package request

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gracebites-backend/domain"
	"gracebites-backend/entities"
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
		`CREATE TABLE food_requests (
			id TEXT PRIMARY KEY,
			requester_id TEXT NOT NULL,
			food_type TEXT,
			quantity_required TEXT,
			location TEXT,
			required_timing DATETIME,
			description TEXT,
			status TEXT NOT NULL,
			is_fulfilled BOOLEAN DEFAULT FALSE,
			requested_at DATETIME,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE collaborations (
			id TEXT PRIMARY KEY,
			donor_id TEXT NOT NULL,
			ngo_id TEXT NOT NULL,
			food_donation_id TEXT,
			food_request_id TEXT REFERENCES food_requests(id),
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

func TestCreateRequestStartsPending(t *testing.T) {
	db := newTestDB(t)
	service := NewRequestService(NewRequestRepository(db))
	ctx := context.Background()

	res, err := service.CreateRequest(ctx, domain.FoodRequestRequest{
		FoodType:         "Vegetables",
		QuantityRequired: "40 kg",
		Location:         "Yogyakarta",
		RequiredTiming:   "2026-09-10",
	}, uuid.NewString(), domain.RoleNGO)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusPending, res.Status)
}

func TestCreateRequestRejectsDonorOnlyRole(t *testing.T) {
	db := newTestDB(t)
	service := NewRequestService(NewRequestRepository(db))

	_, err := service.CreateRequest(context.Background(), domain.FoodRequestRequest{
		FoodType:         "Vegetables",
		QuantityRequired: "40 kg",
		Location:         "Yogyakarta",
		RequiredTiming:   "2026-09-10",
	}, uuid.NewString(), domain.RoleRestaurant)
	require.ErrorIs(t, err, domain.ErrRoleNotAllowed)
}

func TestGetPendingRequestsFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	service := NewRequestService(NewRequestRepository(db))
	ctx := context.Background()

	for _, status := range []string{
		domain.RequestStatusPending,
		domain.RequestStatusAccepted,
		domain.RequestStatusCancelled,
	} {
		require.NoError(t, db.Create(&entities.FoodRequest{
			ID:          uuid.New(),
			RequesterID: uuid.New(),
			Status:      status,
		}).Error)
	}

	pending, err := service.GetPendingRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, domain.RequestStatusPending, pending[0].Status)
}

func TestUpdateRequestEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	service := NewRequestService(NewRequestRepository(db))
	ctx := context.Background()
	ownerID := uuid.New()

	r := &entities.FoodRequest{
		ID:          uuid.New(),
		RequesterID: ownerID,
		FoodType:    "Fruit",
		Status:      domain.RequestStatusPending,
	}
	require.NoError(t, db.Create(r).Error)

	_, err := service.UpdateRequest(ctx, r.ID.String(), domain.FoodRequestRequest{
		FoodType:         "Fruit",
		QuantityRequired: "15 kg",
		Location:         "Medan",
		RequiredTiming:   "2026-09-12",
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrUnauthorizedRequestAccess)

	updated, err := service.UpdateRequest(ctx, r.ID.String(), domain.FoodRequestRequest{
		FoodType:         "Fruit",
		QuantityRequired: "15 kg",
		Location:         "Medan",
		RequiredTiming:   "2026-09-12",
	}, ownerID.String())
	require.NoError(t, err)
	require.Equal(t, "15 kg", updated.QuantityRequired)
}

func TestDeleteRequestRemovesReferencingCollaborations(t *testing.T) {
	db := newTestDB(t)
	service := NewRequestService(NewRequestRepository(db))
	ctx := context.Background()
	ownerID := uuid.New()

	fulfilled := &entities.FoodRequest{ID: uuid.New(), RequesterID: ownerID, Status: domain.RequestStatusAccepted}
	other := &entities.FoodRequest{ID: uuid.New(), RequesterID: ownerID, Status: domain.RequestStatusPending}
	require.NoError(t, db.Create(fulfilled).Error)
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, db.Create(&entities.Collaboration{
		ID: uuid.New(), DonorID: uuid.New(), NgoID: ownerID,
		FoodRequestID: &fulfilled.ID,
		Status:        domain.CollaborationStatusActive,
	}).Error)

	require.NoError(t, service.DeleteRequest(ctx, fulfilled.ID.String(), ownerID.String()))

	var collabCount int64
	require.NoError(t, db.Model(&entities.Collaboration{}).
		Where("food_request_id = ?", fulfilled.ID).
		Count(&collabCount).Error)
	require.Zero(t, collabCount)

	var requestCount int64
	require.NoError(t, db.Model(&entities.FoodRequest{}).
		Where("requester_id = ?", ownerID).
		Count(&requestCount).Error)
	require.EqualValues(t, 1, requestCount)
}
