package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gracebites-backend/domain"
	"gracebites-backend/entities"
	"gracebites-backend/internal/utils/storage"
	"gracebites-backend/pkg/user"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
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
		`CREATE TABLE restaurant_profiles (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			restaurant_name TEXT,
			address TEXT,
			contact_number TEXT,
			profile_picture TEXT,
			cuisine_type TEXT,
			description TEXT,
			operating_hours TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE ngo_profiles (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			organization_name TEXT,
			address TEXT,
			contact_number TEXT,
			profile_picture TEXT,
			mission_statement TEXT,
			description TEXT,
			target_beneficiaries TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE event_planner_profiles (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			company_name TEXT,
			address TEXT,
			contact_number TEXT,
			profile_picture TEXT,
			specialization TEXT,
			description TEXT,
			years_of_experience INTEGER DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE user_profiles (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			address TEXT,
			contact_number TEXT,
			profile_picture TEXT,
			organization_name TEXT,
			description TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func newTestService(t *testing.T) (ProfileService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewProfileService(NewProfileRepository(db), user.NewUserRepository(db), storage.AwsS3{}), db
}

func TestResolvePrefersRoleProfile(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, db.Create(&entities.NGOProfile{
		ID:               uuid.New(),
		UserID:           userID,
		OrganizationName: "Rumah Singgah",
	}).Error)
	require.NoError(t, db.Create(&entities.UserProfile{
		ID:               uuid.New(),
		UserID:           userID,
		OrganizationName: "Old Name",
	}).Error)

	resolved, err := service.Resolve(ctx, userID.String(), domain.RoleNGO)
	require.NoError(t, err)
	require.Equal(t, domain.ProfileKindRole, resolved.Kind)
	require.Equal(t, "Rumah Singgah", resolved.Name)
}

func TestResolveFallsBackToLegacyProfile(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, db.Create(&entities.UserProfile{
		ID:               uuid.New(),
		UserID:           userID,
		OrganizationName: "Warisan Lama",
		Address:          "Jl. Kenangan 1",
	}).Error)

	resolved, err := service.Resolve(ctx, userID.String(), domain.RoleRestaurant)
	require.NoError(t, err)
	require.Equal(t, domain.ProfileKindLegacy, resolved.Kind)
	require.Equal(t, "Warisan Lama", resolved.Name)
	require.Equal(t, "Jl. Kenangan 1", resolved.Address)
}

func TestResolveReportsNone(t *testing.T) {
	service, _ := newTestService(t)

	resolved, err := service.Resolve(context.Background(), uuid.NewString(), domain.RoleEventPlanner)
	require.NoError(t, err)
	require.Equal(t, domain.ProfileKindNone, resolved.Kind)
}

func TestGetMyProfileLazilyCreatesRoleProfile(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	resolved, err := service.GetMyProfile(ctx, userID.String(), domain.RoleRestaurant)
	require.NoError(t, err)
	require.Equal(t, domain.ProfileKindRole, resolved.Kind)

	var count int64
	require.NoError(t, db.Model(&entities.RestaurantProfile{}).Where("user_id = ?", userID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	// Second call reuses the row.
	_, err = service.GetMyProfile(ctx, userID.String(), domain.RoleRestaurant)
	require.NoError(t, err)
	require.NoError(t, db.Model(&entities.RestaurantProfile{}).Where("user_id = ?", userID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUpdateMyProfileMapsFieldsByRole(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	resolved, err := service.UpdateMyProfile(ctx, domain.UpdateProfileRequest{
		Name:             "Yayasan Terang",
		Address:          "Jl. Melati 5",
		ContactNumber:    "0812000111",
		MissionStatement: "Feed the city",
	}, userID.String(), domain.RoleNGO)
	require.NoError(t, err)
	require.Equal(t, "Yayasan Terang", resolved.Name)
	require.Equal(t, "Feed the city", resolved.MissionStatement)

	// The update is visible through Resolve.
	again, err := service.Resolve(ctx, userID.String(), domain.RoleNGO)
	require.NoError(t, err)
	require.Equal(t, "Yayasan Terang", again.Name)
}

func TestDirectoryListsRoleUsersWithProfiles(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	ngo := &entities.User{ID: uuid.New(), Username: "berkah-food", Email: "berkah@example.com", Role: domain.RoleNGO}
	restaurant := &entities.User{ID: uuid.New(), Username: "sate-pak-min", Email: "sate@example.com", Role: domain.RoleRestaurant}
	require.NoError(t, db.Create(ngo).Error)
	require.NoError(t, db.Create(restaurant).Error)
	require.NoError(t, db.Create(&entities.NGOProfile{ID: uuid.New(), UserID: ngo.ID, OrganizationName: "Berkah Food"}).Error)

	entries, err := service.Directory(ctx, domain.RoleNGO)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "berkah-food", entries[0].User.Username)
	require.Equal(t, "Berkah Food", entries[0].Profile.Name)
}
