package user

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
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Foreign keys on, so the cascade order is checked the way postgres
	// checks it, not just the row counts.
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
		`CREATE TABLE login_histories (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			login_timestamp DATETIME,
			ip_address TEXT,
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
			donor_id TEXT NOT NULL REFERENCES users(id),
			ngo_id TEXT NOT NULL REFERENCES users(id),
			food_donation_id TEXT REFERENCES food_donations(id),
			food_request_id TEXT REFERENCES food_requests(id),
			status TEXT NOT NULL,
			collaboration_date DATETIME,
			notes TEXT,
			people_served INTEGER,
			completion_date DATETIME,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE analyses (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			food_donated_count INTEGER DEFAULT 0,
			ngos_helped_count INTEGER DEFAULT 0,
			collaborations_count INTEGER DEFAULT 0,
			requests_fulfilled_count INTEGER DEFAULT 0,
			total_people_served INTEGER DEFAULT 0,
			monthly_people_served INTEGER DEFAULT 0,
			monthly_donations_made INTEGER DEFAULT 0,
			badge_level TEXT,
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

func TestDeleteUserCascadeRemovesEverything(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	donor := &entities.User{ID: uuid.New(), Username: "dapur-berbagi", Email: "dapur@example.com", Role: domain.RoleRestaurant}
	ngo := &entities.User{ID: uuid.New(), Username: "rumah-harapan", Email: "harapan@example.com", Role: domain.RoleNGO}
	require.NoError(t, repo.CreateUser(ctx, donor))
	require.NoError(t, repo.CreateUser(ctx, ngo))

	var donationIDs []uuid.UUID
	for i := 0; i < 3; i++ {
		d := &entities.FoodDonation{ID: uuid.New(), DonorID: donor.ID, PostedAt: time.Now()}
		require.NoError(t, db.Create(d).Error)
		donationIDs = append(donationIDs, d.ID)
	}
	var requestIDs []uuid.UUID
	for i := 0; i < 2; i++ {
		r := &entities.FoodRequest{ID: uuid.New(), RequesterID: donor.ID, Status: domain.RequestStatusPending}
		require.NoError(t, db.Create(r).Error)
		requestIDs = append(requestIDs, r.ID)
	}

	// One collaboration claims a donation, another references a request, so
	// the cascade has to clear them before the rows they point at.
	require.NoError(t, db.Create(&entities.Collaboration{
		ID: uuid.New(), DonorID: donor.ID, NgoID: ngo.ID,
		FoodDonationID: &donationIDs[0],
		Status:         domain.CollaborationStatusActive,
	}).Error)
	require.NoError(t, db.Create(&entities.Collaboration{
		ID: uuid.New(), DonorID: ngo.ID, NgoID: donor.ID,
		FoodRequestID: &requestIDs[0],
		Status:        domain.CollaborationStatusPending,
	}).Error)
	require.NoError(t, db.Create(&entities.Analysis{ID: uuid.New(), UserID: donor.ID}).Error)
	require.NoError(t, db.Create(&entities.RestaurantProfile{ID: uuid.New(), UserID: donor.ID, RestaurantName: "Dapur Berbagi"}).Error)
	require.NoError(t, db.Create(&entities.UserProfile{ID: uuid.New(), UserID: donor.ID}).Error)
	require.NoError(t, repo.CreateLoginHistory(ctx, &entities.LoginHistory{ID: uuid.New(), UserID: donor.ID, LoginTimestamp: time.Now()}))

	require.NoError(t, repo.DeleteUserCascade(ctx, donor))

	for table, filter := range map[string]interface{}{
		"users":               &entities.User{},
		"food_donations":      &entities.FoodDonation{},
		"food_requests":       &entities.FoodRequest{},
		"analyses":            &entities.Analysis{},
		"restaurant_profiles": &entities.RestaurantProfile{},
		"user_profiles":       &entities.UserProfile{},
		"login_histories":     &entities.LoginHistory{},
	} {
		var count int64
		column := "user_id"
		switch table {
		case "users":
			column = "id"
		case "food_donations":
			column = "donor_id"
		case "food_requests":
			column = "requester_id"
		}
		require.NoError(t, db.Model(filter).Where(column+" = ?", donor.ID).Count(&count).Error)
		require.Zero(t, count, "table %s still holds rows for the deleted user", table)
	}

	var collabCount int64
	require.NoError(t, db.Model(&entities.Collaboration{}).
		Where("donor_id = ? OR ngo_id = ?", donor.ID, donor.ID).
		Count(&collabCount).Error)
	require.Zero(t, collabCount)

	// The other party is untouched.
	_, err := repo.GetUserByID(ctx, ngo.ID.String())
	require.NoError(t, err)
}

func TestDeleteUserCascadeDeletesRoleProfileOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	ngo := &entities.User{ID: uuid.New(), Username: "panti-kasih", Email: "kasih@example.com", Role: domain.RoleNGO}
	other := &entities.User{ID: uuid.New(), Username: "panti-lain", Email: "lain@example.com", Role: domain.RoleNGO}
	require.NoError(t, repo.CreateUser(ctx, ngo))
	require.NoError(t, repo.CreateUser(ctx, other))

	require.NoError(t, db.Create(&entities.NGOProfile{ID: uuid.New(), UserID: ngo.ID, OrganizationName: "Panti Kasih"}).Error)
	require.NoError(t, db.Create(&entities.NGOProfile{ID: uuid.New(), UserID: other.ID, OrganizationName: "Panti Lain"}).Error)

	require.NoError(t, repo.DeleteUserCascade(ctx, ngo))

	var count int64
	require.NoError(t, db.Model(&entities.NGOProfile{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteUserCascadeRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	donor := &entities.User{ID: uuid.New(), Username: "dapur-utama", Email: "utama@example.com", Role: domain.RoleRestaurant}
	ngo := &entities.User{ID: uuid.New(), Username: "rumah-peduli", Email: "peduli@example.com", Role: domain.RoleNGO}
	require.NoError(t, repo.CreateUser(ctx, donor))
	require.NoError(t, repo.CreateUser(ctx, ngo))

	d := &entities.FoodDonation{ID: uuid.New(), DonorID: donor.ID, PostedAt: time.Now()}
	require.NoError(t, db.Create(d).Error)
	require.NoError(t, db.Create(&entities.FoodRequest{ID: uuid.New(), RequesterID: donor.ID, Status: domain.RequestStatusPending}).Error)
	require.NoError(t, db.Create(&entities.Collaboration{
		ID: uuid.New(), DonorID: donor.ID, NgoID: ngo.ID,
		FoodDonationID: &d.ID,
		Status:         domain.CollaborationStatusActive,
	}).Error)

	// The legacy profile table goes away, so the cascade fails midway
	// after the collaboration, donation and request deletes already ran.
	require.NoError(t, db.Exec(`DROP TABLE user_profiles`).Error)
	require.Error(t, repo.DeleteUserCascade(ctx, donor))

	for table, filter := range map[string]interface{}{
		"users":          &entities.User{},
		"food_donations": &entities.FoodDonation{},
		"food_requests":  &entities.FoodRequest{},
		"collaborations": &entities.Collaboration{},
	} {
		var count int64
		column := "donor_id"
		switch table {
		case "users":
			column = "id"
		case "food_requests":
			column = "requester_id"
		}
		require.NoError(t, db.Model(filter).Where(column+" = ?", donor.ID).Count(&count).Error)
		require.EqualValues(t, 1, count, "table %s lost rows despite the rollback", table)
	}
}
