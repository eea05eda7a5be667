package profile

import (
	"context"
	"errors"
	"gracebites-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProfileRepository interface {
		GetRestaurantProfile(ctx context.Context, userID string) (*entities.RestaurantProfile, error)
		GetOrCreateRestaurantProfile(ctx context.Context, userID uuid.UUID) (*entities.RestaurantProfile, error)
		SaveRestaurantProfile(ctx context.Context, profile *entities.RestaurantProfile) error

		GetNGOProfile(ctx context.Context, userID string) (*entities.NGOProfile, error)
		GetOrCreateNGOProfile(ctx context.Context, userID uuid.UUID) (*entities.NGOProfile, error)
		SaveNGOProfile(ctx context.Context, profile *entities.NGOProfile) error

		GetEventPlannerProfile(ctx context.Context, userID string) (*entities.EventPlannerProfile, error)
		GetOrCreateEventPlannerProfile(ctx context.Context, userID uuid.UUID) (*entities.EventPlannerProfile, error)
		SaveEventPlannerProfile(ctx context.Context, profile *entities.EventPlannerProfile) error

		GetLegacyProfile(ctx context.Context, userID string) (*entities.UserProfile, error)
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetRestaurantProfile(ctx context.Context, userID string) (*entities.RestaurantProfile, error) {
	var profile entities.RestaurantProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetOrCreateRestaurantProfile(ctx context.Context, userID uuid.UUID) (*entities.RestaurantProfile, error) {
	profile, err := r.GetRestaurantProfile(ctx, userID.String())
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	created := &entities.RestaurantProfile{ID: uuid.New(), UserID: userID}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (r *profileRepository) SaveRestaurantProfile(ctx context.Context, profile *entities.RestaurantProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) GetNGOProfile(ctx context.Context, userID string) (*entities.NGOProfile, error) {
	var profile entities.NGOProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetOrCreateNGOProfile(ctx context.Context, userID uuid.UUID) (*entities.NGOProfile, error) {
	profile, err := r.GetNGOProfile(ctx, userID.String())
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	created := &entities.NGOProfile{ID: uuid.New(), UserID: userID}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (r *profileRepository) SaveNGOProfile(ctx context.Context, profile *entities.NGOProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) GetEventPlannerProfile(ctx context.Context, userID string) (*entities.EventPlannerProfile, error) {
	var profile entities.EventPlannerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetOrCreateEventPlannerProfile(ctx context.Context, userID uuid.UUID) (*entities.EventPlannerProfile, error) {
	profile, err := r.GetEventPlannerProfile(ctx, userID.String())
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	created := &entities.EventPlannerProfile{ID: uuid.New(), UserID: userID}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (r *profileRepository) SaveEventPlannerProfile(ctx context.Context, profile *entities.EventPlannerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) GetLegacyProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
