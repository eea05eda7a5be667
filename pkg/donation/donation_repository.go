package donation

import (
	"context"
	"gracebites-backend/entities"
	"time"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.FoodDonation) error
		GetDonationByID(ctx context.Context, id string) (*entities.FoodDonation, error)
		GetDonationsByDonor(ctx context.Context, donorID string) ([]*entities.FoodDonation, error)
		GetAvailableDonationsByDonor(ctx context.Context, donorID string) ([]*entities.FoodDonation, error)
		CountDonationsByDonor(ctx context.Context, donorID string) (int64, error)
		CountDonationsByDonorSince(ctx context.Context, donorID string, since time.Time) (int64, error)
		GetAvailableDonations(ctx context.Context) ([]*entities.FoodDonation, error)
		UpdateDonation(ctx context.Context, donation *entities.FoodDonation) error
		DeleteDonation(ctx context.Context, id string) error
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.FoodDonation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.FoodDonation, error) {
	var donation entities.FoodDonation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonationsByDonor(ctx context.Context, donorID string) ([]*entities.FoodDonation, error) {
	var donations []*entities.FoodDonation
	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("posted_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetAvailableDonationsByDonor(ctx context.Context, donorID string) ([]*entities.FoodDonation, error) {
	var donations []*entities.FoodDonation
	if err := r.db.WithContext(ctx).
		Where("donor_id = ? AND is_available = ?", donorID, true).
		Order("posted_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) CountDonationsByDonor(ctx context.Context, donorID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.FoodDonation{}).
		Where("donor_id = ?", donorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *donationRepository) CountDonationsByDonorSince(ctx context.Context, donorID string, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.FoodDonation{}).
		Where("donor_id = ? AND posted_at >= ?", donorID, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *donationRepository) GetAvailableDonations(ctx context.Context) ([]*entities.FoodDonation, error) {
	var donations []*entities.FoodDonation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("is_available = ?", true).
		Order("posted_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) UpdateDonation(ctx context.Context, donation *entities.FoodDonation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}

// DeleteDonation removes the donation and any collaborations referencing it.
// Collaborations go first since they hold the foreign key.
func (r *donationRepository) DeleteDonation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_donation_id = ?", id).Delete(&entities.Collaboration{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.FoodDonation{}).Error
	})
}
