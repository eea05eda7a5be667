package collaboration

import (
	"context"
	"gracebites-backend/domain"
	"gracebites-backend/entities"
	"time"

	"gorm.io/gorm"
)

type (
	CollaborationRepository interface {
		CreateCollaboration(ctx context.Context, collaboration *entities.Collaboration) error
		CreateWithRequestAccept(ctx context.Context, collaboration *entities.Collaboration) error
		GetCollaborationByID(ctx context.Context, id string) (*entities.Collaboration, error)

		AcceptPendingCollaboration(ctx context.Context, collaborationID string, donationID string) error
		CancelPendingCollaboration(ctx context.Context, collaborationID string) error
		CompleteActiveCollaboration(ctx context.Context, collaborationID string, peopleServed int, completionDate time.Time) error

		GetCollaborationsByDonor(ctx context.Context, donorID string) ([]*entities.Collaboration, error)
		GetCollaborationsByNgo(ctx context.Context, ngoID string) ([]*entities.Collaboration, error)
		GetPendingDonationRequestsByDonor(ctx context.Context, donorID string) ([]*entities.Collaboration, error)
		GetCompletedCollaborationsByDonor(ctx context.Context, donorID string) ([]*entities.Collaboration, error)
		GetActiveCollaborationsByNgo(ctx context.Context, ngoID string) ([]*entities.Collaboration, error)
		GetCollaborationsBetween(ctx context.Context, userA string, userB string) ([]*entities.Collaboration, error)
	}

	collaborationRepository struct {
		db *gorm.DB
	}
)

func NewCollaborationRepository(db *gorm.DB) CollaborationRepository {
	return &collaborationRepository{db: db}
}

func (r *collaborationRepository) CreateCollaboration(ctx context.Context, collaboration *entities.Collaboration) error {
	return r.db.WithContext(ctx).Create(collaboration).Error
}

// CreateWithRequestAccept inserts a donor-initiated collaboration and flips
// the linked request PENDING -> ACCEPTED in one transaction. The guarded
// update doubles as the pending check: a concurrent fulfil loses the race and
// gets ErrRequestNotPending.
func (r *collaborationRepository) CreateWithRequestAccept(ctx context.Context, collaboration *entities.Collaboration) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.FoodRequest{}).
			Where("id = ? AND status = ?", collaboration.FoodRequestID, domain.RequestStatusPending).
			Update("status", domain.RequestStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRequestNotPending
		}

		return tx.Create(collaboration).Error
	})
}

func (r *collaborationRepository) GetCollaborationByID(ctx context.Context, id string) (*entities.Collaboration, error) {
	var collaboration entities.Collaboration
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("Ngo").
		Preload("FoodDonation").
		Preload("FoodRequest").
		Where("id = ?", id).
		First(&collaboration).Error; err != nil {
		return nil, err
	}
	return &collaboration, nil
}

// AcceptPendingCollaboration performs the PENDING -> ACTIVE transition and
// claims the donation atomically. Both updates are guarded on current state
// so concurrent accept/reject races resolve to a single winner.
func (r *collaborationRepository) AcceptPendingCollaboration(ctx context.Context, collaborationID string, donationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Collaboration{}).
			Where("id = ? AND status = ?", collaborationID, domain.CollaborationStatusPending).
			Update("status", domain.CollaborationStatusActive)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidCollaborationState
		}

		return tx.Model(&entities.FoodDonation{}).
			Where("id = ?", donationID).
			Updates(map[string]interface{}{
				"is_available": false,
				"is_accepted":  true,
			}).Error
	})
}

func (r *collaborationRepository) CancelPendingCollaboration(ctx context.Context, collaborationID string) error {
	res := r.db.WithContext(ctx).Model(&entities.Collaboration{}).
		Where("id = ? AND status = ?", collaborationID, domain.CollaborationStatusPending).
		Update("status", domain.CollaborationStatusCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidCollaborationState
	}
	return nil
}

func (r *collaborationRepository) CompleteActiveCollaboration(ctx context.Context, collaborationID string, peopleServed int, completionDate time.Time) error {
	res := r.db.WithContext(ctx).Model(&entities.Collaboration{}).
		Where("id = ? AND status = ?", collaborationID, domain.CollaborationStatusActive).
		Updates(map[string]interface{}{
			"status":          domain.CollaborationStatusCompleted,
			"people_served":   peopleServed,
			"completion_date": completionDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidCollaborationState
	}
	return nil
}

func (r *collaborationRepository) GetCollaborationsByDonor(ctx context.Context, donorID string) ([]*entities.Collaboration, error) {
	var collaborations []*entities.Collaboration
	if err := r.db.WithContext(ctx).
		Preload("Ngo").
		Preload("FoodDonation").
		Preload("FoodRequest").
		Where("donor_id = ?", donorID).
		Order("collaboration_date DESC").
		Find(&collaborations).Error; err != nil {
		return nil, err
	}
	return collaborations, nil
}

func (r *collaborationRepository) GetCollaborationsByNgo(ctx context.Context, ngoID string) ([]*entities.Collaboration, error) {
	var collaborations []*entities.Collaboration
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("FoodDonation").
		Preload("FoodRequest").
		Where("ngo_id = ?", ngoID).
		Order("collaboration_date DESC").
		Find(&collaborations).Error; err != nil {
		return nil, err
	}
	return collaborations, nil
}

func (r *collaborationRepository) GetPendingDonationRequestsByDonor(ctx context.Context, donorID string) ([]*entities.Collaboration, error) {
	var collaborations []*entities.Collaboration
	if err := r.db.WithContext(ctx).
		Preload("Ngo").
		Preload("FoodDonation").
		Where("donor_id = ? AND status = ? AND food_donation_id IS NOT NULL", donorID, domain.CollaborationStatusPending).
		Order("collaboration_date DESC").
		Find(&collaborations).Error; err != nil {
		return nil, err
	}
	return collaborations, nil
}

func (r *collaborationRepository) GetCompletedCollaborationsByDonor(ctx context.Context, donorID string) ([]*entities.Collaboration, error) {
	var collaborations []*entities.Collaboration
	if err := r.db.WithContext(ctx).
		Preload("Ngo").
		Preload("FoodDonation").
		Preload("FoodRequest").
		Where("donor_id = ? AND status = ?", donorID, domain.CollaborationStatusCompleted).
		Order("completion_date DESC").
		Find(&collaborations).Error; err != nil {
		return nil, err
	}
	return collaborations, nil
}

func (r *collaborationRepository) GetActiveCollaborationsByNgo(ctx context.Context, ngoID string) ([]*entities.Collaboration, error) {
	var collaborations []*entities.Collaboration
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("FoodDonation").
		Preload("FoodRequest").
		Where("ngo_id = ? AND status = ?", ngoID, domain.CollaborationStatusActive).
		Order("collaboration_date DESC").
		Find(&collaborations).Error; err != nil {
		return nil, err
	}
	return collaborations, nil
}

func (r *collaborationRepository) GetCollaborationsBetween(ctx context.Context, userA string, userB string) ([]*entities.Collaboration, error) {
	var collaborations []*entities.Collaboration
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("Ngo").
		Preload("FoodDonation").
		Preload("FoodRequest").
		Where("(donor_id = ? AND ngo_id = ?) OR (donor_id = ? AND ngo_id = ?)", userA, userB, userB, userA).
		Order("collaboration_date DESC").
		Find(&collaborations).Error; err != nil {
		return nil, err
	}
	return collaborations, nil
}
