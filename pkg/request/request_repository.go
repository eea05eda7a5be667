package request

import (
	"context"
	"gracebites-backend/domain"
	"gracebites-backend/entities"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.FoodRequest) error
		GetRequestByID(ctx context.Context, id string) (*entities.FoodRequest, error)
		GetRequestsByRequester(ctx context.Context, requesterID string) ([]*entities.FoodRequest, error)
		GetPendingRequests(ctx context.Context) ([]*entities.FoodRequest, error)
		UpdateRequest(ctx context.Context, request *entities.FoodRequest) error
		DeleteRequest(ctx context.Context, id string) error
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.FoodRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.FoodRequest, error) {
	var request entities.FoodRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) GetRequestsByRequester(ctx context.Context, requesterID string) ([]*entities.FoodRequest, error) {
	var requests []*entities.FoodRequest
	if err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("requested_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetPendingRequests(ctx context.Context) ([]*entities.FoodRequest, error) {
	var requests []*entities.FoodRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("status = ?", domain.RequestStatusPending).
		Order("requested_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) UpdateRequest(ctx context.Context, request *entities.FoodRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// DeleteRequest removes the request and any collaborations referencing it.
// Collaborations go first since they hold the foreign key.
func (r *requestRepository) DeleteRequest(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_request_id = ?", id).Delete(&entities.Collaboration{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.FoodRequest{}).Error
	})
}
