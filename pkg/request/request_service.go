package request

import (
	"context"
	"errors"
	"gracebites-backend/domain"
	"gracebites-backend/entities"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		CreateRequest(ctx context.Context, req domain.FoodRequestRequest, userID string, role string) (*domain.FoodRequest, error)
		GetUserRequests(ctx context.Context, userID string) ([]*domain.FoodRequest, error)
		GetPendingRequests(ctx context.Context) ([]*domain.FoodRequest, error)
		UpdateRequest(ctx context.Context, id string, req domain.FoodRequestRequest, userID string) (*domain.FoodRequest, error)
		DeleteRequest(ctx context.Context, id string, userID string) error
	}

	requestService struct {
		requestRepository RequestRepository
	}
)

func NewRequestService(requestRepository RequestRepository) RequestService {
	return &requestService{requestRepository: requestRepository}
}

func parseTimeInput(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidRequiredTiming
}

func ToRequestResponse(request *entities.FoodRequest) *domain.FoodRequest {
	result := &domain.FoodRequest{
		ID:               request.ID.String(),
		RequesterID:      request.RequesterID.String(),
		FoodType:         request.FoodType,
		QuantityRequired: request.QuantityRequired,
		Location:         request.Location,
		RequiredTiming:   request.RequiredTiming,
		Description:      request.Description,
		Status:           request.Status,
		RequestedAt:      request.RequestedAt,
	}
	if request.Requester != nil {
		result.RequesterName = request.Requester.Username
	}
	return result
}

func (s *requestService) CreateRequest(ctx context.Context, req domain.FoodRequestRequest, userID string, role string) (*domain.FoodRequest, error) {
	if !domain.IsRequesterRole(role) {
		return nil, domain.ErrRoleNotAllowed
	}

	requiredTiming, err := parseTimeInput(req.RequiredTiming)
	if err != nil {
		return nil, err
	}

	requesterUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	request := &entities.FoodRequest{
		ID:               uuid.New(),
		RequesterID:      requesterUUID,
		FoodType:         req.FoodType,
		QuantityRequired: req.QuantityRequired,
		Location:         req.Location,
		RequiredTiming:   requiredTiming,
		Description:      req.Description,
		Status:           domain.RequestStatusPending,
		RequestedAt:      time.Now(),
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	return ToRequestResponse(request), nil
}

func (s *requestService) GetUserRequests(ctx context.Context, userID string) ([]*domain.FoodRequest, error) {
	requests, err := s.requestRepository.GetRequestsByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FoodRequest, 0, len(requests))
	for _, request := range requests {
		result = append(result, ToRequestResponse(request))
	}
	return result, nil
}

func (s *requestService) GetPendingRequests(ctx context.Context) ([]*domain.FoodRequest, error) {
	requests, err := s.requestRepository.GetPendingRequests(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FoodRequest, 0, len(requests))
	for _, request := range requests {
		result = append(result, ToRequestResponse(request))
	}
	return result, nil
}

func (s *requestService) UpdateRequest(ctx context.Context, id string, req domain.FoodRequestRequest, userID string) (*domain.FoodRequest, error) {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	if request.RequesterID.String() != userID {
		return nil, domain.ErrUnauthorizedRequestAccess
	}

	requiredTiming, err := parseTimeInput(req.RequiredTiming)
	if err != nil {
		return nil, err
	}

	request.FoodType = req.FoodType
	request.QuantityRequired = req.QuantityRequired
	request.Location = req.Location
	request.RequiredTiming = requiredTiming
	request.Description = req.Description

	if err := s.requestRepository.UpdateRequest(ctx, request); err != nil {
		return nil, err
	}

	return ToRequestResponse(request), nil
}

func (s *requestService) DeleteRequest(ctx context.Context, id string, userID string) error {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}

	if request.RequesterID.String() != userID {
		return domain.ErrUnauthorizedRequestAccess
	}

	return s.requestRepository.DeleteRequest(ctx, id)
}
