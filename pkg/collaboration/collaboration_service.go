package collaboration

import (
	"context"
	"errors"
	"gracebites-backend/domain"
	"gracebites-backend/entities"
	"gracebites-backend/pkg/analysis"
	"gracebites-backend/pkg/donation"
	"gracebites-backend/pkg/request"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollaborationService interface {
		RequestFromDonation(ctx context.Context, req domain.RequestFoodRequest, userID string, role string) (*domain.Collaboration, error)
		FulfillRequest(ctx context.Context, req domain.FulfillRequestRequest, userID string, role string) (*domain.Collaboration, error)
		Accept(ctx context.Context, collaborationID string, userID string) error
		Reject(ctx context.Context, collaborationID string, userID string) error
		Complete(ctx context.Context, collaborationID string, req domain.CompleteCollaborationRequest, userID string) (*domain.Collaboration, error)

		GetDonorCollaborations(ctx context.Context, userID string) ([]*domain.Collaboration, error)
		GetNgoCollaborations(ctx context.Context, userID string) ([]*domain.Collaboration, error)
	}

	collaborationService struct {
		collaborationRepository CollaborationRepository
		donationRepository      donation.DonationRepository
		requestRepository       request.RequestRepository
		analysisRepository      analysis.AnalysisRepository
	}
)

func NewCollaborationService(
	collaborationRepository CollaborationRepository,
	donationRepository donation.DonationRepository,
	requestRepository request.RequestRepository,
	analysisRepository analysis.AnalysisRepository,
) CollaborationService {
	return &collaborationService{
		collaborationRepository: collaborationRepository,
		donationRepository:      donationRepository,
		requestRepository:       requestRepository,
		analysisRepository:      analysisRepository,
	}
}

func ToCollaborationResponse(collaboration *entities.Collaboration) *domain.Collaboration {
	result := &domain.Collaboration{
		ID:                collaboration.ID.String(),
		DonorID:           collaboration.DonorID.String(),
		NgoID:             collaboration.NgoID.String(),
		Status:            collaboration.Status,
		CollaborationDate: collaboration.CollaborationDate,
		Notes:             collaboration.Notes,
		PeopleServed:      collaboration.PeopleServed,
		CompletionDate:    collaboration.CompletionDate,
	}
	if collaboration.Donor != nil {
		result.DonorName = collaboration.Donor.Username
	}
	if collaboration.Ngo != nil {
		result.NgoName = collaboration.Ngo.Username
	}
	if collaboration.FoodDonation != nil {
		result.FoodDonation = donation.ToDonationResponse(collaboration.FoodDonation)
	}
	if collaboration.FoodRequest != nil {
		result.FoodRequest = request.ToRequestResponse(collaboration.FoodRequest)
	}
	return result
}

// RequestFromDonation is the requester-initiated path: the collaboration
// starts PENDING and the donation is untouched until the donor acts on it.
func (s *collaborationService) RequestFromDonation(ctx context.Context, req domain.RequestFoodRequest, userID string, role string) (*domain.Collaboration, error) {
	if !domain.IsRequesterRole(role) {
		return nil, domain.ErrRoleNotAllowed
	}

	foodDonation, err := s.donationRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	if !foodDonation.IsAvailable {
		return nil, domain.ErrDonationNotAvailable
	}

	ngoUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donationID := foodDonation.ID
	collaboration := &entities.Collaboration{
		ID:                uuid.New(),
		DonorID:           foodDonation.DonorID,
		NgoID:             ngoUUID,
		FoodDonationID:    &donationID,
		Status:            domain.CollaborationStatusPending,
		CollaborationDate: time.Now(),
		Notes:             req.Notes,
	}

	if err := s.collaborationRepository.CreateCollaboration(ctx, collaboration); err != nil {
		return nil, err
	}

	return ToCollaborationResponse(collaboration), nil
}

// FulfillRequest is the donor-initiated path: the collaboration starts ACTIVE
// and the request flips PENDING -> ACCEPTED atomically with its creation.
func (s *collaborationService) FulfillRequest(ctx context.Context, req domain.FulfillRequestRequest, userID string, role string) (*domain.Collaboration, error) {
	if !domain.IsDonorRole(role) {
		return nil, domain.ErrRoleNotAllowed
	}

	foodRequest, err := s.requestRepository.GetRequestByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	donorUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	requestID := foodRequest.ID
	collaboration := &entities.Collaboration{
		ID:                uuid.New(),
		DonorID:           donorUUID,
		NgoID:             foodRequest.RequesterID,
		FoodRequestID:     &requestID,
		Status:            domain.CollaborationStatusActive,
		CollaborationDate: time.Now(),
		Notes:             req.Notes,
	}

	if err := s.collaborationRepository.CreateWithRequestAccept(ctx, collaboration); err != nil {
		return nil, err
	}

	return ToCollaborationResponse(collaboration), nil
}

func (s *collaborationService) Accept(ctx context.Context, collaborationID string, userID string) error {
	collaboration, err := s.collaborationRepository.GetCollaborationByID(ctx, collaborationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCollaborationNotFound
		}
		return err
	}

	if collaboration.DonorID.String() != userID {
		return domain.ErrUnauthorizedCollaborationAccess
	}
	if collaboration.FoodDonationID == nil {
		return domain.ErrCollaborationWithoutDonation
	}

	return s.collaborationRepository.AcceptPendingCollaboration(ctx, collaborationID, collaboration.FoodDonationID.String())
}

func (s *collaborationService) Reject(ctx context.Context, collaborationID string, userID string) error {
	collaboration, err := s.collaborationRepository.GetCollaborationByID(ctx, collaborationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCollaborationNotFound
		}
		return err
	}

	if collaboration.DonorID.String() != userID {
		return domain.ErrUnauthorizedCollaborationAccess
	}

	// The linked donation stays available, rejection has no side effect on it.
	return s.collaborationRepository.CancelPendingCollaboration(ctx, collaborationID)
}

func (s *collaborationService) Complete(ctx context.Context, collaborationID string, req domain.CompleteCollaborationRequest, userID string) (*domain.Collaboration, error) {
	if req.PeopleServed <= 0 {
		return nil, domain.ErrInvalidPeopleServed
	}

	collaboration, err := s.collaborationRepository.GetCollaborationByID(ctx, collaborationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollaborationNotFound
		}
		return nil, err
	}

	if collaboration.NgoID.String() != userID {
		return nil, domain.ErrUnauthorizedCollaborationAccess
	}

	completionDate := time.Now()
	if err := s.collaborationRepository.CompleteActiveCollaboration(ctx, collaborationID, req.PeopleServed, completionDate); err != nil {
		return nil, err
	}

	// Bookkeeping is best effort: the completion is authoritative and must
	// stand even when the analysis update fails.
	s.updateAnalysisOnCompletion(ctx, collaboration, req.PeopleServed)

	collaboration.Status = domain.CollaborationStatusCompleted
	collaboration.PeopleServed = &req.PeopleServed
	collaboration.CompletionDate = &completionDate

	return ToCollaborationResponse(collaboration), nil
}

func (s *collaborationService) updateAnalysisOnCompletion(ctx context.Context, collaboration *entities.Collaboration, peopleServed int) {
	donorAnalysis, err := s.analysisRepository.GetOrCreateAnalysis(ctx, collaboration.DonorID)
	if err != nil {
		log.Printf("analysis update skipped for donor %s: %v", collaboration.DonorID, err)
	} else {
		donorAnalysis.NgosHelpedCount++
		donorAnalysis.CollaborationsCount++
		if err := s.analysisRepository.SaveAnalysis(ctx, donorAnalysis); err != nil {
			log.Printf("analysis update failed for donor %s: %v", collaboration.DonorID, err)
		}
	}

	ngoAnalysis, err := s.analysisRepository.GetOrCreateAnalysis(ctx, collaboration.NgoID)
	if err != nil {
		log.Printf("analysis update skipped for ngo %s: %v", collaboration.NgoID, err)
		return
	}
	ngoAnalysis.RequestsFulfilledCount++
	ngoAnalysis.TotalPeopleServed += peopleServed
	if err := s.analysisRepository.SaveAnalysis(ctx, ngoAnalysis); err != nil {
		log.Printf("analysis update failed for ngo %s: %v", collaboration.NgoID, err)
	}
}

func (s *collaborationService) GetDonorCollaborations(ctx context.Context, userID string) ([]*domain.Collaboration, error) {
	collaborations, err := s.collaborationRepository.GetCollaborationsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Collaboration, 0, len(collaborations))
	for _, collaboration := range collaborations {
		result = append(result, ToCollaborationResponse(collaboration))
	}
	return result, nil
}

func (s *collaborationService) GetNgoCollaborations(ctx context.Context, userID string) ([]*domain.Collaboration, error) {
	collaborations, err := s.collaborationRepository.GetCollaborationsByNgo(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Collaboration, 0, len(collaborations))
	for _, collaboration := range collaborations {
		result = append(result, ToCollaborationResponse(collaboration))
	}
	return result, nil
}
