package donation

import (
	"context"
	"errors"
	"fmt"
	"gracebites-backend/domain"
	"gracebites-backend/entities"
	"gracebites-backend/internal/utils/storage"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.FoodDonationRequest, userID string, role string) (*domain.FoodDonation, error)
		GetUserDonations(ctx context.Context, userID string) ([]*domain.FoodDonation, error)
		GetAvailableDonations(ctx context.Context) ([]*domain.FoodDonation, error)
		GetDonationByID(ctx context.Context, id string) (*domain.FoodDonation, error)
		UpdateDonation(ctx context.Context, id string, req domain.FoodDonationRequest, userID string) (*domain.FoodDonation, error)
		DeleteDonation(ctx context.Context, id string, userID string) error
	}

	donationService struct {
		donationRepository DonationRepository
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		s3:                 s3,
	}
}

// Datetime-local form inputs arrive without a zone, API clients may send
// RFC3339 or a bare date.
func parseTimeInput(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidExpiryDate
}

func ToDonationResponse(donation *entities.FoodDonation) *domain.FoodDonation {
	result := &domain.FoodDonation{
		ID:          donation.ID.String(),
		DonorID:     donation.DonorID.String(),
		FoodType:    donation.FoodType,
		Quantity:    donation.Quantity,
		Description: donation.Description,
		ExpiryDate:  donation.ExpiryDate,
		Location:    donation.Location,
		ImageURL:    donation.ImageURL,
		PostedAt:    donation.PostedAt,
		IsAccepted:  donation.IsAccepted,
		IsAvailable: donation.IsAvailable,
	}
	if donation.Donor != nil {
		result.DonorName = donation.Donor.Username
	}
	return result
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.FoodDonationRequest, userID string, role string) (*domain.FoodDonation, error) {
	if !domain.IsDonorRole(role) {
		return nil, domain.ErrRoleNotAllowed
	}

	expiryDate, err := parseTimeInput(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	donorUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donationID := uuid.New()

	var imageURL string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s", donationID.String()),
			req.Image,
			"food_donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	donation := &entities.FoodDonation{
		ID:          donationID,
		DonorID:     donorUUID,
		FoodType:    req.FoodType,
		Quantity:    req.Quantity,
		Description: req.Description,
		ExpiryDate:  expiryDate,
		Location:    req.Location,
		ImageURL:    imageURL,
		PostedAt:    time.Now(),
		IsAccepted:  false,
		IsAvailable: true,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return ToDonationResponse(donation), nil
}

func (s *donationService) GetUserDonations(ctx context.Context, userID string) ([]*domain.FoodDonation, error) {
	donations, err := s.donationRepository.GetDonationsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FoodDonation, 0, len(donations))
	for _, donation := range donations {
		result = append(result, ToDonationResponse(donation))
	}
	return result, nil
}

func (s *donationService) GetAvailableDonations(ctx context.Context) ([]*domain.FoodDonation, error) {
	donations, err := s.donationRepository.GetAvailableDonations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FoodDonation, 0, len(donations))
	for _, donation := range donations {
		result = append(result, ToDonationResponse(donation))
	}
	return result, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*domain.FoodDonation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return ToDonationResponse(donation), nil
}

func (s *donationService) UpdateDonation(ctx context.Context, id string, req domain.FoodDonationRequest, userID string) (*domain.FoodDonation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.DonorID.String() != userID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	expiryDate, err := parseTimeInput(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	donation.FoodType = req.FoodType
	donation.Quantity = req.Quantity
	donation.Description = req.Description
	donation.ExpiryDate = expiryDate
	donation.Location = req.Location

	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s", donation.ID.String()),
			req.Image,
			"food_donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		donation.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.donationRepository.UpdateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return ToDonationResponse(donation), nil
}

func (s *donationService) DeleteDonation(ctx context.Context, id string, userID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.DonorID.String() != userID {
		return domain.ErrUnauthorizedDonationAccess
	}

	return s.donationRepository.DeleteDonation(ctx, id)
}
