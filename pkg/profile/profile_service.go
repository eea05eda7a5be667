package profile

import (
	"context"
	"errors"
	"fmt"
	"gracebites-backend/domain"
	"gracebites-backend/entities"
	"gracebites-backend/internal/utils/storage"
	"gracebites-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProfileService interface {
		GetMyProfile(ctx context.Context, userID string, role string) (*domain.ResolvedProfile, error)
		UpdateMyProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string, role string) (*domain.ResolvedProfile, error)
		Resolve(ctx context.Context, userID string, role string) (*domain.ResolvedProfile, error)
		Directory(ctx context.Context, role string) ([]*domain.DirectoryEntry, error)
	}

	profileService struct {
		profileRepository ProfileRepository
		userRepository    user.UserRepository
		s3                storage.AwsS3
	}
)

func NewProfileService(profileRepository ProfileRepository, userRepository user.UserRepository, s3 storage.AwsS3) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		userRepository:    userRepository,
		s3:                s3,
	}
}

// Resolve is the single profile lookup used everywhere a user's profile is
// displayed: the role-specific profile wins, the legacy unified profile is
// the fallback, and the result is tagged so callers never guess.
func (s *profileService) Resolve(ctx context.Context, userID string, role string) (*domain.ResolvedProfile, error) {
	switch role {
	case domain.RoleRestaurant:
		profile, err := s.profileRepository.GetRestaurantProfile(ctx, userID)
		if err == nil {
			return restaurantResolved(profile), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	case domain.RoleNGO:
		profile, err := s.profileRepository.GetNGOProfile(ctx, userID)
		if err == nil {
			return ngoResolved(profile), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	case domain.RoleEventPlanner:
		profile, err := s.profileRepository.GetEventPlannerProfile(ctx, userID)
		if err == nil {
			return eventPlannerResolved(profile), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	legacy, err := s.profileRepository.GetLegacyProfile(ctx, userID)
	if err == nil {
		return &domain.ResolvedProfile{
			Kind:           domain.ProfileKindLegacy,
			Name:           legacy.OrganizationName,
			Address:        legacy.Address,
			ContactNumber:  legacy.ContactNumber,
			ProfilePicture: legacy.ProfilePicture,
			Description:    legacy.Description,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &domain.ResolvedProfile{Kind: domain.ProfileKindNone}, nil
}

func (s *profileService) GetMyProfile(ctx context.Context, userID string, role string) (*domain.ResolvedProfile, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	// First visit lazily creates the role profile.
	switch role {
	case domain.RoleRestaurant:
		profile, err := s.profileRepository.GetOrCreateRestaurantProfile(ctx, userUUID)
		if err != nil {
			return nil, err
		}
		return restaurantResolved(profile), nil
	case domain.RoleNGO:
		profile, err := s.profileRepository.GetOrCreateNGOProfile(ctx, userUUID)
		if err != nil {
			return nil, err
		}
		return ngoResolved(profile), nil
	case domain.RoleEventPlanner:
		profile, err := s.profileRepository.GetOrCreateEventPlannerProfile(ctx, userUUID)
		if err != nil {
			return nil, err
		}
		return eventPlannerResolved(profile), nil
	default:
		return nil, domain.ErrRoleNotAllowed
	}
}

func (s *profileService) UpdateMyProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string, role string) (*domain.ResolvedProfile, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	var pictureURL string
	if req.ProfilePicture != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("profile-%s", userID),
			req.ProfilePicture,
			"profiles",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		pictureURL = s.s3.GetPublicLinkKey(objectKey)
	}

	switch role {
	case domain.RoleRestaurant:
		profile, err := s.profileRepository.GetOrCreateRestaurantProfile(ctx, userUUID)
		if err != nil {
			return nil, err
		}
		profile.RestaurantName = req.Name
		profile.Address = req.Address
		profile.ContactNumber = req.ContactNumber
		profile.CuisineType = req.CuisineType
		profile.Description = req.Description
		profile.OperatingHours = req.OperatingHours
		if pictureURL != "" {
			profile.ProfilePicture = pictureURL
		}
		if err := s.profileRepository.SaveRestaurantProfile(ctx, profile); err != nil {
			return nil, err
		}
		return restaurantResolved(profile), nil
	case domain.RoleNGO:
		profile, err := s.profileRepository.GetOrCreateNGOProfile(ctx, userUUID)
		if err != nil {
			return nil, err
		}
		profile.OrganizationName = req.Name
		profile.Address = req.Address
		profile.ContactNumber = req.ContactNumber
		profile.MissionStatement = req.MissionStatement
		profile.Description = req.Description
		profile.TargetBeneficiaries = req.TargetBeneficiaries
		if pictureURL != "" {
			profile.ProfilePicture = pictureURL
		}
		if err := s.profileRepository.SaveNGOProfile(ctx, profile); err != nil {
			return nil, err
		}
		return ngoResolved(profile), nil
	case domain.RoleEventPlanner:
		profile, err := s.profileRepository.GetOrCreateEventPlannerProfile(ctx, userUUID)
		if err != nil {
			return nil, err
		}
		profile.CompanyName = req.Name
		profile.Address = req.Address
		profile.ContactNumber = req.ContactNumber
		profile.Specialization = req.Specialization
		profile.Description = req.Description
		profile.YearsOfExperience = req.YearsOfExperience
		if pictureURL != "" {
			profile.ProfilePicture = pictureURL
		}
		if err := s.profileRepository.SaveEventPlannerProfile(ctx, profile); err != nil {
			return nil, err
		}
		return eventPlannerResolved(profile), nil
	default:
		return nil, domain.ErrRoleNotAllowed
	}
}

func (s *profileService) Directory(ctx context.Context, role string) ([]*domain.DirectoryEntry, error) {
	users, err := s.userRepository.GetUsersByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.DirectoryEntry, 0, len(users))
	for _, u := range users {
		resolved, err := s.Resolve(ctx, u.ID.String(), u.Role)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &domain.DirectoryEntry{
			User: &domain.UserResponse{
				ID:        u.ID.String(),
				Username:  u.Username,
				Email:     u.Email,
				Role:      u.Role,
				CreatedAt: u.CreatedAt,
			},
			Profile: resolved,
		})
	}

	return entries, nil
}

func restaurantResolved(p *entities.RestaurantProfile) *domain.ResolvedProfile {
	return &domain.ResolvedProfile{
		Kind:           domain.ProfileKindRole,
		Name:           p.RestaurantName,
		Address:        p.Address,
		ContactNumber:  p.ContactNumber,
		ProfilePicture: p.ProfilePicture,
		Description:    p.Description,
		CuisineType:    p.CuisineType,
		OperatingHours: p.OperatingHours,
	}
}

func ngoResolved(p *entities.NGOProfile) *domain.ResolvedProfile {
	return &domain.ResolvedProfile{
		Kind:                domain.ProfileKindRole,
		Name:                p.OrganizationName,
		Address:             p.Address,
		ContactNumber:       p.ContactNumber,
		ProfilePicture:      p.ProfilePicture,
		Description:         p.Description,
		MissionStatement:    p.MissionStatement,
		TargetBeneficiaries: p.TargetBeneficiaries,
	}
}

func eventPlannerResolved(p *entities.EventPlannerProfile) *domain.ResolvedProfile {
	return &domain.ResolvedProfile{
		Kind:              domain.ProfileKindRole,
		Name:              p.CompanyName,
		Address:           p.Address,
		ContactNumber:     p.ContactNumber,
		ProfilePicture:    p.ProfilePicture,
		Description:       p.Description,
		Specialization:    p.Specialization,
		YearsOfExperience: p.YearsOfExperience,
	}
}
