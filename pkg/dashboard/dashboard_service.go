package dashboard

import (
	"context"
	"errors"
	"gracebites-backend/domain"
	"gracebites-backend/pkg/analysis"
	"gracebites-backend/pkg/collaboration"
	"gracebites-backend/pkg/donation"
	"gracebites-backend/pkg/profile"
	"gracebites-backend/pkg/request"
	"gracebites-backend/pkg/user"

	"gorm.io/gorm"
)

type (
	// DashboardService assembles the role dashboards: it refreshes the
	// viewer's analysis from current facts, then gathers the lists the page
	// renders. All derived numbers come from the recompute path, so loading
	// a dashboard twice never changes them.
	DashboardService interface {
		DonorDashboard(ctx context.Context, userID string, role string) (*domain.DonorDashboard, error)
		NgoDashboard(ctx context.Context, userID string, role string) (*domain.NgoDashboard, error)
		NgoDetails(ctx context.Context, ngoID string, viewerID string) (*domain.NgoDetails, error)
		RestaurantDetails(ctx context.Context, restaurantID string, viewerID string) (*domain.RestaurantDetails, error)
	}

	dashboardService struct {
		donationRepository      donation.DonationRepository
		requestRepository       request.RequestRepository
		collaborationRepository collaboration.CollaborationRepository
		userRepository          user.UserRepository
		analysisService         analysis.AnalysisService
		profileService          profile.ProfileService
	}
)

func NewDashboardService(
	donationRepository donation.DonationRepository,
	requestRepository request.RequestRepository,
	collaborationRepository collaboration.CollaborationRepository,
	userRepository user.UserRepository,
	analysisService analysis.AnalysisService,
	profileService profile.ProfileService,
) DashboardService {
	return &dashboardService{
		donationRepository:      donationRepository,
		requestRepository:       requestRepository,
		collaborationRepository: collaborationRepository,
		userRepository:          userRepository,
		analysisService:         analysisService,
		profileService:          profileService,
	}
}

func (s *dashboardService) DonorDashboard(ctx context.Context, userID string, role string) (*domain.DonorDashboard, error) {
	if !domain.IsDonorRole(role) {
		return nil, domain.ErrRoleNotAllowed
	}

	available, err := s.donationRepository.GetAvailableDonationsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalDonations, err := s.donationRepository.CountDonationsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	pendingRequests, err := s.requestRepository.GetPendingRequests(ctx)
	if err != nil {
		return nil, err
	}
	collaborations, err := s.collaborationRepository.GetCollaborationsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	pendingDonationRequests, err := s.collaborationRepository.GetPendingDonationRequestsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.collaborationRepository.GetCompletedCollaborationsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}

	analysisData, err := s.analysisService.RefreshDonorAnalysis(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	tier, err := s.analysisService.Tier(ctx, userID)
	if err != nil {
		return nil, err
	}
	ngos, err := s.profileService.Directory(ctx, domain.RoleNGO)
	if err != nil {
		return nil, err
	}

	result := &domain.DonorDashboard{
		TotalDonations:          totalDonations,
		Analysis:                analysisData,
		Tier:                    tier,
		Ngos:                    ngos,
		Donations:               make([]*domain.FoodDonation, 0, len(available)),
		PendingNgoRequests:      make([]*domain.FoodRequest, 0, len(pendingRequests)),
		Collaborations:          make([]*domain.Collaboration, 0, len(collaborations)),
		PendingDonationRequests: make([]*domain.Collaboration, 0, len(pendingDonationRequests)),
		CompletedCollaborations: make([]*domain.Collaboration, 0, len(completed)),
	}
	for _, d := range available {
		result.Donations = append(result.Donations, donation.ToDonationResponse(d))
	}
	for _, r := range pendingRequests {
		result.PendingNgoRequests = append(result.PendingNgoRequests, request.ToRequestResponse(r))
	}
	for _, c := range collaborations {
		result.Collaborations = append(result.Collaborations, collaboration.ToCollaborationResponse(c))
	}
	for _, c := range pendingDonationRequests {
		result.PendingDonationRequests = append(result.PendingDonationRequests, collaboration.ToCollaborationResponse(c))
	}
	for _, c := range completed {
		result.CompletedCollaborations = append(result.CompletedCollaborations, collaboration.ToCollaborationResponse(c))
	}

	return result, nil
}

func (s *dashboardService) NgoDashboard(ctx context.Context, userID string, role string) (*domain.NgoDashboard, error) {
	if role != domain.RoleNGO {
		return nil, domain.ErrRoleNotAllowed
	}

	availableDonations, err := s.donationRepository.GetAvailableDonations(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepository.GetRequestsByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	collaborations, err := s.collaborationRepository.GetCollaborationsByNgo(ctx, userID)
	if err != nil {
		return nil, err
	}
	active, err := s.collaborationRepository.GetActiveCollaborationsByNgo(ctx, userID)
	if err != nil {
		return nil, err
	}

	analysisData, err := s.analysisService.RefreshNgoAnalysis(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	restaurants, err := s.profileService.Directory(ctx, domain.RoleRestaurant)
	if err != nil {
		return nil, err
	}

	result := &domain.NgoDashboard{
		Analysis:             analysisData,
		Restaurants:          restaurants,
		AvailableDonations:   make([]*domain.FoodDonation, 0, len(availableDonations)),
		Requests:             make([]*domain.FoodRequest, 0, len(requests)),
		Collaborations:       make([]*domain.Collaboration, 0, len(collaborations)),
		ActiveCollaborations: make([]*domain.Collaboration, 0, len(active)),
	}
	for _, d := range availableDonations {
		result.AvailableDonations = append(result.AvailableDonations, donation.ToDonationResponse(d))
	}
	for _, r := range requests {
		result.Requests = append(result.Requests, request.ToRequestResponse(r))
	}
	for _, c := range collaborations {
		result.Collaborations = append(result.Collaborations, collaboration.ToCollaborationResponse(c))
	}
	for _, c := range active {
		result.ActiveCollaborations = append(result.ActiveCollaborations, collaboration.ToCollaborationResponse(c))
	}

	return result, nil
}

func (s *dashboardService) NgoDetails(ctx context.Context, ngoID string, viewerID string) (*domain.NgoDetails, error) {
	ngo, err := s.userRepository.GetUserByID(ctx, ngoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if ngo.Role != domain.RoleNGO {
		return nil, domain.ErrUserNotFound
	}

	resolved, err := s.profileService.Resolve(ctx, ngoID, ngo.Role)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepository.GetRequestsByRequester(ctx, ngoID)
	if err != nil {
		return nil, err
	}
	shared, err := s.collaborationRepository.GetCollaborationsBetween(ctx, viewerID, ngoID)
	if err != nil {
		return nil, err
	}

	result := &domain.NgoDetails{
		Ngo: &domain.UserResponse{
			ID:        ngo.ID.String(),
			Username:  ngo.Username,
			Email:     ngo.Email,
			Role:      ngo.Role,
			CreatedAt: ngo.CreatedAt,
		},
		Profile:        resolved,
		Requests:       make([]*domain.FoodRequest, 0, len(requests)),
		Collaborations: make([]*domain.Collaboration, 0, len(shared)),
	}
	for _, r := range requests {
		result.Requests = append(result.Requests, request.ToRequestResponse(r))
	}
	for _, c := range shared {
		result.Collaborations = append(result.Collaborations, collaboration.ToCollaborationResponse(c))
	}
	return result, nil
}

func (s *dashboardService) RestaurantDetails(ctx context.Context, restaurantID string, viewerID string) (*domain.RestaurantDetails, error) {
	restaurant, err := s.userRepository.GetUserByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if restaurant.Role != domain.RoleRestaurant {
		return nil, domain.ErrUserNotFound
	}

	resolved, err := s.profileService.Resolve(ctx, restaurantID, restaurant.Role)
	if err != nil {
		return nil, err
	}
	donations, err := s.donationRepository.GetAvailableDonationsByDonor(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	shared, err := s.collaborationRepository.GetCollaborationsBetween(ctx, viewerID, restaurantID)
	if err != nil {
		return nil, err
	}

	result := &domain.RestaurantDetails{
		Restaurant: &domain.UserResponse{
			ID:        restaurant.ID.String(),
			Username:  restaurant.Username,
			Email:     restaurant.Email,
			Role:      restaurant.Role,
			CreatedAt: restaurant.CreatedAt,
		},
		Profile:        resolved,
		Donations:      make([]*domain.FoodDonation, 0, len(donations)),
		Collaborations: make([]*domain.Collaboration, 0, len(shared)),
	}
	for _, d := range donations {
		result.Donations = append(result.Donations, donation.ToDonationResponse(d))
	}
	for _, c := range shared {
		result.Collaborations = append(result.Collaborations, collaboration.ToCollaborationResponse(c))
	}
	return result, nil
}
