package analysis

import (
	"context"
	"gracebites-backend/domain"
	"gracebites-backend/entities"
	"gracebites-backend/pkg/donation"
	"time"

	"github.com/google/uuid"
)

type (
	// AnalysisService recomputes the per-user metric cache from the persisted
	// collaboration and donation rows. Every recompute overwrites its field,
	// so rerunning is always safe.
	AnalysisService interface {
		RecalcTotalPeopleServed(ctx context.Context, userID string) (int, error)
		RecalcMonthlyPeopleServed(ctx context.Context, userID string) (int, error)
		RecalcMonthlyDonationsMade(ctx context.Context, userID string) (int, error)

		RefreshDonorAnalysis(ctx context.Context, userID string, role string) (*domain.Analysis, error)
		RefreshNgoAnalysis(ctx context.Context, userID string, role string) (*domain.Analysis, error)
		Tier(ctx context.Context, userID string) (*domain.Tier, error)
	}

	analysisService struct {
		analysisRepository AnalysisRepository
		donationRepository donation.DonationRepository
	}
)

func NewAnalysisService(analysisRepository AnalysisRepository, donationRepository donation.DonationRepository) AnalysisService {
	return &analysisService{
		analysisRepository: analysisRepository,
		donationRepository: donationRepository,
	}
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func toAnalysisResponse(a *entities.Analysis) *domain.Analysis {
	return &domain.Analysis{
		FoodDonatedCount:       a.FoodDonatedCount,
		NgosHelpedCount:        a.NgosHelpedCount,
		CollaborationsCount:    a.CollaborationsCount,
		RequestsFulfilledCount: a.RequestsFulfilledCount,
		TotalPeopleServed:      a.TotalPeopleServed,
		MonthlyPeopleServed:    a.MonthlyPeopleServed,
		MonthlyDonationsMade:   a.MonthlyDonationsMade,
		BadgeLevel:             a.BadgeLevel,
	}
}

func (s *analysisService) getAnalysis(ctx context.Context, userID string) (*entities.Analysis, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.analysisRepository.GetOrCreateAnalysis(ctx, userUUID)
}

func (s *analysisService) RecalcTotalPeopleServed(ctx context.Context, userID string) (int, error) {
	analysis, err := s.getAnalysis(ctx, userID)
	if err != nil {
		return 0, err
	}

	total, err := s.analysisRepository.SumPeopleServedByNgo(ctx, userID)
	if err != nil {
		return 0, err
	}

	analysis.TotalPeopleServed = int(total)
	if err := s.analysisRepository.SaveAnalysis(ctx, analysis); err != nil {
		return 0, err
	}
	return analysis.TotalPeopleServed, nil
}

func (s *analysisService) RecalcMonthlyPeopleServed(ctx context.Context, userID string) (int, error) {
	analysis, err := s.getAnalysis(ctx, userID)
	if err != nil {
		return 0, err
	}

	total, err := s.analysisRepository.SumPeopleServedByNgoSince(ctx, userID, startOfMonth(time.Now()))
	if err != nil {
		return 0, err
	}

	analysis.MonthlyPeopleServed = int(total)
	if err := s.analysisRepository.SaveAnalysis(ctx, analysis); err != nil {
		return 0, err
	}
	return analysis.MonthlyPeopleServed, nil
}

func (s *analysisService) RecalcMonthlyDonationsMade(ctx context.Context, userID string) (int, error) {
	analysis, err := s.getAnalysis(ctx, userID)
	if err != nil {
		return 0, err
	}

	count, err := s.donationRepository.CountDonationsByDonorSince(ctx, userID, startOfMonth(time.Now()))
	if err != nil {
		return 0, err
	}

	analysis.MonthlyDonationsMade = int(count)
	if err := s.analysisRepository.SaveAnalysis(ctx, analysis); err != nil {
		return 0, err
	}
	return analysis.MonthlyDonationsMade, nil
}

// RefreshDonorAnalysis recomputes the donor-side monthly counter, grades the
// badge from it and caches the result on the analysis row.
func (s *analysisService) RefreshDonorAnalysis(ctx context.Context, userID string, role string) (*domain.Analysis, error) {
	if _, err := s.RecalcMonthlyDonationsMade(ctx, userID); err != nil {
		return nil, err
	}

	analysis, err := s.getAnalysis(ctx, userID)
	if err != nil {
		return nil, err
	}

	analysis.BadgeLevel = BadgeLevelFor(role, analysis)
	if err := s.analysisRepository.SaveAnalysis(ctx, analysis); err != nil {
		return nil, err
	}

	return toAnalysisResponse(analysis), nil
}

// RefreshNgoAnalysis recomputes both people-served totals, grades the badge
// and caches it.
func (s *analysisService) RefreshNgoAnalysis(ctx context.Context, userID string, role string) (*domain.Analysis, error) {
	if _, err := s.RecalcTotalPeopleServed(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.RecalcMonthlyPeopleServed(ctx, userID); err != nil {
		return nil, err
	}

	analysis, err := s.getAnalysis(ctx, userID)
	if err != nil {
		return nil, err
	}

	analysis.BadgeLevel = BadgeLevelFor(role, analysis)
	if err := s.analysisRepository.SaveAnalysis(ctx, analysis); err != nil {
		return nil, err
	}

	return toAnalysisResponse(analysis), nil
}

func (s *analysisService) Tier(ctx context.Context, userID string) (*domain.Tier, error) {
	donations, err := s.donationRepository.GetDonationsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return CalculateTier(donations, time.Now()), nil
}
