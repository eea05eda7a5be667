package analysis

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
	AnalysisRepository interface {
		GetOrCreateAnalysis(ctx context.Context, userID uuid.UUID) (*entities.Analysis, error)
		SaveAnalysis(ctx context.Context, analysis *entities.Analysis) error

		SumPeopleServedByNgo(ctx context.Context, ngoID string) (int64, error)
		SumPeopleServedByNgoSince(ctx context.Context, ngoID string, since time.Time) (int64, error)
	}

	analysisRepository struct {
		db *gorm.DB
	}
)

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) GetOrCreateAnalysis(ctx context.Context, userID uuid.UUID) (*entities.Analysis, error) {
	var analysis entities.Analysis
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&analysis).Error
	if err == nil {
		return &analysis, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &entities.Analysis{
		ID:     uuid.New(),
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (r *analysisRepository) SaveAnalysis(ctx context.Context, analysis *entities.Analysis) error {
	return r.db.WithContext(ctx).Save(analysis).Error
}

func (r *analysisRepository) SumPeopleServedByNgo(ctx context.Context, ngoID string) (int64, error) {
	var result struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Collaboration{}).
		Select("COALESCE(SUM(people_served), 0) as total").
		Where("ngo_id = ? AND status = ? AND people_served IS NOT NULL", ngoID, domain.CollaborationStatusCompleted).
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}

func (r *analysisRepository) SumPeopleServedByNgoSince(ctx context.Context, ngoID string, since time.Time) (int64, error) {
	var result struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Collaboration{}).
		Select("COALESCE(SUM(people_served), 0) as total").
		Where("ngo_id = ? AND status = ? AND people_served IS NOT NULL AND completion_date >= ?",
			ngoID, domain.CollaborationStatusCompleted, since).
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}
