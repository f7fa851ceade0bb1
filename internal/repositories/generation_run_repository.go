package repositories

import (
	"context"

	"gorm.io/gorm"

	"dbforge/internal/models"
)

type GenerationRunRepository interface {
	Create(ctx context.Context, run *models.GenerationRun) error
	ListRecent(ctx context.Context, limit int) ([]models.GenerationRun, error)
	ListByTarget(ctx context.Context, targetProject string, limit int) ([]models.GenerationRun, error)
}

type generationRunRepository struct {
	db *gorm.DB
}

func NewGenerationRunRepository(db *gorm.DB) GenerationRunRepository {
	return &generationRunRepository{db: db}
}

func (r *generationRunRepository) Create(ctx context.Context, run *models.GenerationRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *generationRunRepository) ListRecent(ctx context.Context, limit int) ([]models.GenerationRun, error) {
	var runs []models.GenerationRun
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *generationRunRepository) ListByTarget(ctx context.Context, targetProject string, limit int) ([]models.GenerationRun, error) {
	var runs []models.GenerationRun
	q := r.db.WithContext(ctx).Where("target_project = ?", targetProject).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
