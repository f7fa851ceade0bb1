package mocks

import (
	"context"

	"dbforge/internal/models"
)

type GenerationRunRepositoryMock struct {
	CreateFunc       func(ctx context.Context, run *models.GenerationRun) error
	ListRecentFunc   func(ctx context.Context, limit int) ([]models.GenerationRun, error)
	ListByTargetFunc func(ctx context.Context, targetProject string, limit int) ([]models.GenerationRun, error)
}

func (m *GenerationRunRepositoryMock) Create(ctx context.Context, run *models.GenerationRun) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, run)
	}
	return nil
}

func (m *GenerationRunRepositoryMock) ListRecent(ctx context.Context, limit int) ([]models.GenerationRun, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return []models.GenerationRun{}, nil
}

func (m *GenerationRunRepositoryMock) ListByTarget(ctx context.Context, targetProject string, limit int) ([]models.GenerationRun, error) {
	if m.ListByTargetFunc != nil {
		return m.ListByTargetFunc(ctx, targetProject, limit)
	}
	return []models.GenerationRun{}, nil
}
