package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"dbforge/internal/models"
	"dbforge/internal/repositories"
)

const defaultRunLimit = 20

type GenerationRunService interface {
	Record(ctx context.Context, cfg models.GeneratorConfig, fileCount int) (*models.GenerationRun, error)
	Recent(ctx context.Context, limit int) ([]models.GenerationRun, error)
	ForTarget(ctx context.Context, targetProject string, limit int) ([]models.GenerationRun, error)
}

type generationRunService struct {
	repo repositories.GenerationRunRepository
	now  func() time.Time
}

func NewGenerationRunService(repo repositories.GenerationRunRepository) GenerationRunService {
	return &generationRunService{repo: repo, now: time.Now}
}

func (s *generationRunService) Record(ctx context.Context, cfg models.GeneratorConfig, fileCount int) (*models.GenerationRun, error) {
	if strings.TrimSpace(cfg.TargetProjectPath) == "" {
		return nil, errors.New("target project is required")
	}
	run := &models.GenerationRun{
		ID:            uuid.NewString(),
		TargetProject: cfg.TargetProjectPath,
		ConnectionURL: cfg.ConnectionURL,
		Tables:        cfg.Tables.String(),
		Domains:       cfg.Domains.String(),
		Author:        cfg.AuthorName,
		FileCount:     fileCount,
		CreatedAt:     s.now(),
	}
	if err := s.repo.Create(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *generationRunService) Recent(ctx context.Context, limit int) ([]models.GenerationRun, error) {
	if limit <= 0 {
		limit = defaultRunLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *generationRunService) ForTarget(ctx context.Context, targetProject string, limit int) ([]models.GenerationRun, error) {
	targetProject = strings.TrimSpace(targetProject)
	if targetProject == "" {
		return nil, errors.New("target project is required")
	}
	if limit <= 0 {
		limit = defaultRunLimit
	}
	return s.repo.ListByTarget(ctx, targetProject, limit)
}
