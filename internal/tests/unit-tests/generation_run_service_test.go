package unit_tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbforge/internal/models"
	"dbforge/internal/services"
	"dbforge/internal/tests/mocks"
)

func TestGenerationRunService_Record(t *testing.T) {
	var created *models.GenerationRun
	repo := &mocks.GenerationRunRepositoryMock{
		CreateFunc: func(ctx context.Context, run *models.GenerationRun) error {
			created = run
			return nil
		},
	}
	svc := services.NewGenerationRunService(repo)

	run, err := svc.Record(context.Background(), sampleConfig(), 7)
	require.NoError(t, err)
	require.Same(t, created, run)

	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)
	assert.Equal(t, "/work/shop", run.TargetProject)
	assert.Equal(t, "t_order;t_user", run.Tables)
	assert.Equal(t, "TOrder;TUser", run.Domains)
	assert.Equal(t, "bob", run.Author)
	assert.Equal(t, 7, run.FileCount)
	assert.False(t, run.CreatedAt.IsZero())
}

func TestGenerationRunService_RecordRequiresTarget(t *testing.T) {
	svc := services.NewGenerationRunService(&mocks.GenerationRunRepositoryMock{})

	cfg := sampleConfig()
	cfg.TargetProjectPath = " "
	run, err := svc.Record(context.Background(), cfg, 1)
	assert.Nil(t, run)
	assert.EqualError(t, err, "target project is required")
}

func TestGenerationRunService_RecentDefaultsLimit(t *testing.T) {
	var gotLimit int
	repo := &mocks.GenerationRunRepositoryMock{
		ListRecentFunc: func(ctx context.Context, limit int) ([]models.GenerationRun, error) {
			gotLimit = limit
			return []models.GenerationRun{{ID: "1"}}, nil
		},
	}
	svc := services.NewGenerationRunService(repo)

	runs, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.Equal(t, 20, gotLimit)

	_, err = svc.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
}

func TestGenerationRunService_ForTarget(t *testing.T) {
	var gotTarget string
	repo := &mocks.GenerationRunRepositoryMock{
		ListByTargetFunc: func(ctx context.Context, targetProject string, limit int) ([]models.GenerationRun, error) {
			gotTarget = targetProject
			return nil, nil
		},
	}
	svc := services.NewGenerationRunService(repo)

	_, err := svc.ForTarget(context.Background(), "  /work/shop ", 0)
	require.NoError(t, err)
	assert.Equal(t, "/work/shop", gotTarget)

	_, err = svc.ForTarget(context.Background(), "", 0)
	assert.Error(t, err)
}
