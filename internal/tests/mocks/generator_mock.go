package mocks

import (
	"context"

	"dbforge/internal/generator"
	"dbforge/internal/models"
)

type GeneratorMock struct {
	GenerateFunc func(ctx context.Context, cfg models.GeneratorConfig, progress generator.Progress) (*generator.Report, error)

	Calls []models.GeneratorConfig
}

func (m *GeneratorMock) Generate(ctx context.Context, cfg models.GeneratorConfig, progress generator.Progress) (*generator.Report, error) {
	m.Calls = append(m.Calls, cfg)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, cfg, progress)
	}
	return &generator.Report{}, nil
}
