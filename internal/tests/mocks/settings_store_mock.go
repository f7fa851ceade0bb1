package mocks

import (
	"dbforge/internal/models"
)

type SettingsStoreMock struct {
	SaveFunc func(cfg models.GeneratorConfig) error
	LoadFunc func() (*models.GeneratorConfig, error)

	Saved []models.GeneratorConfig
}

func (m *SettingsStoreMock) Save(cfg models.GeneratorConfig) error {
	m.Saved = append(m.Saved, cfg)
	if m.SaveFunc != nil {
		return m.SaveFunc(cfg)
	}
	return nil
}

func (m *SettingsStoreMock) Load() (*models.GeneratorConfig, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil, nil
}
