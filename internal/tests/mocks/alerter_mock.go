package mocks

import (
	"sync"

	"dbforge/internal/services"
)

type Alert struct {
	Level   services.AlertLevel
	Message string
}

// AlerterMock records every alert it is shown.
type AlerterMock struct {
	mu     sync.Mutex
	alerts []Alert
}

func (m *AlerterMock) Alert(level services.AlertLevel, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, Alert{Level: level, Message: message})
}

func (m *AlerterMock) Alerts() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Alert(nil), m.alerts...)
}
