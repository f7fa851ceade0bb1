package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	GenerateStarted  = "events:generate:started"
	GenerateProgress = "events:generate:progress"
	GenerateDone     = "events:generate:done"
	GenerateFailed   = "events:generate:failed"
)

// GenerationEvent is the payload pushed to the front end while a generation runs.
type GenerationEvent struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func CreateEvent(eventType EventType, message string) GenerationEvent {
	return GenerationEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info GenerationEvent.
func NewInfo(message string) GenerationEvent {
	return CreateEvent(EventInfo, message)
}

// NewError creates an error GenerationEvent.
func NewError(message string) GenerationEvent {
	return CreateEvent(EventError, message)
}

// NewSuccess creates a success GenerationEvent.
func NewSuccess(message string) GenerationEvent {
	return CreateEvent(EventSuccess, message)
}

// WithMetadata returns a copy of e carrying key=value.
func (e GenerationEvent) WithMetadata(key, value string) GenerationEvent {
	md := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	e.Metadata = md
	return e
}
