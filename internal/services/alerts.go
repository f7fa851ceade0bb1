package services

type AlertLevel string

const (
	AlertInfo    AlertLevel = "info"
	AlertWarning AlertLevel = "warning"
	AlertError   AlertLevel = "error"
)

// Alerter shows a modal message to the user.
type Alerter interface {
	Alert(level AlertLevel, message string)
}
