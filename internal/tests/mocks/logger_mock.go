package mocks

import "sync"

// LoggerMock satisfies the wails logger.Logger interface and keeps the
// messages per level.
type LoggerMock struct {
	mu       sync.Mutex
	Messages map[string][]string
}

func (l *LoggerMock) add(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Messages == nil {
		l.Messages = map[string][]string{}
	}
	l.Messages[level] = append(l.Messages[level], message)
}

func (l *LoggerMock) Get(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.Messages[level]...)
}

func (l *LoggerMock) Print(message string)   { l.add("print", message) }
func (l *LoggerMock) Trace(message string)   { l.add("trace", message) }
func (l *LoggerMock) Debug(message string)   { l.add("debug", message) }
func (l *LoggerMock) Info(message string)    { l.add("info", message) }
func (l *LoggerMock) Warning(message string) { l.add("warning", message) }
func (l *LoggerMock) Error(message string)   { l.add("error", message) }
func (l *LoggerMock) Fatal(message string)   { l.add("fatal", message) }
