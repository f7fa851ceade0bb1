// Package crashlog recovers panics and appends their stack traces to a sink.
package crashlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultFile is the crash log name, relative to the working directory.
const DefaultFile = "crash.log"

// Boundary is the top-level error boundary. Install one per process and defer
// Recover at every entry point that can panic.
type Boundary struct {
	mu    sync.Mutex
	sink  io.Writer
	alert func(message string)
	now   func() time.Time
}

// NewBoundary writes reports to sink. alert is called, if non-nil, when the
// sink itself fails.
func NewBoundary(sink io.Writer, alert func(message string)) *Boundary {
	return &Boundary{sink: sink, alert: alert, now: time.Now}
}

// SetAlert replaces the fallback alert, e.g. once the UI is up.
func (b *Boundary) SetAlert(alert func(message string)) {
	b.mu.Lock()
	b.alert = alert
	b.mu.Unlock()
}

// Recover must be deferred directly. It swallows the panic after reporting it.
func (b *Boundary) Recover() {
	if r := recover(); r != nil {
		b.Report(r)
	}
}

// Go runs fn on a new goroutine guarded by the boundary.
func (b *Boundary) Go(fn func()) {
	go func() {
		defer b.Recover()
		fn()
	}()
}

// Report appends r with a stack trace to the sink.
func (b *Boundary) Report(r any) {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	entry := fmt.Sprintf("%s panic: %+v\n\n", b.now().Format(time.RFC3339), errors.WithStack(err))

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, werr := io.WriteString(b.sink, entry); werr != nil && b.alert != nil {
		b.alert(werr.Error())
	}
}

// FileSink appends to a file, opening it for every write.
type FileSink struct {
	Path string
}

func (s FileSink) Write(p []byte) (int, error) {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	n, err := f.Write(p)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
