package generator

import (
	"context"
	"errors"
	"fmt"
)

// Failure kinds. Match them with errors.Is.
var (
	ErrInterrupted    = errors.New("generation interrupted")
	ErrDataAccess     = errors.New("data access failure")
	ErrInvalidConfig  = errors.New("invalid generator configuration")
	ErrIO             = errors.New("i/o failure")
	ErrDriverNotFound = errors.New("database driver not found")
)

// Error is a classified generator failure.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

func wrap(kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// checkContext converts a done context into ErrInterrupted.
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return wrap(ErrInterrupted, err)
	}
	return nil
}
