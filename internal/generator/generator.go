// Package generator turns a database schema into Go entity and service code
// inside a target project.
package generator

import (
	"context"

	"dbforge/internal/models"
)

// Progress receives a short description of each generation stage. It may be nil.
type Progress func(stage string)

func (p Progress) report(stage string) {
	if p != nil {
		p(stage)
	}
}

// Generator produces source files for cfg. A failed run returns an *Error.
type Generator interface {
	Generate(ctx context.Context, cfg models.GeneratorConfig, progress Progress) (*Report, error)
}

// Report lists the files a run wrote, relative to the target project.
type Report struct {
	EntityFiles  []string `json:"entityFiles"`
	QueryFiles   []string `json:"queryFiles"`
	ServiceFiles []string `json:"serviceFiles"`
	// Skipped holds service files that already existed and were left alone.
	Skipped []string `json:"skipped"`
}

func (r *Report) FileCount() int {
	if r == nil {
		return 0
	}
	return len(r.EntityFiles) + len(r.QueryFiles) + len(r.ServiceFiles)
}
