package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var serviceTemplate = template.Must(template.New("service").Parse(`// Code generated by dbforge for table {{.Table}}.
// Author: {{.Author}}

package {{.Package}}

import (
	"context"

	"{{.EntityImport}}"
)

// {{.Domain}}Service wraps the generated query API for {{.Table}}.
type {{.Domain}}Service struct {
	q *Query
}

func New{{.Domain}}Service(q *Query) *{{.Domain}}Service {
	return &{{.Domain}}Service{q: q}
}

func (s *{{.Domain}}Service) List(ctx context.Context, offset, limit int) ([]*{{.EntityPkg}}.{{.Domain}}, error) {
	return s.q.{{.Domain}}.WithContext(ctx).Offset(offset).Limit(limit).Find()
}

func (s *{{.Domain}}Service) Count(ctx context.Context) (int64, error) {
	return s.q.{{.Domain}}.WithContext(ctx).Count()
}

func (s *{{.Domain}}Service) Create(ctx context.Context, v *{{.EntityPkg}}.{{.Domain}}) error {
	return s.q.{{.Domain}}.WithContext(ctx).Create(v)
}

func (s *{{.Domain}}Service) Save(ctx context.Context, v *{{.EntityPkg}}.{{.Domain}}) error {
	return s.q.{{.Domain}}.WithContext(ctx).Save(v)
}
`))

type serviceData struct {
	Table        string
	Domain       string
	Author       string
	Package      string
	EntityImport string
	EntityPkg    string
}

// renderService renders and gofmt-formats the service file for one table.
func renderService(data serviceData) ([]byte, error) {
	var buf bytes.Buffer
	if err := serviceTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render service for %s: %w", data.Table, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format service for %s: %w", data.Table, err)
	}
	return src, nil
}

func serviceFileName(table string) string {
	name := strings.ToLower(strings.TrimSpace(table))
	name = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, name)
	return name + "_service.go"
}

// writeServices writes one service file per mapping. Existing files are kept.
func writeServices(l *Layout, author string, pairs []serviceData) (written, skipped []string, err error) {
	if err := os.MkdirAll(l.ServiceDir, 0o755); err != nil {
		return nil, nil, wrap(ErrIO, err)
	}
	for _, d := range pairs {
		d.Author = author
		d.Package = l.ServicePkg
		d.EntityImport = l.EntityImport
		d.EntityPkg = l.EntityPkg

		target := filepath.Join(l.ServiceDir, serviceFileName(d.Table))
		if _, statErr := os.Stat(target); statErr == nil {
			skipped = append(skipped, l.rel(target))
			continue
		}

		src, renderErr := renderService(d)
		if renderErr != nil {
			return written, skipped, wrap(ErrInvalidConfig, renderErr)
		}
		if writeErr := os.WriteFile(target, src, 0o644); writeErr != nil {
			return written, skipped, wrap(ErrIO, writeErr)
		}
		written = append(written, l.rel(target))
	}
	return written, skipped, nil
}
