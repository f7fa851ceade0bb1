package generator

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"dbforge/internal/models"
)

// Layout is where a run writes inside the target project.
type Layout struct {
	Root          string
	ModulePath    string
	EntityDir     string
	EntityImport  string
	EntityPkg     string
	ServiceDir    string
	ServiceImport string
	ServicePkg    string
}

// ResolveLayout reads the target project's go.mod and maps the entity and
// service package names onto directories and import paths.
func ResolveLayout(cfg models.GeneratorConfig) (*Layout, error) {
	root, err := filepath.Abs(strings.TrimSpace(cfg.TargetProjectPath))
	if err != nil {
		return nil, wrap(ErrInvalidConfig, err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, newError(ErrInvalidConfig, "target project %q is not a directory", root)
	}

	modulePath, err := readModulePath(filepath.Join(root, "go.mod"))
	if err != nil {
		return nil, err
	}

	entityRel, err := NormalizePackagePath(cfg.EntityPackageName)
	if err != nil {
		return nil, err
	}
	serviceRel, err := NormalizePackagePath(cfg.ServicePackageName)
	if err != nil {
		return nil, err
	}
	if entityRel == serviceRel {
		return nil, newError(ErrInvalidConfig, "entity and service packages must differ, both are %q", entityRel)
	}

	l := &Layout{
		Root:          root,
		ModulePath:    modulePath,
		EntityDir:     filepath.Join(root, filepath.FromSlash(entityRel)),
		EntityImport:  path.Join(modulePath, entityRel),
		EntityPkg:     path.Base(entityRel),
		ServiceDir:    filepath.Join(root, filepath.FromSlash(serviceRel)),
		ServiceImport: path.Join(modulePath, serviceRel),
		ServicePkg:    path.Base(serviceRel),
	}
	for _, p := range []string{l.EntityImport, l.ServiceImport} {
		if err := module.CheckImportPath(p); err != nil {
			return nil, wrap(ErrInvalidConfig, err)
		}
	}
	return l, nil
}

// NormalizePackagePath turns "internal/model", "./internal/model" or the
// dotted "internal.model" into a clean slash-separated relative path.
func NormalizePackagePath(name string) (string, error) {
	p := strings.TrimSpace(name)
	p = strings.TrimPrefix(p, "./")
	p = strings.ReplaceAll(p, "\\", "/")
	if !strings.Contains(p, "/") {
		p = strings.ReplaceAll(p, ".", "/")
	}
	p = path.Clean(p)
	if p == "." || p == "" || path.IsAbs(p) || p == ".." || strings.HasPrefix(p, "../") {
		return "", newError(ErrInvalidConfig, "package %q must be a path inside the target project", name)
	}
	return p, nil
}

func readModulePath(goModPath string) (string, error) {
	data, err := os.ReadFile(goModPath)
	if os.IsNotExist(err) {
		return "", newError(ErrInvalidConfig, "target project has no go.mod at %s", goModPath)
	}
	if err != nil {
		return "", wrap(ErrIO, err)
	}
	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", newError(ErrInvalidConfig, "go.mod at %s declares no module path", goModPath)
	}
	return modulePath, nil
}

// rel returns p relative to the layout root, slash separated.
func (l *Layout) rel(p string) string {
	r, err := filepath.Rel(l.Root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(r)
}
