package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbforge/internal/models"
)

func writeGoMod(t *testing.T, dir, modulePath string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module "+modulePath+"\n\ngo 1.22\n"), 0o644))
}

func TestNormalizePackagePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "internal/model", want: "internal/model"},
		{in: "./internal/model/", want: "internal/model"},
		{in: "com.acme.entity", want: "com/acme/entity"},
		{in: " model ", want: "model"},
		{in: "api/v1.2", want: "api/v1.2"},
	}
	for _, tt := range tests {
		got, err := NormalizePackagePath(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNormalizePackagePath_RejectsOutsideTarget(t *testing.T) {
	for _, in := range []string{"", ".", "../model", "/abs/model"} {
		_, err := NormalizePackagePath(in)
		assert.True(t, errors.Is(err, ErrInvalidConfig), in)
	}
}

func TestResolveLayout(t *testing.T) {
	root := t.TempDir()
	writeGoMod(t, root, "example.com/shop")

	l, err := ResolveLayout(models.GeneratorConfig{
		TargetProjectPath:  root,
		EntityPackageName:  "internal.entity",
		ServicePackageName: "internal/service",
	})
	require.NoError(t, err)
	assert.Equal(t, "example.com/shop", l.ModulePath)
	assert.Equal(t, filepath.Join(root, "internal", "entity"), l.EntityDir)
	assert.Equal(t, "example.com/shop/internal/entity", l.EntityImport)
	assert.Equal(t, "entity", l.EntityPkg)
	assert.Equal(t, "example.com/shop/internal/service", l.ServiceImport)
	assert.Equal(t, "service", l.ServicePkg)
}

func TestResolveLayout_MissingGoMod(t *testing.T) {
	_, err := ResolveLayout(models.GeneratorConfig{
		TargetProjectPath:  t.TempDir(),
		EntityPackageName:  "model",
		ServicePackageName: "service",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "go.mod")
}

func TestResolveLayout_TargetNotDirectory(t *testing.T) {
	_, err := ResolveLayout(models.GeneratorConfig{
		TargetProjectPath:  filepath.Join(t.TempDir(), "missing"),
		EntityPackageName:  "model",
		ServicePackageName: "service",
	})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestResolveLayout_SamePackages(t *testing.T) {
	root := t.TempDir()
	writeGoMod(t, root, "example.com/shop")

	_, err := ResolveLayout(models.GeneratorConfig{
		TargetProjectPath:  root,
		EntityPackageName:  "internal/model",
		ServicePackageName: "internal.model",
	})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
