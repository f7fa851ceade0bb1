package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbforge/internal/config"
	"dbforge/internal/generator"
	"dbforge/internal/models"
	"dbforge/internal/services"
	"dbforge/internal/tests/mocks"
)

type testEnv struct {
	rt     *Runtime
	out    *bytes.Buffer
	errOut *bytes.Buffer
	gen    *mocks.GeneratorMock
	opener *mocks.OpenerMock
	target string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		gen: &mocks.GeneratorMock{
			GenerateFunc: func(ctx context.Context, cfg models.GeneratorConfig, progress generator.Progress) (*generator.Report, error) {
				progress("connecting")
				return &generator.Report{
					EntityFiles:  []string{"internal/entity/t_order.gen.go"},
					ServiceFiles: []string{"internal/service/t_order_service.go"},
				}, nil
			},
		},
		opener: &mocks.OpenerMock{},
		target: t.TempDir(),
	}
	env.rt = &Runtime{
		Out: env.out,
		Err: env.errOut,
		Config: config.Config{
			WorkDir:        dir,
			SettingsPath:   filepath.Join(dir, services.DefaultSettingsFile),
			CrashLogPath:   filepath.Join(dir, "crash.log"),
			HistoryDBPath:  filepath.Join(dir, "history.db"),
			KeyringService: "dbforge-test",
		},
		Credentials: services.NewKeyringService(keyring.NewArrayKeyring(nil)),
		Generator:   env.gen,
		Opener:      env.opener,
	}
	return env
}

func (e *testEnv) execute(args ...string) error {
	cmd := NewRootCmd(e.rt)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (e *testEnv) fullFlags() []string {
	return []string{
		"generate",
		"--url", "jdbc:mysql://localhost:3306/shop",
		"--username", "root",
		"--password", "secret",
		"--project", e.target,
		"--entity-package", "internal/entity",
		"--service-package", "internal/service",
		"--author", "alice",
		"--tables", "t_order;t_user",
	}
}

func TestRootCmdStructure(t *testing.T) {
	root := NewRootCmd(newTestEnv(t).rt)

	want := map[string]bool{"generate": false, "derive": false, "show": false, "history": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
			assert.NotEmpty(t, sub.Short, sub.Name())
		}
	}
	for name, found := range want {
		assert.True(t, found, "%s not registered", name)
	}
}

func TestDerive(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.execute("derive", "t_order;user_profile;user_id"))
	assert.Equal(t, "TOrder;UserProfile;UserId\n", env.out.String())
}

func TestDerive_GoInitialisms(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.execute("derive", "--go-initialisms", "user_id;t_url"))
	assert.Equal(t, "UserID;TURL\n", env.out.String())
}

func TestGenerate_FromFlags(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.execute(env.fullFlags()...))

	require.Len(t, env.gen.Calls, 1)
	assert.Equal(t, models.NameList{"TOrder", "TUser"}, env.gen.Calls[0].Domains)
	assert.Equal(t, []string{env.target}, env.opener.Opened)
	assert.Contains(t, env.out.String(), "Generated 2 files")
	assert.Contains(t, env.out.String(), "internal/service/t_order_service.go")
	assert.Contains(t, env.errOut.String(), "connecting")

	data, err := os.ReadFile(env.rt.Config.SettingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "t_order;t_user")
	assert.NotContains(t, string(data), "secret")
}

func TestGenerate_NoOpen(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.execute(append(env.fullFlags(), "--no-open")...))
	assert.Len(t, env.gen.Calls, 1)
	assert.Empty(t, env.opener.Opened)
}

func TestGenerate_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)
	args := env.fullFlags()
	args = append(args, "--password", "")

	err := env.execute(args...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReported))
	assert.Contains(t, env.errOut.String(), "Password must not be blank")
	assert.Empty(t, env.gen.Calls)
	assert.NoFileExists(t, env.rt.Config.SettingsPath)
}

func TestGenerate_RestoredSettingsWithTableOverride(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.execute(env.fullFlags()...))

	require.NoError(t, env.execute("generate", "--tables", "order_item", "--no-open"))

	require.Len(t, env.gen.Calls, 2)
	second := env.gen.Calls[1]
	assert.Equal(t, models.NameList{"order_item"}, second.Tables)
	assert.Equal(t, models.NameList{"OrderItem"}, second.Domains)
	assert.Equal(t, "secret", second.Password)
	assert.Equal(t, env.target, second.TargetProjectPath)
}

func TestGenerate_TablesFile(t *testing.T) {
	env := newTestEnv(t)
	tablesFile := filepath.Join(t.TempDir(), "tables.txt")
	require.NoError(t, os.WriteFile(tablesFile, []byte("# shop\nt_order\nt_user\n"), 0o644))

	args := env.fullFlags()
	args = args[:len(args)-2]
	args = append(args, "--tables-file", tablesFile, "--no-open")
	require.NoError(t, env.execute(args...))

	require.Len(t, env.gen.Calls, 1)
	assert.Equal(t, models.NameList{"t_order", "t_user"}, env.gen.Calls[0].Tables)
}

func TestGenerate_TablesAndTablesFileConflict(t *testing.T) {
	env := newTestEnv(t)

	err := env.execute(append(env.fullFlags(), "--tables-file", "x.txt")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --tables or --tables-file")
	assert.Empty(t, env.gen.Calls)
}

func TestGenerate_GeneratorFailure(t *testing.T) {
	env := newTestEnv(t)
	env.gen.GenerateFunc = func(ctx context.Context, cfg models.GeneratorConfig, progress generator.Progress) (*generator.Report, error) {
		return nil, &generator.Error{Kind: generator.ErrDriverNotFound, Err: errors.New(`unsupported connection URL scheme "postgres"`)}
	}

	err := env.execute(env.fullFlags()...)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, env.errOut.String(), "postgres")
	assert.NoFileExists(t, env.rt.Config.SettingsPath)
	assert.Empty(t, env.opener.Opened)
}

func TestShow(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.execute("show"))
	assert.Contains(t, env.out.String(), "No saved settings")

	require.NoError(t, env.execute(append(env.fullFlags(), "--no-open")...))
	env.out.Reset()

	require.NoError(t, env.execute("show"))
	assert.Contains(t, env.out.String(), `"password": "********"`)
	assert.Contains(t, env.out.String(), `"tables": "t_order;t_user"`)
	assert.NotContains(t, env.out.String(), "secret")
}

func TestHistory(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.execute("history"))
	assert.Contains(t, env.out.String(), "No generation runs recorded.")

	require.NoError(t, env.execute(append(env.fullFlags(), "--no-open")...))
	env.out.Reset()

	require.NoError(t, env.execute("history", "--limit", "5"))
	assert.Contains(t, env.out.String(), "t_order;t_user -> "+env.target+" (2 files)")

	env.out.Reset()
	require.NoError(t, env.execute("history", "--project", "/elsewhere"))
	assert.Contains(t, env.out.String(), "No generation runs recorded.")
}
