package setup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/groundwork/internal/domain"
)

func runEnvironment(t *testing.T, cfg domain.ProjectConfig, runner *fakeRunner) string {
	t.Helper()
	dir := t.TempDir()
	phase := NewEnvironmentPhase(dir, osFS, runner)
	require.NoError(t, phase.Configure(cfg))
	require.NoError(t, phase.Create(context.Background()))
	return dir
}

func TestEnvironmentPhaseCreatesVenvAndInstalls(t *testing.T) {
	runner := &fakeRunner{}
	runEnvironment(t, sqliteConfig(), runner)

	require.Len(t, runner.calls, 2)
	assert.Contains(t, runner.calls[0], "-m venv .venv")
	assert.Contains(t, runner.calls[1], "-m pip install -r requirements_dev.txt")
	assert.Contains(t, runner.calls[1], VenvPython(runtime.GOOS))
}

func TestEnvironmentPhaseWritesRequirements(t *testing.T) {
	cases := []struct {
		provider domain.DatabaseProvider
		want     []string
	}{
		{domain.ProviderPostgres, []string{"asyncpg", "psycopg2-binary"}},
		{domain.ProviderMySQL, []string{"aiomysql", "pymysql"}},
		{domain.ProviderSQLite, []string{"aiosqlite"}},
	}

	for _, tc := range cases {
		cfg := sqliteConfig()
		cfg.DatabaseProvider = tc.provider

		dir := runEnvironment(t, cfg, &fakeRunner{})
		data, err := os.ReadFile(filepath.Join(dir, "requirements.txt"))
		require.NoError(t, err)

		content := string(data)
		assert.Contains(t, content, "fastapi")
		assert.Contains(t, content, "uvicorn")
		assert.Contains(t, content, "sqlalchemy")
		assert.Contains(t, content, "alembic")
		for _, pkg := range tc.want {
			assert.Contains(t, content, pkg, "%s missing for %s", pkg, tc.provider)
		}
	}
}

func TestEnvironmentPhaseNoSQLSkipsDrivers(t *testing.T) {
	cfg := domain.ProjectConfig{
		Name:             "demo",
		DatabaseType:     domain.DatabaseNoSQL,
		DatabaseProvider: domain.ProviderMongoDB,
	}

	dir := runEnvironment(t, cfg, &fakeRunner{})
	data, err := os.ReadFile(filepath.Join(dir, "requirements.txt"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "fastapi")
	assert.NotContains(t, content, "sqlalchemy")
	assert.NotContains(t, content, "alembic")
}

func TestEnvironmentPhaseWritesDevRequirements(t *testing.T) {
	dir := runEnvironment(t, sqliteConfig(), &fakeRunner{})

	data, err := os.ReadFile(filepath.Join(dir, "requirements_dev.txt"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "-r requirements.txt")
	assert.Contains(t, content, "pytest")
	assert.Contains(t, content, "ruff")
}

func TestEnvironmentPhaseWritesPyproject(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Version = "2.5.0"
	dir := runEnvironment(t, cfg, &fakeRunner{})

	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	require.NoError(t, err)

	var parsed pyprojectFile
	require.NoError(t, toml.Unmarshal(data, &parsed))
	assert.Equal(t, "demo", parsed.Project.Name)
	assert.Equal(t, "2.5.0", parsed.Project.Version)
	assert.Equal(t, "x", parsed.Project.Description)
	assert.Contains(t, parsed.Project.Dependencies, "fastapi")
	assert.Contains(t, parsed.Project.Dependencies, "aiosqlite")
}

func TestEnvironmentPhasePyprojectDefaultVersion(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Version = ""
	dir := runEnvironment(t, cfg, &fakeRunner{})

	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	require.NoError(t, err)

	var parsed pyprojectFile
	require.NoError(t, toml.Unmarshal(data, &parsed))
	assert.Equal(t, domain.DefaultVersion, parsed.Project.Version)
}

func TestEnvironmentPhaseFailsOnVenvError(t *testing.T) {
	runner := &fakeRunner{failOn: "venv"}
	phase := NewEnvironmentPhase(t.TempDir(), osFS, runner)
	require.NoError(t, phase.Configure(sqliteConfig()))

	err := phase.Create(context.Background())
	require.Error(t, err)

	var ferr *domain.FailureError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, domain.FailureSubprocess, ferr.Kind)
	assert.Contains(t, ferr.Output, "simulated failure")
}

func TestEnvironmentPhaseFailsOnInstallError(t *testing.T) {
	runner := &fakeRunner{failOn: "pip install"}
	phase := NewEnvironmentPhase(t.TempDir(), osFS, runner)
	require.NoError(t, phase.Configure(sqliteConfig()))

	err := phase.Create(context.Background())
	require.Error(t, err)

	var ferr *domain.FailureError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, domain.FailureSubprocess, ferr.Kind)
}
