package setup

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructurePhaseCreatesAllDirs(t *testing.T) {
	dir := t.TempDir()
	phase := NewStructurePhase(dir, osFS)

	require.NoError(t, phase.Create(context.Background()))

	for _, sub := range []string{
		"app", "scripts", "tests",
		filepath.Join("app", "api"),
		filepath.Join("app", "core"),
		filepath.Join("app", "database"),
		filepath.Join("app", "models"),
		filepath.Join("app", "repositories"),
		filepath.Join("app", "schemas"),
		filepath.Join("app", "services"),
		filepath.Join("app", "templates"),
		filepath.Join("app", "utils"),
		filepath.Join("app", "workers"),
		filepath.Join("tests", "api"),
		filepath.Join("tests", "services"),
	} {
		assert.DirExists(t, filepath.Join(dir, sub))
	}
}

func TestStructurePhaseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	phase := NewStructurePhase(dir, osFS)

	require.NoError(t, phase.Create(context.Background()))
	first := listTree(t, dir)

	require.NoError(t, phase.Create(context.Background()))
	assert.Equal(t, first, listTree(t, dir))
}

func TestPackageMarkerPhaseCreatesInitFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewStructurePhase(dir, osFS).Create(context.Background()))

	phase := NewPackageMarkerPhase(dir, osFS)
	require.NoError(t, phase.Create(context.Background()))

	for _, marker := range []string{
		filepath.Join("app", "__init__.py"),
		filepath.Join("tests", "__init__.py"),
		filepath.Join("app", "api", "__init__.py"),
		filepath.Join("app", "database", "__init__.py"),
		filepath.Join("tests", "workers", "__init__.py"),
	} {
		assert.FileExists(t, filepath.Join(dir, marker))
	}
}

func TestPackageMarkerPhaseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewStructurePhase(dir, osFS).Create(context.Background()))

	phase := NewPackageMarkerPhase(dir, osFS)
	require.NoError(t, phase.Create(context.Background()))
	first := listTree(t, dir)

	require.NoError(t, phase.Create(context.Background()))
	assert.Equal(t, first, listTree(t, dir))
}

func TestMarkerFilesCoverEveryProjectDir(t *testing.T) {
	// every package dir gets a marker: app, tests, and one per package
	assert.Len(t, MarkerFiles(), 2+2*len(appPackages))
}
