package setup

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eduardo/groundwork/internal/domain"
	"github.com/eduardo/groundwork/internal/infrastructure"
)

// fakeRunner records every command and succeeds unless told otherwise.
type fakeRunner struct {
	calls    []string
	dirs     []string
	failOn   string // command substring that exits non-zero
	spawnErr error
}

func (r *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) (domain.CommandResult, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, cmd)
	r.dirs = append(r.dirs, dir)

	if r.spawnErr != nil {
		return domain.CommandResult{ExitCode: -1}, r.spawnErr
	}
	if r.failOn != "" && strings.Contains(cmd, r.failOn) {
		return domain.CommandResult{ExitCode: 1, Stderr: "simulated failure"}, nil
	}
	return domain.CommandResult{}, nil
}

func (r *fakeRunner) calledWith(substr string) bool {
	for _, c := range r.calls {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

// listTree returns every path under root, relative and sorted.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(paths)
	return paths
}

func sqliteConfig() domain.ProjectConfig {
	return domain.ProjectConfig{
		Name:             "demo",
		Description:      "x",
		Version:          "0.1.0",
		DatabaseType:     domain.DatabaseSQL,
		DatabaseProvider: domain.ProviderSQLite,
	}
}

var osFS = infrastructure.NewOSFileSystem()
var engine = infrastructure.NewGoTemplateEngine()
