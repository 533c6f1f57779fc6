package setup

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/eduardo/groundwork/internal/domain"
)

// appPackages are the Python packages created under app/ and mirrored
// under tests/.
var appPackages = []string{
	"api",
	"core",
	"database",
	"models",
	"repositories",
	"schemas",
	"services",
	"templates",
	"utils",
	"workers",
}

// ProjectDirs returns every directory the structure phase creates,
// relative to the project root.
func ProjectDirs() []string {
	dirs := []string{"app", "scripts", "tests"}
	for _, pkg := range appPackages {
		dirs = append(dirs, filepath.Join("app", pkg))
	}
	for _, pkg := range appPackages {
		dirs = append(dirs, filepath.Join("tests", pkg))
	}
	return dirs
}

// StructurePhase creates the project directory skeleton. Re-running it
// against a populated directory is a no-op.
type StructurePhase struct {
	location string
	fs       domain.FileSystemPort
}

func NewStructurePhase(location string, fs domain.FileSystemPort) *StructurePhase {
	return &StructurePhase{location: location, fs: fs}
}

func (p *StructurePhase) Name() string { return "structure" }

func (p *StructurePhase) Create(ctx context.Context) error {
	for _, dir := range ProjectDirs() {
		if err := p.fs.MkdirAll(filepath.Join(p.location, dir)); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
