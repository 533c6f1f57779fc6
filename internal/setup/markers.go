package setup

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/eduardo/groundwork/internal/domain"
)

// MarkerFiles returns the __init__.py paths that make each generated
// directory an importable Python package, relative to the project root.
func MarkerFiles() []string {
	files := []string{
		filepath.Join("app", "__init__.py"),
		filepath.Join("tests", "__init__.py"),
	}
	for _, pkg := range appPackages {
		files = append(files, filepath.Join("app", pkg, "__init__.py"))
	}
	for _, pkg := range appPackages {
		files = append(files, filepath.Join("tests", pkg, "__init__.py"))
	}
	return files
}

// PackageMarkerPhase creates an empty __init__.py in every package
// directory. Runs after the structure phase; idempotent.
type PackageMarkerPhase struct {
	location string
	fs       domain.FileSystemPort
}

func NewPackageMarkerPhase(location string, fs domain.FileSystemPort) *PackageMarkerPhase {
	return &PackageMarkerPhase{location: location, fs: fs}
}

func (p *PackageMarkerPhase) Name() string { return "packages" }

func (p *PackageMarkerPhase) Create(ctx context.Context) error {
	for _, file := range MarkerFiles() {
		if err := p.fs.EnsureFile(filepath.Join(p.location, file)); err != nil {
			return fmt.Errorf("failed to create package marker %s: %w", file, err)
		}
	}
	return nil
}
