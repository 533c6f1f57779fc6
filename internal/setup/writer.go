package setup

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/eduardo/groundwork/internal/domain"
	"github.com/eduardo/groundwork/internal/manifest"
)

// ContentWriterPhase renders every manifest entry against the project
// config and writes it under the target directory. Writes are
// unconditional: an existing file is replaced, not merged. Entries are
// independent of each other, so output is a pure function of manifest
// and config.
type ContentWriterPhase struct {
	location string
	fs       domain.FileSystemPort
	template domain.TemplatePort
	manifest manifest.Manifest
	data     manifest.Data
}

func NewContentWriterPhase(location string, fs domain.FileSystemPort, template domain.TemplatePort, m manifest.Manifest) *ContentWriterPhase {
	return &ContentWriterPhase{location: location, fs: fs, template: template, manifest: m}
}

func (p *ContentWriterPhase) Name() string { return "contents" }

func (p *ContentWriterPhase) Configure(cfg domain.ProjectConfig) error {
	p.data = manifest.DataFromConfig(cfg)
	return nil
}

func (p *ContentWriterPhase) Create(ctx context.Context) error {
	for _, entry := range p.manifest.Entries() {
		content, err := p.template.Render(entry.Path, entry.Template, p.data)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", entry.Path, err)
		}

		target := filepath.Join(p.location, entry.Path)
		if err := p.fs.MkdirAll(filepath.Dir(target)); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", entry.Path, err)
		}
		if err := p.fs.WriteFile(target, content); err != nil {
			return fmt.Errorf("failed to write %s: %w", entry.Path, err)
		}
	}
	return nil
}
