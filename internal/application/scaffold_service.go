package application

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/eduardo/groundwork/internal/domain"
	"github.com/eduardo/groundwork/internal/manifest"
	"github.com/eduardo/groundwork/internal/setup"
)

// ScaffoldService implements domain.ScaffoldServicePort. It validates the
// config, binds the fixed phase list to the target directory, and runs
// the pipeline. Two concurrent runs against the same target are undefined
// behavior; a target that already exists and is not empty is rejected
// before any phase runs.
type ScaffoldService struct {
	fs       domain.FileSystemPort
	template domain.TemplatePort
	runner   domain.CommandRunnerPort
	manifest manifest.Manifest
	progress domain.ProgressFunc
}

func NewScaffoldService(fs domain.FileSystemPort, template domain.TemplatePort, runner domain.CommandRunnerPort) *ScaffoldService {
	return &ScaffoldService{
		fs:       fs,
		template: template,
		runner:   runner,
		manifest: manifest.Default(),
	}
}

// WithManifest substitutes the content manifest; tests use this to write
// a smaller file set.
func (s *ScaffoldService) WithManifest(m manifest.Manifest) *ScaffoldService {
	s.manifest = m
	return s
}

// WithProgress registers a per-phase progress callback.
func (s *ScaffoldService) WithProgress(fn domain.ProgressFunc) *ScaffoldService {
	s.progress = fn
	return s
}

// PhaseNames returns the fixed phase order, for callers that report
// progress per phase.
func (s *ScaffoldService) PhaseNames() []string {
	return s.pipeline("").Names()
}

// Scaffold builds a new project in targetDir from cfg. On failure the
// returned error is a *domain.PhaseError; whatever earlier phases wrote
// stays on disk.
func (s *ScaffoldService) Scaffold(ctx context.Context, targetDir string, cfg domain.ProjectConfig) error {
	if err := cfg.Validate(); err != nil {
		return &domain.PhaseError{Phase: "configuration", Kind: domain.FailureConfig, Err: err}
	}
	if err := s.checkTarget(targetDir); err != nil {
		return &domain.PhaseError{Phase: "configuration", Kind: domain.FailureConfig, Err: err}
	}

	log.Info("scaffolding project", "name", cfg.Name, "dir", targetDir)
	return s.pipeline(targetDir).WithProgress(s.progress).Run(ctx, cfg)
}

// checkTarget rejects a target directory that already exists and is not
// empty; a missing directory is fine, the phases create what they need.
func (s *ScaffoldService) checkTarget(targetDir string) error {
	entries, err := s.fs.ReadDir(targetDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(entries) > 0 {
		return errors.New("target directory already exists and is not empty")
	}
	return nil
}

func (s *ScaffoldService) pipeline(targetDir string) *setup.Pipeline {
	return setup.NewPipeline(
		setup.NewStructurePhase(targetDir, s.fs),
		setup.NewPackageMarkerPhase(targetDir, s.fs),
		setup.NewGitPhase(targetDir, s.runner),
		setup.NewEnvironmentPhase(targetDir, s.fs, s.runner),
		setup.NewContentWriterPhase(targetDir, s.fs, s.template, s.manifest),
		setup.NewDatabasePhase(targetDir, s.fs, s.template, s.runner),
	)
}
