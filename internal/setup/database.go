package setup

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/eduardo/groundwork/internal/domain"
	"github.com/eduardo/groundwork/internal/manifest"
)

// MigrationsDir is the Alembic bookkeeping directory created for sql
// configs, relative to the project root.
const MigrationsDir = "migrations"

// DatabasePhase runs the backend-specific configuration routine selected
// by the config's database type. The sql branch writes the session
// module and initializes Alembic; the nosql branch is accepted but
// produces no artifacts yet.
type DatabasePhase struct {
	location string
	fs       domain.FileSystemPort
	template domain.TemplatePort
	runner   domain.CommandRunnerPort
	goos     string
	cfg      domain.ProjectConfig
}

func NewDatabasePhase(location string, fs domain.FileSystemPort, template domain.TemplatePort, runner domain.CommandRunnerPort) *DatabasePhase {
	return &DatabasePhase{location: location, fs: fs, template: template, runner: runner, goos: runtime.GOOS}
}

func (p *DatabasePhase) Name() string { return "database" }

func (p *DatabasePhase) Configure(cfg domain.ProjectConfig) error {
	p.cfg = cfg
	return nil
}

// Create dispatches on the database type and fails closed: an
// unrecognized value is a configuration error raised before any
// filesystem mutation.
func (p *DatabasePhase) Create(ctx context.Context) error {
	switch p.cfg.DatabaseType {
	case domain.DatabaseSQL:
		return p.setupSQL(ctx)
	case domain.DatabaseNoSQL:
		// Accepted input, zero side effects.
		log.Debug("nosql database selected, nothing to configure yet")
		return nil
	default:
		return domain.ConfigErrorf("unsupported database type %q", p.cfg.DatabaseType)
	}
}

func (p *DatabasePhase) setupSQL(ctx context.Context) error {
	data := manifest.DataFromConfig(p.cfg)

	session, err := p.template.Render("session.py", manifest.SessionTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render session module: %w", err)
	}
	sessionPath := filepath.Join(p.location, "app", "database", "session.py")
	if err := p.fs.WriteFile(sessionPath, session); err != nil {
		return fmt.Errorf("failed to write session module: %w", err)
	}

	initPath := filepath.Join(p.location, "app", "database", "__init__.py")
	if err := p.fs.WriteFile(initPath, []byte(manifest.DatabaseInitTemplate)); err != nil {
		return fmt.Errorf("failed to write database package init: %w", err)
	}

	if err := p.initAlembic(ctx); err != nil {
		return err
	}

	// Replace the generated env.py so migrations read the connection URL
	// from the project settings instead of alembic.ini.
	envPath := filepath.Join(p.location, MigrationsDir, "env.py")
	if err := p.fs.WriteFile(envPath, []byte(manifest.AlembicEnvTemplate)); err != nil {
		return fmt.Errorf("failed to write migrations env.py: %w", err)
	}
	return nil
}

func (p *DatabasePhase) initAlembic(ctx context.Context) error {
	python := VenvPython(p.goos)
	result, err := p.runner.Run(ctx, p.location, python, "-m", "alembic", "init", "-t", "async", MigrationsDir)
	if err != nil {
		return domain.SubprocessError(result.Output(),
			fmt.Errorf("failed to initialize alembic: %w", err))
	}
	if result.ExitCode != 0 {
		return domain.SubprocessError(result.Output(),
			fmt.Errorf("alembic init exited with code %d", result.ExitCode))
	}

	// env.py is written next and needs the directory to exist.
	if err := p.fs.MkdirAll(filepath.Join(p.location, MigrationsDir)); err != nil {
		return fmt.Errorf("failed to create migrations directory: %w", err)
	}
	return nil
}
