package setup

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/eduardo/groundwork/internal/domain"
)

var basePackages = []string{
	"fastapi",
	"uvicorn[standard]",
	"pydantic",
	"pydantic-settings",
	"python-dotenv",
}

var devPackages = []string{
	"pytest",
	"pytest-asyncio",
	"httpx",
	"ruff",
}

var sqlCommonPackages = []string{
	"sqlalchemy",
	"alembic",
}

var sqlDriverPackages = map[domain.DatabaseProvider][]string{
	domain.ProviderPostgres: {"asyncpg", "psycopg2-binary"},
	domain.ProviderMySQL:    {"aiomysql", "pymysql"},
	domain.ProviderSQLite:   {"aiosqlite"},
}

// requirementsFor returns the dependency list for the generated project:
// the web stack plus, for sql configs, the ORM, the migration tool, and
// the provider's drivers.
func requirementsFor(cfg domain.ProjectConfig) []string {
	pkgs := append([]string{}, basePackages...)
	if cfg.DatabaseType == domain.DatabaseSQL {
		pkgs = append(pkgs, sqlCommonPackages...)
		pkgs = append(pkgs, sqlDriverPackages[cfg.DatabaseProvider]...)
	}
	return pkgs
}

// EnvironmentPhase provisions the isolated execution environment: it
// creates the virtual environment, writes the dependency manifests and
// pyproject.toml, and installs the declared dependencies with the venv's
// own interpreter.
type EnvironmentPhase struct {
	location string
	fs       domain.FileSystemPort
	runner   domain.CommandRunnerPort
	goos     string
	cfg      domain.ProjectConfig
}

func NewEnvironmentPhase(location string, fs domain.FileSystemPort, runner domain.CommandRunnerPort) *EnvironmentPhase {
	return &EnvironmentPhase{location: location, fs: fs, runner: runner, goos: runtime.GOOS}
}

func (p *EnvironmentPhase) Name() string { return "environment" }

func (p *EnvironmentPhase) Configure(cfg domain.ProjectConfig) error {
	p.cfg = cfg
	return nil
}

func (p *EnvironmentPhase) Create(ctx context.Context) error {
	if err := p.createVenv(ctx); err != nil {
		return err
	}
	if err := p.writeRequirements(); err != nil {
		return err
	}
	if err := p.writePyproject(); err != nil {
		return err
	}
	return p.installDependencies(ctx)
}

func (p *EnvironmentPhase) createVenv(ctx context.Context) error {
	result, err := p.runner.Run(ctx, p.location, SystemPython(p.goos), "-m", "venv", VenvDir)
	if err != nil {
		return domain.SubprocessError(result.Output(),
			fmt.Errorf("failed to create virtual environment: %w", err))
	}
	if result.ExitCode != 0 {
		return domain.SubprocessError(result.Output(),
			fmt.Errorf("venv creation exited with code %d", result.ExitCode))
	}
	return nil
}

func (p *EnvironmentPhase) writeRequirements() error {
	reqs := strings.Join(requirementsFor(p.cfg), "\n") + "\n"
	if err := p.fs.WriteFile(filepath.Join(p.location, "requirements.txt"), []byte(reqs)); err != nil {
		return fmt.Errorf("failed to write requirements.txt: %w", err)
	}

	dev := "-r requirements.txt\n" + strings.Join(devPackages, "\n") + "\n"
	if err := p.fs.WriteFile(filepath.Join(p.location, "requirements_dev.txt"), []byte(dev)); err != nil {
		return fmt.Errorf("failed to write requirements_dev.txt: %w", err)
	}
	return nil
}

type pyprojectFile struct {
	BuildSystem buildSystemTable `toml:"build-system"`
	Project     projectTable     `toml:"project"`
}

type buildSystemTable struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

type projectTable struct {
	Name           string   `toml:"name"`
	Version        string   `toml:"version"`
	Description    string   `toml:"description"`
	RequiresPython string   `toml:"requires-python"`
	Dependencies   []string `toml:"dependencies"`
}

func (p *EnvironmentPhase) writePyproject() error {
	version := p.cfg.Version
	if version == "" {
		version = domain.DefaultVersion
	}

	content, err := toml.Marshal(pyprojectFile{
		BuildSystem: buildSystemTable{
			Requires:     []string{"setuptools>=68"},
			BuildBackend: "setuptools.build_meta",
		},
		Project: projectTable{
			Name:           p.cfg.Name,
			Version:        version,
			Description:    p.cfg.Description,
			RequiresPython: ">=3.11",
			Dependencies:   requirementsFor(p.cfg),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal pyproject.toml: %w", err)
	}

	if err := p.fs.WriteFile(filepath.Join(p.location, "pyproject.toml"), content); err != nil {
		return fmt.Errorf("failed to write pyproject.toml: %w", err)
	}
	return nil
}

func (p *EnvironmentPhase) installDependencies(ctx context.Context) error {
	python := VenvPython(p.goos)
	result, err := p.runner.Run(ctx, p.location, python, "-m", "pip", "install", "-r", "requirements_dev.txt")
	if err != nil {
		return domain.SubprocessError(result.Output(),
			fmt.Errorf("failed to install dependencies: %w", err))
	}
	if result.ExitCode != 0 {
		return domain.SubprocessError(result.Output(),
			fmt.Errorf("pip install exited with code %d", result.ExitCode))
	}
	return nil
}
