// Package manifest holds the static mapping from project-relative output
// paths to the template text written into a scaffolded project.
package manifest

import (
	"fmt"
	"strings"

	"github.com/eduardo/groundwork/internal/domain"
)

// Entry pairs one project-relative path with its template text.
type Entry struct {
	Path     string
	Template string
}

// Manifest is an ordered, duplicate-free set of entries. The order carries
// no semantic meaning; no entry may depend on another having been written
// first.
type Manifest struct {
	entries []Entry
}

// New builds a manifest, rejecting duplicate paths.
func New(entries ...Entry) (Manifest, error) {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Path]; ok {
			return Manifest{}, fmt.Errorf("duplicate manifest path %q", e.Path)
		}
		seen[e.Path] = struct{}{}
	}
	return Manifest{entries: entries}, nil
}

// Entries returns the entries in declaration order.
func (m Manifest) Entries() []Entry {
	return m.entries
}

// Len returns the number of entries.
func (m Manifest) Len() int {
	return len(m.entries)
}

// Default returns the manifest for a generated FastAPI project.
func Default() Manifest {
	m, err := New(
		Entry{"app/main.py", mainTemplate},
		Entry{"app/api/routes.py", routesTemplate},
		Entry{"app/core/config.py", configTemplate},
		Entry{"app/core/logger.py", loggerTemplate},
		Entry{"app/core/errors.py", errorsTemplate},
		Entry{"app/core/exceptions.py", exceptionsTemplate},
		Entry{"app/schemas/health.py", healthSchemaTemplate},
		Entry{"scripts/dev.py", devScriptTemplate},
		Entry{"scripts/prod.py", prodScriptTemplate},
		Entry{"tests/conftest.py", conftestTemplate},
		Entry{".env", envFileTemplate},
		Entry{".gitignore", gitignoreTemplate},
		Entry{"README.md", readmeTemplate},
	)
	if err != nil {
		panic(err) // duplicate path in the built-in manifest
	}
	return m
}

// DatabaseData carries the provider-specific values substituted into
// templates: the SQLAlchemy URL scheme, the provider's default port, and
// placeholder connection settings for the generated .env file.
type DatabaseData struct {
	Type     domain.DatabaseType
	Provider domain.DatabaseProvider
	Scheme   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Data is the record every template is rendered against.
type Data struct {
	Name        string
	Description string
	Version     string
	Database    DatabaseData
}

// DataFromConfig derives the template data from a project config.
// The result is a pure function of the config: rendering is byte-stable
// across runs.
func DataFromConfig(cfg domain.ProjectConfig) Data {
	version := cfg.Version
	if version == "" {
		version = domain.DefaultVersion
	}
	return Data{
		Name:        cfg.Name,
		Description: cfg.Description,
		Version:     version,
		Database: DatabaseData{
			Type:     cfg.DatabaseType,
			Provider: cfg.DatabaseProvider,
			Scheme:   providerScheme(cfg.DatabaseProvider),
			Host:     "localhost",
			Port:     providerPort(cfg.DatabaseProvider),
			User:     "your_username",
			Password: "your_password",
			Name:     slug(cfg.Name),
		},
	}
}

func providerScheme(p domain.DatabaseProvider) string {
	switch p {
	case domain.ProviderPostgres:
		return "postgresql+asyncpg"
	case domain.ProviderMySQL:
		return "mysql+aiomysql"
	case domain.ProviderSQLite:
		return "sqlite+aiosqlite"
	case domain.ProviderMongoDB:
		return "mongodb"
	default:
		return ""
	}
}

func providerPort(p domain.DatabaseProvider) int {
	switch p {
	case domain.ProviderPostgres:
		return 5432
	case domain.ProviderMySQL:
		return 3306
	case domain.ProviderMongoDB:
		return 27017
	default:
		return 0 // sqlite connects to a file, not a port
	}
}

func slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	if s == "" {
		return "app"
	}
	return s
}
