package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatabaseType selects the persistence branch of the pipeline.
type DatabaseType string

const (
	DatabaseSQL   DatabaseType = "sql"
	DatabaseNoSQL DatabaseType = "nosql"
)

// DatabaseProvider is the concrete backend the generated project talks to.
type DatabaseProvider string

const (
	ProviderPostgres DatabaseProvider = "postgres"
	ProviderMySQL    DatabaseProvider = "mysql"
	ProviderSQLite   DatabaseProvider = "sqlite"
	ProviderMongoDB  DatabaseProvider = "mongodb"
)

// Type returns the database type a provider belongs to, or "" for an
// unknown provider.
func (p DatabaseProvider) Type() DatabaseType {
	switch p {
	case ProviderPostgres, ProviderMySQL, ProviderSQLite:
		return DatabaseSQL
	case ProviderMongoDB:
		return DatabaseNoSQL
	default:
		return ""
	}
}

// DefaultVersion is used when no project version is supplied.
const DefaultVersion = "0.1.0"

// ProjectConfig is the single configuration record the pipeline consumes.
// It is collected once by the CLI wizard (or a config file) and never
// mutated afterwards.
type ProjectConfig struct {
	Name             string           `json:"name" mapstructure:"name" validate:"required"`
	Description      string           `json:"description" mapstructure:"description"`
	Version          string           `json:"version" mapstructure:"version"`
	DatabaseType     DatabaseType     `json:"database_type" mapstructure:"database_type" validate:"required,oneof=sql nosql"`
	DatabaseProvider DatabaseProvider `json:"database_provider" mapstructure:"database_provider" validate:"required,oneof=postgres mysql sqlite mongodb"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and the provider/type compatibility
// invariant. It runs before any filesystem mutation.
func (c ProjectConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid project config: %w", err)
	}
	if c.DatabaseProvider.Type() != c.DatabaseType {
		return fmt.Errorf("database provider %q is not compatible with database type %q",
			c.DatabaseProvider, c.DatabaseType)
	}
	return nil
}
