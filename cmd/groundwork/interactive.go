package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/eduardo/groundwork/internal/domain"
)

// runWizard collects a ProjectConfig interactively. The provider choices
// shown depend on the database type picked first, so the wizard can only
// produce compatible combinations.
func runWizard() (domain.ProjectConfig, error) {
	var (
		name        string
		description string
		version     = domain.DefaultVersion
		dbType      string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("project name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&description),
			huh.NewInput().
				Title("Version").
				Value(&version),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database Type").
				Options(
					huh.NewOption("SQL (SQLAlchemy + Alembic)", "sql"),
					huh.NewOption("NoSQL", "nosql"),
				).
				Value(&dbType),
		),
	)

	if err := form.Run(); err != nil {
		return domain.ProjectConfig{}, err
	}

	provider, err := selectProvider(dbType)
	if err != nil {
		return domain.ProjectConfig{}, err
	}

	return domain.ProjectConfig{
		Name:             strings.TrimSpace(name),
		Description:      description,
		Version:          strings.TrimSpace(version),
		DatabaseType:     domain.DatabaseType(dbType),
		DatabaseProvider: domain.DatabaseProvider(provider),
	}, nil
}

func selectProvider(dbType string) (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("PostgreSQL", "postgres"),
		huh.NewOption("MySQL", "mysql"),
		huh.NewOption("SQLite", "sqlite"),
	}
	if dbType == string(domain.DatabaseNoSQL) {
		options = []huh.Option[string]{
			huh.NewOption("MongoDB", "mongodb"),
		}
	}

	var provider string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database Provider").
				Options(options...).
				Value(&provider),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return provider, nil
}
