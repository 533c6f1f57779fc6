// Package config loads a project configuration from a file, as an
// alternative to the interactive wizard.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/eduardo/groundwork/internal/domain"
)

// Loader implements domain.ConfigLoaderPort using viper; YAML, JSON, and
// TOML config files all work.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Load(path string) (domain.ProjectConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("version", domain.DefaultVersion)

	if err := v.ReadInConfig(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg domain.ProjectConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
