package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/groundwork/internal/domain"
)

func TestNewRejectsDuplicatePaths(t *testing.T) {
	_, err := New(
		Entry{"app/main.py", "a"},
		Entry{"app/main.py", "b"},
	)
	assert.Error(t, err)
}

func TestDefaultManifest(t *testing.T) {
	m := Default()
	require.NotZero(t, m.Len())

	paths := make(map[string]struct{})
	for _, e := range m.Entries() {
		assert.NotEmpty(t, e.Template, "empty template for %s", e.Path)
		paths[e.Path] = struct{}{}
	}
	assert.Len(t, paths, m.Len(), "manifest paths must be unique")

	for _, want := range []string{"app/main.py", "app/core/config.py", ".env", ".gitignore"} {
		assert.Contains(t, paths, want)
	}
}

func TestDataFromConfigProviders(t *testing.T) {
	cases := []struct {
		provider domain.DatabaseProvider
		dbType   domain.DatabaseType
		scheme   string
		port     int
	}{
		{domain.ProviderPostgres, domain.DatabaseSQL, "postgresql+asyncpg", 5432},
		{domain.ProviderMySQL, domain.DatabaseSQL, "mysql+aiomysql", 3306},
		{domain.ProviderSQLite, domain.DatabaseSQL, "sqlite+aiosqlite", 0},
		{domain.ProviderMongoDB, domain.DatabaseNoSQL, "mongodb", 27017},
	}

	for _, tc := range cases {
		data := DataFromConfig(domain.ProjectConfig{
			Name:             "demo",
			Version:          "1.0.0",
			DatabaseType:     tc.dbType,
			DatabaseProvider: tc.provider,
		})
		assert.Equal(t, tc.scheme, data.Database.Scheme, string(tc.provider))
		assert.Equal(t, tc.port, data.Database.Port, string(tc.provider))
		assert.Equal(t, tc.provider, data.Database.Provider)
		assert.Equal(t, tc.dbType, data.Database.Type)
	}
}

func TestDataFromConfigDefaultsVersion(t *testing.T) {
	data := DataFromConfig(domain.ProjectConfig{Name: "demo"})
	assert.Equal(t, domain.DefaultVersion, data.Version)
}

func TestDataFromConfigSlugsDatabaseName(t *testing.T) {
	data := DataFromConfig(domain.ProjectConfig{Name: "My Demo-App"})
	assert.Equal(t, "my_demo_app", data.Database.Name)
}
