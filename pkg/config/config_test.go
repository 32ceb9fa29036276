package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("TEST_NEO4J_PASSWORD", "s3cret")
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
database:
  driver: postgres
  dsn: postgres://u:p@localhost/academicworld?sslmode=disable
  max_open_conns: 20
mongo:
  uri: mongodb://localhost:27017
  timeout: 2s
neo4j:
  uri: bolt://localhost:7687
  password: ${TEST_NEO4J_PASSWORD}
redis:
  addr: localhost:6379
  ttl: 1m
profiles:
  backend: mongo
  directory: sql
  timeout: 500ms
  reset_favorites_on_login: true
trends:
  years: 10
health:
  interval: 30s
  timeout: 2s
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
		assert.Equal(t, "academicworld", cfg.Mongo.Database)
		assert.Equal(t, 2*time.Second, cfg.Mongo.Timeout)
		assert.Equal(t, "s3cret", cfg.Neo4j.Password)
		assert.Equal(t, "neo4j", cfg.Neo4j.User)
		assert.Equal(t, time.Minute, cfg.Redis.TTL)
		assert.Equal(t, BackendMongo, cfg.Profiles.Backend)
		assert.Equal(t, BackendSQL, cfg.Profiles.Directory)
		assert.Equal(t, 500*time.Millisecond, cfg.Profiles.Timeout)
		assert.True(t, cfg.Profiles.ResetFavoritesOnLogin)
		assert.Equal(t, 10, cfg.Trends.Years)
		assert.Equal(t, 30*time.Second, cfg.Health.Interval)
		assert.Equal(t, 2*time.Second, cfg.Health.Timeout)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":8081", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "file:facultyscope.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
		assert.Empty(t, cfg.Mongo.URI)
		assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
		assert.Equal(t, BackendSQL, cfg.Profiles.Backend)
		assert.Equal(t, BackendSQL, cfg.Profiles.Directory)
		assert.Equal(t, 5*time.Second, cfg.Profiles.Timeout)
		assert.False(t, cfg.Profiles.ResetFavoritesOnLogin)
		assert.Equal(t, 15, cfg.Trends.Years)
		assert.Equal(t, time.Minute, cfg.Health.Interval)
		assert.Equal(t, 5*time.Second, cfg.Health.Timeout)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server: [unclosed"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tbl := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "bad driver", content: "database:\n  driver: mysql\n", errMsg: "database.driver must be sqlite or postgres"},
		{name: "postgres without dsn", content: "database:\n  driver: postgres\n", errMsg: "database.dsn is required for postgres"},
		{name: "bad backend", content: "profiles:\n  backend: redis\n", errMsg: "profiles.backend must be sql or mongo"},
		{name: "mongo backend without uri", content: "profiles:\n  backend: mongo\n", errMsg: "profiles.backend is mongo, mongo.uri is required"},
		{name: "mongo directory without uri", content: "profiles:\n  directory: mongo\n", errMsg: "profiles.directory is mongo, mongo.uri is required"},
		{name: "short profiles timeout", content: "profiles:\n  timeout: 10ms\n", errMsg: "profiles.timeout must be at least 100ms"},
		{name: "short mongo timeout", content: "mongo:\n  uri: mongodb://x\n  timeout: 1ms\n", errMsg: "mongo.timeout must be at least 100ms"},
		{name: "too many years", content: "trends:\n  years: 500\n", errMsg: "trends.years must be between 1 and 100"},
		{name: "short health interval", content: "health:\n  interval: 10ms\n", errMsg: "health.interval must be at least 1 second"},
		{name: "health timeout over interval", content: "health:\n  interval: 2s\n  timeout: 5s\n", errMsg: "health.timeout must be between 100ms and health.interval"},
		{name: "short server timeout", content: "server:\n  timeout: 10ms\n", errMsg: "server timeout must be at least 1 second"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Secrets(t *testing.T) {
	cfg := Config{}
	cfg.SetDefaults()
	assert.Empty(t, cfg.Secrets(), "sqlite dsn and empty passwords are not secrets")

	cfg.Neo4j.Password = "neo"
	cfg.Redis.Password = "red"
	cfg.Mongo.URI = "mongodb://u:p@host"
	cfg.Database.Driver = "postgres"
	cfg.Database.DSN = "postgres://u:p@host/db"
	assert.Equal(t, []string{"neo", "red", "mongodb://u:p@host", "postgres://u:p@host/db"}, cfg.Secrets())
}
