package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

const (
	// BackendSQL keeps profiles or resolves faculty in the relational database
	BackendSQL = "sql"
	// BackendMongo keeps profiles or resolves faculty in MongoDB
	BackendMongo = "mongo"
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Relational database configuration"`
	Mongo    MongoConfig    `yaml:"mongo" json:"mongo" jsonschema:"description=MongoDB configuration, disabled if uri is empty"`
	Neo4j    Neo4jConfig    `yaml:"neo4j" json:"neo4j" jsonschema:"description=Neo4j configuration, disabled if uri is empty"`
	Redis    RedisConfig    `yaml:"redis" json:"redis" jsonschema:"description=Redis cache configuration, disabled if addr is empty"`
	Profiles ProfilesConfig `yaml:"profiles" json:"profiles" jsonschema:"description=User profile store configuration"`
	Trends   TrendsConfig   `yaml:"trends" json:"trends" jsonschema:"description=Publication trend configuration"`
	Health   HealthConfig   `yaml:"health" json:"health" jsonschema:"description=Backend health monitor configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds relational database settings
type DatabaseConfig struct {
	Driver          string `yaml:"driver" json:"driver" jsonschema:"default=sqlite,enum=sqlite,enum=postgres,description=Database driver"`
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:facultyscope.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// MongoConfig holds MongoDB settings
type MongoConfig struct {
	URI      string        `yaml:"uri" json:"uri" jsonschema:"description=MongoDB connection URI"`
	Database string        `yaml:"database" json:"database" jsonschema:"default=academicworld,description=Database name"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=5s,description=Connect timeout"`
}

// Neo4jConfig holds Neo4j settings
type Neo4jConfig struct {
	URI      string `yaml:"uri" json:"uri" jsonschema:"description=Bolt URI, e.g. bolt://localhost:7687"`
	User     string `yaml:"user" json:"user" jsonschema:"default=neo4j,description=User name"`
	Password string `yaml:"password" json:"password" jsonschema:"description=Password (can use environment variable)"`
	Database string `yaml:"database" json:"database" jsonschema:"default=academicworld,description=Database name"`
}

// RedisConfig holds Redis cache settings
type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr" jsonschema:"description=Redis address, e.g. localhost:6379"`
	Password string        `yaml:"password" json:"password" jsonschema:"description=Password (can use environment variable)"`
	DB       int           `yaml:"db" json:"db" jsonschema:"default=0,description=Database number"`
	TTL      time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=10m,description=Cache entry ttl"`
}

// ProfilesConfig holds profile store settings
type ProfilesConfig struct {
	Backend               string        `yaml:"backend" json:"backend" jsonschema:"default=sql,enum=sql,enum=mongo,description=Where profiles are kept"`
	Directory             string        `yaml:"directory" json:"directory" jsonschema:"default=sql,enum=sql,enum=mongo,description=Where faculty ids are resolved"`
	Timeout               time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=5s,description=Timeout of a single storage call"`
	ResetFavoritesOnLogin bool          `yaml:"reset_favorites_on_login" json:"reset_favorites_on_login" jsonschema:"default=false,description=Clear favorites on every login"`
}

// TrendsConfig holds publication trend settings
type TrendsConfig struct {
	Years int `yaml:"years" json:"years" jsonschema:"default=15,minimum=1,maximum=100,description=Number of past years in a trend"`
}

// HealthConfig holds backend health monitor settings
type HealthConfig struct {
	Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1m,description=Interval between backend checks and cache warm-ups"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=5s,description=Timeout of a single backend check"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// SetDefaults fills unset fields with default values
func (c *Config) SetDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.DSN == "" && c.Database.Driver == "sqlite" {
		c.Database.DSN = "file:facultyscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// mongo
	if c.Mongo.Database == "" {
		c.Mongo.Database = "academicworld"
	}
	if c.Mongo.Timeout == 0 {
		c.Mongo.Timeout = 5 * time.Second
	}

	// neo4j
	if c.Neo4j.User == "" {
		c.Neo4j.User = "neo4j"
	}
	if c.Neo4j.Database == "" {
		c.Neo4j.Database = "academicworld"
	}

	// redis
	if c.Redis.TTL == 0 {
		c.Redis.TTL = 10 * time.Minute
	}

	// profiles
	if c.Profiles.Backend == "" {
		c.Profiles.Backend = BackendSQL
	}
	if c.Profiles.Directory == "" {
		c.Profiles.Directory = BackendSQL
	}
	if c.Profiles.Timeout == 0 {
		c.Profiles.Timeout = 5 * time.Second
	}

	// trends
	if c.Trends.Years == 0 {
		c.Trends.Years = 15
	}

	// health
	if c.Health.Interval == 0 {
		c.Health.Interval = time.Minute
	}
	if c.Health.Timeout == 0 {
		c.Health.Timeout = 5 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate database config
	switch cfg.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for %s", cfg.Database.Driver)
	}

	// validate profiles config
	backends := []struct{ name, val string }{
		{"profiles.backend", cfg.Profiles.Backend},
		{"profiles.directory", cfg.Profiles.Directory},
	}
	for _, b := range backends {
		if b.val != BackendSQL && b.val != BackendMongo {
			return fmt.Errorf("%s must be sql or mongo, got %q", b.name, b.val)
		}
		if b.val == BackendMongo && cfg.Mongo.URI == "" {
			return fmt.Errorf("%s is mongo, mongo.uri is required", b.name)
		}
	}
	if cfg.Profiles.Timeout < 100*time.Millisecond {
		return fmt.Errorf("profiles.timeout must be at least 100ms")
	}

	// validate mongo config
	if cfg.Mongo.URI != "" && cfg.Mongo.Timeout < 100*time.Millisecond {
		return fmt.Errorf("mongo.timeout must be at least 100ms")
	}

	// validate trends config
	if cfg.Trends.Years < 1 || cfg.Trends.Years > 100 {
		return fmt.Errorf("trends.years must be between 1 and 100")
	}

	// validate health config
	if cfg.Health.Interval < time.Second {
		return fmt.Errorf("health.interval must be at least 1 second")
	}
	if cfg.Health.Timeout < 100*time.Millisecond || cfg.Health.Timeout > cfg.Health.Interval {
		return fmt.Errorf("health.timeout must be between 100ms and health.interval")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// Secrets returns configured passwords and URIs that may carry credentials, for log masking
func (c *Config) Secrets() []string {
	var res []string
	for _, s := range []string{c.Neo4j.Password, c.Redis.Password, c.Mongo.URI} {
		if s != "" {
			res = append(res, s)
		}
	}
	if c.Database.Driver == "postgres" && c.Database.DSN != "" {
		res = append(res, c.Database.DSN)
	}
	return res
}
