package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema struct {
		Ref         string                     `json:"$ref"`
		Definitions map[string]json.RawMessage `json:"$defs"`
	}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}
	if _, ok := schema.Definitions["Config"]; !ok {
		return fmt.Errorf("embedded schema has no Config definition")
	}

	// every enum in the schema must hold the configured value
	enums := []struct {
		def, field, val string
	}{
		{"DatabaseConfig", "driver", cfg.Database.Driver},
		{"ProfilesConfig", "backend", cfg.Profiles.Backend},
		{"ProfilesConfig", "directory", cfg.Profiles.Directory},
	}
	for _, e := range enums {
		allowed, err := enumValues(schema.Definitions[e.def], e.field)
		if err != nil {
			return fmt.Errorf("schema %s.%s: %w", e.def, e.field, err)
		}
		if !contains(allowed, e.val) {
			return fmt.Errorf("%s %q is not one of %v", e.field, e.val, allowed)
		}
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	// credentials only make sense with a server to talk to
	if cfg.Neo4j.Password != "" && cfg.Neo4j.URI == "" {
		return fmt.Errorf("neo4j.uri is required when neo4j.password is set")
	}
	if cfg.Redis.Password != "" && cfg.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis.password is set")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}

func enumValues(def json.RawMessage, field string) ([]string, error) {
	var d struct {
		Properties map[string]struct {
			Enum []string `json:"enum"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(def, &d); err != nil {
		return nil, err
	}
	p, ok := d.Properties[field]
	if !ok {
		return nil, fmt.Errorf("no property %s", field)
	}
	return p.Enum, nil
}

func contains(vals []string, v string) bool {
	for _, s := range vals {
		if s == v {
			return true
		}
	}
	return false
}
