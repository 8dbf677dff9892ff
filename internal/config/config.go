// Package config loads the application configuration. Defaults first,
// then a YAML file overwrites only the fields it specifies.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all regbook settings.
type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	CatalogPath  string `yaml:"catalog_path"`
	RegisterDB   string `yaml:"register_db"`
	AuditLogPath string `yaml:"audit_log_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ListenAddr: ":8460",
		RegisterDB: defaultStatePath("register.db"),
	}
}

// Load reads configuration from a YAML file. Empty path falls back to
// ~/.regbook/config.yaml. Missing file returns defaults. Invalid YAML
// returns an error.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, ".regbook", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func defaultStatePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".regbook", name)
}

// DefaultYAML returns a commented config file for init-config.
func DefaultYAML() string {
	return `# regbook configuration
# Generated by: regbook init-config

# Address the REST API listens on.
listen_addr: ":8460"

# Optional catalog overlay file. Clauses and templates defined here
# extend the built-in library; matching IDs replace builtins.
# catalog_path: /etc/regbook/catalog.yaml

# SQLite database holding the gifts & hospitality register.
# register_db: /var/lib/regbook/register.db

# Hash-chained JSONL audit trail of document generations and register
# decisions. Empty disables the trail.
# audit_log_path: /var/log/regbook/audit.jsonl
`
}
