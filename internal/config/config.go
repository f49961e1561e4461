package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Tailscale  TailscaleConfig  `yaml:"tailscale"`
	ExerciseDB ExerciseDBConfig `yaml:"exercisedb"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	// Path is the SQLite database file. The parent directory is created
	// on first open.
	Path string `yaml:"path"`
	// MigrationsPath is the directory holding the schema migrations.
	MigrationsPath string `yaml:"migrations_path"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// ExerciseDBConfig configures the optional exercise search backend.
// Search degrades to empty results when no key is set.
type ExerciseDBConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix LIFTLOG_ and underscore-separated paths:
//
//	LIFTLOG_SERVER_HOST, LIFTLOG_SERVER_PORT,
//	LIFTLOG_DB_PATH, LIFTLOG_DB_MIGRATIONS_PATH,
//	LIFTLOG_AUTH_API_KEY,
//	LIFTLOG_TAILSCALE_ENABLED, LIFTLOG_TAILSCALE_HOSTNAME, LIFTLOG_TAILSCALE_STATE_DIR,
//	LIFTLOG_EXERCISEDB_API_KEY, LIFTLOG_EXERCISEDB_BASE_URL
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTLOG_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTLOG_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("LIFTLOG_DB_MIGRATIONS_PATH"); v != "" {
		cfg.Database.MigrationsPath = v
	}
	if v := os.Getenv("LIFTLOG_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("LIFTLOG_TAILSCALE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("LIFTLOG_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("LIFTLOG_TAILSCALE_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("LIFTLOG_EXERCISEDB_API_KEY"); v != "" {
		cfg.ExerciseDB.APIKey = v
	}
	if v := os.Getenv("LIFTLOG_EXERCISEDB_BASE_URL"); v != "" {
		cfg.ExerciseDB.BaseURL = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Database.MigrationsPath == "" {
		cfg.Database.MigrationsPath = "migrations"
	}
	if cfg.Tailscale.Hostname == "" {
		cfg.Tailscale.Hostname = "liftlog"
	}
}

func (c *Config) validate() error {
	if !c.Tailscale.Enabled && c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	return nil
}
