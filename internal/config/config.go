package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	AllowedOrigins []string `toml:"allowed_origins"`

	// insights
	InsightsTimezone   string `toml:"insights_timezone"`
	SessionCacheSizeMB int    `toml:"session_cache_size_mb"`
}

// Location is the time zone weeks and training days are bucketed in.
func (c *Config) Location() (*time.Location, error) {
	if c.InsightsTimezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.InsightsTimezone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", c.InsightsTimezone, err)
	}
	return loc, nil
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid [%s] config: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.SessionCacheSizeMB <= 0 {
		c.SessionCacheSizeMB = 10
	}
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("port not set")
	}
	if c.Port == c.MetricsPort {
		return fmt.Errorf("port and metrics port are the same: %d", c.Port)
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		return fmt.Errorf("postgres host, port and db name must be set")
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		return fmt.Errorf("redis host and port must be set")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
