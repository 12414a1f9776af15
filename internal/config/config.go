package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config is the application configuration loaded from a TOML file, with a
// handful of environment overrides for container deployments.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Seed     SeedConfig     `toml:"seed"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DatabaseConfig selects the persistence provider: "postgres" with a DSN, or
// "sqlite" (in-memory by default) for local development.
type DatabaseConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

type RedisConfig struct {
	Addr    string `toml:"addr"`
	Channel string `toml:"channel"`
}

type SeedConfig struct {
	Enabled bool `toml:"enabled"`
}

// Load reads a TOML configuration file; an empty path yields the embedded
// defaults. Environment variables PORT, DATABASE_URL and REDIS_ADDR override
// the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := toml.Unmarshal(exampleConf, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse embedded default config: %w", err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Server.Port = port
		}
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.Driver = "postgres"
		cfg.Database.DSN = dsn
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if channel := os.Getenv("REDIS_CHANNEL"); channel != "" {
		cfg.Redis.Channel = channel
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
