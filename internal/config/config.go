package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port                   int    `yaml:"port"`
	Host                   string `yaml:"host"`
	Environment            string `yaml:"environment"`
	TrustProxy             bool   `yaml:"trust_proxy"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

// GetHost returns the server host, with container detection
func (c ServerConfig) GetHost() string {
	// On ECS/container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	// Allow override via environment
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// IsProduction reports whether the service runs in production mode.
// Stack traces are withheld from error responses in production.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// ShutdownTimeout returns the graceful-shutdown grace period as a duration
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// APIConfig holds the public API surface configuration
type APIConfig struct {
	BasePath     string `yaml:"base_path"`
	Version      string `yaml:"version"`
	CORSOrigin   string `yaml:"cors_origin"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// Prefix returns the mount point for versioned API routes, e.g. "/api/v1"
func (c APIConfig) Prefix() string {
	return c.BasePath + "/" + c.Version
}

// StorageConfig holds optional external store connection strings.
// Both stores are placeholders for future result caching/persistence;
// the request path never depends on them.
type StorageConfig struct {
	DatabaseURL string `yaml:"database_url"`
	RedisURL    string `yaml:"redis_url"`
}

// Load reads and parses the configuration file.
// A missing file is not an error: the service runs on defaults so it can be
// configured purely through environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Environment == "" {
		cfg.Server.Environment = "development"
	}
	if cfg.Server.ShutdownTimeoutSeconds == 0 {
		cfg.Server.ShutdownTimeoutSeconds = 30
	}
	if cfg.API.BasePath == "" {
		cfg.API.BasePath = "/api"
	}
	if cfg.API.Version == "" {
		cfg.API.Version = "v1"
	}
	if cfg.API.CORSOrigin == "" {
		cfg.API.CORSOrigin = "*"
	}
	if cfg.API.MaxBodyBytes == 0 {
		cfg.API.MaxBodyBytes = 10 << 20 // 10 MiB
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so local settings can live in .env and real env vars win in deployment.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables if present
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		cfg.Server.Environment = env
	}
	if v := os.Getenv("TRUST_PROXY"); v != "" {
		cfg.Server.TrustProxy = v == "true" || v == "1"
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Server.ShutdownTimeoutSeconds = secs
		}
	}
	if v := os.Getenv("API_BASE_PATH"); v != "" {
		cfg.API.BasePath = v
	}
	if v := os.Getenv("API_VERSION"); v != "" {
		cfg.API.Version = v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.API.CORSOrigin = v
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.API.MaxBodyBytes = n
		}
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Storage.DatabaseURL = dbURL
	}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.Storage.RedisURL = redisURL
	}

	return cfg, nil
}
