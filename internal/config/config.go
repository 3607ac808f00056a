package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string        `yaml:"port" split_words:"true"`
		Mode            string        `yaml:"mode" split_words:"true"`
		ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true"`
		WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true"`
		IdleTimeout     time.Duration `yaml:"idle_timeout" split_words:"true"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
		CORSOrigins     []string      `yaml:"cors_origins" split_words:"true"`
	} `yaml:"server" envconfig:"SERVER"`

	Database struct {
		Host            string        `yaml:"host" split_words:"true"`
		Port            string        `yaml:"port" split_words:"true"`
		User            string        `yaml:"user" split_words:"true"`
		Password        string        `yaml:"password" split_words:"true"`
		Name            string        `yaml:"dbname" split_words:"true"`
		SSLMode         string        `yaml:"sslmode" split_words:"true"`
		MaxIdleConns    int           `yaml:"max_idle_conns" split_words:"true"`
		MaxOpenConns    int           `yaml:"max_open_conns" split_words:"true"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" split_words:"true"`
		MigrateOnStart  bool          `yaml:"migrate_on_start" split_words:"true"`
		Seed            bool          `yaml:"seed" split_words:"true"`
	} `yaml:"database" envconfig:"DB"`

	Auth struct {
		BcryptCost int    `yaml:"bcrypt_cost" split_words:"true"`
		Realm      string `yaml:"realm" split_words:"true"`
	} `yaml:"auth" envconfig:"AUTH"`

	RateLimit struct {
		Enabled           bool `yaml:"enabled" split_words:"true"`
		RequestsPerMinute int  `yaml:"requests_per_minute" split_words:"true"`
		Burst             int  `yaml:"burst" split_words:"true"`
	} `yaml:"rate_limit" envconfig:"RATE_LIMIT"`

	Logging struct {
		Level  string `yaml:"level" split_words:"true"`
		Format string `yaml:"format" split_words:"true"`
	} `yaml:"logging" envconfig:"LOG"`
}

// LoadConfig loads configuration from defaults, an optional YAML file, an
// optional .env file and the environment, in that order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// Defaults plus environment are enough to run.
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 10 * time.Second
	config.Server.IdleTimeout = 120 * time.Second
	config.Server.ShutdownTimeout = 10 * time.Second
	config.Server.CORSOrigins = []string{"*"}

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.Name = "courses"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = time.Hour
	config.Database.MigrateOnStart = true

	// Auth defaults
	config.Auth.BcryptCost = bcrypt.DefaultCost
	config.Auth.Realm = "courses"

	// Rate limit defaults
	config.RateLimit.Enabled = true
	config.RateLimit.RequestsPerMinute = 120
	config.RateLimit.Burst = 60

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database max_open_conns must be positive, got %d", config.Database.MaxOpenConns)
	}

	if config.Database.MaxIdleConns > config.Database.MaxOpenConns {
		return fmt.Errorf("database max_idle_conns (%d) exceeds max_open_conns (%d)",
			config.Database.MaxIdleConns, config.Database.MaxOpenConns)
	}

	if config.Auth.BcryptCost < bcrypt.MinCost || config.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth bcrypt_cost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, config.Auth.BcryptCost)
	}

	if config.RateLimit.Enabled && (config.RateLimit.RequestsPerMinute < 1 || config.RateLimit.Burst < 1) {
		return fmt.Errorf("rate_limit requests_per_minute and burst must be positive when enabled")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}
