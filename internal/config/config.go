package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/yigit/placement/internal/pkg/helpers"
)

// DefaultMaxUploadSize is the request body limit for resume uploads (5 MB).
const DefaultMaxUploadSize int64 = 5 * 1024 * 1024

// Config structure represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port               string   `yaml:"port" env:"SERVER_PORT" env-default:"8080" validate:"required,numeric"`
	Mode               string   `yaml:"mode" env:"SERVER_MODE" env-default:"development" validate:"oneof=development production test"`
	ReadTimeout        string   `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout       string   `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout        string   `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"120s"`
	SessionSecret      string   `yaml:"session_secret" env:"SESSION_SECRET" env-default:"placement-dev-secret" validate:"required,min=8"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

type DatabaseConfig struct {
	Host            string `yaml:"host" env:"DB_HOST" env-default:"localhost" validate:"required"`
	Port            string `yaml:"port" env:"DB_PORT" env-default:"5432" validate:"required"`
	User            string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password        string `yaml:"password" env:"DB_PASSWORD" env-default:"postgres"`
	DBName          string `yaml:"dbname" env:"DB_NAME" env-default:"placement" validate:"required"`
	SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"1" validate:"gte=0"`
	MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10" validate:"gte=1"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"1h"`
	AutoMigrate     bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
	SeedDemoData    bool   `yaml:"seed_demo_data" env:"DB_SEED_DEMO_DATA"`
}

type StorageConfig struct {
	UploadDir     string `yaml:"upload_dir" env:"UPLOAD_DIR" env-default:"uploads" validate:"required"`
	MaxUploadSize int64  `yaml:"max_upload_size" env:"MAX_UPLOAD_SIZE" validate:"gt=0"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error fatal"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" validate:"oneof=json text"`
}

// LoadConfig loads configuration from an optional YAML file, a .env file and the
// environment, in increasing order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if config.Storage.MaxUploadSize == 0 {
		config.Storage.MaxUploadSize = DefaultMaxUploadSize
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

var validate = validator.New()

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return err
	}

	for name, value := range map[string]string{
		"server.read_timeout":        config.Server.ReadTimeout,
		"server.write_timeout":       config.Server.WriteTimeout,
		"server.idle_timeout":        config.Server.IdleTimeout,
		"database.conn_max_lifetime": config.Database.ConnMaxLifetime,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether the server runs in release mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return helpers.ParseDuration(s.ReadTimeout, 10*time.Second)
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return helpers.ParseDuration(s.WriteTimeout, 30*time.Second)
}

func (s ServerConfig) IdleTimeoutDuration() time.Duration {
	return helpers.ParseDuration(s.IdleTimeout, 120*time.Second)
}

func (d DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return helpers.ParseDuration(d.ConnMaxLifetime, time.Hour)
}
