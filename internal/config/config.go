package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Source   SourceConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Server   ServerConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port int
}

// DatabaseConfig describes the destination store. The default driver is the
// embedded sqlite file; oracle is kept for deployments that point the bridge
// at a shared database instead.
type DatabaseConfig struct {
	Driver          string // "sqlite" or "oracle"
	Path            string // sqlite file path
	Host            string
	Port            int
	Service         string
	User            string
	Password        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	IsAutoMigrate   bool
}

// SourceConfig bounds connections to the legacy SQL Server the import
// pipeline reads from. The server and database names themselves arrive per
// request.
type SourceConfig struct {
	ConnectTimeout time.Duration
	QueryTimeout   time.Duration
}

type JWTConfig struct {
	Secret        string
	Expiry        time.Duration
	RefreshExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	GracefulTimeout time.Duration
	ImportTimeout   time.Duration
}

func Load(env string) (*Config, error) {
	if err := loadEnvFile(env); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "membersync-api"),
			Env:  env,
			Port: getEnvAsInt("APP_PORT", 8080),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DEST_DB_DRIVER", "sqlite"),
			Path:            getEnv("DEST_DB_PATH", "membersync.db"),
			Host:            getEnv("DEST_DB_HOST", ""),
			Port:            getEnvAsInt("DEST_DB_PORT", 1521),
			Service:         getEnv("DEST_DB_SERVICE", ""),
			User:            getEnv("DEST_DB_USER", ""),
			Password:        getEnv("DEST_DB_PASSWORD", ""),
			MaxIdleConns:    getEnvAsInt("DEST_DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DEST_DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DEST_DB_CONN_MAX_LIFETIME", "1h"),
			ConnMaxIdleTime: getEnvAsDuration("DEST_DB_CONN_MAX_IDLE_TIME", "10m"),
			IsAutoMigrate:   getEnvAsBool("DEST_DB_AUTO_MIGRATE", true),
		},
		Source: SourceConfig{
			ConnectTimeout: getEnvAsDuration("SOURCE_CONNECT_TIMEOUT", "10s"),
			QueryTimeout:   getEnvAsDuration("SOURCE_QUERY_TIMEOUT", "2m"),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			Expiry:        getEnvAsDuration("JWT_EXPIRY", "24h"),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", "168h"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 86400),
		},
		Server: ServerConfig{
			ReadTimeout: getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			// The write timeout must outlast a synchronous import run, which
			// holds the response open for the whole migration.
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15m"),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			GracefulTimeout: getEnvAsDuration("GRACEFUL_TIMEOUT", "30s"),
			// A full-table import against a slow legacy server can run for
			// minutes; the trigger route opts out of the global request timeout.
			ImportTimeout: getEnvAsDuration("SERVER_IMPORT_TIMEOUT", "10m"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadEnvFile(env string) error {
	envFile := fmt.Sprintf(".env.%s", env)

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Warn("env file not found, falling back to process environment",
			"file", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}

	absPath, _ := filepath.Abs(envFile)
	slog.Info("env file loaded", "file", absPath)
	return nil
}

func (c *Config) Validate() error {
	var errors []string

	if c.App.Port < 1 || c.App.Port > 65535 {
		errors = append(errors, "invalid app port")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			errors = append(errors, "destination sqlite path is required")
		}
	case "oracle":
		if c.Database.Host == "" {
			errors = append(errors, "destination database host is required")
		}
		if c.Database.Service == "" {
			errors = append(errors, "destination database service is required")
		}
		if c.Database.User == "" {
			errors = append(errors, "destination database user is required")
		}
		if c.Database.Password == "" {
			errors = append(errors, "destination database password is required")
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown destination driver %q", c.Database.Driver))
	}

	if c.JWT.Secret == "" {
		errors = append(errors, "JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		errors = append(errors, "JWT secret must be at least 32 characters")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "local" || c.App.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod"
}

// OracleDSN builds the oracle destination connection string. The password is
// URL-encoded so special characters survive.
func (c *Config) OracleDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s?SSL=true",
		c.Database.User,
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.Service,
	)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	if defaultDuration, err := time.ParseDuration(defaultValue); err == nil {
		return defaultDuration
	}
	return 0
}
