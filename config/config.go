package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort      string
	ServerHost      string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration. Empty RedisURL and RedisHost disables redis and the
	// rate limiter falls back to an in-process limiter.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Auth configuration
	JWTSecret     string
	AuthRequired  bool
	DefaultUserID string

	// Recipe creations allowed per user per hour, 0 disables the limit
	RecipeCreateLimit int

	LogLevel  string
	LogFormat string
}

// LoadConfig creates a new Config instance. Each value is taken from the
// environment, then from a docker secret file, then from a default.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	if env != Production {
		// a missing .env file is fine, variables may come from the shell
		_ = godotenv.Load()
	}

	cfg, err := load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func load(env Environment) (*Config, error) {
	cfg := &Config{Environment: env}

	cfg.ServerHost = value("SERVER_HOST", "server_host", "0.0.0.0")
	cfg.ServerPort = value("SERVER_PORT", "server_port", "8080")
	cfg.CORSOrigins = splitList(value("CORS_ORIGINS", "", "http://localhost:5173"))

	defaultDriver := DriverSQLite
	if env == Production || env == CI {
		defaultDriver = DriverPostgres
	}
	cfg.DBDriver = strings.ToLower(value("DB_DRIVER", "db_driver", defaultDriver))
	cfg.DBHost = value("DB_HOST", "db_host", "localhost")
	cfg.DBPort = value("DB_PORT", "db_port", "5432")
	cfg.DBUser = value("DB_USER", "db_user", "postgres")
	cfg.DBPassword = value("DB_PASSWORD", "db_password", "")
	cfg.DBName = value("DB_NAME", "db_name", "ketoggler")
	cfg.DBSSLMode = value("DB_SSL_MODE", "db_ssl_mode", "disable")
	cfg.DBPath = value("DB_PATH", "", "ketoggler.db")

	cfg.RedisURL = value("REDIS_URL", "redis_url", "")
	cfg.RedisHost = value("REDIS_HOST", "redis_host", "")
	cfg.RedisPort = value("REDIS_PORT", "redis_port", "6379")
	cfg.RedisPassword = value("REDIS_PASSWORD", "redis_password", "")

	cfg.JWTSecret = value("JWT_SECRET", "jwt_secret", "")
	cfg.DefaultUserID = value("DEFAULT_USER_ID", "", "00000000-0000-0000-0000-000000000001")

	cfg.LogLevel = value("LOG_LEVEL", "", "info")
	defaultFormat := "text"
	if env == Production {
		defaultFormat = "json"
	}
	cfg.LogFormat = strings.ToLower(value("LOG_FORMAT", "", defaultFormat))

	var err error
	if cfg.RedisDB, err = intValue("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RecipeCreateLimit, err = intValue("RECIPE_CREATE_LIMIT", 30); err != nil {
		return nil, err
	}
	if cfg.AuthRequired, err = boolValue("AUTH_REQUIRED", env.strictAuth()); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = durationValue("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// PostgresDSN returns the keyword/value connection string used by both gorm
// and the migration runner.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisEnabled reports whether a redis server was configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

func value(envKey, secret, def string) string {
	if v, ok := os.LookupEnv(envKey); ok && v != "" {
		return strings.TrimSpace(v)
	}
	if secret != "" {
		if v := readSecret(secret); v != "" {
			return v
		}
	}
	return def
}

func intValue(envKey string, def int) (int, error) {
	raw := value(envKey, "", "")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", envKey, raw)
	}
	return n, nil
}

func boolValue(envKey string, def bool) (bool, error) {
	raw := value(envKey, "", "")
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", envKey, raw)
	}
	return b, nil
}

func durationValue(envKey string, def time.Duration) (time.Duration, error) {
	raw := value(envKey, "", "")
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", envKey, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
