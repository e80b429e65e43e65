package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Supabase SupabaseConfig
	Redis    RedisConfig
	Fixtures FixturesConfig
	S3       S3Config
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds configuration for the provider's Postgres database.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
	AutoMigrate     bool
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds session token configuration.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  int // seconds
}

// SupabaseConfig holds the managed auth provider settings.
type SupabaseConfig struct {
	URL     string
	Key     string
	Timeout int // seconds
}

// RedisConfig holds configuration for the token revocation store.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// FixturesConfig holds the location of the sample datasets.
type FixturesConfig struct {
	Dir string
}

// S3Config holds AWS S3 configuration for fixture files.
type S3Config struct {
	Enabled  bool
	Bucket   string
	Region   string
	Prefix   string // Path prefix within bucket (e.g., "fixtures/")
	Endpoint string // Optional S3-compatible endpoint (MinIO, LocalStack)
}

// Load loads configuration from environment variables.
// A .env file in the working directory is applied first when present;
// variables already set in the process environment take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", getEnvAsInt("PORT", 5050)),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "postgres"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			AutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvAsInt("JWT_TTL", 3600),
		},
		Supabase: SupabaseConfig{
			URL:     getEnv("SUPABASE_URL", ""),
			Key:     getEnv("SUPABASE_KEY", ""),
			Timeout: getEnvAsInt("SUPABASE_TIMEOUT", 10),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Fixtures: FixturesConfig{
			Dir: getEnv("FIXTURES_DIR", "data/fixtures"),
		},
		S3: S3Config{
			Enabled:  getEnvAsBool("S3_ENABLED", false),
			Bucket:   getEnv("S3_BUCKET", ""),
			Region:   getEnv("S3_REGION", "us-east-1"),
			Prefix:   getEnv("S3_PREFIX", "fixtures/"),
			Endpoint: getEnv("S3_ENDPOINT", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration and reports every problem found, so a
// misconfigured deployment can be fixed in one pass.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Server.Port >= 1 && c.Server.Port <= 65535, "invalid server port: %d", c.Server.Port)

	db := c.Database
	check(db.Host != "", "database host is required")
	check(db.Port >= 1 && db.Port <= 65535, "invalid database port: %d", db.Port)
	check(db.User != "", "database user is required")
	check(db.Database != "", "database name is required")
	check(db.MaxConnections >= 1, "database max connections must be at least 1")
	check(db.MinConnections >= 1, "database min connections must be at least 1")
	check(db.MinConnections <= db.MaxConnections, "database min connections cannot exceed max connections")

	check(c.Auth.JWTSecret != "", "JWT secret is required")
	check(c.Auth.TokenTTL >= 1, "token TTL must be at least 1 second")

	check(c.Supabase.URL != "", "supabase URL is required")
	check(c.Supabase.Key != "", "supabase key is required")
	check(c.Supabase.Timeout >= 1, "supabase timeout must be at least 1 second")

	check(validLogLevels[c.Logger.Level], "invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	check(c.Logger.Format == "json" || c.Logger.Format == "console", "invalid log format: %s (must be json or console)", c.Logger.Format)

	if c.Redis.Enabled {
		check(c.Redis.Addr != "", "redis address is required when redis is enabled")
	}
	if c.S3.Enabled {
		check(c.S3.Bucket != "", "S3 bucket is required when S3 is enabled")
		check(c.S3.Region != "", "S3 region is required when S3 is enabled")
	}

	return errors.Join(errs...)
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ConnectionString returns the PostgreSQL connection URL. User and password
// are percent-encoded, so provider-generated passwords may contain any
// character.
func (c *DatabaseConfig) ConnectionString() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TTL returns the token lifetime as a duration.
func (c *AuthConfig) TTL() time.Duration {
	return time.Duration(c.TokenTTL) * time.Second
}

// TimeoutDuration returns the provider HTTP timeout as a duration.
func (c *SupabaseConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
