package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Session     SessionConfig
	Logging     LoggingConfig
	Environment string
}

type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig carries everything needed to reach MySQL. On Cloud Run
// (K_SERVICE set) with an instance name configured, the connection goes
// through the Cloud SQL unix socket instead of TCP.
type DatabaseConfig struct {
	User               string
	Password           string
	Name               string
	Host               string
	Port               int
	InstanceConnection string
	CloudRun           bool
	MaxConnections     int
}

type SessionConfig struct {
	Secret     string
	Expiry     time.Duration
	CSRFSecret string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("PORT", 8080),
		},
		Database: DatabaseConfig{
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASS", ""),
			Name:               getEnv("DB_NAME", ""),
			Host:               getEnv("DB_HOST", "127.0.0.1"),
			Port:               getEnvInt("DB_PORT", 3306),
			InstanceConnection: getEnv("INSTANCE_CONNECTION_NAME", ""),
			CloudRun:           os.Getenv("K_SERVICE") != "",
			MaxConnections:     getEnvInt("DATABASE_MAX_CONNECTIONS", 25),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", ""),
			Expiry:     time.Duration(getEnvInt("SESSION_EXPIRY_HOURS", 24)) * time.Hour,
			CSRFSecret: getEnv("CSRF_SECRET", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if cfg.Database.User == "" {
		return Config{}, fmt.Errorf("DB_USER is required")
	}
	if cfg.Database.Password == "" {
		return Config{}, fmt.Errorf("DB_PASS is required")
	}
	if cfg.Database.Name == "" {
		return Config{}, fmt.Errorf("DB_NAME is required")
	}
	if cfg.Session.Secret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.Session.CSRFSecret == "" {
		// Forms still need a token key locally; fall back to the session
		// secret rather than refusing to start.
		cfg.Session.CSRFSecret = cfg.Session.Secret
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
