package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Contact  ContactConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// DatabaseConfig points at the catalog seed database. All fields are
// optional: without them the server falls back to the embedded catalog.
type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
}

// Configured reports whether enough is set to attempt a connection.
func (c DatabaseConfig) Configured() bool {
	return c.DBHost != "" && c.DBName != "" && c.DBUser != ""
}

type JWTConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
}

// ContactConfig holds the support destinations surfaced on the contact
// screen.
type ContactConfig struct {
	SupportPhone string
	SupportEmail string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// Absent .env is fine; real env vars win either way.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         optDefault("DB_PORT", "5432"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      optDefault("DB_SSL_MODE", "disable"),
		ConnectTimeout: durationFromEnv("DB_CONNECT_TIMEOUT_SECONDS", 5*time.Second),
	}

	cfg.JWT = JWTConfig{
		SessionSecret: req("SESSION_SECRET"),
		SessionTTL:    durationFromEnv("SESSION_TTL_SECONDS", 24*time.Hour),
	}

	cfg.Contact = ContactConfig{
		SupportPhone: optDefault("SUPPORT_PHONE", "+81-3-1234-5678"),
		SupportEmail: optDefault("SUPPORT_EMAIL", "support@hymatch.jp"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
