package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppEnv          = "dev"
	defaultPort            = "5000"
	defaultDatabaseURL     = "meetingrooms.db"
	defaultSessionSecret   = "change-me-session-secret"
	defaultSessionTTL      = "24h"
	defaultCookieName      = "sid"
	defaultCookieSecure    = "false"
	defaultCookieSameSite  = "Lax"
	defaultCookiePath      = "/"
	defaultCORSOrigins     = "http://localhost:5000"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = "10s"
	defaultTimezone        = "Local"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	SessionSecret   string
	SessionTTL      time.Duration
	CookieName      string
	CookieSecure    bool
	CookieSameSite  string
	CookiePath      string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CORSOrigins     []string
	LogLevel        string
	ShutdownTimeout time.Duration
	Location        *time.Location
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = defaultAppEnv
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret))
	cfg.CookieName = strings.TrimSpace(getEnv("COOKIE_NAME", defaultCookieName))
	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	cfg.CookieSameSite = strings.TrimSpace(getEnv("COOKIE_SAMESITE", defaultCookieSameSite))
	cfg.CookiePath = strings.TrimSpace(getEnv("COOKIE_PATH", defaultCookiePath))
	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.LogLevel = strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel))
	cfg.CORSOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		cfg.RedisDB, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", v, err)
		}
	}

	tz := strings.TrimSpace(getEnv("APP_TIMEZONE", defaultTimezone))
	cfg.Location, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE value %q: %w", tz, err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether internal error details must be hidden and
// insecure defaults refused.
func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func validateConfig(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.CookieName == "" {
		return fmt.Errorf("COOKIE_NAME must not be empty")
	}
	if cfg.CookiePath == "" {
		return fmt.Errorf("COOKIE_PATH must not be empty")
	}
	sameSite := strings.ToLower(cfg.CookieSameSite)
	if sameSite != "lax" && sameSite != "none" && sameSite != "strict" {
		return fmt.Errorf("COOKIE_SAMESITE must be one of: Lax, None, Strict")
	}
	if sameSite == "none" && !cfg.CookieSecure {
		return fmt.Errorf("COOKIE_SECURE must be true when COOKIE_SAMESITE=None")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.SessionSecret, defaultSessionSecret) {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
