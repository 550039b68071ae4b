package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppName     string
	Environment string
	LogLevel    string `validate:"oneof=debug info warn error"`

	ServerAddr      string
	Port            string `validate:"required,numeric"`
	ShutdownTimeout time.Duration

	DBUrl         string `validate:"required"`
	DBMaxConn     int    `validate:"min=1"`
	DBMaxIdleConn int    `validate:"min=0,ltefield=DBMaxConn"`

	CORSAllowedOrigins []string
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerAddr, c.Port)
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := getEnv("GO_ENV", "development")

	// In production the .env file is usually absent and the system
	// environment is authoritative.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		AppName:     getEnv("APP_NAME", "votesvc"),
		Environment: env,
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		ServerAddr:  getEnv("SERVER_ADDR", "0.0.0.0"),
		Port:        getEnv("SERVER_PORT", getEnv("PORT", "8080")),
		DBUrl:       getEnv("DATABASE_URL", ""),
	}

	var err error
	if cfg.DBMaxConn, err = getEnvInt("DATABASE_MAX_CONN", 10); err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConn, err = getEnvInt("DATABASE_MAX_IDLE_CONN", 1); err != nil {
		return nil, err
	}
	shutdownSeconds, err := getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout = time.Duration(shutdownSeconds) * time.Second

	if cfg.DBUrl == "" {
		cfg.DBUrl = buildDatabaseURL()
	}

	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		for _, o := range strings.Split(s, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return cfg, nil
}

// buildDatabaseURL assembles a Postgres URL from the DATABASE_* parts.
func buildDatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(getEnv("DATABASE_ADDR", "localhost"), getEnv("DATABASE_PORT", "5432")),
		Path:   getEnv("DATABASE_NAME", "votesvc"),
	}
	user := getEnv("DATABASE_USERNAME", "postgres")
	// An explicitly empty DATABASE_PASSWORD is kept as an empty password.
	password, ok := os.LookupEnv("DATABASE_PASSWORD")
	if !ok {
		password, ok = lookupEnv("DATABASE_PASSWORD")
	}
	if !ok {
		password = "postgres"
	}
	u.User = url.UserPassword(user, password)
	q := u.Query()
	q.Set("sslmode", getEnv("DATABASE_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String()
}

// envAliases lists older names still accepted for a key, in lookup order.
// The double underscore names are the nested keys of earlier deployments
// (SERVER__ADDR for server.addr). The pool has no minimum size, so the
// minimum connection keys map to the number of idle connections kept.
var envAliases = map[string][]string{
	"GO_ENV":                 {"APP__ENV"},
	"APP_NAME":               {"APP__NAME"},
	"SERVER_ADDR":            {"SERVER__ADDR"},
	"SERVER_PORT":            {"SERVER__PORT"},
	"DATABASE_ADDR":          {"DATABASE__ADDR"},
	"DATABASE_PORT":          {"DATABASE__PORT"},
	"DATABASE_NAME":          {"DATABASE__NAME"},
	"DATABASE_USERNAME":      {"DATABASE__USERNAME"},
	"DATABASE_PASSWORD":      {"DATABASE__PASSWORD"},
	"DATABASE_MAX_CONN":      {"DATABASE__MAX_CONN"},
	"DATABASE_MAX_IDLE_CONN": {"DATABASE_MIN_CONN", "DATABASE__MIN_CONN"},
}

// lookupEnv returns the first set value of key or one of its aliases.
func lookupEnv(key string) (string, bool) {
	for _, k := range append([]string{key}, envAliases[key]...) {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func getEnv(key, fallback string) string {
	if v, ok := lookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	s, ok := lookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}
