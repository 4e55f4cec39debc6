package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the console configuration, resolved once at process start.
type Config struct {
	// Server
	Port        string
	Environment string

	// Smart-city REST backend
	APIBaseURL string
	APITimeout time.Duration

	// Last-known-good list snapshots
	SnapshotTTL time.Duration

	// Monitoring
	EnableMetrics bool

	// CORS
	AllowOrigins []string
}

const defaultAPIBaseURL = "http://127.0.0.1:8000"

// Load loads configuration from environment variables
func Load() *Config {
	// .env is optional, mostly for local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		APIBaseURL: getEnv("SMARTCITY_API_URL", defaultAPIBaseURL),
		APITimeout: getEnvAsDuration("SMARTCITY_API_TIMEOUT", "15s"),

		SnapshotTTL: getEnvAsDuration("SNAPSHOT_TTL", "30m"),

		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),

		AllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", "*"),
	}

	base, err := NormalizeBaseURL(cfg.APIBaseURL)
	if err != nil {
		log.Printf("WARNING: invalid SMARTCITY_API_URL %q (%v), using %s", cfg.APIBaseURL, err, defaultAPIBaseURL)
		base = defaultAPIBaseURL
	}
	cfg.APIBaseURL = base

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NormalizeBaseURL checks that raw is an absolute http(s) URL and strips any trailing slash,
// so endpoint paths can be appended verbatim.
func NormalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host")
	}
	return strings.TrimRight(u.String(), "/"), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
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

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsList(key string, defaultValue string) []string {
	parts := strings.Split(getEnv(key, defaultValue), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
