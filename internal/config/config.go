// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the CLI needs to reach the inventory API.
type Config struct {
	APIURL   string
	APIKey   string
	Timeout  time.Duration
	Locale   string
	LogLevel string
	Theme    string
}

// Load reads configuration from the environment. A .env file is honored in
// development so local API credentials stay out of the shell profile.
func Load() Config {
	if os.Getenv("INVENTARIA_ENV") == "dev" {
		_ = godotenv.Load()
	}

	return Config{
		APIURL:   getEnv("INVENTARIA_API_URL", "http://localhost:8000/api"),
		APIKey:   getEnv("INVENTARIA_API_KEY", ""),
		Timeout:  getEnvDuration("INVENTARIA_TIMEOUT", 15*time.Second),
		Locale:   getEnv("INVENTARIA_LOCALE", "en"),
		LogLevel: getEnv("INVENTARIA_LOG_LEVEL", "info"),
		Theme:    getEnv("INVENTARIA_THEME", "dark"),
	}
}

// Validate rejects configurations the client cannot work with.
func (c Config) Validate() error {
	parsed, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid API URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("API URL must be absolute with a host, got %q", c.APIURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("API URL scheme must be http or https, got %q", parsed.Scheme)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
		if seconds, err := strconv.Atoi(valueStr); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
