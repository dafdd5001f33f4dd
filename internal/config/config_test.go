package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()
		assert.Equal(t, "http://localhost:8000/api", cfg.APIURL)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
		assert.Equal(t, "en", cfg.Locale)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "dark", cfg.Theme)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("INVENTARIA_API_URL", "https://inventory.acme.com/api")
		t.Setenv("INVENTARIA_API_KEY", "token-123")
		t.Setenv("INVENTARIA_TIMEOUT", "30s")
		t.Setenv("INVENTARIA_LOCALE", "es")

		cfg := Load()
		assert.Equal(t, "https://inventory.acme.com/api", cfg.APIURL)
		assert.Equal(t, "token-123", cfg.APIKey)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, "es", cfg.Locale)
	})

	t.Run("bare seconds timeout", func(t *testing.T) {
		t.Setenv("INVENTARIA_TIMEOUT", "45")
		assert.Equal(t, 45*time.Second, Load().Timeout)
	})

	t.Run("unparseable timeout keeps the default", func(t *testing.T) {
		t.Setenv("INVENTARIA_TIMEOUT", "soon")
		assert.Equal(t, 15*time.Second, Load().Timeout)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{APIURL: "http://localhost:8000/api", Timeout: 15 * time.Second}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(_ *Config) {}, false},
		{"https", func(c *Config) { c.APIURL = "https://inventory.acme.com/api" }, false},
		{"relative url", func(c *Config) { c.APIURL = "/api" }, true},
		{"missing host", func(c *Config) { c.APIURL = "http://" }, true},
		{"bad scheme", func(c *Config) { c.APIURL = "ftp://example.com" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
