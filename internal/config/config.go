// Package config loads the site configuration from the environment.
//
// A .env file in the working directory is loaded by the main package
// (godotenv autoload) before Load runs, so values there behave exactly like
// exported variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

// Config is the full runtime configuration.
type Config struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// ContentPath overrides the embedded content document when set.
	ContentPath string `env:"CONTENT_PATH"`
	ImagesDir   string `env:"IMAGES_DIR" envDefault:"./images"`

	AnalyticsEnabled   bool          `env:"ANALYTICS_ENABLED" envDefault:"true"`
	AnalyticsDB        string        `env:"ANALYTICS_DB" envDefault:"portfolio.db"`
	AnalyticsRetention time.Duration `env:"ANALYTICS_RETENTION" envDefault:"8760h"`

	// AdminToken guards /admin routes. Empty disables them.
	AdminToken string `env:"ADMIN_TOKEN"`

	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	// SessionMax caps live page sessions; the longest idle is evicted first.
	SessionMax int `env:"SESSION_MAX" envDefault:"10000"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validModes = map[string]bool{
	gin.DebugMode:   true,
	gin.ReleaseMode: true,
	gin.TestMode:    true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if !validModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE %q: must be one of debug, release, test", c.GinMode)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must be non-negative")
	}
	if c.SessionMax < 0 {
		return fmt.Errorf("SESSION_MAX must be non-negative")
	}
	if c.AnalyticsEnabled && c.AnalyticsDB == "" {
		return fmt.Errorf("ANALYTICS_DB is required when analytics is enabled")
	}
	if c.AnalyticsRetention <= 0 {
		return fmt.Errorf("ANALYTICS_RETENTION must be positive")
	}
	return nil
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
