package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/ngmaloney/sailing-score/internal/models"
	"github.com/spf13/viper"
)

// Config holds runtime settings. Every key can be set through the
// environment with the SAILSCORE_ prefix, e.g. SAILSCORE_API_BASE_URL.
type Config struct {
	APIBaseURL     string        `mapstructure:"API_BASE_URL"`
	Timezone       string        `mapstructure:"TIMEZONE"`
	BoatType       string        `mapstructure:"BOAT_TYPE"`
	Skill          string        `mapstructure:"SKILL"`
	UseKnots       bool          `mapstructure:"USE_KNOTS"`
	ShowNight      bool          `mapstructure:"SHOW_NIGHT"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogFile        string        `mapstructure:"LOG_FILE"` // "-" disables logging
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	StubAddr       string        `mapstructure:"STUB_ADDR"`
}

var defaults = map[string]any{
	"API_BASE_URL":    "http://localhost:8000",
	"TIMEZONE":        "Europe/Madrid",
	"BOAT_TYPE":       "cruiser_35_45",
	"SKILL":           "intermedio",
	"USE_KNOTS":       true,
	"SHOW_NIGHT":      false,
	"REQUEST_TIMEOUT": "15s",
	"LOG_FILE":        "sailing-score.log",
	"LOG_LEVEL":       "info",
	"STUB_ADDR":       "127.0.0.1:8765",
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Debug("no .env file loaded", "err", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SAILSCORE")
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would otherwise fail much later.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API_BASE_URL %q", c.APIBaseURL)
	}
	if strings.TrimSpace(c.Timezone) == "" {
		return fmt.Errorf("TIMEZONE cannot be empty")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	if !models.ParseBoatType(c.BoatType).Known() {
		return fmt.Errorf("invalid BOAT_TYPE %q", c.BoatType)
	}
	if !models.ParseSkillLevel(c.Skill).Known() {
		return fmt.Errorf("invalid SKILL %q", c.Skill)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return nil
}
