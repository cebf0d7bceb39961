package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Env            string   `envconfig:"ENV" default:"development"`
	Port           string   `envconfig:"PORT" default:"8080"`
	StaticDir      string   `envconfig:"STATIC_DIR" default:"./public"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES" default:"10.0.0.0/8,172.16.0.0/12"`

	// Security settings
	HSTSMaxAge int    `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode    string `envconfig:"CSP_MODE" default:"relaxed"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Workflow settings
	GatingMode         string `envconfig:"GATING_MODE" default:"strict"`
	RequirePatientLink bool   `envconfig:"REQUIRE_PATIENT_LINK" default:"true"`
	IDStrategy         string `envconfig:"ID_STRATEGY" default:"uuid"`

	// Simulation timing
	TickInterval       time.Duration `envconfig:"TICK_INTERVAL" default:"1s"`
	RevealInterval     time.Duration `envconfig:"REVEAL_INTERVAL" default:"2500ms"`
	UploadStepInterval time.Duration `envconfig:"UPLOAD_STEP_INTERVAL" default:"300ms"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// Parse environment variables into config struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns the configuration LoadConfig yields with an empty
// environment.
func Default() *Config {
	return &Config{
		Env:                "development",
		Port:               "8080",
		StaticDir:          "./public",
		TrustedProxies:     []string{"10.0.0.0/8", "172.16.0.0/12"},
		HSTSMaxAge:         31536000,
		CSPMode:            "relaxed",
		LogLevel:           "info",
		GatingMode:         "strict",
		RequirePatientLink: true,
		IDStrategy:         "uuid",
		TickInterval:       time.Second,
		RevealInterval:     2500 * time.Millisecond,
		UploadStepInterval: 300 * time.Millisecond,
	}
}

// Validate rejects unknown enum values and non-positive intervals.
func (c *Config) Validate() error {
	var errs []error

	switch c.GatingMode {
	case "strict", "lenient":
	default:
		errs = append(errs, fmt.Errorf("GATING_MODE must be strict or lenient, got %q", c.GatingMode))
	}

	switch c.IDStrategy {
	case "uuid", "counter":
	default:
		errs = append(errs, fmt.Errorf("ID_STRATEGY must be uuid or counter, got %q", c.IDStrategy))
	}

	switch c.CSPMode {
	case "strict", "relaxed":
	default:
		errs = append(errs, fmt.Errorf("CSP_MODE must be strict or relaxed, got %q", c.CSPMode))
	}

	for name, d := range map[string]time.Duration{
		"TICK_INTERVAL":        c.TickInterval,
		"REVEAL_INTERVAL":      c.RevealInterval,
		"UPLOAD_STEP_INTERVAL": c.UploadStepInterval,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}

	return errors.Join(errs...)
}

// BuildCSP constructs Content Security Policy based on mode.
func BuildCSP(mode string) string {
	if mode == "strict" {
		// Production CSP
		return "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'; " +
			"img-src 'self' data:; " +
			"connect-src 'self'; " +
			"object-src 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
	}

	// Development/relaxed CSP
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:"
}
