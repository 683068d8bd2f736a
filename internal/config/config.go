package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/logging"
	"github.com/dmitrijs2005/policykeeper/internal/models"
)

// Config holds runtime settings for the policykeeper CLI.
type Config struct {
	DBPath              string
	Language            models.Language
	ScanInterval        time.Duration
	ExportDir           string
	ShareDir            string
	CountryCode         string
	LogLevel            string
	LogFormat           string
	NotifyOncePerOffset bool
	RequireLogin        bool
	PasswordHash        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "policykeeper.db"
	c.Language = models.LanguageEnglish
	c.ScanInterval = time.Hour
	c.ExportDir = "exports"
	c.ShareDir = ""
	c.CountryCode = "91"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.NotifyOncePerOffset = false
	c.RequireLogin = false
	c.PasswordHash = "plain"
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("config: empty database path")
	}
	if _, err := models.ParseLanguage(string(c.Language)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.ScanInterval <= 0 {
		return fmt.Errorf("config: scan interval must be positive, got %s", c.ScanInterval)
	}
	if c.CountryCode == "" || models.Digits(c.CountryCode) != c.CountryCode {
		return fmt.Errorf("config: country code %q must be digits", c.CountryCode)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.PasswordHash {
	case "plain", "bcrypt":
	default:
		return fmt.Errorf("config: unknown password hash %q", c.PasswordHash)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named in args
// (if any), then the flags in args. Later sources take precedence.
// args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
