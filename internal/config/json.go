package config

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/policykeeper/internal/flagx"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
	"github.com/goccy/go-json"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It is seeded
// from the current Config so keys missing from the file keep their value.
type JsonConfig struct {
	DBPath              string         `json:"db_path"`
	Language            string         `json:"language"`
	ScanInterval        timex.Duration `json:"scan_interval"`
	ExportDir           string         `json:"export_dir"`
	ShareDir            string         `json:"share_dir"`
	CountryCode         string         `json:"country_code"`
	LogLevel            string         `json:"log_level"`
	LogFormat           string         `json:"log_format"`
	NotifyOncePerOffset bool           `json:"notify_once_per_offset"`
	RequireLogin        bool           `json:"require_login"`
	PasswordHash        string         `json:"password_hash"`
}

// parseJson overlays cfg with the file named by -c or -config in args.
// Without either flag nothing happens.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	jc := JsonConfig{
		DBPath:              cfg.DBPath,
		Language:            string(cfg.Language),
		ScanInterval:        timex.Duration{Duration: cfg.ScanInterval},
		ExportDir:           cfg.ExportDir,
		ShareDir:            cfg.ShareDir,
		CountryCode:         cfg.CountryCode,
		LogLevel:            cfg.LogLevel,
		LogFormat:           cfg.LogFormat,
		NotifyOncePerOffset: cfg.NotifyOncePerOffset,
		RequireLogin:        cfg.RequireLogin,
		PasswordHash:        cfg.PasswordHash,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.DBPath = jc.DBPath
	cfg.Language = models.Language(jc.Language)
	cfg.ScanInterval = jc.ScanInterval.Duration
	cfg.ExportDir = jc.ExportDir
	cfg.ShareDir = jc.ShareDir
	cfg.CountryCode = jc.CountryCode
	cfg.LogLevel = jc.LogLevel
	cfg.LogFormat = jc.LogFormat
	cfg.NotifyOncePerOffset = jc.NotifyOncePerOffset
	cfg.RequireLogin = jc.RequireLogin
	cfg.PasswordHash = jc.PasswordHash
	return nil
}
