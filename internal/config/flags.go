package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/flagx"
	"github.com/dmitrijs2005/policykeeper/internal/models"
)

var (
	knownFlags = []string{"-d", "-l", "-i", "-o", "-s", "-cc", "-v", "-once", "-login", "-hash"}
	boolFlags  = []string{"-once", "-login"}
)

// parseFlags populates Config fields from the flags in args, ignoring any
// flag this package does not own. The scan interval is only replaced when
// -i is given, so a sub-minute interval from JSON survives.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, knownFlags, boolFlags...)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	lang := string(cfg.Language)
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "SQLite database file")
	fs.StringVar(&lang, "l", lang, "default message language (en or hi)")
	minutes := fs.Int("i", int(cfg.ScanInterval.Minutes()), "reminder scan interval (in minutes)")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "directory for exports and backups")
	fs.StringVar(&cfg.ShareDir, "s", cfg.ShareDir, "share outbox directory")
	fs.StringVar(&cfg.CountryCode, "cc", cfg.CountryCode, "country code for phone links")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.NotifyOncePerOffset, "once", cfg.NotifyOncePerOffset, "notify once per record and offset")
	fs.BoolVar(&cfg.RequireLogin, "login", cfg.RequireLogin, "require a signed-in account")
	fs.StringVar(&cfg.PasswordHash, "hash", cfg.PasswordHash, "account password storage (plain or bcrypt)")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	cfg.Language = models.Language(lang)
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.ScanInterval = time.Duration(*minutes) * time.Minute
		}
	})
	return nil
}
