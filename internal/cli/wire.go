package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/policykeeper/internal/config"
	"github.com/dmitrijs2005/policykeeper/internal/logging"
	"github.com/dmitrijs2005/policykeeper/internal/message"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/notify"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/customers"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/kv"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/settings"
	"github.com/dmitrijs2005/policykeeper/internal/services"
	"github.com/dmitrijs2005/policykeeper/internal/storage"
)

// NewAppFromConfig opens the database named in cfg and wires every service.
// Diagnostics go to logOut, alerts and command output to out. The returned
// database must be closed by the caller after Run.
func NewAppFromConfig(ctx context.Context, cfg *config.Config, in io.Reader, out, logOut io.Writer) (*App, *sql.DB, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(level, cfg.LogFormat, logOut)

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DBPath, "error", err)
		return nil, nil, err
	}

	hasher, err := services.NewHasher(cfg.PasswordHash)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	store := kv.NewSQLiteRepository(db)
	formatter := message.NewFormatter()

	customerSvc := services.NewCustomerService(customers.NewKVRepository(store), log)
	settingsSvc := services.NewSettingsService(settings.NewKVRepository(store), cfg.Language)
	authSvc := services.NewAuthService(db, hasher, log)

	var sharer services.Sharer = services.UnsupportedSharer{}
	if cfg.ShareDir != "" {
		sharer = services.DirSharer{Dir: cfg.ShareDir}
	}
	transferSvc := services.NewTransferService(services.TransferConfig{
		Customers: customerSvc,
		Settings:  settingsSvc,
		Sharer:    sharer,
		Texts:     formatter,
		ExportDir: cfg.ExportDir,
		Log:       log,
	})
	reminderSvc := services.NewReminderService(customerSvc, formatter, cfg.CountryCode, nil)

	var tracker notify.Tracker = notify.Always{}
	if cfg.NotifyOncePerOffset {
		tracker = notify.NewOncePerOffset()
	}
	gate := notify.NewGate(notify.NewWriterNotifier(out))
	scheduler := &notify.Scheduler{
		Source:   customerSvc,
		Notifier: gate,
		Texts:    formatter,
		Tracker:  tracker,
		Language: func(ctx context.Context) models.Language {
			lang, _ := settingsSvc.Language(ctx)
			return lang
		},
		Interval: cfg.ScanInterval,
		Log:      log.With("module", "scheduler"),
	}

	app := NewApp(Deps{
		Customers:    customerSvc,
		Auth:         authSvc,
		Settings:     settingsSvc,
		Transfer:     transferSvc,
		Reminders:    reminderSvc,
		Scheduler:    scheduler,
		Gate:         gate,
		Log:          log,
		RequireLogin: cfg.RequireLogin,
		In:           in,
		Out:          out,
	})
	log.Debug(ctx, "application wired", "db", cfg.DBPath, "interval", cfg.ScanInterval.String())
	return app, db, nil
}

// Main loads configuration from args, runs the REPL on in/out and returns
// the process exit code.
func Main(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	app, db, err := NewAppFromConfig(ctx, cfg, in, out, errOut)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer db.Close()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}
