package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/logging"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/notify"
	"github.com/dmitrijs2005/policykeeper/internal/services"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
)

// Deps are the collaborators of an App.
type Deps struct {
	Customers services.CustomerService
	Auth      services.AuthService
	Settings  services.SettingsService
	Transfer  services.TransferService
	Reminders services.ReminderService
	Scheduler *notify.Scheduler
	Gate      *notify.Gate
	Log       logging.Logger

	// RequireLogin restricts everything but account commands to a
	// signed-in session.
	RequireLogin bool
	In           io.Reader
	Out          io.Writer
	Now          func() time.Time
}

type App struct {
	customers services.CustomerService
	auth      services.AuthService
	settings  services.SettingsService
	transfer  services.TransferService
	reminders services.ReminderService
	scheduler *notify.Scheduler
	gate      *notify.Gate
	log       logging.Logger

	requireLogin bool
	reader       *bufio.Reader
	out          io.Writer
	now          func() time.Time

	mu   sync.Mutex
	user *models.User
}

func NewApp(d Deps) *App {
	a := &App{
		customers:    d.Customers,
		auth:         d.Auth,
		settings:     d.Settings,
		transfer:     d.Transfer,
		reminders:    d.Reminders,
		scheduler:    d.Scheduler,
		gate:         d.Gate,
		log:          d.Log,
		requireLogin: d.RequireLogin,
		reader:       bufio.NewReader(d.In),
		out:          d.Out,
		now:          d.Now,
	}
	if a.log == nil {
		a.log = logging.Discard()
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// Run restores the signed-in account, starts the background scheduler and
// blocks in the REPL until it ends or ctx is cancelled. The scheduler is
// stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	if err := a.refreshUser(ctx); err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	if a.scheduler != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.scheduler.Run(ctx)
		}()
	}

	a.println("Welcome to policykeeper (type 'help' for commands)")

	// A REPL blocked on stdin cannot observe ctx, so an interrupt returns
	// from Run without waiting for it.
	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.status, a.reader)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		a.println("Bye!")
	}

	cancel()
	wg.Wait()
	return nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) refreshUser(ctx context.Context) error {
	u, err := a.auth.Current(ctx)
	if err != nil {
		return err
	}
	a.setUser(u)
	return nil
}

func (a *App) setUser(u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
}

func (a *App) currentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *App) isLoggedIn() bool {
	return !a.requireLogin || a.currentUser() != nil
}

// language is the stored preference; storage errors fall back to its default.
func (a *App) language(ctx context.Context) models.Language {
	lang, err := a.settings.Language(ctx)
	if err != nil {
		a.log.Warn(ctx, "language preference unavailable", "error", err)
	}
	return lang
}

func (a *App) status() string {
	s := string(a.language(context.Background()))
	if u := a.currentUser(); u != nil {
		s = u.MobileNumber + " " + s
	}
	if a.gate != nil && a.gate.Granted() {
		s += " 🔔"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) today() time.Time {
	return timex.Midnight(a.now())
}
