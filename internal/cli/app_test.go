package cli

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/common"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type harness struct {
	app       *App
	out       *bytes.Buffer
	customers services.CustomerService
	settings  services.SettingsService
	gate      *notify.Gate
	exportDir string
}

func newHarness(t *testing.T, requireLogin bool) *harness {
	t.Helper()
	stubTerminal(t, false, nil, nil)

	ctx := context.Background()
	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.Discard()
	store := kv.NewSQLiteRepository(db)
	formatter := message.NewFormatter()
	cs := services.NewCustomerService(customers.NewKVRepository(store), log, services.WithClock(fixedClock))
	ss := services.NewSettingsService(settings.NewKVRepository(store), models.LanguageEnglish)
	exportDir := filepath.Join(t.TempDir(), "exports")

	out := &bytes.Buffer{}
	gate := notify.NewGate(notify.NewWriterNotifier(out))
	app := NewApp(Deps{
		Customers: cs,
		Auth:      services.NewAuthService(db, services.PlainHasher{}, log),
		Settings:  ss,
		Transfer: services.NewTransferService(services.TransferConfig{
			Customers: cs,
			Settings:  ss,
			Texts:     formatter,
			ExportDir: exportDir,
			Now:       fixedClock,
			Log:       log,
		}),
		Reminders: services.NewReminderService(cs, formatter, "91", fixedClock),
		Scheduler: &notify.Scheduler{
			Source:   cs,
			Notifier: gate,
			Texts:    formatter,
			Now:      fixedClock,
		},
		Gate:         gate,
		RequireLogin: requireLogin,
		In:           strings.NewReader(""),
		Out:          out,
		Now:          fixedClock,
	})
	return &harness{app: app, out: out, customers: cs, settings: ss, gate: gate, exportDir: exportDir}
}

// input replaces what the next prompts will read.
func (h *harness) input(s ...string) {
	h.app.reader = bufio.NewReader(strings.NewReader(strings.Join(s, "\n") + "\n"))
}

func (h *harness) addHealth(t *testing.T, name, expiry string) models.Customer {
	t.Helper()
	c, err := h.customers.Add(context.Background(), models.CustomerInput{
		Name:              name,
		MobileNumber:      "9123456780",
		WhatsAppNumber:    "9123456780",
		Address:           "Pune",
		InsuranceCategory: models.CategoryHealth,
		PolicyNumber:      "HP-1",
		StartDate:         "2023-01-01",
		ExpiryDate:        expiry,
	})
	require.NoError(t, err)
	return c
}

func TestApp_AddPromptsAndList(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()

	h.input("Asha", "+91 91234 56780", "", "Pune", "health", "HP-9", "", "2024-01-16")
	require.NoError(t, h.app.Add(ctx))

	list, err := h.customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "9123456780", list[0].WhatsAppNumber, "WhatsApp defaults to mobile")
	assert.Equal(t, "2024-01-01", list[0].StartDate, "start defaults to today")

	h.out.Reset()
	require.NoError(t, h.app.List(ctx, []string{"15"}))
	assert.Contains(t, h.out.String(), "Asha")
	assert.Contains(t, h.out.String(), "Health Insurance")
	assert.Contains(t, h.out.String(), "16/01/2024")
	assert.Contains(t, h.out.String(), "15 days left")

	h.out.Reset()
	require.NoError(t, h.app.List(ctx, []string{"7"}))
	assert.Contains(t, h.out.String(), "No customers found.")
}

func TestApp_AddMotorAndShow(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()

	h.input("Ravi", "9876543210", "9876543211", "Nashik", "motor", "car", "mh12ab1234", "2023-01-03", "2024-01-03")
	require.NoError(t, h.app.Add(ctx))

	list, err := h.customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	h.out.Reset()
	require.NoError(t, h.app.Show(ctx, []string{list[0].ID}))
	out := h.out.String()
	assert.Contains(t, out, "Vehicle:   Car MH12AB1234")
	assert.Contains(t, out, "Expiry:    03/01/2024 (⚠️ 2 days left)")
}

func TestApp_AddRejectsBadPhone(t *testing.T) {
	h := newHarness(t, false)

	h.input("Asha", "12345", "", "Pune", "health", "HP-9", "", "2024-01-16")
	err := h.app.Add(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidPhone)
}

func TestApp_EditKeepsDefaults(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()
	c := h.addHealth(t, "Asha", "2024-01-16")

	h.input("Asha Kulkarni", "", "", "", "", "", "", "")
	require.NoError(t, h.app.Edit(ctx, []string{c.ID}))

	got, err := h.customers.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Kulkarni", got.Name)
	assert.Equal(t, "HP-1", got.PolicyNumber)
	assert.Equal(t, "2024-01-16", got.ExpiryDate)
}

func TestApp_DeleteAsksForConfirmation(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()
	c := h.addHealth(t, "Asha", "2024-01-16")

	h.input("n")
	require.NoError(t, h.app.Delete(ctx, []string{c.ID}))
	_, err := h.customers.Get(ctx, c.ID)
	require.NoError(t, err)

	h.input("y")
	require.NoError(t, h.app.Delete(ctx, []string{c.ID}))
	_, err = h.customers.Get(ctx, c.ID)
	require.ErrorIs(t, err, common.ErrNotFound)

	require.ErrorIs(t, h.app.Delete(ctx, []string{"missing"}), common.ErrNotFound)
	var u usageError
	require.ErrorAs(t, h.app.Delete(ctx, nil), &u)
}

func TestApp_SearchAndStats(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()
	h.addHealth(t, "Asha", "2024-01-16")
	h.addHealth(t, "Bala", "2023-12-25")

	require.NoError(t, h.app.Search(ctx, []string{"bala"}))
	assert.Contains(t, h.out.String(), "Bala")
	assert.NotContains(t, h.out.String(), "Asha")

	h.out.Reset()
	require.NoError(t, h.app.Stats(ctx))
	assert.Equal(t, "Total: 2\n15 days: 1\n7 days: 0\n2 days: 0\nExpired: 1\n", h.out.String())
}

func TestApp_RemindAndCall(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()
	c := h.addHealth(t, "Asha", "2024-01-16")

	require.NoError(t, h.app.Remind(ctx, []string{c.ID}))
	out := h.out.String()
	assert.True(t, strings.HasPrefix(out, "📋 *Insurance Renewal - 15 Days Left*"))
	assert.Contains(t, out, "WhatsApp: https://wa.me/919123456780?text=")

	h.out.Reset()
	require.NoError(t, h.app.Call(ctx, []string{c.ID}))
	assert.Equal(t, "Call Asha: tel:+919123456780\n", h.out.String())
}

func TestApp_ExportHonoursPassword(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()
	h.addHealth(t, "Asha", "2024-01-16")

	h.input("1234", "1234")
	require.NoError(t, h.app.ExportPassword(ctx, []string{"set"}))

	h.input("0000")
	require.ErrorIs(t, h.app.Export(ctx, []string{"csv"}), errWrongExportPassword)

	h.input("1234")
	require.NoError(t, h.app.Export(ctx, []string{"csv"}))
	_, err := os.Stat(filepath.Join(h.exportDir, "customers.csv"))
	require.NoError(t, err)

	h.input("1234")
	require.NoError(t, h.app.Backup(ctx))
	_, err = os.Stat(filepath.Join(h.exportDir, "insurance_backup_2024-01-01.json"))
	require.NoError(t, err)

	h.input("0000")
	require.ErrorIs(t, h.app.ExportPassword(ctx, []string{"remove"}), errWrongExportPassword)
	h.input("1234")
	require.NoError(t, h.app.ExportPassword(ctx, []string{"remove"}))

	require.NoError(t, h.app.Export(ctx, []string{"xlsx"}))

	var u usageError
	require.ErrorAs(t, h.app.Export(ctx, []string{"pdf"}), &u)
}

func TestApp_ImportReportsCounts(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()
	h.addHealth(t, "Asha", "2024-01-16")
	require.NoError(t, h.app.Export(ctx, []string{"csv"}))
	path := filepath.Join(h.exportDir, "customers.csv")

	h.out.Reset()
	require.NoError(t, h.app.Import(ctx, []string{path}))
	assert.Equal(t, "Imported 0 new customer(s), 1 already present.\n", h.out.String())

	bad := filepath.Join(t.TempDir(), "short.csv")
	require.NoError(t, os.WriteFile(bad, []byte("header\n\"a\",\"b\"\n"), 0o600))
	h.out.Reset()
	require.NoError(t, h.app.Import(ctx, []string{bad}))
	assert.Contains(t, h.out.String(), "Skipped 1 malformed line(s): 2")
}

func TestApp_ShareWithoutTarget(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()

	require.ErrorIs(t, h.app.Share(ctx, []string{"csv"}), common.ErrNoCustomers)
	h.addHealth(t, "Asha", "2024-01-16")
	require.ErrorIs(t, h.app.Share(ctx, []string{"csv"}), common.ErrShareUnsupported)
}

func TestApp_Lang(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()

	require.NoError(t, h.app.Lang(ctx, []string{"hi"}))
	lang, err := h.settings.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LanguageHindi, lang)

	var u usageError
	require.ErrorAs(t, h.app.Lang(ctx, []string{"fr"}), &u)
	assert.Equal(t, "(hi)", h.app.status())
}

func TestApp_NotifyGatesAlerts(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()
	h.addHealth(t, "Asha", "2024-01-16")

	require.NoError(t, h.app.Notify(ctx, []string{"on"}))
	assert.True(t, h.gate.Granted())
	assert.Contains(t, h.out.String(), "🔔 Insurance Expiry Reminder\n   Asha's insurance policy is expiring in 15 days (16/01/2024).")

	require.NoError(t, h.app.Notify(ctx, []string{"off"}))
	assert.False(t, h.gate.Granted())

	h.out.Reset()
	_, err := h.app.scheduler.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, h.out.String())
}

func TestApp_NotifyOnDeliversAlertsHeldWhileOff(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()
	h.addHealth(t, "Asha", "2024-01-16")
	h.app.scheduler.Tracker = notify.NewOncePerOffset()

	sent, err := h.app.scheduler.Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	require.NoError(t, h.app.Notify(ctx, []string{"on"}))
	assert.Equal(t, 1, strings.Count(h.out.String(), "Asha's insurance policy is expiring in 15 days (16/01/2024)."))
}

func TestApp_AccountFlow(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	assert.False(t, h.app.isLoggedIn())

	h.input("9876543210", "secret1", "secret1")
	require.NoError(t, h.app.Register(ctx))
	assert.True(t, h.app.isLoggedIn())
	assert.Equal(t, "(9876543210 en)", h.app.status())

	h.input("secret1", "newpass", "newpass")
	require.NoError(t, h.app.Passwd(ctx))

	require.NoError(t, h.app.Logout(ctx))
	assert.False(t, h.app.isLoggedIn())

	h.input("9876543210", "secret1")
	require.ErrorIs(t, h.app.Login(ctx), common.ErrInvalidCredentials)

	h.input("9876543210", "newpass")
	require.NoError(t, h.app.Login(ctx))
	assert.True(t, h.app.isLoggedIn())
}

func TestApp_RunSession(t *testing.T) {
	h := newHarness(t, false)
	h.addHealth(t, "Asha", "2024-01-16")
	printed := capturePrintln(t)

	h.app.scheduler = nil
	h.app.reader = bufio.NewReader(strings.NewReader("stats\nshow nope\nexit\n"))
	require.NoError(t, h.app.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Welcome to policykeeper")
	assert.Contains(t, h.out.String(), "Total: 1")
	assert.Contains(t, printed.String(), "Error: No customer with that id.")
	assert.Contains(t, printed.String(), "Bye!")
}

func TestNewAppFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DBPath = filepath.Join(dir, "pk.db")
	cfg.ExportDir = filepath.Join(dir, "exports")
	cfg.ShareDir = filepath.Join(dir, "outbox")
	cfg.NotifyOncePerOffset = true
	capturePrintln(t)

	var out, logs bytes.Buffer
	app, db, err := NewAppFromConfig(context.Background(), cfg, strings.NewReader("exit\n"), &out, &logs)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.IsType(t, &notify.OncePerOffset{}, app.scheduler.Tracker)
	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Welcome to policykeeper")
}

func TestMain_BadConfig(t *testing.T) {
	var errOut bytes.Buffer
	code := Main(context.Background(), []string{"-l", "fr"}, strings.NewReader(""), &bytes.Buffer{}, &errOut)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut.String(), "unsupported language")
}
