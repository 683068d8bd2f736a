package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/policykeeper/internal/common"
	"github.com/dmitrijs2005/policykeeper/internal/models"
)

// Lang shows or changes the message language.
func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("Language:", a.language(ctx))
		return nil
	}
	lang, err := models.ParseLanguage(strings.ToLower(args[0]))
	if err != nil {
		return usageError("lang en|hi")
	}
	if err := a.settings.SetLanguage(ctx, lang); err != nil {
		return err
	}
	a.println("Language set to", lang)
	return nil
}

// ExportPassword sets or removes the password that protects export, backup
// and share. Changing or removing an existing password requires it first.
func (a *App) ExportPassword(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("exportpw set|remove")
	}
	switch strings.ToLower(args[0]) {
	case "set":
		if err := a.checkCurrentExportPassword(ctx); err != nil {
			return err
		}
		pw, err := getPassword(a.reader, "New export password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(pw)
		confirm, err := getPassword(a.reader, "Confirm export password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(confirm)
		if err := a.settings.SetExportPassword(ctx, string(pw), string(confirm)); err != nil {
			return err
		}
		a.println("Export password set.")
	case "remove":
		if err := a.checkCurrentExportPassword(ctx); err != nil {
			return err
		}
		if err := a.settings.RemoveExportPassword(ctx); err != nil {
			return err
		}
		a.println("Export password removed.")
	default:
		return usageError("exportpw set|remove")
	}
	return nil
}

func (a *App) checkCurrentExportPassword(ctx context.Context) error {
	pw, err := a.exportPassword(ctx)
	if err != nil {
		return err
	}
	return gated(a.settings.CheckExportPassword(ctx, pw))
}

// Notify switches terminal alerts on or off, or shows the state.
func (a *App) Notify(ctx context.Context, args []string) error {
	if a.gate == nil {
		a.println("Notifications are not available.")
		return nil
	}
	if len(args) == 0 {
		if a.gate.Granted() {
			a.println("Notifications: on")
		} else {
			a.println("Notifications: off")
		}
		return nil
	}
	switch strings.ToLower(args[0]) {
	case "on":
		a.gate.Grant()
		a.println("Notifications enabled.")
		if a.scheduler != nil {
			if _, err := a.scheduler.Scan(ctx); err != nil {
				return err
			}
		}
	case "off":
		a.gate.Revoke()
		a.println("Notifications disabled.")
	default:
		return usageError("notify on|off")
	}
	return nil
}
