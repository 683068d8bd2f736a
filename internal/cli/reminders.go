package cli

import (
	"context"
)

// Remind prints the renewal message for one customer together with the
// WhatsApp link that opens it pre-filled.
func (a *App) Remind(ctx context.Context, args []string) error {
	id, err := singleID(args, "remind <id>")
	if err != nil {
		return err
	}
	r, err := a.reminders.Compose(ctx, id, a.language(ctx))
	if err != nil {
		return err
	}
	a.println(r.Text)
	a.println("WhatsApp:", r.WhatsAppURL)
	return nil
}

func (a *App) Call(ctx context.Context, args []string) error {
	id, err := singleID(args, "call <id>")
	if err != nil {
		return err
	}
	r, err := a.reminders.Compose(ctx, id, a.language(ctx))
	if err != nil {
		return err
	}
	a.printf("Call %s: %s\n", r.Customer.Name, r.DialURL)
	return nil
}
