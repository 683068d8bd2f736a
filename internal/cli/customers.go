package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/policykeeper/internal/expiry"
	"github.com/dmitrijs2005/policykeeper/internal/message"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
)

// dueText describes how far a record is from expiry.
func (a *App) dueText(c models.Customer) string {
	offset, err := expiry.Offset(a.today(), c.ExpiryDate)
	if err != nil {
		return "?"
	}
	glyph := message.TierFor(offset).Glyph()
	switch {
	case offset < 0:
		return fmt.Sprintf("%s expired %d days ago", glyph, -offset)
	case offset == 0:
		return glyph + " expires today"
	case offset == 1:
		return glyph + " 1 day left"
	default:
		return fmt.Sprintf("%s %d days left", glyph, offset)
	}
}

func identifier(c models.Customer) string {
	if c.IsMotor() {
		return c.VehicleNumber
	}
	return c.PolicyNumber
}

func (a *App) printTable(list []models.Customer) {
	if len(list) == 0 {
		a.println("No customers found.")
		return
	}
	lang := a.language(context.Background())
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMOBILE\tTYPE\tPOLICY/VEHICLE\tEXPIRY\tSTATUS")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.MobileNumber, c.InsuranceCategory.Label(lang),
			identifier(c), timex.FormatDisplay(c.ExpiryDate), a.dueText(c))
	}
	tw.Flush()
	a.printf("%d customer(s)\n", len(list))
}

// List prints the customers of a bucket, optionally narrowed by a search
// text: "list", "list 7", "list expired ravi", "list ravi".
func (a *App) List(ctx context.Context, args []string) error {
	bucket := expiry.BucketAll
	if len(args) > 0 {
		if b, err := expiry.ParseBucket(strings.ToLower(args[0])); err == nil {
			bucket = b
			args = args[1:]
		}
	}
	list, err := a.customers.Query(ctx, bucket, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printTable(list)
	return nil
}

// Search matches name, address and phone numbers across all records.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("search <query>")
	}
	list, err := a.customers.Query(ctx, expiry.BucketAll, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printTable(list)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	s, err := a.customers.Stats(ctx)
	if err != nil {
		return err
	}
	a.printf("Total: %d\n15 days: %d\n7 days: %d\n2 days: %d\nExpired: %d\n",
		s.Total, s.Days15, s.Days7, s.Days2, s.Expired)
	return nil
}

func singleID(args []string, usage string) (string, error) {
	if len(args) != 1 {
		return "", usageError(usage)
	}
	return args[0], nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := singleID(args, "show <id>")
	if err != nil {
		return err
	}
	c, err := a.customers.Get(ctx, id)
	if err != nil {
		return err
	}
	lang := a.language(ctx)
	a.printf("ID:        %s\n", c.ID)
	a.printf("Name:      %s\n", c.Name)
	a.printf("Mobile:    %s\n", c.MobileNumber)
	a.printf("WhatsApp:  %s\n", c.WhatsAppNumber)
	a.printf("Address:   %s\n", c.Address)
	a.printf("Insurance: %s\n", c.InsuranceCategory.Label(lang))
	if c.IsMotor() {
		a.printf("Vehicle:   %s %s\n", c.VehicleCategory.Label(lang), c.VehicleNumber)
	} else {
		a.printf("Policy:    %s\n", c.PolicyNumber)
	}
	a.printf("Start:     %s\n", timex.FormatDisplay(c.StartDate))
	a.printf("Expiry:    %s (%s)\n", timex.FormatDisplay(c.ExpiryDate), a.dueText(c))
	return nil
}

// promptInput asks for every editable field, offering cur as defaults.
func (a *App) promptInput(cur models.CustomerInput) (models.CustomerInput, error) {
	in := cur
	ask := func(prompt string, current string) (string, error) {
		v, err := getSimpleText(a.reader, withDefault(prompt, current), a.out)
		if err != nil {
			return "", err
		}
		return orDefault(v, current), nil
	}

	var err error
	if in.Name, err = ask("Customer name", cur.Name); err != nil {
		return in, err
	}
	if in.MobileNumber, err = ask("Mobile number", cur.MobileNumber); err != nil {
		return in, err
	}
	waDefault := cur.WhatsAppNumber
	if waDefault == "" {
		waDefault = in.MobileNumber
	}
	if in.WhatsAppNumber, err = ask("WhatsApp number", waDefault); err != nil {
		return in, err
	}
	if in.Address, err = ask("Address", cur.Address); err != nil {
		return in, err
	}

	cats := make([]string, len(models.InsuranceCategories))
	for i, c := range models.InsuranceCategories {
		cats[i] = string(c)
	}
	cat, err := ask("Insurance type ("+strings.Join(cats, ", ")+")", string(cur.InsuranceCategory))
	if err != nil {
		return in, err
	}
	in.InsuranceCategory = models.InsuranceCategory(strings.ToLower(cat))

	if in.InsuranceCategory == models.CategoryMotor {
		vcs := make([]string, len(models.VehicleCategories))
		for i, v := range models.VehicleCategories {
			vcs[i] = string(v)
		}
		vc, err := ask("Motor type ("+strings.Join(vcs, ", ")+")", string(cur.VehicleCategory))
		if err != nil {
			return in, err
		}
		in.VehicleCategory = models.VehicleCategory(strings.ToLower(vc))
		if in.VehicleNumber, err = ask("Vehicle number", cur.VehicleNumber); err != nil {
			return in, err
		}
	} else {
		if in.PolicyNumber, err = ask("Policy number", cur.PolicyNumber); err != nil {
			return in, err
		}
	}

	startDefault := cur.StartDate
	if startDefault == "" {
		startDefault = a.today().Format(timex.DateLayout)
	}
	if in.StartDate, err = ask("Start date (YYYY-MM-DD)", startDefault); err != nil {
		return in, err
	}
	if in.ExpiryDate, err = ask("Expiry date (YYYY-MM-DD)", cur.ExpiryDate); err != nil {
		return in, err
	}
	return in, nil
}

func (a *App) Add(ctx context.Context) error {
	in, err := a.promptInput(models.CustomerInput{})
	if err != nil {
		return err
	}
	c, err := a.customers.Add(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Customer added: %s\n", c.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := singleID(args, "edit <id>")
	if err != nil {
		return err
	}
	c, err := a.customers.Get(ctx, id)
	if err != nil {
		return err
	}
	in, err := a.promptInput(models.InputFrom(c))
	if err != nil {
		return err
	}
	if _, err := a.customers.Update(ctx, id, in); err != nil {
		return err
	}
	a.println("Customer updated.")
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := singleID(args, "delete <id>")
	if err != nil {
		return err
	}
	c, err := a.customers.Get(ctx, id)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s? (y/N)", c.Name), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		a.println("Cancelled.")
		return nil
	}
	if err := a.customers.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Customer deleted.")
	return nil
}
