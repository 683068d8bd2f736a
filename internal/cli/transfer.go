package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/policykeeper/internal/common"
	"github.com/dmitrijs2005/policykeeper/internal/tabular"
)

var errWrongExportPassword = errors.New("incorrect export password")

// exportPassword asks for the export password only when one is set.
func (a *App) exportPassword(ctx context.Context) (string, error) {
	on, err := a.settings.ExportProtected(ctx)
	if err != nil || !on {
		return "", err
	}
	pw, err := getPassword(a.reader, "Export password", a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func gated(err error) error {
	if errors.Is(err, common.ErrInvalidCredentials) {
		return errWrongExportPassword
	}
	return err
}

func parseFileFormat(args []string, usage string) (tabular.Format, error) {
	if len(args) != 1 {
		return "", usageError(usage)
	}
	switch f := tabular.Format(strings.ToLower(args[0])); f {
	case tabular.FormatCSV, tabular.FormatXLSX:
		return f, nil
	}
	return "", usageError(usage)
}

func (a *App) Export(ctx context.Context, args []string) error {
	format, err := parseFileFormat(args, "export csv|xlsx")
	if err != nil {
		return err
	}
	pw, err := a.exportPassword(ctx)
	if err != nil {
		return err
	}
	path, err := a.transfer.Export(ctx, format, pw)
	if err != nil {
		return gated(err)
	}
	a.println("Exported to", path)
	return nil
}

func (a *App) Backup(ctx context.Context) error {
	pw, err := a.exportPassword(ctx)
	if err != nil {
		return err
	}
	path, err := a.transfer.Backup(ctx, pw)
	if err != nil {
		return gated(err)
	}
	a.println("Backup written to", path)
	return nil
}

// Import merges a CSV, XLSX or JSON backup file into the store. Records
// whose id already exists are left alone.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("import <file>")
	}
	res, err := a.transfer.Import(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printf("Imported %d new customer(s), %d already present.\n", res.Added, res.Skipped)
	if n := len(res.SkippedLines); n > 0 {
		lines := make([]string, n)
		for i, l := range res.SkippedLines {
			lines[i] = fmt.Sprint(l)
		}
		a.printf("Skipped %d malformed line(s): %s\n", n, strings.Join(lines, ", "))
	}
	return nil
}

func (a *App) Share(ctx context.Context, args []string) error {
	format, err := parseFileFormat(args, "share csv|xlsx")
	if err != nil {
		return err
	}
	pw, err := a.exportPassword(ctx)
	if err != nil {
		return err
	}
	name, err := a.transfer.Share(ctx, format, a.language(ctx), pw)
	if err != nil {
		return gated(err)
	}
	a.println("Shared", name)
	return nil
}
