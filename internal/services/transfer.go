package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/common"
	"github.com/dmitrijs2005/policykeeper/internal/filex"
	"github.com/dmitrijs2005/policykeeper/internal/logging"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/tabular"
)

// ShareTexts supplies the localized caption of a shared file.
type ShareTexts interface {
	ShareNote(lang models.Language) (string, string)
}

// ImportResult describes a finished import.
type ImportResult struct {
	Format       tabular.Format
	Read         int
	SkippedLines []int
	MergeResult
}

// TransferService moves the customer list in and out of files.
//
// Export, Backup and Share require the export password when one is set
// (ErrInvalidCredentials otherwise). Import decodes the whole file before
// merging; a decode error leaves the store untouched.
type TransferService interface {
	Export(ctx context.Context, format tabular.Format, password string) (string, error)
	Backup(ctx context.Context, password string) (string, error)
	Import(ctx context.Context, path string) (ImportResult, error)
	Share(ctx context.Context, format tabular.Format, lang models.Language, password string) (string, error)
}

type transferService struct {
	customers CustomerService
	settings  SettingsService
	sharer    Sharer
	texts     ShareTexts
	exportDir string
	backfill  tabular.Backfill
	now       func() time.Time
	log       logging.Logger
}

// TransferConfig wires a TransferService.
type TransferConfig struct {
	Customers CustomerService
	Settings  SettingsService
	Sharer    Sharer
	Texts     ShareTexts
	ExportDir string
	Now       func() time.Time
	Backfill  *tabular.Backfill
	Log       logging.Logger
}

func NewTransferService(cfg TransferConfig) TransferService {
	s := &transferService{
		customers: cfg.Customers,
		settings:  cfg.Settings,
		sharer:    cfg.Sharer,
		texts:     cfg.Texts,
		exportDir: cfg.ExportDir,
		backfill:  tabular.DefaultBackfill(),
		now:       cfg.Now,
		log:       cfg.Log.With("module", "transfer"),
	}
	if s.sharer == nil {
		s.sharer = UnsupportedSharer{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if cfg.Backfill != nil {
		s.backfill = *cfg.Backfill
	}
	return s
}

func exportName(format tabular.Format) (string, error) {
	switch format {
	case tabular.FormatCSV:
		return "customers.csv", nil
	case tabular.FormatXLSX:
		return "customers.xlsx", nil
	}
	return "", common.ErrUnsupportedFormat
}

func encode(format tabular.Format, list []models.Customer) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case tabular.FormatCSV:
		err = tabular.EncodeCSV(&buf, list)
	case tabular.FormatXLSX:
		err = tabular.EncodeXLSX(&buf, list)
	default:
		err = common.ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *transferService) Export(ctx context.Context, format tabular.Format, password string) (string, error) {
	name, err := exportName(format)
	if err != nil {
		return "", err
	}
	if err := s.settings.CheckExportPassword(ctx, password); err != nil {
		return "", err
	}
	list, err := s.customers.List(ctx)
	if err != nil {
		return "", err
	}
	data, err := encode(format, list)
	if err != nil {
		return "", err
	}
	path, err := filex.WriteFile(s.exportDir, name, data)
	if err != nil {
		return "", err
	}
	s.log.Info(ctx, "exported", "path", path, "records", len(list))
	return path, nil
}

func (s *transferService) Backup(ctx context.Context, password string) (string, error) {
	if err := s.settings.CheckExportPassword(ctx, password); err != nil {
		return "", err
	}
	list, err := s.customers.List(ctx)
	if err != nil {
		return "", err
	}
	now := s.now()
	var buf bytes.Buffer
	if err := tabular.EncodeBackup(&buf, list, now); err != nil {
		return "", err
	}
	path, err := filex.WriteFile(s.exportDir, tabular.BackupFilename(now), buf.Bytes())
	if err != nil {
		return "", err
	}
	s.log.Info(ctx, "backup written", "path", path, "records", len(list))
	return path, nil
}

func (s *transferService) Import(ctx context.Context, path string) (ImportResult, error) {
	format, err := tabular.DetectFormat(path)
	if err != nil {
		return ImportResult{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var decoded tabular.DecodeResult
	switch format {
	case tabular.FormatCSV:
		decoded, err = tabular.DecodeCSV(f, s.backfill)
	case tabular.FormatXLSX:
		decoded, err = tabular.DecodeXLSX(f, s.backfill)
	case tabular.FormatBackup:
		decoded.Records, err = tabular.DecodeBackup(f)
	}
	if err != nil {
		return ImportResult{}, err
	}

	merged, err := s.customers.Merge(ctx, decoded.Records)
	if err != nil {
		return ImportResult{}, err
	}
	if len(decoded.SkippedLines) > 0 {
		s.log.Warn(ctx, "malformed lines skipped", "lines", decoded.SkippedLines)
	}
	return ImportResult{
		Format:       format,
		Read:         len(decoded.Records),
		SkippedLines: decoded.SkippedLines,
		MergeResult:  merged,
	}, nil
}

// Share encodes the whole list and passes it to the Sharer. It returns the
// file name that was shared.
func (s *transferService) Share(ctx context.Context, format tabular.Format, lang models.Language, password string) (string, error) {
	name, err := exportName(format)
	if err != nil {
		return "", err
	}
	list, err := s.customers.List(ctx)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", common.ErrNoCustomers
	}
	if err := s.settings.CheckExportPassword(ctx, password); err != nil {
		return "", err
	}
	data, err := encode(format, list)
	if err != nil {
		return "", err
	}
	title, text := s.texts.ShareNote(lang)
	if err := s.sharer.Share(ctx, ShareFile{Name: name, Data: data, Title: title, Text: text}); err != nil {
		return "", err
	}
	s.log.Info(ctx, "shared", "file", name, "records", len(list))
	return name, nil
}
