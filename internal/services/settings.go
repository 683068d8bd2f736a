package services

import (
	"context"
	"crypto/subtle"

	"github.com/dmitrijs2005/policykeeper/internal/common"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/settings"
)

// MinExportPassword is the shortest accepted export password.
const MinExportPassword = 4

// SettingsService manages the message language and the export password
// that protects export, backup and share.
type SettingsService interface {
	Language(ctx context.Context) (models.Language, error)
	SetLanguage(ctx context.Context, lang models.Language) error
	ExportProtected(ctx context.Context) (bool, error)
	SetExportPassword(ctx context.Context, password, confirm string) error
	RemoveExportPassword(ctx context.Context) error
	// CheckExportPassword passes when no password is set or when candidate
	// matches; otherwise it returns ErrInvalidCredentials.
	CheckExportPassword(ctx context.Context, candidate string) error
}

type settingsService struct {
	repo        settings.Repository
	defaultLang models.Language
}

func NewSettingsService(repo settings.Repository, defaultLang models.Language) SettingsService {
	if defaultLang == "" {
		defaultLang = models.LanguageEnglish
	}
	return &settingsService{repo: repo, defaultLang: defaultLang}
}

// Language falls back to the configured default when nothing valid is stored.
func (s *settingsService) Language(ctx context.Context) (models.Language, error) {
	lang, err := s.repo.Language(ctx)
	if err != nil {
		return s.defaultLang, err
	}
	if _, err := models.ParseLanguage(string(lang)); err != nil {
		return s.defaultLang, nil
	}
	return lang, nil
}

func (s *settingsService) SetLanguage(ctx context.Context, lang models.Language) error {
	if _, err := models.ParseLanguage(string(lang)); err != nil {
		return err
	}
	return s.repo.SetLanguage(ctx, lang)
}

func (s *settingsService) ExportProtected(ctx context.Context) (bool, error) {
	pw, err := s.repo.ExportPassword(ctx)
	if err != nil {
		return false, err
	}
	return pw != "", nil
}

func (s *settingsService) SetExportPassword(ctx context.Context, password, confirm string) error {
	if password != confirm {
		return common.ErrPasswordMismatch
	}
	if len([]rune(password)) < MinExportPassword {
		return common.ErrPasswordTooShort
	}
	return s.repo.SetExportPassword(ctx, password)
}

func (s *settingsService) RemoveExportPassword(ctx context.Context) error {
	return s.repo.ClearExportPassword(ctx)
}

func (s *settingsService) CheckExportPassword(ctx context.Context, candidate string) error {
	pw, err := s.repo.ExportPassword(ctx)
	if err != nil {
		return err
	}
	if pw == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(pw), []byte(candidate)) != 1 {
		return common.ErrInvalidCredentials
	}
	return nil
}
