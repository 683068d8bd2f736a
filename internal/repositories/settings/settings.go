// Package settings keeps the user preferences: message language and the
// optional export password. Both are stored as plain strings.
package settings

import (
	"context"

	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/kv"
)

const (
	KeyLanguage       = "language"
	KeyExportPassword = "exportPassword"
)

type Repository interface {
	// Language returns "" when no preference was saved.
	Language(ctx context.Context) (models.Language, error)
	SetLanguage(ctx context.Context, lang models.Language) error
	// ExportPassword returns "" when export is not protected.
	ExportPassword(ctx context.Context) (string, error)
	SetExportPassword(ctx context.Context, password string) error
	ClearExportPassword(ctx context.Context) error
}

type KVRepository struct {
	kv kv.Repository
}

func NewKVRepository(store kv.Repository) *KVRepository {
	return &KVRepository{kv: store}
}

func (r *KVRepository) Language(ctx context.Context) (models.Language, error) {
	raw, err := r.kv.Get(ctx, KeyLanguage)
	if err != nil {
		return "", err
	}
	return models.Language(raw), nil
}

func (r *KVRepository) SetLanguage(ctx context.Context, lang models.Language) error {
	return r.kv.Set(ctx, KeyLanguage, []byte(lang))
}

func (r *KVRepository) ExportPassword(ctx context.Context) (string, error) {
	raw, err := r.kv.Get(ctx, KeyExportPassword)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *KVRepository) SetExportPassword(ctx context.Context, password string) error {
	return r.kv.Set(ctx, KeyExportPassword, []byte(password))
}

func (r *KVRepository) ClearExportPassword(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyExportPassword)
}
