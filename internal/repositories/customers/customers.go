// Package customers persists the customer list as a single JSON array under
// the "customers" key. Save replaces the whole list in one write.
package customers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/kv"
	"github.com/goccy/go-json"
)

// Key is the storage key of the customer list.
const Key = "customers"

type Repository interface {
	Load(ctx context.Context) ([]models.Customer, error)
	Save(ctx context.Context, list []models.Customer) error
}

type KVRepository struct {
	kv kv.Repository
}

func NewKVRepository(store kv.Repository) *KVRepository {
	return &KVRepository{kv: store}
}

// Load returns an empty list when nothing has been saved yet.
func (r *KVRepository) Load(ctx context.Context) ([]models.Customer, error) {
	raw, err := r.kv.Get(ctx, Key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []models.Customer{}, nil
	}
	var list []models.Customer
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", Key, err)
	}
	if list == nil {
		list = []models.Customer{}
	}
	return list, nil
}

func (r *KVRepository) Save(ctx context.Context, list []models.Customer) error {
	if list == nil {
		list = []models.Customer{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", Key, err)
	}
	return r.kv.Set(ctx, Key, raw)
}
