// Package users is the credential store: the list of local accounts under
// "users" and the signed-in account under "currentUser".
package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/kv"
	"github.com/goccy/go-json"
)

const (
	KeyUsers   = "users"
	KeyCurrent = "currentUser"
)

// Store holds account records. Passwords are stored as handed in; hashing,
// if any, happens before they get here.
type Store interface {
	List(ctx context.Context) ([]models.User, error)
	SaveAll(ctx context.Context, list []models.User) error
	Current(ctx context.Context) (*models.User, error)
	SetCurrent(ctx context.Context, u *models.User) error
}

type KVStore struct {
	kv kv.Repository
}

func NewKVStore(store kv.Repository) *KVStore {
	return &KVStore{kv: store}
}

func (s *KVStore) List(ctx context.Context) ([]models.User, error) {
	raw, err := s.kv.Get(ctx, KeyUsers)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var list []models.User
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyUsers, err)
	}
	return list, nil
}

func (s *KVStore) SaveAll(ctx context.Context, list []models.User) error {
	if list == nil {
		list = []models.User{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyUsers, err)
	}
	return s.kv.Set(ctx, KeyUsers, raw)
}

// Current returns nil when nobody is signed in.
func (s *KVStore) Current(ctx context.Context) (*models.User, error) {
	raw, err := s.kv.Get(ctx, KeyCurrent)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyCurrent, err)
	}
	return &u, nil
}

// SetCurrent signs u in; nil signs out.
func (s *KVStore) SetCurrent(ctx context.Context, u *models.User) error {
	if u == nil {
		return s.kv.Delete(ctx, KeyCurrent)
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyCurrent, err)
	}
	return s.kv.Set(ctx, KeyCurrent, raw)
}
