package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/common"
	"github.com/dmitrijs2005/policykeeper/internal/expiry"
	"github.com/dmitrijs2005/policykeeper/internal/logging"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/customers"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CustomerService is the record store. Records are kept in memory after the
// first read; every change is written back as one snapshot.
//
// Contract:
//   - Add/Update normalize phone numbers (ErrInvalidPhone) and validate the
//     remaining fields (ErrValidation) before anything is stored.
//   - Update/Delete/Get of an unknown id yield ErrNotFound.
//   - Merge appends records whose id is not present yet and never changes
//     existing ones.
type CustomerService interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id string) (models.Customer, error)
	Add(ctx context.Context, in models.CustomerInput) (models.Customer, error)
	Update(ctx context.Context, id string, in models.CustomerInput) (models.Customer, error)
	Delete(ctx context.Context, id string) error
	Merge(ctx context.Context, incoming []models.Customer) (MergeResult, error)
	Query(ctx context.Context, bucket expiry.Bucket, search string) ([]models.Customer, error)
	Stats(ctx context.Context) (expiry.Stats, error)
}

// MergeResult counts what an import did.
type MergeResult struct {
	Added   int
	Skipped int
}

type customerService struct {
	repo     customers.Repository
	validate *validator.Validate
	log      logging.Logger
	now      func() time.Time
	newID    func() string

	mu     sync.RWMutex
	loaded bool
	list   []models.Customer
}

// CustomerOption customizes a CustomerService.
type CustomerOption func(*customerService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CustomerOption {
	return func(s *customerService) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString.
func WithIDGenerator(f func() string) CustomerOption {
	return func(s *customerService) { s.newID = f }
}

func NewCustomerService(repo customers.Repository, log logging.Logger, opts ...CustomerOption) CustomerService {
	s := &customerService{
		repo:     repo,
		validate: validator.New(),
		log:      log.With("module", "customers"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// snapshot returns a copy of the list, loading it on first use.
func (s *customerService) snapshot(ctx context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	if s.loaded {
		out := append([]models.Customer(nil), s.list...)
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return append([]models.Customer(nil), s.list...), nil
}

func (s *customerService) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	list, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load customers: %w", err)
	}
	s.list = list
	s.loaded = true
	return nil
}

// mutate applies fn to a copy of the list and persists the result. The
// in-memory list only changes when the write succeeds.
func (s *customerService) mutate(ctx context.Context, fn func([]models.Customer) ([]models.Customer, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return err
	}
	next, err := fn(append([]models.Customer(nil), s.list...))
	if err != nil {
		return err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save customers: %w", err)
	}
	s.list = next
	return nil
}

func (s *customerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.snapshot(ctx)
}

func indexOf(list []models.Customer, id string) int {
	for i, c := range list {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *customerService) Get(ctx context.Context, id string) (models.Customer, error) {
	list, err := s.snapshot(ctx)
	if err != nil {
		return models.Customer{}, err
	}
	i := indexOf(list, id)
	if i < 0 {
		return models.Customer{}, common.ErrNotFound
	}
	return list[i], nil
}

// check normalizes and validates raw form input.
func (s *customerService) check(in models.CustomerInput) (models.CustomerInput, error) {
	in, err := in.Normalize()
	if err != nil {
		return in, err
	}
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}
			return in, fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(msgs, ", "))
		}
		return in, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	if in.InsuranceCategory == models.CategoryMotor && !in.VehicleCategory.Valid() {
		return in, fmt.Errorf("%w: unknown vehicle type %q", common.ErrValidation, in.VehicleCategory)
	}
	return in, nil
}

func (s *customerService) Add(ctx context.Context, in models.CustomerInput) (models.Customer, error) {
	in, err := s.check(in)
	if err != nil {
		return models.Customer{}, err
	}

	c := models.Customer{
		ID:        s.newID(),
		CreatedAt: timex.Timestamp(s.now()),
	}
	in.Apply(&c)

	err = s.mutate(ctx, func(list []models.Customer) ([]models.Customer, error) {
		return append(list, c), nil
	})
	if err != nil {
		return models.Customer{}, err
	}
	s.log.Info(ctx, "customer added", "id", c.ID)
	return c, nil
}

func (s *customerService) Update(ctx context.Context, id string, in models.CustomerInput) (models.Customer, error) {
	in, err := s.check(in)
	if err != nil {
		return models.Customer{}, err
	}

	var updated models.Customer
	err = s.mutate(ctx, func(list []models.Customer) ([]models.Customer, error) {
		i := indexOf(list, id)
		if i < 0 {
			return nil, common.ErrNotFound
		}
		in.Apply(&list[i])
		updated = list[i]
		return list, nil
	})
	if err != nil {
		return models.Customer{}, err
	}
	s.log.Info(ctx, "customer updated", "id", id)
	return updated, nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	err := s.mutate(ctx, func(list []models.Customer) ([]models.Customer, error) {
		i := indexOf(list, id)
		if i < 0 {
			return nil, common.ErrNotFound
		}
		return append(list[:i], list[i+1:]...), nil
	})
	if err != nil {
		return err
	}
	s.log.Info(ctx, "customer deleted", "id", id)
	return nil
}

// Merge adds incoming records whose id is unknown, keeping their ids, so
// importing the same file twice is a no-op the second time. Duplicates
// inside incoming are added once.
func (s *customerService) Merge(ctx context.Context, incoming []models.Customer) (MergeResult, error) {
	var res MergeResult
	err := s.mutate(ctx, func(list []models.Customer) ([]models.Customer, error) {
		seen := make(map[string]struct{}, len(list)+len(incoming))
		for _, c := range list {
			seen[c.ID] = struct{}{}
		}
		for _, c := range incoming {
			if c.ID == "" {
				c.ID = s.newID()
			}
			if _, dup := seen[c.ID]; dup {
				res.Skipped++
				continue
			}
			if c.CreatedAt == "" {
				c.CreatedAt = timex.Timestamp(s.now())
			}
			seen[c.ID] = struct{}{}
			list = append(list, c)
			res.Added++
		}
		return list, nil
	})
	if err != nil {
		return MergeResult{}, err
	}
	s.log.Info(ctx, "customers merged", "added", res.Added, "skipped", res.Skipped)
	return res, nil
}

// matchesSearch compares name and address case-insensitively and phone
// numbers verbatim.
func matchesSearch(c models.Customer, q string) bool {
	lq := strings.ToLower(q)
	return strings.Contains(strings.ToLower(c.Name), lq) ||
		strings.Contains(c.MobileNumber, q) ||
		strings.Contains(c.WhatsAppNumber, q) ||
		strings.Contains(strings.ToLower(c.Address), lq)
}

// Query filters by bucket first and then by the search text, if any.
func (s *customerService) Query(ctx context.Context, bucket expiry.Bucket, search string) ([]models.Customer, error) {
	list, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := expiry.Filter(list, bucket, timex.Midnight(s.now()))
	if search == "" {
		return out, nil
	}
	filtered := out[:0]
	for _, c := range out {
		if matchesSearch(c, search) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *customerService) Stats(ctx context.Context) (expiry.Stats, error) {
	list, err := s.snapshot(ctx)
	if err != nil {
		return expiry.Stats{}, err
	}
	return expiry.Count(list, timex.Midnight(s.now())), nil
}
