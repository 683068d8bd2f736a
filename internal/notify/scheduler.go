package notify

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/expiry"
	"github.com/dmitrijs2005/policykeeper/internal/logging"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
)

// DefaultInterval is the time between two scans.
const DefaultInterval = time.Hour

// Source lists the records to scan. The scheduler never writes to it.
type Source interface {
	List(ctx context.Context) ([]models.Customer, error)
}

// Texts renders the alert for a record.
type Texts interface {
	Alert(c models.Customer, offset int, lang models.Language) (string, string)
}

// Scheduler periodically scans Source and raises alerts through Notifier.
type Scheduler struct {
	Source   Source
	Notifier Notifier
	Texts    Texts
	Tracker  Tracker
	Language func(ctx context.Context) models.Language
	Interval time.Duration
	Now      func() time.Time
	Log      logging.Logger
}

func (s *Scheduler) today() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return timex.Midnight(now())
}

func (s *Scheduler) logger() logging.Logger {
	if s.Log == nil {
		return logging.Discard()
	}
	return s.Log
}

func (s *Scheduler) language(ctx context.Context) models.Language {
	if s.Language == nil {
		return models.LanguageEnglish
	}
	return s.Language(ctx)
}

// Scan checks every record once and returns the number of alerts delivered.
// Records with unreadable expiry dates are skipped. An alert that is refused
// or fails is not marked and will be offered again by the next scan.
func (s *Scheduler) Scan(ctx context.Context) (int, error) {
	records, err := s.Source.List(ctx)
	if err != nil {
		return 0, err
	}

	tracker := s.Tracker
	if tracker == nil {
		tracker = Always{}
	}
	today := s.today()
	lang := s.language(ctx)

	sent := 0
	for _, c := range records {
		offset, err := expiry.Offset(today, c.ExpiryDate)
		if err != nil {
			s.logger().Debug(ctx, "skipping record with bad expiry date", "customer", c.ID, "expiry", c.ExpiryDate)
			continue
		}
		if !expiry.IsAlertOffset(offset) || tracker.Seen(c.ID, offset) {
			continue
		}
		title, body := s.Texts.Alert(c, offset, lang)
		if err := s.Notifier.Notify(ctx, title, body); err != nil {
			if errors.Is(err, ErrNotPermitted) {
				s.logger().Debug(ctx, "alert held back", "customer", c.ID)
			} else {
				s.logger().Warn(ctx, "alert delivery failed", "customer", c.ID, "error", err)
			}
			continue
		}
		tracker.Mark(c.ID, offset)
		sent++
	}
	s.logger().Debug(ctx, "scan finished", "records", len(records), "alerts", sent)
	return sent, nil
}

// Run scans immediately and then on every tick until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	s.scanAndLog(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.scanAndLog(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) scanAndLog(ctx context.Context) {
	if _, err := s.Scan(ctx); err != nil {
		s.logger().Error(ctx, "reminder scan failed", "error", err)
	}
}
