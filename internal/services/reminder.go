package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/expiry"
	"github.com/dmitrijs2005/policykeeper/internal/message"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
)

// Reminder is everything needed to contact one customer about renewal.
type Reminder struct {
	Customer    models.Customer
	Offset      int
	Tier        message.Tier
	Text        string
	WhatsAppURL string
	DialURL     string
}

// ReminderService composes renewal messages for stored records.
type ReminderService interface {
	Compose(ctx context.Context, id string, lang models.Language) (Reminder, error)
}

type reminderService struct {
	customers   CustomerService
	formatter   *message.Formatter
	countryCode string
	now         func() time.Time
}

func NewReminderService(customers CustomerService, formatter *message.Formatter, countryCode string, now func() time.Time) ReminderService {
	if countryCode == "" {
		countryCode = message.DefaultCountryCode
	}
	if now == nil {
		now = time.Now
	}
	return &reminderService{customers: customers, formatter: formatter, countryCode: countryCode, now: now}
}

func (r *reminderService) Compose(ctx context.Context, id string, lang models.Language) (Reminder, error) {
	c, err := r.customers.Get(ctx, id)
	if err != nil {
		return Reminder{}, err
	}
	offset, err := expiry.Offset(timex.Midnight(r.now()), c.ExpiryDate)
	if err != nil {
		return Reminder{}, err
	}
	text := r.formatter.Format(c, offset, lang)
	return Reminder{
		Customer:    c,
		Offset:      offset,
		Tier:        message.TierFor(offset),
		Text:        text,
		WhatsAppURL: message.WhatsAppURL(c.WhatsAppNumber, text, r.countryCode),
		DialURL:     message.DialURL(c.MobileNumber, r.countryCode),
	}, nil
}
