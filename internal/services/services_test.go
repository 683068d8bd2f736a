package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/logging"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/customers"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/kv"
	"github.com/dmitrijs2005/policykeeper/internal/repositories/settings"
	"github.com/dmitrijs2005/policykeeper/internal/storage"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newCustomerService(db *sql.DB) CustomerService {
	repo := customers.NewKVRepository(kv.NewSQLiteRepository(db))
	return NewCustomerService(repo, logging.Discard(), WithClock(fixedClock), WithIDGenerator(seqIDs()))
}

func discardLog() *logging.SlogLogger { return logging.Discard() }

func newSettingsService(db *sql.DB) SettingsService {
	return NewSettingsService(settings.NewKVRepository(kv.NewSQLiteRepository(db)), models.LanguageEnglish)
}

func motorInput() models.CustomerInput {
	return models.CustomerInput{
		Name:              "Ravi",
		MobileNumber:      "+91 98765 43210",
		WhatsAppNumber:    "98765-43211",
		Address:           "Pune",
		InsuranceCategory: models.CategoryMotor,
		PolicyNumber:      "ignored",
		VehicleCategory:   models.VehicleCar,
		VehicleNumber:     "mh12ab1234",
		StartDate:         "2023-01-16",
		ExpiryDate:        "2024-01-16",
	}
}

func healthInput(name, expiry string) models.CustomerInput {
	return models.CustomerInput{
		Name:              name,
		MobileNumber:      "9123456780",
		WhatsAppNumber:    "9123456780",
		Address:           "Main Street",
		InsuranceCategory: models.CategoryHealth,
		PolicyNumber:      "HP-1",
		StartDate:         "2023-01-01",
		ExpiryDate:        expiry,
	}
}
