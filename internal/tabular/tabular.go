// Package tabular converts the customer list to and from the file formats
// offered for export and import: delimited text, spreadsheet and a JSON
// backup snapshot. Decoders only return records; merging them into the
// store is the caller's job.
package tabular

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/common"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
	"github.com/google/uuid"
)

// Headers are the column titles of CSV and XLSX exports, in column order.
var Headers = []string{
	"ID", "Name", "Mobile Number", "WhatsApp Number", "Address",
	"Insurance Type", "Policy Number", "Motor Type", "Vehicle Number",
	"Start Date", "Expiry Date", "Created At",
}

// minFields is the number of leading columns a CSV line must provide;
// Created At may be omitted.
const minFields = 11

// Format identifies a file encoding.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatBackup Format = "json"
)

// DetectFormat picks the decoder for filename by its extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xls":
		return FormatXLSX, nil
	case ".json":
		return FormatBackup, nil
	}
	return "", common.ErrUnsupportedFormat
}

// Backfill supplies values for records that arrive without an id or a
// creation time.
type Backfill struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultBackfill uses the wall clock and random UUIDs.
func DefaultBackfill() Backfill {
	return Backfill{Now: time.Now, NewID: uuid.NewString}
}

func (b Backfill) apply(c *models.Customer) {
	if c.ID == "" {
		c.ID = b.NewID()
	}
	if c.CreatedAt == "" {
		c.CreatedAt = timex.Timestamp(b.Now())
	}
}

// DecodeResult is the outcome of a decode. SkippedLines holds the 1-based
// line numbers of CSV lines that were dropped for having too few fields.
type DecodeResult struct {
	Records      []models.Customer
	SkippedLines []int
}

func row(c models.Customer) []string {
	return []string{
		c.ID,
		c.Name,
		c.MobileNumber,
		c.WhatsAppNumber,
		c.Address,
		string(c.InsuranceCategory),
		c.PolicyNumber,
		string(c.VehicleCategory),
		c.VehicleNumber,
		c.StartDate,
		c.ExpiryDate,
		c.CreatedAt,
	}
}

// fromFields builds a record from values in Headers order. Missing trailing
// values are empty.
func fromFields(v []string) models.Customer {
	get := func(i int) string {
		if i < len(v) {
			return v[i]
		}
		return ""
	}
	return models.Customer{
		ID:                get(0),
		Name:              get(1),
		MobileNumber:      get(2),
		WhatsAppNumber:    get(3),
		Address:           get(4),
		InsuranceCategory: models.InsuranceCategory(get(5)),
		PolicyNumber:      get(6),
		VehicleCategory:   models.VehicleCategory(get(7)),
		VehicleNumber:     get(8),
		StartDate:         get(9),
		ExpiryDate:        get(10),
		CreatedAt:         get(11),
	}
}
