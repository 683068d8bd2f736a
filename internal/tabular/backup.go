package tabular

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/policykeeper/internal/common"
	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/dmitrijs2005/policykeeper/internal/timex"
	"github.com/goccy/go-json"
)

// BackupVersion is written into every snapshot.
const BackupVersion = "1.0"

// Backup is the JSON snapshot of the whole customer list.
type Backup struct {
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Customers []models.Customer `json:"customers"`
}

// BackupFilename is the suggested file name for a snapshot taken at now.
func BackupFilename(now time.Time) string {
	return "insurance_backup_" + now.UTC().Format(timex.DateLayout) + ".json"
}

// EncodeBackup writes a two-space indented snapshot.
func EncodeBackup(w io.Writer, customers []models.Customer, now time.Time) error {
	if customers == nil {
		customers = []models.Customer{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Backup{
		Version:   BackupVersion,
		Timestamp: timex.Timestamp(now),
		Customers: customers,
	}); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// DecodeBackup accepts either a snapshot object or a bare array of records.
// Anything else is ErrInvalidBackup.
func DecodeBackup(r io.Reader) ([]models.Customer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var list []models.Customer
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidBackup, err)
		}
		return list, nil
	}

	var wrapped struct {
		Customers json.RawMessage `json:"customers"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidBackup, err)
	}
	raw := bytes.TrimSpace(wrapped.Customers)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: no customers array", common.ErrInvalidBackup)
	}
	var list []models.Customer
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidBackup, err)
	}
	return list, nil
}
