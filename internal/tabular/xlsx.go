package tabular

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/policykeeper/internal/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet written by EncodeXLSX.
const SheetName = "Customers"

// EncodeXLSX writes a workbook with a single Customers sheet: a header row
// followed by one row per record.
func EncodeXLSX(w io.Writer, customers []models.Customer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, 1, Headers); err != nil {
		return err
	}
	for i, c := range customers {
		if err := writeRow(f, i+2, row(c)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, n int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", n, err)
	}
	return nil
}

// DecodeXLSX reads the first worksheet. The first row names the columns and
// values are looked up by header title, so column order does not matter.
// Completely empty rows are ignored; absent cells become empty strings.
func DecodeXLSX(r io.Reader, bf Backfill) (res DecodeResult, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return DecodeResult{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return DecodeResult{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return DecodeResult{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return DecodeResult{}, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.TrimSpace(h)] = i
	}

	for _, cells := range rows[1:] {
		if emptyRow(cells) {
			continue
		}
		fields := make([]string, len(Headers))
		for i, h := range Headers {
			if col, ok := index[h]; ok && col < len(cells) {
				fields[i] = cells[col]
			}
		}
		c := fromFields(fields)
		bf.apply(&c)
		res.Records = append(res.Records, c)
	}
	return res, nil
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
