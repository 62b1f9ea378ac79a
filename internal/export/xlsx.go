// Package export turns a displayed set of transit records into an xlsx
// workbook with the fixed checkpoint-registry layout.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"gatepost/internal/domain/transit"
)

const SheetName = "Transits"

// DefaultPrefix names the export when no date bounds are active.
const DefaultPrefix = "transit-checkpoint"

// One entry per exported column, in sheet order.
var columns = []struct {
	header string
	width  float64
}{
	{"No.", 8},
	{"Name", 20},
	{"Car Model", 15},
	{"Car Number", 15},
	{"Unit", 12},
	{"Person Type", 15},
	{"Permit Giver", 20},
	{"Entry Time", 20},
	{"Exit Time", 20},
	{"Date", 12},
	{"Notes", 30},
}

// Workbook renders records into an in-memory xlsx file: a header row plus one
// row per record, fixed column widths, every cell right-aligned, absent
// values as the placeholder dash.
func Workbook(records []transit.Record) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col.header
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row coordinates: %w", err)
		}
		row := []interface{}{
			i + 1,
			orDash(rec.PersonName),
			orDash(rec.CarModel),
			orDash(rec.CarNumber),
			orDash(rec.Unit),
			orDash(rec.PersonType),
			orDash(rec.PermitGiver),
			transit.FormatInstant(rec.EntryTime),
			transit.FormatInstant(rec.ExitTime),
			orDash(rec.Date),
			orDash(rec.Notes),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	for i, col := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(SheetName, name, name, col.width); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	rightAligned, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	lastCell, err := excelize.CoordinatesToCellName(len(columns), len(records)+1)
	if err != nil {
		return nil, fmt.Errorf("last cell coordinates: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCell, rightAligned); err != nil {
		return nil, fmt.Errorf("apply style: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

// Filename produces "{prefix}-{YYYY-MM-DD}.xlsx" with today's date.
func Filename(prefix string, today time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, today.Format("2006-01-02"))
}

// WriteFile renders records and saves the workbook under dir, returning the
// written path.
func WriteFile(records []transit.Record, prefix, dir string) (string, error) {
	buf, err := Workbook(records)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, Filename(prefix, time.Now()))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func orDash(s string) string {
	if s == "" {
		return transit.Placeholder
	}
	return s
}
