package core

// export.go serializes the full, unfiltered dataset (sorted by id
// descending) to CSV or XLSX. Both formats cover the same rows and
// column semantics, so either can be read back into the same table.

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"nursedesk/internal/logging"
)

// ExportSheetName is the sheet holding the records in XLSX exports.
const ExportSheetName = "Nurses"

// csvHeader uses human-readable column titles; xlsxHeader uses the raw
// field keys. The column order is identical.
var (
	csvHeader  = []string{"Id", "Name", "License Number", "Date of Birth", "Age", "Created At", "Updated At"}
	xlsxHeader = []string{"id", "name", "license_number", "date_of_birth", "age", "created_at", "updated_at"}
)

// exportQuery reads the whole table, newest records first.
var exportQuery = ListQuery{SortField: "id", SortOrder: "desc"}

const timestampLayout = "2006-01-02 15:04:05"

// exportRow renders one record as strings in export column order.
func exportRow(n Nurse) []string {
	return []string{
		fmt.Sprintf("%d", n.ID),
		n.Name,
		n.LicenseNumber,
		n.DateOfBirth.Format(dateLayout),
		fmt.Sprintf("%d", n.Age),
		n.CreatedAt.Format(timestampLayout),
		n.UpdatedAt.Format(timestampLayout),
	}
}

// WriteCSV writes the records as CSV with standard quoting for embedded
// commas, quotes, and newlines.
func WriteCSV(w io.Writer, nurses []Nurse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, n := range nurses {
		if err := cw.Write(exportRow(n)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the records as a single-sheet workbook. Numeric
// fields are written as numbers; dates keep the CSV rendering so both
// formats round-trip to the same table contents.
func WriteXLSX(w io.Writer, nurses []Nurse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(xlsxHeader))
	for i, h := range xlsxHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}

	for i, n := range nurses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		row := []interface{}{
			n.ID,
			n.Name,
			n.LicenseNumber,
			n.DateOfBirth.Format(dateLayout),
			n.Age,
			n.CreatedAt.Format(timestampLayout),
			n.UpdatedAt.Format(timestampLayout),
		}
		if err := f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return fmt.Errorf("write xlsx row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// ExportCSV reads the full dataset and returns it as a CSV byte buffer.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	return s.export(ctx, "csv", WriteCSV)
}

// ExportXLSX reads the full dataset and returns it as an XLSX byte
// buffer.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	return s.export(ctx, "xlsx", WriteXLSX)
}

// export runs the read-only side path off the store: fetch everything,
// then hand the rows to the format serializer. Each run gets an export
// id so its log entries can be correlated.
func (s *Service) export(ctx context.Context, format string, write func(io.Writer, []Nurse) error) ([]byte, error) {
	logger := logging.WithFields(ctx, "export_id", uuid.New().String(), "format", format)
	logger.Info("export started")

	nurses, err := s.store.List(ctx, exportQuery)
	if err != nil {
		logger.Error("export failed", "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	if err := write(&buf, nurses); err != nil {
		logger.Error("export failed", "error", err)
		return nil, err
	}

	logger.Info("export completed", "rows", len(nurses), "bytes", buf.Len())
	return buf.Bytes(), nil
}
