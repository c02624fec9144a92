package core

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func sampleNurses() []Nurse {
	created := time.Date(2024, time.May, 2, 10, 30, 0, 0, time.UTC)
	return []Nurse{
		{
			ID:            2,
			Name:          `Bo "Quote", Jr.`,
			LicenseNumber: "LIC2",
			DateOfBirth:   NewDate(1985, time.December, 31),
			Age:           38,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		{
			ID:            1,
			Name:          "Ann",
			LicenseNumber: "LIC1",
			DateOfBirth:   NewDate(1990, time.May, 1),
			Age:           34,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleNurses()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d CSV rows, want 3 (header + 2 records)", len(records))
	}
	if !reflect.DeepEqual(records[0], csvHeader) {
		t.Errorf("header = %v, want %v", records[0], csvHeader)
	}

	// Embedded quote and comma must survive standard CSV quoting.
	if records[1][1] != `Bo "Quote", Jr.` {
		t.Errorf("name = %q, want %q", records[1][1], `Bo "Quote", Jr.`)
	}
	if records[1][3] != "1985-12-31" {
		t.Errorf("date_of_birth = %q, want %q", records[1][3], "1985-12-31")
	}
	if records[2][0] != "1" || records[2][4] != "34" {
		t.Errorf("row = %v, want id 1 and age 34", records[2])
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleNurses()); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("re-opening XLSX: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ExportSheetName)
	if err != nil {
		t.Fatalf("GetRows(%q): %v", ExportSheetName, err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d XLSX rows, want 3 (header + 2 records)", len(rows))
	}
	if !reflect.DeepEqual(rows[0], xlsxHeader) {
		t.Errorf("header = %v, want %v", rows[0], xlsxHeader)
	}
	if rows[1][0] != "2" || rows[1][2] != "LIC2" {
		t.Errorf("row = %v, want id 2 license LIC2", rows[1])
	}
}

func TestExportRoundTrip(t *testing.T) {
	// Both formats must yield the same (id, name, license_number,
	// date_of_birth, age) tuples when read back by a generic reader.
	nurses := sampleNurses()

	var csvBuf, xlsxBuf bytes.Buffer
	if err := WriteCSV(&csvBuf, nurses); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if err := WriteXLSX(&xlsxBuf, nurses); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	csvRecords, err := csv.NewReader(&csvBuf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBuf.Bytes()))
	if err != nil {
		t.Fatalf("re-opening XLSX: %v", err)
	}
	defer f.Close()
	xlsxRows, err := f.GetRows(ExportSheetName)
	if err != nil {
		t.Fatalf("GetRows(%q): %v", ExportSheetName, err)
	}

	if len(csvRecords) != len(xlsxRows) {
		t.Fatalf("CSV has %d rows, XLSX has %d", len(csvRecords), len(xlsxRows))
	}

	// Skip headers: they intentionally differ (titles vs field keys).
	for i := 1; i < len(csvRecords); i++ {
		for col := 0; col < 5; col++ {
			if csvRecords[i][col] != xlsxRows[i][col] {
				t.Errorf("row %d col %d: CSV %q != XLSX %q",
					i, col, csvRecords[i][col], xlsxRows[i][col])
			}
		}
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d rows, want header only", len(records))
	}
}
