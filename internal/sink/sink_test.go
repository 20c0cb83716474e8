package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	goparquet "github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
)

func ptr(s string) *string {
	return &s
}

func sampleContacts() []*model.Contact {
	return []*model.Contact{
		{
			ContactID:   "C0001",
			FirstName:   ptr("John"),
			LastName:    ptr("Doe"),
			Email:       ptr("john.doe@example.com"),
			PhoneNumber: ptr("(555) 123-4567"),
			Address:     ptr("123 Main Street"),
			City:        ptr("Springfield"),
			State:       ptr("CA"),
			Zip:         ptr("90210"),
		},
		{
			// Absent fields are written as empty cells.
			ContactID: "C0002",
			FirstName: ptr("Jane"),
		},
	}
}

func writeAll(t *testing.T, w Writer, rows []*model.Contact) {
	t.Helper()
	for _, c := range rows {
		if err := w.Write(c); err != nil {
			w.Discard()
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cleaned.csv")
	w, err := New(path, "csv", []string{"notes"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rows := sampleContacts()
	rows[0].Extra = []string{"vip"}
	rows[1].Extra = []string{""}
	writeAll(t, w, rows)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if records[0][0] != "contact_id" || records[0][len(records[0])-1] != "notes" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][3] != "john.doe@example.com" || records[1][9] != "vip" {
		t.Errorf("row 1 = %v", records[1])
	}
	if records[2][3] != "" || records[2][4] != "" {
		t.Errorf("absent fields should be empty cells: %v", records[2])
	}
}

func TestCSVWriter_DiscardLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cleaned.csv")
	w, err := New(path, "csv", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Write(sampleContacts()[0]); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Discard(); err != nil {
		t.Fatalf("Discard: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("output file exists after Discard")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestXLSXWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.xlsx")
	w, err := New(path, "xlsx", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	writeAll(t, w, sampleContacts())

	book, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer book.Close()

	cell := func(ref string) string {
		t.Helper()
		v, err := book.GetCellValue(xlsxSheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "contact_id" {
		t.Errorf("A1 = %q", got)
	}
	if got := cell("E2"); got != "(555) 123-4567" {
		t.Errorf("E2 = %q", got)
	}
	if got := cell("D3"); got != "" {
		t.Errorf("absent email should be empty, got %q", got)
	}

	rows, err := book.GetRows(xlsxSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("got %d rows, want header + 2", len(rows))
	}
}

func TestParquetWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.parquet")
	w, err := New(path, "parquet", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	writeAll(t, w, sampleContacts())

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	stat, _ := f.Stat()
	pf, err := goparquet.OpenFile(f, stat.Size())
	if err != nil {
		t.Fatalf("open parquet: %v", err)
	}

	reader := goparquet.NewGenericReader[model.Contact](pf)
	defer reader.Close()

	if reader.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", reader.NumRows())
	}
	buf := make([]model.Contact, 2)
	if n, _ := reader.Read(buf); n != 2 {
		t.Fatalf("read %d rows, want 2", n)
	}
	if buf[0].ContactID != "C0001" || buf[0].Email == nil || *buf[0].Email != "john.doe@example.com" {
		t.Errorf("row 0 = %+v", buf[0])
	}
	if buf[1].Email != nil {
		t.Errorf("absent email should round-trip as nil, got %q", *buf[1].Email)
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "out.txt"), "txt", nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
