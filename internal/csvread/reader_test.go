package csvread

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

const fullHeader = "contact_id,first_name,last_name,email,phone_number,address,city,state,zip"

func TestOpen_ReadsRows(t *testing.T) {
	path := writeCSV(t, fullHeader+"\n"+
		"C0001,John,Doe,john@example.com,5551234567,123 main st,Springfield,CA,90210\n"+
		"C0002,Jane,Smith,,,,,,\n")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if err := ValidateHeader(r.Header()); err != nil {
		t.Fatalf("ValidateHeader: %v", err)
	}
	if len(r.ExtraColumns()) != 0 {
		t.Errorf("unexpected extra columns: %v", r.ExtraColumns())
	}

	first, err := r.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if first.ContactID != "C0001" {
		t.Errorf("ContactID = %q", first.ContactID)
	}
	if first.Email == nil || *first.Email != "john@example.com" {
		t.Errorf("Email = %v", first.Email)
	}

	second, err := r.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// Empty cells map to absent, not empty strings.
	if second.Email != nil || second.PhoneNumber != nil || second.Address != nil {
		t.Errorf("empty cells should be nil: %+v", second)
	}
	if second.FirstName == nil || *second.FirstName != "Jane" {
		t.Errorf("FirstName = %v", second.FirstName)
	}

	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if r.RowNum() != 2 {
		t.Errorf("RowNum = %d, want 2", r.RowNum())
	}
}

func TestOpen_ExtraColumnsPassThrough(t *testing.T) {
	path := writeCSV(t, fullHeader+",notes,source\n"+
		"C0001,John,Doe,j@x.com,5551234567,123 main st,Springfield,CA,90210,vip,import-2024\n")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	extras := r.ExtraColumns()
	if len(extras) != 2 || extras[0] != "notes" || extras[1] != "source" {
		t.Fatalf("ExtraColumns = %v", extras)
	}

	c, err := r.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(c.Extra) != 2 || c.Extra[0] != "vip" || c.Extra[1] != "import-2024" {
		t.Errorf("Extra = %v", c.Extra)
	}
}

func TestValidateHeader_MissingColumn(t *testing.T) {
	header := []string{"contact_id", "first_name", "last_name", "email", "address", "city", "state", "zip"}
	err := ValidateHeader(header)
	if err == nil {
		t.Fatal("expected error for missing phone_number column")
	}
	if got := err.Error(); got != "missing required column(s): phone_number" {
		t.Errorf("error = %q", got)
	}
}

func TestOpen_ReorderedHeader(t *testing.T) {
	path := writeCSV(t, "email,contact_id,first_name,last_name,phone_number,address,city,state,zip\n"+
		"j@x.com,C0001,John,Doe,5551234567,123 main st,Springfield,CA,90210\n")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if err := ValidateHeader(r.Header()); err != nil {
		t.Fatalf("ValidateHeader: %v", err)
	}
	c, err := r.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if c.ContactID != "C0001" || c.Email == nil || *c.Email != "j@x.com" {
		t.Errorf("columns not mapped by name: %+v", c)
	}
}

func TestOpen_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestRead_RaggedRowFails(t *testing.T) {
	path := writeCSV(t, fullHeader+"\nC0001,John\n")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if _, err := r.Read(); err == nil {
		t.Fatal("expected error for row with wrong field count")
	}
}
