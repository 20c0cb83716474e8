package normalize

import (
	"testing"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
)

func TestRecord(t *testing.T) {
	in := &model.Contact{
		ContactID:   "C0001",
		FirstName:   ptr("John"),
		LastName:    ptr("Doe"),
		Email:       ptr("  John.Doe@Example.COM "),
		PhoneNumber: ptr("555.123.4567"),
		Address:     ptr("123 main st."),
		City:        ptr("Springfield"),
		State:       ptr("CA"),
		Zip:         ptr("90210"),
		Extra:       []string{"keep me"},
	}

	out, stats := Record(in, NewAddresser(nil))

	if out == in {
		t.Fatal("Record returned the input record instead of a copy")
	}
	if out.ContactID != "C0001" || !sameStr(out.FirstName, ptr("John")) || !sameStr(out.Zip, ptr("90210")) {
		t.Error("passthrough fields were not copied unchanged")
	}
	if len(out.Extra) != 1 || out.Extra[0] != "keep me" {
		t.Errorf("extra columns not carried through: %v", out.Extra)
	}
	if !sameStr(out.Email, ptr("john.doe@example.com")) {
		t.Errorf("email = %v", strOrNil(out.Email))
	}
	if !sameStr(out.PhoneNumber, ptr("(555) 123-4567")) {
		t.Errorf("phone = %v", strOrNil(out.PhoneNumber))
	}
	if !sameStr(out.Address, ptr("123 Main Street")) {
		t.Errorf("address = %v", strOrNil(out.Address))
	}
	if stats.EmailAbsent || stats.PhoneInvalid {
		t.Errorf("unexpected quality flags: %+v", stats)
	}
	if !stats.AddressChanged {
		t.Error("AddressChanged = false for a dirty address")
	}

	// The input record is never mutated.
	if *in.Email != "  John.Doe@Example.COM " || *in.Address != "123 main st." {
		t.Error("input record was mutated")
	}
}

func TestRecord_QualityOutcomes(t *testing.T) {
	in := &model.Contact{
		ContactID:   "C0002",
		Email:       ptr("   "),
		PhoneNumber: ptr("12345"),
		Address:     ptr("456 Oak Avenue"),
	}

	out, stats := Record(in, NewAddresser(nil))

	if out.Email != nil {
		t.Errorf("blank email should normalize to nil, got %q", *out.Email)
	}
	if !stats.EmailAbsent {
		t.Error("EmailAbsent = false for blank email")
	}
	if out.PhoneNumber != nil {
		t.Errorf("invalid phone should become an empty cell, got %q", *out.PhoneNumber)
	}
	if !stats.PhoneInvalid {
		t.Error("PhoneInvalid = false for a 5-digit phone")
	}
	if stats.AddressChanged {
		t.Error("AddressChanged = true for an already-normalized address")
	}
}

func TestRecord_AbsentPhoneIsNotInvalid(t *testing.T) {
	in := &model.Contact{ContactID: "C0003"}

	out, stats := Record(in, NewAddresser(nil))

	if out.PhoneNumber != nil {
		t.Errorf("absent phone = %q, want nil", *out.PhoneNumber)
	}
	if stats.PhoneInvalid {
		t.Error("absent phone flagged invalid")
	}
}
