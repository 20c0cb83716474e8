package model

import "github.com/google/uuid"

// Contact is a single contact record. All fields are text; optional fields
// are nil when the source cell was empty or missing. Normalization produces
// a new Contact rather than mutating the one read from the file.
type Contact struct {
	ContactID   string  `parquet:"contact_id"`
	FirstName   *string `parquet:"first_name,optional"`
	LastName    *string `parquet:"last_name,optional"`
	Email       *string `parquet:"email,optional"`
	PhoneNumber *string `parquet:"phone_number,optional"`
	Address     *string `parquet:"address,optional"`
	City        *string `parquet:"city,optional"`
	State       *string `parquet:"state,optional"`
	Zip         *string `parquet:"zip,optional"`

	// Extra holds values of input columns beyond the canonical nine, in the
	// order their headers appeared. They pass through normalization untouched.
	// The Parquet sink has a fixed schema and does not carry them.
	Extra []string `parquet:"-"`
}

// Columns lists the canonical contact columns in input/output order.
var Columns = []string{
	"contact_id",
	"first_name",
	"last_name",
	"email",
	"phone_number",
	"address",
	"city",
	"state",
	"zip",
}

// Values returns the canonical column values in Columns order, rendering nil
// fields as empty cells, followed by any extra column values.
func (c *Contact) Values() []string {
	vals := make([]string, 0, len(Columns)+len(c.Extra))
	vals = append(vals,
		c.ContactID,
		deref(c.FirstName),
		deref(c.LastName),
		deref(c.Email),
		deref(c.PhoneNumber),
		deref(c.Address),
		deref(c.City),
		deref(c.State),
		deref(c.Zip),
	)
	return append(vals, c.Extra...)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// LoadRow is the DB-ready representation of a normalized contact, tagged with
// the batch that loaded it and its position in the source file.
type LoadRow struct {
	LoadBatchID     uuid.UUID
	SourceRowNumber int64
	Contact         *Contact
}

// LoadColumns returns the COPY column order for contacts.contacts.
func LoadColumns() []string {
	return []string{
		"load_batch_id",
		"source_row_number",
		"contact_id",
		"first_name",
		"last_name",
		"email",
		"phone_number",
		"address",
		"city",
		"state",
		"zip",
	}
}

// CopyValues returns the row's values in LoadColumns order.
func (r *LoadRow) CopyValues() []any {
	c := r.Contact
	return []any{
		r.LoadBatchID,
		r.SourceRowNumber,
		c.ContactID,
		c.FirstName,
		c.LastName,
		c.Email,
		c.PhoneNumber,
		c.Address,
		c.City,
		c.State,
		c.Zip,
	}
}
