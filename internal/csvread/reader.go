package csvread

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
)

// Reader streams Contact records from a CSV file with a header row.
type Reader struct {
	file   *os.File
	csv    *csv.Reader
	header []string

	// index maps each canonical column name to its position in the header,
	// or -1 when the column is missing. extras holds positions of columns
	// beyond the canonical set, in header order.
	index  map[string]int
	extras []int

	rowNum int64
}

// Open opens a CSV file and reads its header row. Header validation is a
// separate step (ValidateHeader) so callers can report schema problems
// distinctly from I/O problems.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		f.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("csv file is empty: %s", path)
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(model.Columns))
	for _, col := range model.Columns {
		index[col] = -1
	}
	var extras []int
	for i, name := range header {
		if _, ok := index[name]; ok {
			index[name] = i
		} else {
			extras = append(extras, i)
		}
	}

	return &Reader{file: f, csv: cr, header: header, index: index, extras: extras}, nil
}

// Header returns the raw header row.
func (r *Reader) Header() []string {
	return r.header
}

// ExtraColumns returns the names of input columns beyond the canonical set,
// in header order.
func (r *Reader) ExtraColumns() []string {
	names := make([]string, len(r.extras))
	for i, pos := range r.extras {
		names[i] = r.header[pos]
	}
	return names
}

// Read returns the next Contact record, or io.EOF when the file is done.
// Empty cells map to nil fields. A row with the wrong number of fields is a
// schema mismatch and fails the read.
func (r *Reader) Read() (*model.Contact, error) {
	rec, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("read csv row %d: %w", r.rowNum+1, err)
	}
	r.rowNum++

	c := &model.Contact{
		ContactID:   r.field(rec, "contact_id"),
		FirstName:   r.optField(rec, "first_name"),
		LastName:    r.optField(rec, "last_name"),
		Email:       r.optField(rec, "email"),
		PhoneNumber: r.optField(rec, "phone_number"),
		Address:     r.optField(rec, "address"),
		City:        r.optField(rec, "city"),
		State:       r.optField(rec, "state"),
		Zip:         r.optField(rec, "zip"),
	}
	for _, pos := range r.extras {
		c.Extra = append(c.Extra, rec[pos])
	}
	return c, nil
}

// RowNum returns the number of data rows read so far.
func (r *Reader) RowNum() int64 {
	return r.rowNum
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

func (r *Reader) field(rec []string, col string) string {
	pos := r.index[col]
	if pos < 0 || pos >= len(rec) {
		return ""
	}
	return rec[pos]
}

func (r *Reader) optField(rec []string, col string) *string {
	s := r.field(rec, col)
	if s == "" {
		return nil
	}
	return &s
}
