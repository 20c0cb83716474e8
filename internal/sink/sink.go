package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
)

// Writer writes normalized contacts to an output destination. Rows go to a
// temporary file in the destination directory; Close commits it into place
// with a rename, so a failed run never leaves partial output behind.
// Discard abandons the temporary file instead.
type Writer interface {
	Write(c *model.Contact) error
	Close() error
	Discard() error
}

// New returns a Writer for path in the given format ("csv", "xlsx", or
// "parquet"). extra names input columns beyond the canonical nine, appended
// to the output header in the same order. The parquet sink has a fixed
// typed schema and ignores them.
func New(path, format string, extra []string) (Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	switch format {
	case "csv":
		return newCSVWriter(path, extra)
	case "xlsx":
		return newXLSXWriter(path, extra)
	case "parquet":
		return newParquetWriter(path)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func tempFor(path string) (*os.File, error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".contacts-*"+filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("create temp output file: %w", err)
	}
	return f, nil
}

func commit(tmp *os.File, dst string) error {
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("commit output file: %w", err)
	}
	return nil
}

func discard(tmp *os.File) error {
	tmp.Close()
	return os.Remove(tmp.Name())
}
