package sink

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
)

type csvWriter struct {
	tmp *os.File
	w   *csv.Writer
	dst string
}

func newCSVWriter(path string, extra []string) (*csvWriter, error) {
	tmp, err := tempFor(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(tmp)
	header := append(append([]string{}, model.Columns...), extra...)
	if err := w.Write(header); err != nil {
		discard(tmp)
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	return &csvWriter{tmp: tmp, w: w, dst: path}, nil
}

func (c *csvWriter) Write(rec *model.Contact) error {
	if err := c.w.Write(rec.Values()); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

func (c *csvWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		discard(c.tmp)
		return fmt.Errorf("flush csv output: %w", err)
	}
	return commit(c.tmp, c.dst)
}

func (c *csvWriter) Discard() error {
	return discard(c.tmp)
}
