package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
)

const xlsxSheet = "Sheet1"

type xlsxWriter struct {
	book *excelize.File
	dst  string
	row  int // last written 1-based row index
}

func newXLSXWriter(path string, extra []string) (*xlsxWriter, error) {
	book := excelize.NewFile()

	header := append(append([]string{}, model.Columns...), extra...)
	if err := setRow(book, 1, header); err != nil {
		book.Close()
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}

	return &xlsxWriter{book: book, dst: path, row: 1}, nil
}

func (x *xlsxWriter) Write(rec *model.Contact) error {
	x.row++
	if err := setRow(x.book, x.row, rec.Values()); err != nil {
		return fmt.Errorf("write xlsx row %d: %w", x.row, err)
	}
	return nil
}

// Close writes the workbook to a temp file and renames it into place.
// The workbook is built in memory, so there is no partial file to clean up
// until this point.
func (x *xlsxWriter) Close() error {
	defer x.book.Close()

	tmp, err := tempFor(x.dst)
	if err != nil {
		return err
	}
	if err := x.book.Write(tmp); err != nil {
		discard(tmp)
		return fmt.Errorf("write xlsx output: %w", err)
	}
	return commit(tmp, x.dst)
}

func (x *xlsxWriter) Discard() error {
	return x.book.Close()
}

func setRow(book *excelize.File, row int, vals []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(vals))
	for i, v := range vals {
		cells[i] = v
	}
	return book.SetSheetRow(xlsxSheet, cell, &cells)
}
