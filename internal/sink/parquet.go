package sink

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
)

type parquetWriter struct {
	tmp *os.File
	w   *parquet.GenericWriter[model.Contact]
	dst string
}

func newParquetWriter(path string) (*parquetWriter, error) {
	tmp, err := tempFor(path)
	if err != nil {
		return nil, err
	}
	return &parquetWriter{
		tmp: tmp,
		w:   parquet.NewGenericWriter[model.Contact](tmp),
		dst: path,
	}, nil
}

func (p *parquetWriter) Write(rec *model.Contact) error {
	if _, err := p.w.Write([]model.Contact{*rec}); err != nil {
		return fmt.Errorf("write parquet row: %w", err)
	}
	return nil
}

func (p *parquetWriter) Close() error {
	if err := p.w.Close(); err != nil {
		discard(p.tmp)
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return commit(p.tmp, p.dst)
}

func (p *parquetWriter) Discard() error {
	p.w.Close()
	return discard(p.tmp)
}
