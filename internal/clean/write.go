package clean

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/sink"
)

// WriteResult holds metrics from the write phase.
type WriteResult struct {
	RowsWritten int64
	Duration    time.Duration
}

// Write commits the normalized rows to the output destination. The sink
// writes to a temporary file and renames it into place on success, so an
// error here leaves no partial output.
func Write(ctx context.Context, log zerolog.Logger, path, format string, extra []string, rows []*model.Contact) (*WriteResult, error) {
	start := time.Now()

	w, err := sink.New(path, format, extra)
	if err != nil {
		return nil, fmt.Errorf("write open sink: %w", err)
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			w.Discard()
			return nil, err
		}
		if err := w.Write(row); err != nil {
			w.Discard()
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("write commit: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Str("output", path).
		Str("format", format).
		Int("rows_written", len(rows)).
		Str("duration", dur.String()).
		Msg("write complete")

	return &WriteResult{RowsWritten: int64(len(rows)), Duration: dur}, nil
}
