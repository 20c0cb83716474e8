package clean

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/config"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/normalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full cleaning pipeline: preflight → transform → write.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.CleanSummary, error) {
	totalStart := time.Now()

	format, err := cfg.ResolveFormat()
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	// Phase 1: Preflight
	log.Info().Str("file", cfg.InputPath).Msg("starting preflight")
	pf, err := Preflight(log, cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}
	log = log.With().Str("batch_id", pf.BatchID.String()).Logger()

	// Phase 2: Transform
	log.Info().Msg("starting transform")
	addr := normalize.NewAddresser(cfg.Abbreviations)
	tr, err := Transform(ctx, log, addr, cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: "transform", Err: err}
	}

	// Phase 3: Write
	log.Info().Str("output", cfg.OutputPath).Msg("starting write")
	wr, err := Write(ctx, log, cfg.OutputPath, format, pf.ExtraColumns, tr.Rows)
	if err != nil {
		return nil, &PipelineError{Phase: "write", Err: err}
	}

	summary := &model.CleanSummary{
		InputPath:        pf.InputPath,
		OutputPath:       cfg.OutputPath,
		FileSHA256:       pf.FileSHA256,
		BatchID:          pf.BatchID.String(),
		RowsRead:         tr.RowsRead,
		RowsWritten:      wr.RowsWritten,
		EmailsAbsent:     tr.EmailsAbsent,
		PhonesInvalid:    tr.PhonesInvalid,
		AddressesChanged: tr.AddressesChanged,
		DurationRead:     tr.Duration,
		DurationWrite:    wr.Duration,
		DurationTotal:    time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_written", summary.RowsWritten).
		Int64("phones_invalid", summary.PhonesInvalid).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("clean pipeline complete")

	return summary, nil
}
