package clean

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/config"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/db"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/normalize"
	embedsql "github.com/MartinG-source/senior-data-engineer-exercise/internal/sql"
)

const copyChannelSize = 256

// Load executes the cleaning pipeline with Postgres as the destination:
// preflight → transform → COPY into contacts.contacts, tagged with the run's
// batch ID. A failed COPY deletes whatever the batch managed to stage, so a
// partial batch never survives.
func Load(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.CleanSummary, error) {
	totalStart := time.Now()

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

	// Phase 3: COPY
	log.Info().Msg("starting copy")
	copied, dur, err := copyBatch(ctx, pool, pf, tr.Rows)
	if err != nil {
		if _, delErr := pool.Exec(ctx, embedsql.DeleteBatch, pf.BatchID); delErr != nil {
			log.Warn().Err(delErr).Msg("failed to delete partial batch")
		}
		return nil, &PipelineError{Phase: "copy", Err: err}
	}

	// Verify the batch landed intact.
	var count int64
	if err := pool.QueryRow(ctx, embedsql.CountBatchRows, pf.BatchID).Scan(&count); err != nil {
		return nil, &PipelineError{Phase: "copy", Err: fmt.Errorf("count batch rows: %w", err)}
	}
	if count != copied {
		return nil, &PipelineError{Phase: "copy",
			Err: fmt.Errorf("batch row count mismatch: copied %d, found %d", copied, count)}
	}

	log.Info().
		Int64("rows_copied", copied).
		Str("duration", dur.String()).
		Msg("copy complete")

	summary := &model.CleanSummary{
		InputPath:        pf.InputPath,
		FileSHA256:       pf.FileSHA256,
		BatchID:          pf.BatchID.String(),
		RowsRead:         tr.RowsRead,
		RowsWritten:      copied,
		EmailsAbsent:     tr.EmailsAbsent,
		PhonesInvalid:    tr.PhonesInvalid,
		AddressesChanged: tr.AddressesChanged,
		DurationRead:     tr.Duration,
		DurationWrite:    dur,
		DurationTotal:    time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_loaded", summary.RowsWritten).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}

// copyBatch feeds the normalized rows through a channel-backed
// CopyFromSource into the contacts table.
func copyBatch(ctx context.Context, pool *pgxpool.Pool, pf *PreflightResult, rows []*model.Contact) (int64, time.Duration, error) {
	start := time.Now()

	ch := make(chan *model.LoadRow, copyChannelSize)
	go func() {
		defer close(ch)
		for i, c := range rows {
			row := &model.LoadRow{
				LoadBatchID:     pf.BatchID,
				SourceRowNumber: int64(i + 1),
				Contact:         c,
			}
			select {
			case ch <- row:
			case <-ctx.Done():
				return
			}
		}
	}()

	copied, err := pool.CopyFrom(ctx,
		pgx.Identifier{"contacts", "contacts"},
		model.LoadColumns(),
		db.NewChannelSource(ch),
	)
	if err != nil {
		return 0, 0, fmt.Errorf("copy contacts: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	return copied, time.Since(start), nil
}
