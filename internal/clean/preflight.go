package clean

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/csvread"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/normalize"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// InputPath is the original path passed to Preflight, stored as-is.
	InputPath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the input file.
	FileSHA256 string
	// FileSize is the file size in bytes from os.Stat.
	FileSize int64
	// ExtraColumns names input columns beyond the canonical nine, in header
	// order. They are carried through to the output unchanged.
	ExtraColumns []string
	// BatchID is a freshly generated UUIDv4 that uniquely identifies this
	// run, used to tag loaded rows and log lines.
	BatchID uuid.UUID
}

// Preflight stats and hashes the input file, opens it, and validates that
// the header names every required contact column. Any failure here is fatal
// to the whole run; nothing has been written yet.
func Preflight(log zerolog.Logger, path string) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(path)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	reader, err := csvread.Open(path)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	defer reader.Close()

	if err := csvread.ValidateHeader(reader.Header()); err != nil {
		return nil, fmt.Errorf("preflight validate: %w", err)
	}

	extra := reader.ExtraColumns()

	log.Info().
		Str("file", filepath.Base(path)).
		Str("sha256", sha).
		Int64("size_bytes", stat.Size()).
		Strs("extra_columns", extra).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return &PreflightResult{
		InputPath:    path,
		FileSHA256:   sha,
		FileSize:     stat.Size(),
		ExtraColumns: extra,
		BatchID:      uuid.New(),
	}, nil
}
