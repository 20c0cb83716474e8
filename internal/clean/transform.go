package clean

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/csvread"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/model"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/normalize"
)

// TransformResult holds the normalized rows and data-quality counts from the
// transform phase. Rows keep the input order.
type TransformResult struct {
	Rows             []*model.Contact
	RowsRead         int64
	EmailsAbsent     int64
	PhonesInvalid    int64
	AddressesChanged int64
	Duration         time.Duration
}

// Transform streams rows from the input file and normalizes each one.
// Data-quality outcomes (absent emails, invalid phones) are counted, never
// errors; only a failing row source aborts the batch.
func Transform(ctx context.Context, log zerolog.Logger, addr *normalize.Addresser, path string) (*TransformResult, error) {
	start := time.Now()

	reader, err := csvread.Open(path)
	if err != nil {
		return nil, fmt.Errorf("transform open: %w", err)
	}
	defer reader.Close()

	res := &TransformResult{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		in, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("transform read: %w", readErr)
		}
		res.RowsRead++

		out, stats := normalize.Record(in, addr)
		res.Rows = append(res.Rows, out)

		if stats.EmailAbsent {
			res.EmailsAbsent++
		}
		if stats.PhoneInvalid {
			res.PhonesInvalid++
			log.Debug().
				Int64("row", res.RowsRead).
				Str("contact_id", in.ContactID).
				Msg("invalid phone number, writing empty cell")
		}
		if stats.AddressChanged {
			res.AddressesChanged++
		}
	}

	res.Duration = time.Since(start)
	log.Info().
		Int64("rows_read", res.RowsRead).
		Int64("emails_absent", res.EmailsAbsent).
		Int64("phones_invalid", res.PhonesInvalid).
		Int64("addresses_changed", res.AddressesChanged).
		Str("duration", res.Duration.String()).
		Msg("transform complete")

	return res, nil
}
