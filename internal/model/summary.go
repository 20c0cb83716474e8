package model

import "time"

// CleanSummary captures metrics from a single cleaning run.
type CleanSummary struct {
	InputPath        string
	OutputPath       string
	FileSHA256       string
	BatchID          string
	RowsRead         int64
	RowsWritten      int64
	EmailsAbsent     int64
	PhonesInvalid    int64
	AddressesChanged int64
	DurationRead     time.Duration
	DurationWrite    time.Duration
	DurationTotal    time.Duration
}
