package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/clean"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/db"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/exitcode"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Normalize a contacts CSV and COPY-load it into Postgres",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&cfg.InputPath, "file", "", "Path to contacts CSV file (required)")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := clean.Load(ctx, pool, log, &cfg)
	if err != nil {
		var pe *clean.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			switch pe.Phase {
			case "preflight", "transform":
				os.Exit(exitcode.ValidationError)
			default:
				os.Exit(exitcode.CopyError)
			}
		}
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.CopyError)
	}

	fmt.Printf("Load complete: %d rows loaded, batch %s (%.1fs)\n",
		summary.RowsWritten, summary.BatchID, summary.DurationTotal.Seconds())
	return nil
}
