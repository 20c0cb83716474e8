package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/clean"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/exitcode"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/logging"
)

const (
	defaultInputPath  = "data/input/contacts.csv"
	defaultOutputPath = "data/output/contacts_cleaned.xlsx"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [input] [output]",
	Short: "Normalize a contacts CSV and write the cleaned file",
	Long:  "Reads the input CSV, normalizes email, phone, and address fields, and writes the cleaned records to the output path. The output format follows the path extension (.csv, .xlsx, .parquet) unless --format overrides it.",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cfg.Format, "format", "", "Output format: csv, xlsx, or parquet (default: from output extension)")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg.InputPath = defaultInputPath
	cfg.OutputPath = defaultOutputPath
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	if len(args) > 1 {
		cfg.OutputPath = args[1]
	}

	log := logging.Setup(cfg.LogFormat)

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateOutput(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := clean.Run(context.Background(), log, &cfg)
	if err != nil {
		var pe *clean.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("clean failed")
			switch pe.Phase {
			case "preflight", "transform":
				os.Exit(exitcode.ValidationError)
			default:
				os.Exit(exitcode.WriteError)
			}
		}
		log.Error().Err(err).Msg("clean failed")
		os.Exit(exitcode.WriteError)
	}

	fmt.Printf("Clean complete: %d rows written to %s (%d absent emails, %d invalid phones, %.1fs)\n",
		summary.RowsWritten, summary.OutputPath, summary.EmailsAbsent, summary.PhonesInvalid,
		summary.DurationTotal.Seconds())
	return nil
}
