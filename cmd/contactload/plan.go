package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/clean"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/csvread"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/exitcode"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/logging"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/normalize"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and field-quality stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.InputPath, "file", "", "Path to contacts CSV file (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	reader, err := csvread.Open(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open csv file")
		os.Exit(exitcode.ValidationError)
	}
	extras := reader.ExtraColumns()
	headerErr := csvread.ValidateHeader(reader.Header())
	reader.Close()
	if headerErr != nil {
		log.Error().Err(headerErr).Msg("header validation failed")
		os.Exit(exitcode.ValidationError)
	}

	addr := normalize.NewAddresser(cfg.Abbreviations)
	tr, err := clean.Transform(context.Background(), log, addr, cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read rows")
		os.Exit(exitcode.ValidationError)
	}

	// Print report
	fmt.Println("=== contactload plan ===")
	fmt.Printf("File:       %s\n", cfg.InputPath)
	fmt.Printf("SHA-256:    %s\n", sha)
	fmt.Printf("Size:       %d bytes\n", stat.Size())
	fmt.Printf("Total rows: %d\n", tr.RowsRead)
	if len(extras) > 0 {
		fmt.Printf("Extra cols: %v\n", extras)
	}
	fmt.Println()
	fmt.Println("Field quality:")
	fmt.Printf("  %-18s %6d\n", "emails absent", tr.EmailsAbsent)
	fmt.Printf("  %-18s %6d\n", "phones invalid", tr.PhonesInvalid)
	fmt.Printf("  %-18s %6d\n", "addresses changed", tr.AddressesChanged)
	fmt.Println("\nHeader validation: OK")

	return nil
}
