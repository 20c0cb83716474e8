package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MartinG-source/senior-data-engineer-exercise/internal/config"
	"github.com/MartinG-source/senior-data-engineer-exercise/internal/exitcode"
)

var (
	cfg     config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "contactload",
	Short: "Contact CSV cleaner and loader",
	Long:  "Reads dirty contact records from CSV, normalizes email, phone, and address fields, and writes the cleaned records to CSV/XLSX/Parquet or bulk-loads them into Postgres via the COPY protocol.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("CONTACTS_DB_URL"), "Postgres connection string (or set CONTACTS_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "", "Log format: text or json (default text)")
	pf.StringVar(&cfgFile, "config", "", "YAML config file (abbreviation overrides, log format)")
}

// loadConfigFile merges the --config file into cfg, if one was given.
func loadConfigFile() error {
	if cfgFile == "" {
		return nil
	}
	return cfg.LoadFromFile(cfgFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
