// Package cmd defines the command-line interface for repograde.
package cmd

import (
	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the reports subcommands to the parent reports command
	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsStatusCmd)
	reportsCmd.AddCommand(reportsExportCmd)
	reportsCmd.AddCommand(reportsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("fetch-timeout", "60s", "Overall deadline for fetching a repository snapshot")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultFetchWorkers, "Number of concurrent snapshot sub-requests")
	rootCmd.PersistentFlags().Int("retries", contract.DefaultRetryLimit, "Retry budget for transient upstream failures")
	rootCmd.PersistentFlags().String("api-url", "", "Override the GitHub API base URL (for testing or GitHub Enterprise)")
	rootCmd.PersistentFlags().String("token", "", "GitHub API token (prefer the REPOGRADE_TOKEN env var)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Report store backend: memory or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultListLimit, "Number of reports to display when listing")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of reportsMigrateCmd to Viper
	reportsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(reportsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding reports migrate flags", err)
	}
}
