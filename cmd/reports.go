package cmd

import (
	"fmt"

	"github.com/repograde/repograde/core"
	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/internal/reportstore"
	"github.com/repograde/repograde/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reportsMigrateSetup loads minimal configuration needed for migrate
// operations. This specialized setup does NOT initialize stores or create
// tables, allowing migrations to run on a fresh database.
func reportsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.StorageBackend(viper.GetString("store-backend"))
	if _, ok := schema.ValidStorageBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q (valid: memory, sqlite, mysql, postgresql)", backend)
	}
	connStr := viper.GetString("store-db-connect")

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = reportstore.GetDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// reportsMigrateSetupWrapper provides PreRunE for the migrate command.
func reportsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return reportsMigrateSetup()
}

// reportsCmd groups report-store management commands.
var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Inspect and manage stored compliance reports",
	Long: `Manage the append-only report store.

Every completed check persists one immutable report. These subcommands let
you list what has accumulated, inspect the store's health, export data for
analytics, and manage the database schema.

Subcommands:
  list    - Show stored reports, newest first
  status  - Show store statistics and connection health
  export  - Export reports to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Recent reports at a glance
  repograde reports list

  # Export for analysis in pandas/DuckDB
  repograde reports export --output-file reports-data.parquet`,
}

// reportsListCmd lists stored reports.
var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show stored reports, newest first",
	Long: `List persisted compliance reports with their IDs, repositories, scores
and creation times, newest first.

Use --limit to bound the number of rows, and --output for machine-readable
formats.

Examples:
  # Latest 25 reports
  repograde reports list

  # Everything the store holds, as JSON
  repograde reports list --limit 1000 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReportList(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Report listing failed", err)
		}
	},
}

// reportsStatusCmd shows report store status.
var reportsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display report store statistics and connection details",
	Long: `Show detailed information about the report store.

Displays:
- Backend type and connection status
- Total number of reports stored
- Last and oldest report timestamps

Use this to verify persistence is working and to monitor accumulation over
time.

Examples:
  # Check store health
  repograde reports status`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := storeManager.GetReportStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		reportstore.PrintStoreStatus(status)
	},
}

// reportsExportCmd exports stored reports to Parquet files.
var reportsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored reports to Parquet for BI tools and analytics",
	Long: `Export all stored reports to Parquet format for use with analytics tools.

Exports two datasets:
- Report summaries - one row per report with score and metadata
- Checkpoint rows - one row per checkpoint outcome per report

Requires: --output-file parameter

Examples:
  # Export all data
  repograde reports export --output-file repograde-data.parquet

  # Use with DuckDB for analysis
  repograde reports export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.reports.parquet') LIMIT 10"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := reportstore.ExecuteReportExport(rootCtx, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export reports", err)
		}
	},
}

// reportsMigrateCmd runs database migrations for the report store.
var reportsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the report store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  repograde reports migrate

  # Migrate to specific version
  repograde reports migrate --target-version 1

  # Rollback to initial state
  repograde reports migrate --target-version 0`,
	PreRunE: reportsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := reportstore.MigrateReports(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
