package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/internal/dataset"
	"github.com/routelens/routelens/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Airlines string
	Airports string
	Routes   string
	Database string
}

// ImportResult is the success payload for the import command.
type ImportResult struct {
	Database string `json:"database"`
	Airlines int    `json:"airlines"`
	Airports int    `json:"airports"`
	Routes   int    `json:"routes"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import YAML datasets into a SQLite database",
		Long: `Import the three YAML datasets into a single SQLite database that
"routelens query --db" can read without re-parsing YAML. Re-importing
replaces the stored snapshot atomically.

Example:
  routelens import --airlines airlines.yaml --airports airports.yaml --routes routes.yaml --db data.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Airlines, "airlines", "", "path to airlines YAML dataset (required)")
	cmd.Flags().StringVar(&opts.Airports, "airports", "", "path to airports YAML dataset (required)")
	cmd.Flags().StringVar(&opts.Routes, "routes", "", "path to routes YAML dataset (required)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database to create or replace (required)")
	_ = cmd.MarkFlagRequired("airlines")
	_ = cmd.MarkFlagRequired("airports")
	_ = cmd.MarkFlagRequired("routes")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runImport(opts *ImportOptions, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	tables, err := dataset.LoadTables(opts.Airlines, opts.Airports, opts.Routes)
	if err != nil {
		_ = formatter.Error("LOAD_FAILED", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load datasets", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		_ = formatter.Error("STORE_FAILED", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := st.ImportTables(ctx, tables); err != nil {
		_ = formatter.Error("IMPORT_FAILED", err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to import datasets", err)
	}
	slog.Info("datasets imported",
		"db", opts.Database,
		"airlines", len(tables.Airlines),
		"airports", len(tables.Airports),
		"routes", len(tables.Routes))

	if opts.Format == "json" {
		return formatter.Success(ImportResult{
			Database: opts.Database,
			Airlines: len(tables.Airlines),
			Airports: len(tables.Airports),
			Routes:   len(tables.Routes),
		})
	}
	return formatter.Success(fmt.Sprintf("imported %d airlines, %d airports, %d routes into %s",
		len(tables.Airlines), len(tables.Airports), len(tables.Routes), opts.Database))
}
