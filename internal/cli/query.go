package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/routelens/routelens/internal/chartspec"
	"github.com/routelens/routelens/internal/dataset"
	"github.com/routelens/routelens/internal/engine"
	"github.com/routelens/routelens/internal/render"
	"github.com/routelens/routelens/internal/store"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Airlines string
	Airports string
	Routes   string
	Database string
	Question string
	Chart    string
	OutDir   string
}

// QueryResult is the success payload for the query command.
type QueryResult struct {
	Question string   `json:"question"`
	Rows     int      `json:"rows"`
	Files    []string `json:"files"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Evaluate a question and write its CSV and chart",
		Long: `Evaluate one of the fixed analytical questions (q1..q5) over the
airline, airport, and route datasets, then write <question>.csv and a
bar or pie chart image to the output directory.

The datasets come either from three YAML files or from a SQLite
database previously built with "routelens import".

Example:
  routelens query --airlines airlines.yaml --airports airports.yaml --routes routes.yaml --question q1 --chart bar
  routelens query --db data.db --question q5 --chart pie --out results`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Airlines, "airlines", "", "path to airlines YAML dataset")
	cmd.Flags().StringVar(&opts.Airports, "airports", "", "path to airports YAML dataset")
	cmd.Flags().StringVar(&opts.Routes, "routes", "", "path to routes YAML dataset")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite dataset database (alternative to YAML flags)")
	cmd.Flags().StringVar(&opts.Question, "question", "", "question id (q1..q5)")
	cmd.Flags().StringVar(&opts.Chart, "chart", render.KindBar, "chart kind (bar|pie)")
	cmd.Flags().StringVar(&opts.OutDir, "out", ".", "directory for output files")
	_ = cmd.MarkFlagRequired("question")

	return cmd
}

func runQuery(opts *QueryOptions, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	// Configuration errors are rejected before any table access and
	// before any output file is written.
	if !engine.IsValidQuestion(opts.Question) {
		err := engine.NewUnknownQuestionError(opts.Question)
		_ = formatter.Error(string(err.Code), err.Message, nil)
		return WrapExitError(ExitCommandError, "invalid question", err)
	}
	if !render.IsValidKind(opts.Chart) {
		msg := fmt.Sprintf("invalid chart kind %q: must be one of %v", opts.Chart, render.ValidKinds)
		_ = formatter.Error("INVALID_CHART_KIND", msg, nil)
		return NewExitError(ExitCommandError, msg)
	}
	if err := validateInputMode(opts); err != nil {
		_ = formatter.Error("INVALID_INPUT", err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid input flags", err)
	}

	tables, err := loadTables(cmd.Context(), opts)
	if err != nil {
		_ = formatter.Error("LOAD_FAILED", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load datasets", err)
	}
	slog.Info("datasets loaded",
		"airlines", len(tables.Airlines),
		"airports", len(tables.Airports),
		"routes", len(tables.Routes))

	result, err := engine.Evaluate(opts.Question, tables)
	if err != nil {
		code := "EVALUATION_FAILED"
		exitCode := ExitFailure
		if engine.IsUnknownQuestionError(err) {
			code = string(engine.ErrCodeUnknownQuestion)
			exitCode = ExitCommandError
		} else if engine.IsBadAltitudeError(err) {
			code = string(engine.ErrCodeBadAltitude)
		}
		_ = formatter.Error(code, err.Error(), nil)
		return WrapExitError(exitCode, "evaluation failed", err)
	}
	slog.Info("question evaluated", "question", opts.Question, "rows", len(result))

	meta, err := chartspec.Lookup(opts.Question)
	if err != nil {
		_ = formatter.Error("CHART_METADATA", err.Error(), nil)
		return WrapExitError(ExitFailure, "chart metadata lookup failed", err)
	}

	files, err := render.Outputs(opts.OutDir, opts.Question, opts.Chart, meta, result)
	if err != nil {
		_ = formatter.Error("OUTPUT_FAILED", err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to write outputs", err)
	}

	if opts.Format == "json" {
		return formatter.Success(QueryResult{Question: opts.Question, Rows: len(result), Files: files})
	}
	return formatter.Success(fmt.Sprintf("%s: %d rows, wrote %v", opts.Question, len(result), files))
}

// validateInputMode requires exactly one dataset source: a SQLite database
// or all three YAML files.
func validateInputMode(opts *QueryOptions) error {
	yamlFlags := 0
	for _, p := range []string{opts.Airlines, opts.Airports, opts.Routes} {
		if p != "" {
			yamlFlags++
		}
	}

	switch {
	case opts.Database != "" && yamlFlags > 0:
		return fmt.Errorf("--db and YAML dataset flags are mutually exclusive")
	case opts.Database == "" && yamlFlags == 0:
		return fmt.Errorf("dataset source required: either --db or all of --airlines, --airports, --routes")
	case opts.Database == "" && yamlFlags != 3:
		return fmt.Errorf("all three of --airlines, --airports, --routes are required")
	}
	return nil
}

func loadTables(ctx context.Context, opts *QueryOptions) (*dataset.Tables, error) {
	if opts.Database != "" {
		if _, err := os.Stat(opts.Database); err != nil {
			return nil, fmt.Errorf("dataset database not found: %s", opts.Database)
		}
		st, err := store.Open(opts.Database)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		if ctx == nil {
			ctx = context.Background()
		}
		return st.LoadTables(ctx)
	}
	return dataset.LoadTables(opts.Airlines, opts.Airports, opts.Routes)
}

// configureLogging sets up the default slog logger with a per-invocation
// run token for correlation.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(handler).With("run", uuid.Must(uuid.NewV7()).String())
	slog.SetDefault(logger)
}
