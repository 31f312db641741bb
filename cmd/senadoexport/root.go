package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nao1215/senadoexport/internal/config"
	"github.com/nao1215/senadoexport/internal/export"
	"github.com/nao1215/senadoexport/internal/log"
	"github.com/nao1215/senadoexport/internal/model"
	"github.com/nao1215/senadoexport/internal/pipeline"
	"github.com/nao1215/senadoexport/internal/senado"
	"github.com/nao1215/senadoexport/internal/transform"
)

// NewRootCmd creates the root command. Running it without a subcommand
// performs an export.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "senadoexport",
		Short: "Export Brazilian Federal Senate open data as flat tables",
		Long: `senadoexport downloads data from the Brazilian Federal Senate open-data API
(https://legis.senado.leg.br/dadosabertos) and writes one file per table.

A run fetches, in order:
- the current senators
- the bills matching --bill-type/--bill-year/--bill-number
- the progress history of the first bill found
- the detail record of the first senator
- the nominal votes of the first senator (with --votes)
- the plenary sessions in a date range (with --start-date/--end-date)

API failures never abort the run; the affected table is simply left empty and
empty tables produce no file.

Examples:
  # Export with defaults into ./data
  senadoexport

  # Export PEC bills from 2023 as gzip-compressed JSON
  senadoexport --bill-type PEC --bill-year 2023 --format json --gzip

  # Include votes and sessions and write a Markdown summary
  senadoexport --votes --start-date 20240301 --end-date 20240331 --summary`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: "+config.DefaultConfigFile+" in current, XDG config or home directory)")
	cmd.PersistentFlags().String("proxy", "",
		"Route requests through a SOCKS5 proxy (e.g., 127.0.0.1:1080)")
	cmd.PersistentFlags().Duration("timeout", config.DefaultTimeout,
		"Per-request timeout (0 disables it)")

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputDir,
		"Directory that receives the exported files")
	cmd.Flags().StringP("format", "f", config.FormatCSV,
		"Output format: csv or json")
	cmd.Flags().BoolP("gzip", "z", false,
		"Compress every exported file with gzip")
	cmd.Flags().Bool("summary", false,
		"Also write a Markdown summary ("+export.SummaryFileName+")")
	cmd.Flags().Int("preview", 0,
		"Print the first N rows of each table")

	// Query flags
	cmd.Flags().String("bill-type", config.DefaultBillType,
		"Bill type acronym (e.g., PL, PEC)")
	cmd.Flags().Int("bill-year", config.DefaultBillYear,
		"Bill presentation year (0 to omit)")
	cmd.Flags().Int("bill-number", 0,
		"Bill number (0 to omit)")
	cmd.Flags().String("start-date", "",
		"First day of the plenary session range (YYYYMMDD)")
	cmd.Flags().String("end-date", "",
		"Last day of the plenary session range (YYYYMMDD)")
	cmd.Flags().Bool("votes", false,
		"Also export the nominal votes of the first senator")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd executes an export run.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := withSignalCancel(cmd.Context(), logger)
	defer cancel()

	return runExport(ctx, cmd.OutOrStdout(), cfg, logger)
}

// setup builds and validates the configuration and installs the logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, loaded, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("configuration error: %w", err)
	}

	jsonLogs, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if jsonLogs {
		logger = log.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}
	slog.SetDefault(logger)
	if loaded != "" {
		logger.Debug("configuration file applied", "path", loaded)
	}
	return cfg, logger, nil
}

// buildConfig layers defaults, the configuration file and explicitly set
// flags, in that order. It also returns the path of the applied file, if any.
func buildConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", err
	}

	loaded, err := cfg.Load(cfg.ConfigFilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyFlags(cmd.Flags(), cfg); err != nil {
		return nil, "", err
	}
	return cfg, loaded, nil
}

// applyFlags copies the flags the user set on the command line into cfg.
// Flags left at their defaults do not override the configuration file, and
// flags the command does not define are ignored.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	var err error
	set := func(name string, apply func() error) {
		if err != nil || !flags.Changed(name) {
			return
		}
		err = apply()
	}

	set("verbose", func() (e error) { cfg.Verbose, e = flags.GetBool("verbose"); return })
	set("proxy", func() (e error) { cfg.ProxyAddress, e = flags.GetString("proxy"); return })
	set("timeout", func() (e error) { cfg.Timeout, e = flags.GetDuration("timeout"); return })
	set("output", func() (e error) { cfg.OutputDir, e = flags.GetString("output"); return })
	set("format", func() (e error) { cfg.Format, e = flags.GetString("format"); return })
	set("gzip", func() (e error) { cfg.Gzip, e = flags.GetBool("gzip"); return })
	set("summary", func() (e error) { cfg.Summary, e = flags.GetBool("summary"); return })
	set("preview", func() (e error) { cfg.PreviewRows, e = flags.GetInt("preview"); return })
	set("bill-type", func() (e error) { cfg.BillType, e = flags.GetString("bill-type"); return })
	set("bill-year", func() (e error) { cfg.BillYear, e = flags.GetInt("bill-year"); return })
	set("bill-number", func() (e error) { cfg.BillNumber, e = flags.GetInt("bill-number"); return })
	set("start-date", func() (e error) { cfg.StartDate, e = flags.GetString("start-date"); return })
	set("end-date", func() (e error) { cfg.EndDate, e = flags.GetString("end-date"); return })
	set("votes", func() (e error) { cfg.Votes, e = flags.GetBool("votes"); return })

	return err
}

// withSignalCancel returns a context that is cancelled on SIGINT or SIGTERM.
func withSignalCancel(parent context.Context, logger *slog.Logger) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

// newClient creates the API client described by cfg.
func newClient(cfg *config.Config, logger *slog.Logger) (*senado.Client, error) {
	client, err := senado.New(
		senado.WithBaseURL(cfg.BaseURL),
		senado.WithUserAgent(cfg.UserAgent),
		senado.WithTimeout(cfg.Timeout),
		senado.WithProxy(cfg.ProxyAddress),
		senado.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

// runExport runs the export pipeline and prints what it produced.
func runExport(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Bills: senado.BillQuery{
			Acronym: cfg.BillType,
			Number:  cfg.BillNumber,
			Year:    cfg.BillYear,
		},
		Votes: cfg.Votes,
		Export: pipeline.ExportOptions{
			Dir:         cfg.OutputDir,
			Format:      format,
			Gzip:        cfg.Gzip,
			Summary:     cfg.Summary,
			PreviewRows: cfg.PreviewRows,
			Preview:     out,
		},
		Logger: logger,
	}
	if cfg.HasSessionRange() {
		opts.Sessions = &senado.SessionQuery{
			StartDate: cfg.StartDate,
			EndDate:   cfg.EndDate,
		}
	}

	logger.Info("starting export",
		"baseURL", client.BaseURL(),
		"output", cfg.OutputDir,
		"format", format,
	)

	p := pipeline.Default(client, transform.New(logger), opts)
	logger.Debug("pipeline configured",
		"steps", p.StepNames(),
		"userAgent", client.UserAgent(),
	)
	ds := model.NewDataset()

	fmt.Fprintf(out, "Exporting Senate data to %s...\n", cfg.OutputDir)
	if err := p.Execute(ctx, ds); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	printResult(out, ds, time.Since(ds.StartedAt))
	return nil
}

// printResult writes the per-table row counts and the files written.
func printResult(out io.Writer, ds *model.Dataset, elapsed time.Duration) {
	fmt.Fprintf(out, "Export completed in %s\n\n", elapsed.Round(time.Millisecond))

	for _, t := range ds.Tables() {
		line := fmt.Sprintf("  %-24s %6d rows", t.Name(), t.Len())
		if n := ds.Skipped[t.Name()]; n > 0 {
			line += fmt.Sprintf(" (%d skipped)", n)
		}
		fmt.Fprintln(out, line)
	}

	if len(ds.Files) == 0 {
		fmt.Fprintln(out, "\nNo data received; no files written.")
		return
	}
	fmt.Fprintln(out, "\nFiles written:")
	for _, f := range ds.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
}
