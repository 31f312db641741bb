package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/senadoexport/internal/analysis"
	"github.com/nao1215/senadoexport/internal/config"
	"github.com/nao1215/senadoexport/internal/export"
	"github.com/nao1215/senadoexport/internal/transform"
)

// Grouping keys accepted by analyze --by.
const (
	groupParty = "party"
	groupState = "state"
	groupAll   = "all"
)

// errInvalidGrouping is returned for an unknown --by value.
var errInvalidGrouping = errors.New("invalid grouping (expected party, state or all)")

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Show how current senators are distributed by party and state",
		Long: `Analyze fetches the current senators and prints how many belong to each
party and to each state (UF), with their share of the total.

Nothing is written to disk.

Examples:
  # Party and state tables
  senadoexport analyze

  # Only the party table
  senadoexport analyze --by party`,
		Args: cobra.NoArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().String("by", groupAll, "Grouping to print: party, state or all")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	by, err := cmd.Flags().GetString("by")
	if err != nil {
		return err
	}
	if by != groupParty && by != groupState && by != groupAll {
		return fmt.Errorf("%w: %q", errInvalidGrouping, by)
	}

	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := withSignalCancel(cmd.Context(), logger)
	defer cancel()

	return runAnalyze(ctx, cmd.OutOrStdout(), cfg, by, logger)
}

// runAnalyze fetches the current senators and prints the requested
// distributions.
func runAnalyze(ctx context.Context, out io.Writer, cfg *config.Config, by string, logger *slog.Logger) error {
	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	senators := transform.New(logger).SenatorsToRows(client.ListCurrentSenators(ctx))
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(senators) == 0 {
		fmt.Fprintln(out, "No senators received; nothing to analyze.")
		return nil
	}

	if by == groupParty || by == groupAll {
		export.WriteDistribution(out, "Senadores por partido", "partido", analysis.ByParty(senators))
	}
	if by == groupState || by == groupAll {
		export.WriteDistribution(out, "Senadores por UF", "uf", analysis.ByState(senators))
	}
	return nil
}
