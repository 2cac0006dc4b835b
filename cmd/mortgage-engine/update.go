package main

import (
	"fmt"
	"os"

	"github.com/iwvelando/mortgage-engine/internal/engine"
	"github.com/iwvelando/mortgage-engine/internal/mortgage"
	"github.com/iwvelando/mortgage-engine/pkg/adapters"
	"github.com/iwvelando/mortgage-engine/pkg/output"
	"github.com/iwvelando/mortgage-engine/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type updateOptions struct {
	statePath string
	date      string
	prime     float64
	index     float64
}

func newUpdateCmd(a *app) *cobra.Command {
	opts := &updateOptions{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Apply a monthly market update to a mortgage state",
		Long: `Reads a mortgage state (or an update request carrying monthly_changes) in
YAML or JSON, applies the new prime rate and index, and prints the updated
state with its amortization table.

Flags override any monthly_changes found in the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.statePath, "state", "", "path to the mortgage state file")
	cmd.Flags().StringVar(&opts.date, "date", "", "calculation date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&opts.prime, "prime", 0, "new prime rate as a decimal, e.g. 0.06")
	cmd.Flags().Float64Var(&opts.index, "cpi", 0, "new consumer price index value")
	_ = cmd.MarkFlagRequired("state")
	return cmd
}

func runUpdate(cmd *cobra.Command, a *app, opts *updateOptions) error {
	file, err := os.Open(opts.statePath)
	if err != nil {
		return fmt.Errorf("failed to open state file: %w", err)
	}
	defer file.Close()

	doc, err := adapters.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.statePath, err)
	}

	update := mortgage.MarketUpdate{}
	if doc.Changes != nil {
		update = *doc.Changes
	}
	if cmd.Flags().Changed("date") {
		update.CalculationDate = opts.date
	}
	if cmd.Flags().Changed("prime") {
		prime := opts.prime
		update.NewPrimeRate = &prime
	}
	if cmd.Flags().Changed("cpi") {
		index := opts.index
		update.NewIndex = &index
	}
	if update.CalculationDate == "" {
		return fmt.Errorf("a calculation date is required: pass --date or set monthly_changes.calculation_date")
	}

	warnings := validation.ValidateState(doc.State)
	for _, warning := range warnings {
		a.logger.Warn(warning, zap.String("op", "main.runUpdate"))
	}

	eng := engine.NewEngine(a.logger, a.conf.Engine.Parallel)
	next, changes, err := eng.ApplyMarketUpdate(cmd.Context(), doc.State, update)
	if err != nil {
		a.logger.Error("mortgage update failed",
			zap.String("op", "main.runUpdate"),
			zap.String("mortgage", doc.State.ID),
			zap.Error(err),
		)
		return err
	}

	return output.Write(cmd.OutOrStdout(), a.conf.Output.Format, output.Report{
		State:    next,
		Changes:  changes,
		Warnings: warnings,
	})
}
