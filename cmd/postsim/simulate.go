package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"alwaysliquid_posts/internal/scenario"
)

func simulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate [scenario]",
		Short: "Deploy the contracts and run a scenario file",
		Long: `Deploys ledger and minter, seeds balances and runs every step of the
scenario. Exits non-zero when a step does not end the way its expect
field says.`,
		Args: cobra.ExactArgs(1),
		RunE: runSimulate,
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	report, err := scenario.NewRunner(sc, log).Run(cmd.Context())
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), report)
	if report.Mismatches > 0 {
		return fmt.Errorf("%d of %d steps ended unexpectedly", report.Mismatches, len(report.Steps))
	}
	return nil
}

func printReport(w io.Writer, r *scenario.Report) {
	fmt.Fprintln(w, "Steps")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, s := range r.Steps {
		mark := "ok"
		if !s.Matched {
			mark = "UNEXPECTED"
		}
		outcome := "committed"
		if !s.Success {
			outcome = "reverted " + s.Symbol
		}
		fmt.Fprintf(w, "  %-10s %-24s %s.%s %s", mark, s.Name, s.Contract, s.Action, outcome)
		if s.Ret != "" {
			fmt.Fprintf(w, " -> %s", s.Ret)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nBalances")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, b := range r.Balances {
		fmt.Fprintf(w, "  %-32s %12s %s\n", b.Address, b.Amount, strings.ToUpper(b.Asset))
	}
}
