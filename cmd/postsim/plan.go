package main

import (
	"github.com/spf13/cobra"

	"alwaysliquid_posts/internal/scenario"
)

func planCmd() *cobra.Command {
	def := scenario.DefaultDeploy()
	cmd := &cobra.Command{
		Use:   "plan [scenario]",
		Short: "Print the deployment transactions as yaml",
		Long: `Prints the owner transactions that install a ledger and its minter.
Parameters come from the scenario file when one is given, from flags
otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := def
			if len(args) == 1 {
				sc, err := scenario.Load(args[0])
				if err != nil {
					return err
				}
				d = sc.Deploy
			}
			return scenario.BuildPlan(d).WriteYAML(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&def.Owner, "owner", "", "Owner account of both contracts")
	f.StringVar(&def.Dao, "dao", "", "DAO fee receiver")
	f.StringVar(&def.Dev, "dev", "", "Dev fee receiver")
	f.StringVar(&def.LedgerID, "ledger", def.LedgerID, "Ledger contract id")
	f.StringVar(&def.MinterID, "minter", def.MinterID, "Minter contract id")
	f.StringVar(&def.DefaultPrice, "price", def.DefaultPrice, "Global default price per edition")
	f.StringVar(&def.Asset, "asset", def.Asset, "Payment asset (hive or hbd)")
	f.StringVar(&def.Stats, "stats", "", "Stats contract id, empty to skip the hook")
	f.Uint64Var(&def.DaoBps, "dao-bps", def.DaoBps, "DAO fee in basis points")
	f.Uint64Var(&def.DevBps, "dev-bps", def.DevBps, "Dev fee in basis points")
	f.Uint64Var(&def.ReferrerBps, "referrer-bps", def.ReferrerBps, "Referrer fee in basis points")
	return cmd
}
