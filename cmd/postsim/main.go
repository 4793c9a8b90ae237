// postsim replays deployment and mint scenarios for the posts ledger and
// minter on an in-memory VSC host.
//
//	postsim plan --owner hive:tibfox --dao hive:dao --dev hive:dev
//	postsim simulate scenario.yaml -v
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "postsim",
		Short:         "Simulate the AlwaysLiquid posts contracts",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every contract event")

	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(planCmd())
	return rootCmd
}

// newLogger builds a development logger; verbose lowers it to debug so
// contract events show up.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
