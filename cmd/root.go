package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use:   "routesim",
		Short: "Routing State Simulator",
		Long: `routesim computes the forwarding tables a network of routers converges to under
distance-vector or link-state routing, and traces how messages are delivered through them.
The state is recomputed after every topology change, producing one snapshot per change.`,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "sim",
		Title: "Simulation Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "input",
		Title: "Input Commands",
	})

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "optional YAML config file")
	rootCmd.PersistentFlags().StringVarP(&opts.outputPath, "output", "o", "", "file the snapshots are written to (default \"output.txt\")")
	rootCmd.PersistentFlags().StringVarP(&opts.logPath, "log-path", "l", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output, including every router event")
	rootCmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "fail on malformed input lines instead of skipping them")
	rootCmd.PersistentFlags().BoolVar(&opts.verify, "verify", false, "check every routing state against an independent shortest path solver")

	rootCmd.AddCommand(newRunCmd(opts, runDistanceVector))
	rootCmd.AddCommand(newRunCmd(opts, runLinkState))
	rootCmd.AddCommand(newCheckCmd())
	return rootCmd
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
