package cmd

import (
	"fmt"

	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/state"
	"github.com/spf13/cobra"
)

type engine struct {
	algo  state.Algorithm
	alias string
	short string
	long  string
}

var runDistanceVector = engine{
	algo:  state.DistanceVector,
	alias: "dv",
	short: "Simulate distance-vector routing",
	long: `Computes every route with synchronous Bellman-Ford rounds over the whole topology.
On equal cost, the smaller next hop wins.`,
}

var runLinkState = engine{
	algo:  state.LinkState,
	alias: "ls",
	short: "Simulate link-state routing",
	long: `Computes a shortest path tree rooted at every node with Dijkstra over the whole topology.
On equal cost, the smaller predecessor wins.`,
}

func newRunCmd(opts *options, e engine) *cobra.Command {
	return &cobra.Command{
		Use:     fmt.Sprintf("%s topofile messagefile changesfile", e.algo),
		Aliases: []string{e.alias},
		Short:   e.short,
		Long: e.long + `

Snapshots of every forwarding table and message delivery are written to the output file,
first for the initial topology and then after each change.`,
		Args:    cobra.ExactArgs(3),
		GroupID: "sim",
		RunE: func(cmd *cobra.Command, args []string) error {
			// arguments are valid past this point, errors are no longer usage errors
			cmd.SilenceUsage = true

			cfg, err := opts.load(cmd, e.algo)
			if err != nil {
				return err
			}
			return core.Bootstrap(cfg, core.Inputs{
				TopologyPath: args[0],
				MessagesPath: args[1],
				ChangesPath:  args[2],
			}, cmd.ErrOrStderr())
		},
	}
}
