package cmd

import (
	"github.com/encodeous/routesim/state"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every simulation command.
type options struct {
	configPath string
	outputPath string
	logPath    string
	verbose    bool
	strict     bool
	verify     bool
}

// load reads the config file, if any, and applies the flags that were set explicitly on top of it.
func (o *options) load(cmd *cobra.Command, algo state.Algorithm) (state.SimCfg, error) {
	cfg := state.DefaultSimCfg()
	if o.configPath != "" {
		var err error
		cfg, err = state.ReadSimConfig(o.configPath)
		if err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputPath = o.outputPath
	}
	if flags.Changed("log-path") {
		cfg.LogPath = o.logPath
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if flags.Changed("verify") {
		cfg.Verify = o.verify
	}
	// the subcommand names the engine
	cfg.Algorithm = algo

	return cfg, state.SimConfigValidator(&cfg)
}
