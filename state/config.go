package state

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

type Algorithm string

const (
	DistanceVector Algorithm = "distvec"
	LinkState      Algorithm = "linkstate"
)

var Algorithms = []Algorithm{DistanceVector, LinkState}

// SimCfg configures a simulation run. Every field may also be set from the command line.
type SimCfg struct {
	Algorithm  Algorithm `yaml:"algorithm,omitempty"`   // set by the subcommand if empty
	OutputPath string    `yaml:"output_path,omitempty"` // snapshots are written here
	LogPath    string    `yaml:"log_path,omitempty"`    // if not empty, logs are also written to this file
	Verbose    bool      `yaml:"verbose,omitempty"`
	Strict     bool      `yaml:"strict,omitempty"` // refuse inputs containing malformed lines
	Verify     bool      `yaml:"verify,omitempty"` // check every routing state against an independent solver
}

func DefaultSimCfg() SimCfg {
	return SimCfg{
		OutputPath: DefaultOutputPath,
	}
}

// ParseAlgorithm accepts the canonical names and the short aliases used by the CLI.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distvec", "dv", "distance-vector":
		return DistanceVector, nil
	case "linkstate", "ls", "link-state":
		return LinkState, nil
	}
	return "", fmt.Errorf("unknown algorithm %q, expected one of %v", s, Algorithms)
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	algo, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = algo
	return nil
}

// ReadSimConfig loads a YAML config on top of the defaults.
func ReadSimConfig(path string) (SimCfg, error) {
	cfg := DefaultSimCfg()
	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
