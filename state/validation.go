package state

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
)

func PathValidator(s string) error {
	_, err := os.Stat(path.Dir(s))
	if err != nil {
		return err
	}
	_, err = filepath.Abs(s)
	return err
}

func SimConfigValidator(cfg *SimCfg) error {
	if !slices.Contains(Algorithms, cfg.Algorithm) {
		return fmt.Errorf("algorithm %q is not one of %v", cfg.Algorithm, Algorithms)
	}
	if cfg.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if err := PathValidator(cfg.OutputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if cfg.LogPath != "" {
		if err := PathValidator(cfg.LogPath); err != nil {
			return fmt.Errorf("invalid log path: %w", err)
		}
	}
	return nil
}
