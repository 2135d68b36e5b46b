package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/encodeous/routesim/perf"
	"github.com/encodeous/routesim/state"
	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

// Inputs are the three record files of a run.
type Inputs struct {
	TopologyPath string
	MessagesPath string
	ChangesPath  string
}

// NewLogger builds the run logger: a console handler on console, fanned out to cfg.LogPath if set.
// The returned function closes the log file.
func NewLogger(cfg state.SimCfg, console io.Writer) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(console, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: string(cfg.Algorithm),
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	closer := func() error { return nil }
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Bootstrap runs one complete simulation, logging to console and the configured log file.
func Bootstrap(cfg state.SimCfg, in Inputs, console io.Writer) error {
	log, closeLog, err := NewLogger(cfg, console)
	if err != nil {
		return err
	}
	defer closeLog()
	return Start(cfg, in, log)
}

func readInput[T any](log *slog.Logger, kind, path string, read func(string) ([]T, []state.LineIssue, error)) ([]T, []state.LineIssue) {
	records, issues, err := read(path)
	if err != nil && len(records) == 0 && len(issues) == 0 {
		log.Warn("input file contributes no records", "kind", kind, "path", path, "error", err)
		return nil, nil
	}
	if err != nil {
		// keep whatever was read before the failure
		log.Warn("input file read stopped early", "kind", kind, "path", path, "records", len(records), "error", err)
	}
	for _, issue := range issues {
		log.Debug("skipped malformed line", "kind", kind, "path", path, "line", issue.Line, "error", issue.Err)
	}
	return records, issues
}

// Start reads the inputs, runs the simulation and writes every snapshot to cfg.OutputPath.
// The output file only appears once the whole run has succeeded.
func Start(cfg state.SimCfg, in Inputs, log *slog.Logger) error {
	if err := state.SimConfigValidator(&cfg); err != nil {
		return err
	}
	solver, err := SolverFor(cfg.Algorithm)
	if err != nil {
		return err
	}

	edges, topoIssues := readInput(log, "topology", in.TopologyPath, state.ReadTopologyFile)
	messages, msgIssues := readInput(log, "messages", in.MessagesPath, state.ReadMessagesFile)
	changes, changeIssues := readInput(log, "changes", in.ChangesPath, state.ReadChangesFile)

	if cfg.Strict {
		err = errors.Join(
			state.IssuesError(in.TopologyPath, topoIssues),
			state.IssuesError(in.MessagesPath, msgIssues),
			state.IssuesError(in.ChangesPath, changeIssues),
		)
		if err != nil {
			return fmt.Errorf("malformed input: %w", err)
		}
	}

	sim := &Simulation{
		Graph:    state.NewGraphFromEdges(edges),
		Solver:   solver,
		Messages: messages,
		Changes:  changes,
		Router:   NewLogRouter(log),
		Verify:   cfg.Verify,
	}
	log.Info("starting simulation", "algorithm", solver.Name(), "nodes", sim.Graph.Len(), "edges", len(sim.Graph.Edges()), "messages", len(messages), "changes", len(changes))

	snapshots, err := writeOutput(cfg.OutputPath, func(w io.Writer) (int, error) {
		sw := NewSnapshotWriter(w)
		n := 0
		err := sim.Run(func(snap Snapshot) error {
			n++
			return sw.Write(snap)
		})
		return n, err
	})
	if err != nil {
		return err
	}

	log.Info("simulation complete", "snapshots", snapshots, "output", cfg.OutputPath)
	log.Debug("metrics", perf.Summary()...)
	return nil
}

// writeOutput writes to a temporary file next to path and renames it into place once fill succeeds.
func writeOutput(path string, fill func(w io.Writer) (int, error)) (int, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := fill(tmp)
	if err != nil {
		_ = tmp.Close()
		return n, err
	}
	if err = tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return n, err
	}
	if err = tmp.Close(); err != nil {
		return n, err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return n, nil
}
