package core

import (
	"context"
	"fmt"
	"log/slog"
)

type RouterEvent int

// trace events

const (
	RouteImproved RouterEvent = iota
	RouteTieBroken
	RoundCompleted
	Converged
	TreeComputed
	TopologyChanged
	TraceCached
	UnknownNode
)

// warn events

const (
	InconsistentState RouterEvent = iota + 1000
	TraceLoop
)

var eventNames = map[RouterEvent]string{
	RouteImproved:     "RouteImproved",
	RouteTieBroken:    "RouteTieBroken",
	RoundCompleted:    "RoundCompleted",
	Converged:         "Converged",
	TreeComputed:      "TreeComputed",
	TopologyChanged:   "TopologyChanged",
	TraceCached:       "TraceCached",
	UnknownNode:       "UnknownNode",
	InconsistentState: "InconsistentState",
	TraceLoop:         "TraceLoop",
}

func (e RouterEvent) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("RouterEvent(%d)", int(e))
}

func (e RouterEvent) IsWarning() bool {
	return e >= InconsistentState
}

// Router receives the events produced while routing state is computed and used.
type Router interface {
	Log(event RouterEvent, desc string, args ...any)
}

type logRouter struct {
	log *slog.Logger
}

// NewLogRouter returns a Router that writes trace events at debug level and warn events at warn level.
func NewLogRouter(log *slog.Logger) Router {
	return &logRouter{log: log}
}

func (r *logRouter) Log(event RouterEvent, desc string, args ...any) {
	if event.IsWarning() {
		r.log.Warn(fmt.Sprintf("%s %s", event.String(), desc), args...)
		return
	}
	if !r.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	r.log.Debug(fmt.Sprintf("%s %s", event.String(), desc), args...)
}

type discardRouter struct{}

func (discardRouter) Log(RouterEvent, string, ...any) {}

// DiscardRouter drops every event.
var DiscardRouter Router = discardRouter{}
