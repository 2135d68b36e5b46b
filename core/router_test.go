package core

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/encodeous/routesim/state"
	"github.com/stretchr/testify/assert"
)

func TestRouterEventNames(t *testing.T) {
	assert.Equal(t, "RouteImproved", RouteImproved.String())
	assert.Equal(t, "TraceLoop", TraceLoop.String())
	assert.Equal(t, "RouterEvent(42)", RouterEvent(42).String())
	assert.True(t, InconsistentState.IsWarning())
	assert.False(t, Converged.IsWarning())
}

func TestLogRouterLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewLogRouter(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	r.Log(RouteImproved, "route improved", "src", state.NodeId(1))
	assert.Empty(t, buf.String())

	r.Log(TraceLoop, "next hop chain does not reach the destination", "src", state.NodeId(1))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), `msg="TraceLoop next hop chain does not reach the destination"`)
	assert.Contains(t, buf.String(), "src=1")
}

func TestLogRouterDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewLogRouter(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	r.Log(Converged, "distance vector converged", "rounds", 2)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "rounds=2")
}
