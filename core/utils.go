package core

import (
	"github.com/encodeous/routesim/state"
)

// AddCost adds two costs, keeping INF absorbing and saturating finite sums below INF.
func AddCost(a, b int) int {
	if a == state.INF || b == state.INF {
		return state.INF
	}
	if a > state.INFM-b {
		return state.INFM
	}
	return a + b
}
