package search

import (
	"github.com/paulmach/orb"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

// Graph is the read-only view the engine traverses. *roadnet.Network
// satisfies it; tests may substitute smaller fixtures. Implementations
// must return neighbors in a stable order so searches stay
// deterministic across runs.
type Graph interface {
	HasNode(id int64) bool
	Neighbors(id int64) []roadnet.Edge
	NodePoint(id int64) (orb.Point, bool)
}
