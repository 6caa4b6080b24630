package search

import "fmt"

// Result is the outcome of a single-path search. A zero-value Result
// with Found unset means the search completed and proved the goal
// unreachable, which is a legitimate answer rather than an error.
type Result struct {
	Path     []int64
	Distance float64
	Steps    int
	Expanded int
	Found    bool
}

// checkEndpoints applies the pre-traversal policy shared by every
// strategy: unknown endpoints fail immediately and the same-location
// boundary resolves per configuration. A non-nil Result short-circuits
// the search.
func checkEndpoints(g Graph, start, goal int64, opts Options) (*Result, error) {
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start node %d", ErrUnknownLocation, start)
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: goal node %d", ErrUnknownLocation, goal)
	}
	if start == goal {
		if opts.rejectSameLocation() {
			return nil, fmt.Errorf("%w: node %d", ErrSameLocation, start)
		}
		return &Result{Path: []int64{start}, Found: true}, nil
	}
	return nil, nil
}
