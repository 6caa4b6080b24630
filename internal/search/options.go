package search

import "fmt"

// SameLocationMode selects what a search returns when start and goal
// resolve to the same junction.
type SameLocationMode string

const (
	// SameLocationTrivialPath yields a single-node, zero-distance path.
	SameLocationTrivialPath SameLocationMode = "trivial-path"
	// SameLocationReject fails the query with ErrSameLocation.
	SameLocationReject SameLocationMode = "reject"
)

// DefaultMaxPaths caps multi-path enumeration when the caller does not
// ask for a specific count.
const DefaultMaxPaths = 5

// Options bounds a single search call. Zero MaxNodes or MaxDistance
// means the corresponding ceiling is not enforced.
type Options struct {
	// MaxPaths caps how many tied shortest paths multi-path modes
	// materialize. Must be at least 1.
	MaxPaths int
	// MaxNodes caps how many nodes the engine may expand (dequeue)
	// before giving up with a limit outcome.
	MaxNodes int
	// MaxDistance caps the cumulative edge length of any explored
	// branch, in meters.
	MaxDistance float64
	// SameLocation controls the start == goal boundary case.
	SameLocation SameLocationMode
}

// DefaultOptions returns the engine defaults used when a caller
// supplies no overrides.
func DefaultOptions() Options {
	return Options{
		MaxPaths:     DefaultMaxPaths,
		SameLocation: SameLocationTrivialPath,
	}
}

// Validate rejects configurations the engine refuses to run with;
// violations are reported before any traversal starts.
func (o Options) Validate() error {
	if o.MaxPaths < 1 {
		return fmt.Errorf("%w: max paths must be at least 1, got %d", ErrInvalidOptions, o.MaxPaths)
	}
	if o.MaxNodes < 0 {
		return fmt.Errorf("%w: max nodes must not be negative, got %d", ErrInvalidOptions, o.MaxNodes)
	}
	if o.MaxDistance < 0 {
		return fmt.Errorf("%w: max distance must not be negative, got %f", ErrInvalidOptions, o.MaxDistance)
	}
	switch o.SameLocation {
	case "", SameLocationTrivialPath, SameLocationReject:
	default:
		return fmt.Errorf("%w: unknown same-location mode %q", ErrInvalidOptions, o.SameLocation)
	}
	return nil
}

func (o Options) rejectSameLocation() bool {
	return o.SameLocation == SameLocationReject
}

func (o Options) withinNodeBudget(expanded int) bool {
	return o.MaxNodes == 0 || expanded <= o.MaxNodes
}

func (o Options) withinDistance(d float64) bool {
	return o.MaxDistance == 0 || d <= o.MaxDistance
}
