package search

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions marks configuration rejected before traversal.
	ErrInvalidOptions = errors.New("invalid search options")
	// ErrUnknownLocation marks a start or goal absent from the graph.
	ErrUnknownLocation = errors.New("unknown location")
	// ErrSameLocation marks start == goal under SameLocationReject.
	ErrSameLocation = errors.New("start and goal are the same location")
	// ErrLimitExceeded is the target for errors.Is against limit
	// outcomes; the concrete error is always a *LimitError.
	ErrLimitExceeded = errors.New("search limit exceeded")
)

// Limit names the ceiling that halted a search.
type Limit string

const (
	LimitNodes    Limit = "max-nodes"
	LimitDistance Limit = "max-distance"
)

// LimitError reports that a search stopped because a configured
// ceiling was hit before reachability was determined. Expanded carries
// how many nodes had been processed at that point.
type LimitError struct {
	Limit    Limit
	Expanded int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("search halted by %s limit after expanding %d nodes", e.Limit, e.Expanded)
}

// Is lets errors.Is(err, ErrLimitExceeded) match any limit outcome.
func (e *LimitError) Is(target error) bool {
	return target == ErrLimitExceeded
}
