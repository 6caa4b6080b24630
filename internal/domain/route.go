package domain

// Route is a single start-to-goal path through the road network.
type Route struct {
	Nodes          []int64
	DistanceMeters float64
	Steps          int
}

// RoutePlan is the outcome of a route query. Found distinguishes a
// completed search with no path from one that produced routes, and
// Truncated marks plans cut short by a node or distance ceiling so
// callers never mistake a partial result for an exhaustive one.
type RoutePlan struct {
	Algorithm   string
	From        string
	To          string
	Routes      []Route
	Expanded    int
	Found       bool
	Truncated   bool
	TruncatedBy string
}
