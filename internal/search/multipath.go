package search

// AllShortestPaths returns every start-to-goal path tied for the
// minimal step count, capped at opts.MaxPaths. It shares the
// parent-set traversal with the streaming variant and simply drains
// the stream eagerly, so both modes always agree on the path set. An
// unreachable goal yields an empty slice and no error.
func AllShortestPaths(g Graph, start, goal int64, opts Options) ([]Result, error) {
	stream, err := StreamShortestPaths(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	var results []Result
	for {
		path, ok := stream.Next()
		if !ok {
			break
		}
		results = append(results, Result{
			Path:     path,
			Distance: PathDistance(g, path),
			Steps:    len(path) - 1,
			Expanded: stream.Expanded(),
			Found:    true,
		})
	}
	return results, nil
}
