package search

// ShortestPath runs a breadth-first search from start to goal and
// returns the first path found, which has the minimal step count.
// Cumulative distance is carried on each frontier entry so the
// distance ceiling never recomputes a path from scratch.
func ShortestPath(g Graph, start, goal int64, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if res, err := checkEndpoints(g, start, goal, opts); err != nil {
		return Result{}, err
	} else if res != nil {
		return *res, nil
	}

	type entry struct {
		node int64
		dist float64
	}

	queue := []entry{{node: start}}
	parent := map[int64]int64{}
	seen := map[int64]bool{start: true}
	expanded := 0
	pruned := false

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		expanded++
		if !opts.withinNodeBudget(expanded) {
			return Result{Expanded: expanded}, &LimitError{Limit: LimitNodes, Expanded: expanded}
		}

		for _, edge := range g.Neighbors(cur.node) {
			if seen[edge.To] {
				continue
			}
			dist := cur.dist + edge.Length
			if !opts.withinDistance(dist) {
				pruned = true
				continue
			}
			seen[edge.To] = true
			parent[edge.To] = cur.node

			if edge.To == goal {
				path := reconstructPath(parent, start, goal)
				return Result{
					Path:     path,
					Distance: dist,
					Steps:    len(path) - 1,
					Expanded: expanded,
					Found:    true,
				}, nil
			}
			queue = append(queue, entry{node: edge.To, dist: dist})
		}
	}

	if pruned {
		// Branches were cut by the distance ceiling, so unreachability
		// was never proven.
		return Result{Expanded: expanded}, &LimitError{Limit: LimitDistance, Expanded: expanded}
	}
	return Result{Expanded: expanded}, nil
}

// reconstructPath walks the single-parent map backward from goal to
// start, then reverses into start-to-goal order.
func reconstructPath(parent map[int64]int64, start, goal int64) []int64 {
	path := []int64{goal}
	for node := goal; node != start; {
		prev, ok := parent[node]
		if !ok {
			break
		}
		path = append(path, prev)
		node = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
