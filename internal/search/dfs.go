package search

// DepthFirstPath explores the graph depth-first and returns the first
// start-to-goal path it completes. The result carries no optimality
// guarantee; the strategy exists for exploratory queries where any
// valid route is acceptable. Branches are abandoned as soon as they
// exceed the distance ceiling.
func DepthFirstPath(g Graph, start, goal int64, opts Options) (Result, error) {
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

	stack := []entry{{node: start}}
	parent := map[int64]int64{}
	visited := map[int64]bool{start: true}
	expanded := 0
	pruned := false

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		expanded++
		if !opts.withinNodeBudget(expanded) {
			return Result{Expanded: expanded}, &LimitError{Limit: LimitNodes, Expanded: expanded}
		}

		if cur.node == goal {
			path := reconstructPath(parent, start, goal)
			return Result{
				Path:     path,
				Distance: cur.dist,
				Steps:    len(path) - 1,
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		// Push in reverse so the first-listed neighbor is explored
		// first, keeping traversal order deterministic.
		neighbors := g.Neighbors(cur.node)
		for i := len(neighbors) - 1; i >= 0; i-- {
			edge := neighbors[i]
			if visited[edge.To] {
				continue
			}
			dist := cur.dist + edge.Length
			if !opts.withinDistance(dist) {
				pruned = true
				continue
			}
			visited[edge.To] = true
			parent[edge.To] = cur.node
			stack = append(stack, entry{node: edge.To, dist: dist})
		}
	}

	if pruned {
		return Result{Expanded: expanded}, &LimitError{Limit: LimitDistance, Expanded: expanded}
	}
	return Result{Expanded: expanded}, nil
}
