package search

// parentTree is the parent-set structure behind multi-path
// enumeration. Instead of storing every tied path during traversal it
// records, per node, the ordered set of predecessors lying on some
// minimal-step path, keeping memory proportional to nodes plus edges.
// It is mutated only while buildParentTree runs and is read-only for
// the enumeration that follows; the parent relation always points from
// deeper to shallower depth, so walking it can never cycle.
type parentTree struct {
	start, goal int64
	parents     map[int64][]int64
	depth       map[int64]int
	goalDepth   int
	expanded    int
	found       bool
}

// buildParentTree runs the multi-path breadth-first pass. A neighbor
// reached again at exactly its minimal depth gains an extra parent
// without being re-enqueued; strictly worse re-visits are discarded.
// The pass keeps draining the frontier after the goal is first reached
// until every node shallower than the goal has been expanded, so
// equal-length alternatives discovered through later ties are not
// lost.
func buildParentTree(g Graph, start, goal int64, opts Options) (*parentTree, error) {
	tree := &parentTree{
		start:     start,
		goal:      goal,
		parents:   map[int64][]int64{start: nil},
		depth:     map[int64]int{start: 0},
		goalDepth: -1,
	}

	queue := []int64{start}
	dist := map[int64]float64{start: 0}
	pruned := false

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if tree.goalDepth >= 0 && tree.depth[cur] >= tree.goalDepth {
			break
		}

		tree.expanded++
		if !opts.withinNodeBudget(tree.expanded) {
			return tree, &LimitError{Limit: LimitNodes, Expanded: tree.expanded}
		}

		nextDepth := tree.depth[cur] + 1
		for _, edge := range g.Neighbors(cur) {
			if d, visited := tree.depth[edge.To]; visited {
				if d == nextDepth {
					tree.parents[edge.To] = append(tree.parents[edge.To], cur)
				}
				continue
			}
			nd := dist[cur] + edge.Length
			if !opts.withinDistance(nd) {
				pruned = true
				continue
			}
			tree.depth[edge.To] = nextDepth
			dist[edge.To] = nd
			tree.parents[edge.To] = []int64{cur}
			if edge.To == goal {
				tree.goalDepth = nextDepth
			}
			queue = append(queue, edge.To)
		}
	}

	tree.found = tree.goalDepth >= 0
	if !tree.found && pruned {
		return tree, &LimitError{Limit: LimitDistance, Expanded: tree.expanded}
	}
	return tree, nil
}
