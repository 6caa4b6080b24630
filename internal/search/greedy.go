package search

import (
	"container/heap"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// GreedyBestFirstPath expands whichever frontier node has the smallest
// straight-line distance to the goal. It is a heuristic strategy: fast
// on road networks where geography correlates with connectivity, but
// the returned path may be suboptimal. Ties between equal-heuristic
// nodes break by discovery order so repeated runs stay reproducible.
func GreedyBestFirstPath(g Graph, start, goal int64, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if res, err := checkEndpoints(g, start, goal, opts); err != nil {
		return Result{}, err
	} else if res != nil {
		return *res, nil
	}

	goalPoint, ok := g.NodePoint(goal)
	if !ok {
		return Result{}, fmt.Errorf("%w: goal node %d has no coordinates", ErrUnknownLocation, goal)
	}

	frontier := &greedyFrontier{}
	heap.Init(frontier)
	frontier.add(start, heuristic(g, start, goalPoint), 0)

	parent := map[int64]int64{}
	visited := map[int64]bool{start: true}
	expanded := 0
	pruned := false

	for frontier.Len() > 0 {
		cur := heap.Pop(frontier).(*greedyItem)

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

		for _, edge := range g.Neighbors(cur.node) {
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
			frontier.add(edge.To, heuristic(g, edge.To, goalPoint), dist)
		}
	}

	if pruned {
		return Result{Expanded: expanded}, &LimitError{Limit: LimitDistance, Expanded: expanded}
	}
	return Result{Expanded: expanded}, nil
}

func heuristic(g Graph, node int64, goal orb.Point) float64 {
	point, ok := g.NodePoint(node)
	if !ok {
		return 0
	}
	return geo.DistanceHaversine(point, goal)
}

type greedyItem struct {
	node int64
	h    float64 // heuristic distance to goal
	dist float64 // cumulative distance from start
	seq  int     // insertion sequence, breaks heuristic ties
}

// greedyFrontier is a stable min-heap over heuristic distance:
// first-discovered wins among equal-heuristic nodes.
type greedyFrontier struct {
	items []*greedyItem
	seq   int
}

func (f *greedyFrontier) add(node int64, h, dist float64) {
	f.seq++
	heap.Push(f, &greedyItem{node: node, h: h, dist: dist, seq: f.seq})
}

func (f *greedyFrontier) Len() int { return len(f.items) }

func (f *greedyFrontier) Less(i, j int) bool {
	if f.items[i].h != f.items[j].h {
		return f.items[i].h < f.items[j].h
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *greedyFrontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
}

func (f *greedyFrontier) Push(x any) {
	f.items = append(f.items, x.(*greedyItem))
}

func (f *greedyFrontier) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return item
}
