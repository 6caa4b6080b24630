package search

// PathDistance sums the edge lengths along a path. Pure function; a
// pair with no connecting edge contributes nothing, mirroring how gaps
// in map data are tolerated during reporting.
func PathDistance(g Graph, path []int64) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		for _, edge := range g.Neighbors(path[i]) {
			if edge.To == path[i+1] {
				total += edge.Length
				break
			}
		}
	}
	return total
}

// PathSteps returns the number of edges a path traverses.
func PathSteps(path []int64) int {
	if len(path) < 2 {
		return 0
	}
	return len(path) - 1
}
