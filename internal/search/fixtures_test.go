package search

import (
	"fmt"
	"testing"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

// lineNetwork is 1 - 2 - 3 - 4 with 100m segments.
func lineNetwork(t *testing.T) *roadnet.Network {
	t.Helper()
	b := roadnet.NewBuilder()
	b.AddNode(1, "A", 38.760, 9.010)
	b.AddNode(2, "B", 38.761, 9.010)
	b.AddNode(3, "C", 38.762, 9.010)
	b.AddNode(4, "D", 38.763, 9.010)
	for _, pair := range [][2]int64{{1, 2}, {2, 3}, {3, 4}} {
		if err := b.AddRoad(pair[0], pair[1], 100, false); err != nil {
			t.Fatalf("expected no error adding road, got %v", err)
		}
	}
	return b.Build()
}

// diamondNetwork has two tied 2-step routes from 1 to 4 plus a longer
// 3-step detour through 5 and 6:
//
//	1 -> 2 -> 4
//	1 -> 3 -> 4
//	1 -> 5 -> 6 -> 4
func diamondNetwork(t *testing.T) *roadnet.Network {
	t.Helper()
	b := roadnet.NewBuilder()
	b.AddNode(1, "A", 38.760, 9.010)
	b.AddNode(2, "B", 38.761, 9.011)
	b.AddNode(3, "C", 38.761, 9.009)
	b.AddNode(4, "D", 38.762, 9.010)
	b.AddNode(5, "E", 38.760, 9.008)
	b.AddNode(6, "F", 38.761, 9.008)
	roads := []struct {
		from, to int64
		length   float64
	}{
		{1, 2, 120},
		{1, 3, 150},
		{2, 4, 120},
		{3, 4, 150},
		{1, 5, 90},
		{5, 6, 90},
		{6, 4, 90},
	}
	for _, r := range roads {
		if err := b.AddRoad(r.from, r.to, r.length, false); err != nil {
			t.Fatalf("expected no error adding road, got %v", err)
		}
	}
	return b.Build()
}

// gridNetwork is a 2x3 lattice with uniform 100m segments:
//
//	1 - 2 - 3
//	|   |   |
//	4 - 5 - 6
//
// Three routes tie for the minimal step count from 1 to 6.
func gridNetwork(t *testing.T) *roadnet.Network {
	t.Helper()
	b := roadnet.NewBuilder()
	b.AddNode(1, "NW", 38.760, 9.011)
	b.AddNode(2, "N", 38.761, 9.011)
	b.AddNode(3, "NE", 38.762, 9.011)
	b.AddNode(4, "SW", 38.760, 9.010)
	b.AddNode(5, "S", 38.761, 9.010)
	b.AddNode(6, "SE", 38.762, 9.010)
	for _, pair := range [][2]int64{{1, 2}, {2, 3}, {4, 5}, {5, 6}, {1, 4}, {2, 5}, {3, 6}} {
		if err := b.AddRoad(pair[0], pair[1], 100, false); err != nil {
			t.Fatalf("expected no error adding road, got %v", err)
		}
	}
	return b.Build()
}

// splitNetwork adds an isolated junction 9 to the line network, so 9
// is a known location that no path reaches.
func splitNetwork(t *testing.T) *roadnet.Network {
	t.Helper()
	b := roadnet.NewBuilder()
	b.AddNode(1, "A", 38.760, 9.010)
	b.AddNode(2, "B", 38.761, 9.010)
	b.AddNode(9, "Island", 38.790, 9.020)
	if err := b.AddRoad(1, 2, 100, false); err != nil {
		t.Fatalf("expected no error adding road, got %v", err)
	}
	return b.Build()
}

// testBuilder wraps roadnet.Builder with failure-aborting helpers so
// fixture construction stays one line per road.
type testBuilder struct {
	t *testing.T
	b *roadnet.Builder
}

func newTestBuilder(t *testing.T) *testBuilder {
	t.Helper()
	return &testBuilder{t: t, b: roadnet.NewBuilder()}
}

func (tb *testBuilder) addNodes(ids ...int64) {
	for i, id := range ids {
		tb.b.AddNode(id, fmt.Sprintf("J%d", id), 38.760+float64(i)*0.001, 9.010)
	}
}

func (tb *testBuilder) road(from, to int64, length float64) {
	tb.t.Helper()
	if err := tb.b.AddRoad(from, to, length, false); err != nil {
		tb.t.Fatalf("expected no error adding road %d->%d, got %v", from, to, err)
	}
}

func (tb *testBuilder) build() *roadnet.Network {
	return tb.b.Build()
}

func equalPath(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func pathKeys(results []Result) []string {
	keys := make([]string, 0, len(results))
	for _, r := range results {
		keys = append(keys, fmt.Sprintf("%v", r.Path))
	}
	return keys
}
