package search

import (
	"errors"
	"testing"
)

func TestAllShortestPaths_TiedRoutes(t *testing.T) {
	net := diamondNetwork(t)

	results, err := AllShortestPaths(net, 1, 4, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 tied routes, got %d: %v", len(results), pathKeys(results))
	}
	if want := []int64{1, 2, 4}; !equalPath(results[0].Path, want) {
		t.Errorf("expected first route %v, got %v", want, results[0].Path)
	}
	if want := []int64{1, 3, 4}; !equalPath(results[1].Path, want) {
		t.Errorf("expected second route %v, got %v", want, results[1].Path)
	}
	for _, res := range results {
		if res.Steps != 2 {
			t.Errorf("expected every tied route to make 2 steps, got %d for %v", res.Steps, res.Path)
		}
		if !res.Found {
			t.Errorf("expected Found on route %v", res.Path)
		}
	}
	if results[0].Distance != 240 {
		t.Errorf("expected 240m via junction 2, got %f", results[0].Distance)
	}
	if results[1].Distance != 300 {
		t.Errorf("expected 300m via junction 3, got %f", results[1].Distance)
	}
}

func TestAllShortestPaths_ExcludesLongerRoutes(t *testing.T) {
	net := diamondNetwork(t)

	results, err := AllShortestPaths(net, 1, 4, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, res := range results {
		for _, node := range res.Path {
			if node == 5 || node == 6 {
				t.Fatalf("expected the 3-step detour to be excluded, got %v", res.Path)
			}
		}
	}
}

func TestAllShortestPaths_MaxPathsCap(t *testing.T) {
	net := gridNetwork(t)

	opts := DefaultOptions()
	results, err := AllShortestPaths(net, 1, 6, opts)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 tied routes across the lattice, got %d: %v", len(results), pathKeys(results))
	}

	opts.MaxPaths = 1
	capped, err := AllShortestPaths(net, 1, 6, opts)
	if err != nil {
		t.Fatalf("expected no error with a path cap, got %v", err)
	}
	if len(capped) != 1 {
		t.Fatalf("expected exactly 1 route under the cap, got %d", len(capped))
	}
	if !equalPath(capped[0].Path, results[0].Path) {
		t.Errorf("expected the cap to keep the first route %v, got %v", results[0].Path, capped[0].Path)
	}
}

func TestAllShortestPaths_Deterministic(t *testing.T) {
	net := gridNetwork(t)

	first, err := AllShortestPaths(net, 1, 6, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := AllShortestPaths(net, 1, 6, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("expected identical result counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if !equalPath(first[i].Path, second[i].Path) {
			t.Errorf("route %d differs between runs: %v vs %v", i, first[i].Path, second[i].Path)
		}
	}
}

func TestAllShortestPaths_Unreachable(t *testing.T) {
	net := splitNetwork(t)

	results, err := AllShortestPaths(net, 1, 9, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error for unreachable goal, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no routes, got %v", pathKeys(results))
	}
}

func TestAllShortestPaths_SameLocation(t *testing.T) {
	net := gridNetwork(t)

	results, err := AllShortestPaths(net, 5, 5, DefaultOptions())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one trivial route, got %d", len(results))
	}
	if want := []int64{5}; !equalPath(results[0].Path, want) {
		t.Errorf("expected trivial path %v, got %v", want, results[0].Path)
	}
}

func TestAllShortestPaths_NodeBudget(t *testing.T) {
	net := gridNetwork(t)
	opts := DefaultOptions()
	opts.MaxNodes = 1

	_, err := AllShortestPaths(net, 1, 6, opts)
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}
