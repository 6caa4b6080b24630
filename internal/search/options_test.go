package search

import (
	"errors"
	"testing"
)

func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "defaults", opts: DefaultOptions()},
		{name: "unbounded ceilings", opts: Options{MaxPaths: 1}},
		{name: "explicit ceilings", opts: Options{MaxPaths: 3, MaxNodes: 100, MaxDistance: 5000}},
		{name: "reject mode", opts: Options{MaxPaths: 1, SameLocation: SameLocationReject}},
		{name: "zero max paths", opts: Options{MaxPaths: 0}, wantErr: true},
		{name: "negative max paths", opts: Options{MaxPaths: -2}, wantErr: true},
		{name: "negative max nodes", opts: Options{MaxPaths: 1, MaxNodes: -1}, wantErr: true},
		{name: "negative max distance", opts: Options{MaxPaths: 1, MaxDistance: -0.5}, wantErr: true},
		{name: "unknown same-location mode", opts: Options{MaxPaths: 1, SameLocation: "explode"}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidOptions) {
					t.Fatalf("expected ErrInvalidOptions, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.MaxPaths != DefaultMaxPaths {
		t.Errorf("expected max paths %d, got %d", DefaultMaxPaths, opts.MaxPaths)
	}
	if opts.SameLocation != SameLocationTrivialPath {
		t.Errorf("expected trivial-path mode, got %q", opts.SameLocation)
	}
	if opts.MaxNodes != 0 || opts.MaxDistance != 0 {
		t.Errorf("expected unbounded ceilings, got %d and %f", opts.MaxNodes, opts.MaxDistance)
	}
}

func TestPathDistanceAndSteps(t *testing.T) {
	net := lineNetwork(t)

	if d := PathDistance(net, []int64{1, 2, 3, 4}); d != 300 {
		t.Errorf("expected distance 300, got %f", d)
	}
	if d := PathDistance(net, []int64{2}); d != 0 {
		t.Errorf("expected zero distance for single node, got %f", d)
	}
	if s := PathSteps([]int64{1, 2, 3, 4}); s != 3 {
		t.Errorf("expected 3 steps, got %d", s)
	}
	if s := PathSteps([]int64{7}); s != 0 {
		t.Errorf("expected 0 steps for single node, got %d", s)
	}
	if s := PathSteps(nil); s != 0 {
		t.Errorf("expected 0 steps for empty path, got %d", s)
	}
}

func TestLimitError_Message(t *testing.T) {
	err := &LimitError{Limit: LimitNodes, Expanded: 12}
	if got := err.Error(); got != "search halted by max-nodes limit after expanding 12 nodes" {
		t.Errorf("unexpected message %q", got)
	}
	if !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("expected LimitError to match ErrLimitExceeded")
	}
}
