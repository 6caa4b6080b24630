package search

// PathStream lazily enumerates the tied shortest paths recorded in a
// parent tree. Each Next call resumes an explicit cursor stack over
// partial reconstruction state, so peak memory stays bounded by the
// tree itself no matter how many tied paths exist. A stream is finite,
// single-pass and not safe for concurrent use.
type PathStream struct {
	tree      *parentTree
	stack     []streamFrame
	remaining int
	expanded  int
	done      bool
}

// streamFrame records one node of the partial goal-to-start walk and
// the index of the next parent choice to try under it.
type streamFrame struct {
	node    int64
	next    int
	emitted bool
}

// StreamShortestPaths builds the parent tree for the start/goal pair
// and returns a lazy stream over its tied shortest paths, capped at
// opts.MaxPaths. The trivial same-location stream yields exactly one
// single-node path. A completed search with an unreachable goal
// produces an empty stream and no error.
func StreamShortestPaths(g Graph, start, goal int64, opts Options) (*PathStream, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if res, err := checkEndpoints(g, start, goal, opts); err != nil {
		return nil, err
	} else if res != nil {
		return &PathStream{
			tree:      &parentTree{start: start, goal: goal, found: true},
			stack:     []streamFrame{{node: start, emitted: false}},
			remaining: 1,
		}, nil
	}

	tree, err := buildParentTree(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	stream := &PathStream{
		tree:      tree,
		remaining: opts.MaxPaths,
		expanded:  tree.expanded,
	}
	if tree.found {
		stream.stack = []streamFrame{{node: tree.goal}}
	} else {
		stream.done = true
	}
	return stream, nil
}

// Next returns the next tied shortest path in start-to-goal order, or
// false when the enumeration is exhausted or the path cap is reached.
func (s *PathStream) Next() ([]int64, bool) {
	if s.done || s.remaining <= 0 {
		s.done = true
		return nil, false
	}

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]

		if top.node == s.tree.start {
			if !top.emitted {
				top.emitted = true
				s.remaining--
				path := make([]int64, len(s.stack))
				for i := range s.stack {
					path[len(s.stack)-1-i] = s.stack[i].node
				}
				if s.remaining == 0 {
					s.done = true
				}
				return path, true
			}
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}

		parents := s.tree.parents[top.node]
		if top.next >= len(parents) {
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}
		child := parents[top.next]
		top.next++
		s.stack = append(s.stack, streamFrame{node: child})
	}

	s.done = true
	return nil, false
}

// Expanded reports how many nodes the traversal pass processed.
func (s *PathStream) Expanded() int { return s.expanded }
