package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/places"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/search"
)

// Supported algorithm tags.
const (
	AlgorithmBFS    = "bfs"
	AlgorithmDFS    = "dfs"
	AlgorithmGreedy = "greedy"
)

// ErrUnknownAlgorithm indicates a request for a strategy the engine
// does not implement.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// PlanRequest describes a route query. Zero-valued limits inherit the
// service defaults.
type PlanRequest struct {
	From        string
	To          string
	Algorithm   string
	MaxPaths    int
	MaxNodes    int
	MaxDistance float64
}

// RouteService resolves locations and runs the search engine over the
// in-memory road network.
type RouteService struct {
	net      *roadnet.Network
	resolver *places.Resolver
	defaults search.Options
	logger   *slog.Logger
}

// NewRouteService constructs the service. defaults bound every request
// that does not carry its own limits.
func NewRouteService(net *roadnet.Network, resolver *places.Resolver, defaults search.Options, logger *slog.Logger) *RouteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RouteService{
		net:      net,
		resolver: resolver,
		defaults: defaults,
		logger:   logger,
	}
}

// PlanRoutes resolves the endpoints and runs the requested strategy.
// A halted search (node or distance ceiling) is a legitimate partial
// outcome: the plan comes back truncated, with the limit named, rather
// than as an error. Unknown locations and invalid configuration are
// errors and surface before any traversal.
func (s *RouteService) PlanRoutes(ctx context.Context, req PlanRequest) (domain.RoutePlan, error) {
	opts, err := s.options(req)
	if err != nil {
		return domain.RoutePlan{}, err
	}

	start, goal, err := s.resolveEndpoints(req)
	if err != nil {
		return domain.RoutePlan{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.RoutePlan{}, err
	}

	plan := domain.RoutePlan{
		Algorithm: s.algorithm(req),
		From:      req.From,
		To:        req.To,
	}

	switch plan.Algorithm {
	case AlgorithmBFS:
		results, err := search.AllShortestPaths(s.net, start, goal, opts)
		if err != nil {
			return s.finishPlan(plan, nil, err)
		}
		return s.finishPlan(plan, results, nil)
	case AlgorithmDFS:
		res, err := search.DepthFirstPath(s.net, start, goal, opts)
		return s.finishSingle(plan, res, err)
	case AlgorithmGreedy:
		res, err := search.GreedyBestFirstPath(s.net, start, goal, opts)
		return s.finishSingle(plan, res, err)
	default:
		return domain.RoutePlan{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
}

// RouteStream yields routes one at a time over the tied-shortest-path
// enumeration, keeping memory independent of how many ties exist.
type RouteStream struct {
	net    *roadnet.Network
	stream *search.PathStream
}

// Next returns the next route, or false when the stream is exhausted.
func (rs *RouteStream) Next() (domain.Route, bool) {
	path, ok := rs.stream.Next()
	if !ok {
		return domain.Route{}, false
	}
	return domain.Route{
		Nodes:          path,
		DistanceMeters: search.PathDistance(rs.net, path),
		Steps:          search.PathSteps(path),
	}, true
}

// StreamRoutes resolves the endpoints and opens a lazy stream of tied
// shortest paths. Only the breadth-first strategy supports streaming.
func (s *RouteService) StreamRoutes(ctx context.Context, req PlanRequest) (*RouteStream, error) {
	opts, err := s.options(req)
	if err != nil {
		return nil, err
	}
	if alg := s.algorithm(req); alg != AlgorithmBFS {
		return nil, fmt.Errorf("%w: streaming supports bfs only, got %q", ErrUnknownAlgorithm, alg)
	}

	start, goal, err := s.resolveEndpoints(req)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stream, err := search.StreamShortestPaths(s.net, start, goal, opts)
	if err != nil {
		return nil, err
	}
	return &RouteStream{net: s.net, stream: stream}, nil
}

func (s *RouteService) algorithm(req PlanRequest) string {
	if req.Algorithm == "" {
		return AlgorithmBFS
	}
	return req.Algorithm
}

func (s *RouteService) options(req PlanRequest) (search.Options, error) {
	opts := s.defaults
	if opts.MaxPaths == 0 {
		opts.MaxPaths = search.DefaultMaxPaths
	}
	if opts.SameLocation == "" {
		opts.SameLocation = search.SameLocationTrivialPath
	}
	if req.MaxPaths != 0 {
		opts.MaxPaths = req.MaxPaths
	}
	if req.MaxNodes != 0 {
		opts.MaxNodes = req.MaxNodes
	}
	if req.MaxDistance != 0 {
		opts.MaxDistance = req.MaxDistance
	}
	if err := opts.Validate(); err != nil {
		return search.Options{}, err
	}
	return opts, nil
}

func (s *RouteService) resolveEndpoints(req PlanRequest) (int64, int64, error) {
	start, err := s.resolver.Resolve(req.From)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve start %q: %w", req.From, err)
	}
	goal, err := s.resolver.Resolve(req.To)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve goal %q: %w", req.To, err)
	}
	return start, goal, nil
}

func (s *RouteService) finishSingle(plan domain.RoutePlan, res search.Result, err error) (domain.RoutePlan, error) {
	var results []search.Result
	if err == nil && res.Found {
		results = []search.Result{res}
	}
	plan.Expanded = res.Expanded
	return s.finishPlan(plan, results, err)
}

func (s *RouteService) finishPlan(plan domain.RoutePlan, results []search.Result, err error) (domain.RoutePlan, error) {
	if err != nil {
		var limitErr *search.LimitError
		if errors.As(err, &limitErr) {
			plan.Truncated = true
			plan.TruncatedBy = string(limitErr.Limit)
			plan.Expanded = limitErr.Expanded
			s.logger.Info("search halted by limit",
				"limit", limitErr.Limit,
				"expanded", limitErr.Expanded,
				"from", plan.From,
				"to", plan.To,
			)
			return plan, nil
		}
		return domain.RoutePlan{}, err
	}

	for _, res := range results {
		plan.Routes = append(plan.Routes, domain.Route{
			Nodes:          res.Path,
			DistanceMeters: res.Distance,
			Steps:          res.Steps,
		})
		plan.Expanded = res.Expanded
	}
	plan.Found = len(plan.Routes) > 0
	return plan, nil
}
