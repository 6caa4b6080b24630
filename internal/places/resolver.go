package places

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

// ErrUnknownPlace indicates a query that maps to no known place name
// or coordinate. Distinct from an unreachable node: resolution failed
// before any search started.
var ErrUnknownPlace = errors.New("unknown place")

// ErrEmptyNetwork indicates resolution was attempted against a network
// with no junctions.
var ErrEmptyNetwork = errors.New("road network has no junctions")

// Resolver maps human-readable place names or raw coordinates onto
// road-network junctions. Nearest-junction lookups run against an
// R-tree built once over all junction coordinates.
type Resolver struct {
	coords map[string]orb.Point // lower-cased name -> coordinates
	names  []string             // display names, sorted
	tree   *rtreego.Rtree
}

// nodeEntry wraps a junction for R-tree storage.
type nodeEntry struct {
	id   int64
	rect rtreego.Rect
}

func (e *nodeEntry) Bounds() rtreego.Rect { return e.rect }

// NewResolver indexes the network's junctions and registers the seed
// places plus every named junction for name lookup.
func NewResolver(net *roadnet.Network, seed []domain.Place) *Resolver {
	r := &Resolver{
		coords: make(map[string]orb.Point),
	}

	nodes := net.Nodes()
	if len(nodes) > 0 {
		r.tree = rtreego.NewTree(2, 25, 50)
		for _, node := range nodes {
			r.tree.Insert(&nodeEntry{
				id:   node.ID,
				rect: rtreego.Point{node.Point.Lon(), node.Point.Lat()}.ToRect(1e-6),
			})
			if node.Name != "" {
				r.register(node.Name, node.Point)
			}
		}
	}

	for _, place := range seed {
		r.register(place.Name, orb.Point{place.Lon, place.Lat})
	}

	sort.Strings(r.names)
	return r
}

func (r *Resolver) register(name string, point orb.Point) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return
	}
	if _, exists := r.coords[key]; !exists {
		r.names = append(r.names, strings.TrimSpace(name))
	}
	r.coords[key] = point
}

// Resolve maps a place name or a "lat,lon" coordinate pair to the
// nearest junction id.
func (r *Resolver) Resolve(query string) (int64, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return 0, fmt.Errorf("%w: empty query", ErrUnknownPlace)
	}

	if point, ok := parseCoordinates(q); ok {
		return r.ResolvePoint(point)
	}

	point, ok := r.coords[strings.ToLower(q)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlace, q)
	}
	return r.ResolvePoint(point)
}

// ResolvePoint returns the junction nearest to the given coordinates.
func (r *Resolver) ResolvePoint(point orb.Point) (int64, error) {
	if r.tree == nil {
		return 0, ErrEmptyNetwork
	}
	nearest := r.tree.NearestNeighbor(rtreego.Point{point.Lon(), point.Lat()})
	entry, ok := nearest.(*nodeEntry)
	if !ok {
		return 0, ErrEmptyNetwork
	}
	return entry.id, nil
}

// Search returns up to limit place names matching the query,
// case-insensitive substring first, then prefix order. An empty query
// lists the registry.
func (r *Resolver) Search(query string, limit int) []string {
	if limit <= 0 {
		limit = 10
	}
	q := strings.ToLower(strings.TrimSpace(query))

	var matches []string
	for _, name := range r.names {
		if q == "" || strings.Contains(strings.ToLower(name), q) {
			matches = append(matches, name)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// Places returns the registered named places with their coordinates.
func (r *Resolver) Places() []domain.Place {
	out := make([]domain.Place, 0, len(r.names))
	for _, name := range r.names {
		point := r.coords[strings.ToLower(name)]
		out = append(out, domain.Place{Name: name, Lat: point.Lat(), Lon: point.Lon()})
	}
	return out
}

// parseCoordinates accepts "lat,lon" decimal pairs.
func parseCoordinates(q string) (orb.Point, bool) {
	parts := strings.Split(q, ",")
	if len(parts) != 2 {
		return orb.Point{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, false
	}
	return orb.Point{lon, lat}, true
}
