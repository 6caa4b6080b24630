package roadnet

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ErrNegativeLength indicates a road with a negative weight, which the
// search engine cannot traverse meaningfully.
var ErrNegativeLength = errors.New("road length must be non-negative")

// ErrUnknownJunction indicates a road referencing a junction that was
// never added to the builder.
var ErrUnknownJunction = errors.New("road references unknown junction")

// Node is a junction of the network with its geographic position.
type Node struct {
	ID    int64
	Name  string
	Point orb.Point // lon, lat
}

// Edge is an outgoing road segment with its length in meters.
type Edge struct {
	To     int64
	Length float64
}

// Network is a read-only weighted road graph. It is safe to share
// across sequential searches; nothing mutates it after Build.
type Network struct {
	nodes     map[int64]Node
	adj       map[int64][]Edge
	edgeCount int
}

// HasNode reports whether the junction exists in the network.
func (n *Network) HasNode(id int64) bool {
	_, ok := n.nodes[id]
	return ok
}

// Node returns the junction with the given id.
func (n *Network) Node(id int64) (Node, bool) {
	node, ok := n.nodes[id]
	return node, ok
}

// NodePoint returns the coordinates of a junction.
func (n *Network) NodePoint(id int64) (orb.Point, bool) {
	node, ok := n.nodes[id]
	return node.Point, ok
}

// Neighbors returns the outgoing edges of a junction in insertion
// order. Callers must not modify the returned slice.
func (n *Network) Neighbors(id int64) []Edge {
	return n.adj[id]
}

// EdgeLength returns the length of the edge u->v if it exists.
func (n *Network) EdgeLength(u, v int64) (float64, bool) {
	for _, e := range n.adj[u] {
		if e.To == v {
			return e.Length, true
		}
	}
	return 0, false
}

// NodeCount returns the number of junctions.
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount returns the number of directed edges.
func (n *Network) EdgeCount() int { return n.edgeCount }

// Nodes returns all junctions sorted by id. Intended for index
// construction and rendering, not for per-expansion use.
func (n *Network) Nodes() []Node {
	nodes := make([]Node, 0, len(n.nodes))
	for _, node := range n.nodes {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

// Builder assembles a Network. Junctions must be added before the
// roads that reference them.
type Builder struct {
	net *Network
}

// NewBuilder returns an empty network builder.
func NewBuilder() *Builder {
	return &Builder{net: &Network{
		nodes: make(map[int64]Node),
		adj:   make(map[int64][]Edge),
	}}
}

// AddNode registers a junction. Re-adding an id overwrites its metadata
// but keeps existing edges.
func (b *Builder) AddNode(id int64, name string, lon, lat float64) {
	b.net.nodes[id] = Node{ID: id, Name: name, Point: orb.Point{lon, lat}}
}

// AddEdge registers a directed road segment. A non-positive length is
// replaced with the haversine distance between the endpoints, matching
// how incomplete map data is repaired elsewhere in the system.
func (b *Builder) AddEdge(from, to int64, length float64) error {
	if length < 0 {
		return fmt.Errorf("%w: %d->%d has length %f", ErrNegativeLength, from, to, length)
	}
	src, ok := b.net.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownJunction, from)
	}
	dst, ok := b.net.nodes[to]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownJunction, to)
	}
	if length == 0 && from != to {
		length = geo.DistanceHaversine(src.Point, dst.Point)
	}
	b.net.adj[from] = append(b.net.adj[from], Edge{To: to, Length: length})
	b.net.edgeCount++
	return nil
}

// AddRoad registers a road in both directions unless oneWay is set.
func (b *Builder) AddRoad(from, to int64, length float64, oneWay bool) error {
	if err := b.AddEdge(from, to, length); err != nil {
		return err
	}
	if oneWay {
		return nil
	}
	return b.AddEdge(to, from, length)
}

// Build finalizes and returns the network. The builder must not be
// used afterwards.
func (b *Builder) Build() *Network {
	net := b.net
	b.net = nil
	return net
}
