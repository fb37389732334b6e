// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Network container: node/link insertion, adjacency index, read accessors.
//
// Invariants:
//   - adj has exactly one record per node in nodes; record.index is the node's position.
//   - every link in links appears in exactly one record: its source's.
//   - both endpoints of every link are nodes of this network.

package mesh

import (
	"fmt"
	"log/slog"
	"math"
)

// adjacency is the index entry of one node.
type adjacency struct {
	index int     // position in Network.nodes
	links []*Link // outgoing links, insertion order
}

// Network is a directed, weighted graph of nodes of type N.
type Network[N Noder] struct {
	settings

	id    OwnerID
	nodes []N
	links []*Link
	adj   map[NodeID]*adjacency

	// Children adopted during load, consumed by PostLoad.
	pendingNodes []N
	pendingLinks []*Link
}

// NewNetwork returns an empty network.
func NewNetwork[N Noder](opts ...Option) *Network[N] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.ids == nil {
		s.ids = NewIDAllocator()
	}

	return &Network[N]{
		settings: s,
		id:       newOwnerID(),
		adj:      make(map[NodeID]*adjacency),
	}
}

// NewMeshNetwork returns an empty network of plain nodes.
func NewMeshNetwork(opts ...Option) *Network[*Node] {
	return NewNetwork[*Node](opts...)
}

// ID returns the network's owner identity.
func (net *Network[N]) ID() OwnerID { return net.id }

// Allocator returns the allocator new nodes for this network should draw from.
func (net *Network[N]) Allocator() *IDAllocator { return net.ids }

// Logger returns the diagnostics logger.
func (net *Network[N]) Logger() *slog.Logger { return net.logger }

// AddNode inserts n and returns its ID. On failure it returns InvalidID and
// leaves the network unchanged.
//
// Fails when n is nil (ErrNilNode), already owned by any network
// (ErrNodeOwned), or shares its ID with a node already present (ErrDuplicateNode).
//
// Complexity: O(1) amortized.
func (net *Network[N]) AddNode(n N) (NodeID, error) {
	// 1) Reject nil, including a typed nil behind N.
	if !net.check(!n.IsNil(), "add node: nil node") {
		return InvalidID, ErrNilNode
	}

	// 2) Single ownership and unique IDs.
	base := n.MeshNode()
	if !net.check(!base.Owned(), "add node: node already owned",
		slog.Int64("node", int64(base.id)), slog.String("owner", base.owner.String())) {
		return InvalidID, fmt.Errorf("%w: node %d", ErrNodeOwned, base.id)
	}
	_, dup := net.adj[base.id]
	if !net.check(!dup, "add node: duplicate node ID", slog.Int64("node", int64(base.id))) {
		return InvalidID, fmt.Errorf("%w: node %d", ErrDuplicateNode, base.id)
	}

	// 3) Index, append, then claim.
	net.adj[base.id] = &adjacency{index: len(net.nodes)}
	net.nodes = append(net.nodes, n)
	base.owner = net.id

	return base.id, nil
}

// AddLink attaches l to its source node.
//
// Fails when l is nil (ErrNilLink), an endpoint is not a node of this network
// (ErrNodeNotFound), l itself is already present (ErrDuplicateLink) or held by
// another network (ErrLinkOwned), or, under WithUniqueLinks, the pair is
// already linked (ErrParallelLink). A failed add changes nothing.
//
// Complexity: O(d) where d is the out-degree of the source.
func (net *Network[N]) AddLink(l *Link) error {
	if !net.check(l != nil, "add link: nil link") {
		return ErrNilLink
	}
	// 1) Endpoints and parallel-link policy.
	if err := net.canLink(l.source, l.dest); err != nil {
		return err
	}

	// 2) The same *Link may appear only once, in one network.
	src := net.adj[l.source]
	for _, have := range src.links {
		if !net.check(have != l, "add link: link already present",
			slog.Int64("source", int64(l.source)), slog.Int64("dest", int64(l.dest))) {
			return fmt.Errorf("%w: %d→%d", ErrDuplicateLink, l.source, l.dest)
		}
	}
	if !net.check(l.owner == NoOwner || l.owner == net.id, "add link: link owned by another network",
		slog.String("owner", l.owner.String())) {
		return fmt.Errorf("%w: %d→%d", ErrLinkOwned, l.source, l.dest)
	}

	// 3) Attach to the source's record and the flat collection.
	src.links = append(src.links, l)
	net.links = append(net.links, l)
	l.owner = net.id

	return nil
}

// canLink validates endpoints and the parallel-link policy for src→dst.
func (net *Network[N]) canLink(src, dst NodeID) error {
	from, ok := net.adj[src]
	if !net.check(ok, "link: unknown source node", slog.Int64("source", int64(src))) {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, src)
	}
	_, ok = net.adj[dst]
	if !net.check(ok, "link: unknown destination node", slog.Int64("dest", int64(dst))) {
		return fmt.Errorf("%w: dest %d", ErrNodeNotFound, dst)
	}
	if !net.uniqueLinks {
		return nil
	}
	for _, l := range from.links {
		if !net.check(l.dest != dst, "link: parallel link rejected",
			slog.Int64("source", int64(src)), slog.Int64("dest", int64(dst))) {
			return fmt.Errorf("%w: %d→%d", ErrParallelLink, src, dst)
		}
	}

	return nil
}

// LinkNode creates and adds a single link src→dst.
//
// Complexity: O(d) where d is the out-degree of src.
func (net *Network[N]) LinkNode(src, dst NodeID, weight float64) error {
	return net.AddLink(NewLink(src, dst, weight))
}

// LinkNodes creates src→dst and, with Bidirectional or WithReverseWeight, also
// dst→src. WithWeight overrides weight; the reverse weight defaults to the
// forward weight. Both directions are validated before either is added.
//
// Complexity: O(d_src + d_dst) over the two out-degrees.
func (net *Network[N]) LinkNodes(src, dst NodeID, weight float64, opts ...LinkOption) error {
	spec := ResolveLinkSpec(opts...)
	if spec.HasWeight {
		weight = spec.Weight
	}
	if !spec.Bidirectional {
		return net.LinkNode(src, dst, weight)
	}

	// Bidirectional: validate both directions first so a failure adds nothing.
	reverse := weight
	if spec.HasReverse {
		reverse = spec.Reverse
	}
	if err := net.canLink(src, dst); err != nil {
		return err
	}
	if err := net.canLink(dst, src); err != nil {
		return err
	}
	if !net.check(src != dst || !net.uniqueLinks, "link: bidirectional self-loop is a parallel link",
		slog.Int64("node", int64(src))) {
		return fmt.Errorf("%w: %d→%d", ErrParallelLink, src, dst)
	}
	if err := net.LinkNode(src, dst, weight); err != nil {
		return err
	}

	return net.LinkNode(dst, src, reverse)
}

// Node returns the node with the given ID.
func (net *Network[N]) Node(id NodeID) (N, bool) {
	a, ok := net.adj[id]
	if !ok {
		var zero N
		return zero, false
	}

	return net.nodes[a.index], true
}

// NodeAt returns the i-th node in insertion order.
func (net *Network[N]) NodeAt(i int) (N, bool) {
	if i < 0 || i >= len(net.nodes) {
		var zero N
		return zero, false
	}

	return net.nodes[i], true
}

// IndexOf returns the position of node id in insertion order.
func (net *Network[N]) IndexOf(id NodeID) (int, bool) {
	a, ok := net.adj[id]
	if !ok {
		return -1, false
	}

	return a.index, true
}

// Has reports whether id is a node of this network.
func (net *Network[N]) Has(id NodeID) bool {
	_, ok := net.adj[id]
	return ok
}

// Links returns a copy of the outgoing links of id; nil for unknown IDs.
//
// Complexity: O(d).
func (net *Network[N]) Links(id NodeID) []*Link {
	a, ok := net.adj[id]
	if !ok || len(a.links) == 0 {
		return nil
	}
	out := make([]*Link, len(a.links))
	copy(out, a.links)

	return out
}

// Nodes returns a copy of the node collection in insertion order.
func (net *Network[N]) Nodes() []N {
	out := make([]N, len(net.nodes))
	copy(out, net.nodes)

	return out
}

// AllLinks returns a copy of the link collection in insertion order.
func (net *Network[N]) AllLinks() []*Link {
	out := make([]*Link, len(net.links))
	copy(out, net.links)

	return out
}

// NodeCount returns the number of nodes.
func (net *Network[N]) NodeCount() int { return len(net.nodes) }

// LinkCount returns the number of links.
func (net *Network[N]) LinkCount() int { return len(net.links) }

// Clear empties the network. Removed nodes and links keep their owner
// back-reference, so they cannot be re-added anywhere.
//
// Complexity: O(1); the old collections are left to the collector.
func (net *Network[N]) Clear() {
	net.nodes = nil
	net.links = nil
	net.adj = make(map[NodeID]*adjacency)
}

// PathCost sums, for each consecutive pair of path, the cheapest link between them.
// A single-node path costs 0.
//
// Errors:
//   - ErrBrokenPath: path is empty or a consecutive pair has no link.
//   - ErrNodeNotFound: a node of path is not in the network.
//
// Complexity: O(Σ d) over the out-degrees of the path's nodes.
func (net *Network[N]) PathCost(path []NodeID) (float64, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrBrokenPath)
	}
	if !net.Has(path[0]) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, path[0])
	}

	var total float64
	for i := 1; i < len(path); i++ {
		from, ok := net.adj[path[i-1]]
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, path[i-1])
		}
		// Parallel links: the cheapest one is what a route would use.
		best := math.Inf(1)
		for _, l := range from.links {
			if l.dest == path[i] && l.weight < best {
				best = l.weight
			}
		}
		if math.IsInf(best, 1) {
			return 0, fmt.Errorf("%w: %d→%d", ErrBrokenPath, path[i-1], path[i])
		}
		total += best
	}

	return total, nil
}

// Stats is a snapshot of a network's size and configuration.
type Stats struct {
	Owner       OwnerID
	Nodes       int
	Links       int
	Frontier    FrontierKind
	UniqueLinks bool
}

// Stats returns the current counts and configuration.
func (net *Network[N]) Stats() Stats {
	return Stats{
		Owner:       net.id,
		Nodes:       len(net.nodes),
		Links:       len(net.links),
		Frontier:    net.frontier,
		UniqueLinks: net.uniqueLinks,
	}
}
