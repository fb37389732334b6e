// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: FindPath: best-first search with caller-supplied cost estimate.
//
// Per call:
//   - every reached node gets an element with partial = estimate = +Inf;
//   - elements live only for the duration of the call.

package mesh

import (
	"log/slog"
	"math"
)

// CostEstimate guesses the remaining cost from a node to the destination.
// Routes are shortest only if it never overstates the true remaining cost.
// It must not return NaN.
type CostEstimate[N Noder] func(from, to N) float64

// element is the per-node bookkeeping of one search.
type element[N Noder] struct {
	node     N
	id       NodeID
	prev     *element[N]
	partial  float64 // best known cost from the source
	estimate float64 // partial + estimate to destination
	length   int     // nodes on the best known route, source included
	open     bool
	closed   bool
	seq      uint64 // open order; higher is more recent
}

// search holds the mutable state of a single FindPath call.
type search[N Noder] struct {
	net      *Network[N]
	srcID    NodeID
	dstID    NodeID
	dst      N
	estimate CostEstimate[N]
	elems    map[NodeID]*element[N]
	open     frontier[N]
	seq      uint64
	expanded int
}

// FindPath searches for a route from src to dst and returns its node IDs,
// source first. It returns (nil, false) when dst is unreachable or when src,
// dst or estimate is invalid; the latter are logged as failed preconditions.
//
// The route is optimized but only guaranteed shortest when estimate is
// admissible.
//
// Preconditions (in order):
//  1. estimate must be non-nil.
//  2. src must be a node of net.
//  3. dst must be a node of net.
//
// Selection: the open element with the lowest estimated total wins; among
// equal totals, the most recently opened one.
//
// Complexity:
//
//   - Time:  O(V² + E) with FrontierList, O((V + E) log V) with FrontierOrdered
//   - Space: O(V) per call
func (net *Network[N]) FindPath(src, dst NodeID, estimate CostEstimate[N]) ([]NodeID, bool) {
	// 1) Validate the estimate and both endpoints.
	if !net.check(estimate != nil, "find path: nil cost estimate") {
		return nil, false
	}
	srcNode, ok := net.Node(src)
	if !net.check(ok, "find path: unknown source node", slog.Int64("source", int64(src))) {
		return nil, false
	}
	dstNode, ok := net.Node(dst)
	if !net.check(ok, "find path: unknown destination node", slog.Int64("dest", int64(dst))) {
		return nil, false
	}

	// 2) Fresh per-call state; nothing is stored on the network.
	s := &search[N]{
		net:      net,
		srcID:    src,
		dstID:    dst,
		dst:      dstNode,
		estimate: estimate,
		elems:    make(map[NodeID]*element[N]),
		open:     newFrontier[N](net.frontier),
	}

	// 3) Run and report.
	path, found := s.run(srcNode)
	recordSearch(found, s.expanded, len(path))

	return path, found
}

// run is the main loop: seed, select, goal test, close, relax.
func (s *search[N]) run(srcNode N) ([]NodeID, bool) {
	// 1) Seed the open set with the source: partial 0, length 1.
	start := s.element(s.srcID, srcNode)
	start.partial = 0
	start.estimate = s.estimate(srcNode, s.dst)
	start.length = 1
	s.push(start)

	for !s.open.empty() {
		// 2) Select the best open element.
		cur := s.open.best()

		// 3) Goal test happens on selection, not on discovery.
		if cur.id == s.dstID {
			return s.reconstruct(cur)
		}

		// 4) Close it. Closed elements are never reopened.
		s.open.remove(cur)
		cur.open = false
		cur.closed = true
		s.expanded++

		// 5) Relax every outgoing link in insertion order.
		for _, l := range s.net.adj[cur.id].links {
			s.relax(cur, l)
		}
	}

	// 6) Open set exhausted: dst is unreachable.
	return nil, false
}

// relax offers the route cur→l.dest to the link's destination. An open
// element only moves on a strict improvement, so ties keep the first route.
func (s *search[N]) relax(cur *element[N], l *Link) {
	next := s.elementByID(l.dest)
	if next.closed {
		return
	}

	partial := cur.partial + l.weight
	if next.open && !(partial < next.partial) {
		return
	}

	// Improved or first reached: re-parent, then reprice or open.
	next.prev = cur
	next.length = cur.length + 1
	next.partial = partial
	total := partial + s.estimate(next.node, s.dst)
	if next.open {
		s.open.update(next, total)
		return
	}
	next.estimate = total
	s.push(next)
}

// push stamps e with the next open sequence number and opens it.
func (s *search[N]) push(e *element[N]) {
	s.seq++
	e.seq = s.seq
	e.open = true
	s.open.push(e)
}

// reconstruct walks prev exactly goal.length times, filling the route from
// its end; the walk must end just past the source.
func (s *search[N]) reconstruct(goal *element[N]) ([]NodeID, bool) {
	path := make([]NodeID, goal.length)
	e := goal
	for i := goal.length - 1; i >= 0; i-- {
		if !s.net.check(e != nil, "find path: predecessor chain shorter than route",
			slog.Int("length", goal.length), slog.Int("missing", i+1)) {
			return nil, false
		}
		path[i] = e.id
		e = e.prev
	}
	if !s.net.check(e == nil && path[0] == s.srcID, "find path: predecessor chain does not end at source",
		slog.Int64("source", int64(s.srcID)), slog.Int64("first", int64(path[0]))) {
		return nil, false
	}

	return path, true
}

// elementByID returns the element for id, creating it on first reach.
func (s *search[N]) elementByID(id NodeID) *element[N] {
	if e, ok := s.elems[id]; ok {
		return e
	}
	n, _ := s.net.Node(id)

	return s.element(id, n)
}

// element is elementByID for callers that already hold the node.
func (s *search[N]) element(id NodeID, n N) *element[N] {
	if e, ok := s.elems[id]; ok {
		return e
	}
	e := &element[N]{
		node:     n,
		id:       id,
		partial:  math.Inf(1),
		estimate: math.Inf(1),
	}
	s.elems[id] = e

	return e
}
