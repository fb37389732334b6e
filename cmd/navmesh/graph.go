// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/idledeity/marsminingco-sub000/mesh"
	"github.com/idledeity/marsminingco-sub000/nav"
	"github.com/idledeity/marsminingco-sub000/persist"
)

// graph is a loaded network seen through node positions (insertion order)
// rather than process-local IDs, so CLI arguments stay stable across loads.
type graph struct {
	kind  string
	stats mesh.Stats
	find  func(from, to int) ([]int, float64, bool, error)
}

// route is the answer to one query, in node positions.
type route struct {
	From, To int
	Found    bool
	Path     []int
	Cost     float64
}

func newGraph(obj persist.Object) (*graph, error) {
	switch net := obj.(type) {
	case *nav.Network:
		return adapt(obj.TypeName(), net.Network, nav.Euclidean), nil
	case *mesh.Network[*mesh.Node]:
		// Plain nodes have no geometry: search uniform-cost.
		return adapt(obj.TypeName(), net, func(_, _ *mesh.Node) float64 { return 0 }), nil
	}

	return nil, fmt.Errorf("navmesh: %s is not a network", obj.TypeName())
}

func adapt[N mesh.Noder](kind string, net *mesh.Network[N], est mesh.CostEstimate[N]) *graph {
	g := &graph{kind: kind, stats: net.Stats()}
	g.find = func(from, to int) ([]int, float64, bool, error) {
		src, ok := net.NodeAt(from)
		if !ok {
			return nil, 0, false, fmt.Errorf("%w: %d of %d", mesh.ErrIndexOutOfRange, from, net.NodeCount())
		}
		dst, ok := net.NodeAt(to)
		if !ok {
			return nil, 0, false, fmt.Errorf("%w: %d of %d", mesh.ErrIndexOutOfRange, to, net.NodeCount())
		}
		ids, found := net.FindPath(src.MeshNode().ID(), dst.MeshNode().ID(), est)
		if !found {
			return nil, 0, false, nil
		}
		cost, err := net.PathCost(ids)
		if err != nil {
			return nil, 0, false, err
		}
		path := make([]int, len(ids))
		for i, id := range ids {
			path[i], _ = net.IndexOf(id)
		}

		return path, cost, true, nil
	}

	return g
}

// query runs one route query.
func (g *graph) query(from, to int) (route, error) {
	path, cost, found, err := g.find(from, to)
	if err != nil {
		return route{}, err
	}

	return route{From: from, To: to, Found: found, Path: path, Cost: cost}, nil
}

func (r route) String() string {
	if !r.Found {
		return fmt.Sprintf("%d -> %d: unreachable", r.From, r.To)
	}

	return fmt.Sprintf("%d -> %d: %v cost=%g", r.From, r.To, r.Path, r.Cost)
}
