// SPDX-License-Identifier: MIT

package nav

import (
	"errors"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/idledeity/marsminingco-sub000/mesh"
	"github.com/idledeity/marsminingco-sub000/persist"
)

// shortfall is the relative slack allowed before an explicit weight counts as
// shorter than the straight-line distance.
const shortfall = 1e-9

// Network is a mesh network of positioned nodes.
type Network struct {
	*mesh.Network[*Node]
}

// NewNetwork returns an empty navigation network. opts are the mesh options.
func NewNetwork(opts ...mesh.Option) *Network {
	all := append([]mesh.Option{mesh.WithTypeName(TypeNavigationNetwork)}, opts...)

	return &Network{Network: mesh.NewNetwork[*Node](all...)}
}

// NewNode returns an unowned node at pos, drawing its ID from the network's allocator.
func (net *Network) NewNode(pos r3.Vec) *Node {
	return NewNode(net.Allocator(), pos)
}

// AddAt creates a node at pos and adds it.
func (net *Network) AddAt(pos r3.Vec) (mesh.NodeID, error) {
	return net.AddNode(net.NewNode(pos))
}

// Distance returns the straight-line distance between nodes a and b.
func (net *Network) Distance(a, b mesh.NodeID) (float64, bool) {
	na, ok := net.Node(a)
	if !ok {
		return 0, false
	}
	nb, ok := net.Node(b)
	if !ok {
		return 0, false
	}

	return Euclidean(na, nb), true
}

// LinkNode adds the single link src→dst. Without WithWeight the weight is the
// distance between the two nodes. Direction options are ignored. An explicit
// weight below the distance is accepted but logged at Warn.
//
// Complexity: O(d) where d is the out-degree of src.
func (net *Network) LinkNode(src, dst mesh.NodeID, opts ...mesh.LinkOption) error {
	spec := mesh.ResolveLinkSpec(opts...)
	d, ok := net.Distance(src, dst)
	if !ok {
		// Let the container report which endpoint is missing.
		return net.Network.LinkNode(src, dst, 0)
	}
	weight := d
	if spec.HasWeight {
		weight = spec.Weight
		net.warnShort(src, dst, weight, d)
	}

	return net.Network.LinkNode(src, dst, weight)
}

// LinkNodes is LinkNode with mesh.Bidirectional and mesh.WithReverseWeight
// support. An omitted reverse weight equals the forward weight, default or not.
//
// Complexity: O(d_src + d_dst).
func (net *Network) LinkNodes(src, dst mesh.NodeID, opts ...mesh.LinkOption) error {
	spec := mesh.ResolveLinkSpec(opts...)
	d, ok := net.Distance(src, dst)
	if !ok {
		return net.Network.LinkNodes(src, dst, 0, opts...)
	}
	weight := d
	if spec.HasWeight {
		weight = spec.Weight
		net.warnShort(src, dst, weight, d)
	}
	if spec.HasReverse {
		net.warnShort(dst, src, spec.Reverse, d)
	}

	return net.Network.LinkNodes(src, dst, weight, opts...)
}

// warnShort logs when weight undercuts dist by more than the shortfall slack.
func (net *Network) warnShort(src, dst mesh.NodeID, weight, dist float64) {
	if weight >= dist*(1-shortfall) {
		return
	}
	net.Logger().Warn("link weight below straight-line distance; routes may not be shortest",
		slog.Int64("source", int64(src)),
		slog.Int64("dest", int64(dst)),
		slog.Float64("weight", weight),
		slog.Float64("distance", dist),
	)
}

// FindPath searches src→dst using the straight-line distance as cost estimate.
// The estimate is admissible while no link weight is below the distance it
// spans, which holds for defaulted weights.
//
// Complexity: see mesh.Network.FindPath.
func (net *Network) FindPath(src, dst mesh.NodeID) ([]mesh.NodeID, bool) {
	return net.Network.FindPath(src, dst, Euclidean)
}

// Nearest returns the node closest to p; the earliest added wins ties.
// It returns (nil, false) on an empty network.
//
// Complexity: O(V), a linear scan.
func (net *Network) Nearest(p r3.Vec) (*Node, bool) {
	var (
		best     *Node
		bestDist = math.Inf(1)
	)
	for _, n := range net.Nodes() {
		if d := r3.Norm(r3.Sub(n.position, p)); d < bestDist {
			best, bestDist = n, d
		}
	}

	return best, best != nil
}

// Register installs factories for Link, NavigationNode and NavigationNetwork.
// Loaded nodes draw IDs from ids; loaded networks use ids plus opts.
func Register(reg *persist.Registry, ids *mesh.IDAllocator, opts ...mesh.Option) error {
	netOpts := append(append([]mesh.Option(nil), opts...), mesh.WithAllocator(ids))

	return errors.Join(
		mesh.RegisterLink(reg),
		reg.Register(TypeNavigationNode, func() persist.Object { return NewNode(ids, r3.Vec{}) }),
		reg.Register(TypeNavigationNetwork, func() persist.Object { return NewNetwork(netOpts...) }),
	)
}
