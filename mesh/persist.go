// SPDX-License-Identifier: MIT
//
// File: persist.go
// Role: persist.Parent/Fixer implementation for Network and type registration.
//
// Links are stored with endpoint positions instead of IDs, because IDs are
// process-local. Saving wraps each link in a linkRecord, so encoding never
// writes to the network. PostLoad re-adds nodes (new IDs) and then maps
// positions back.

package mesh

import (
	"errors"
	"fmt"

	"github.com/idledeity/marsminingco-sub000/persist"
)

// Persisted type tags.
const (
	TypeMeshNode    = "MeshNode"
	TypeLink        = "Link"
	TypeMeshNetwork = "MeshNetwork"
)

// Child group names of a persisted network.
const (
	GroupNodes = "nodes"
	GroupLinks = "links"
)

// TypeName implements persist.Object.
func (net *Network[N]) TypeName() string { return net.typeName }

// Serialize implements persist.Object. A network has no scalar fields of its
// own; everything lives in its children.
func (net *Network[N]) Serialize(v persist.Visitor) error { return v.Err() }

// ChildGroups implements persist.Parent. Nodes load before links.
func (net *Network[N]) ChildGroups() []string { return []string{GroupNodes, GroupLinks} }

// Children implements persist.Parent.
func (net *Network[N]) Children(group string) []persist.Object {
	switch group {
	case GroupNodes:
		out := make([]persist.Object, len(net.nodes))
		for i, n := range net.nodes {
			out[i] = n
		}
		return out
	case GroupLinks:
		out := make([]persist.Object, len(net.links))
		for i, l := range net.links {
			out[i] = linkRecord{
				link: l,
				src:  net.adj[l.source].index,
				dst:  net.adj[l.dest].index,
			}
		}
		return out
	}

	return nil
}

// linkRecord is the write-side view of a link inside its network: the link
// plus the positions of its endpoints. It decodes as a plain *Link.
type linkRecord struct {
	link     *Link
	src, dst int
}

func (r linkRecord) TypeName() string { return TypeLink }

func (r linkRecord) Serialize(v persist.Visitor) error {
	src, dst, weight := int64(r.src), int64(r.dst), r.link.weight
	v.Int("source", &src)
	v.Int("dest", &dst)
	v.Float("weight", &weight)

	return v.Err()
}

// Adopt implements persist.Parent. Children are held until PostLoad.
func (net *Network[N]) Adopt(group string, children []persist.Object) error {
	switch group {
	case GroupNodes:
		for _, ch := range children {
			n, ok := ch.(N)
			if !ok {
				return fmt.Errorf("%w: %s in %s", ErrForeignObject, ch.TypeName(), group)
			}
			net.pendingNodes = append(net.pendingNodes, n)
		}
	case GroupLinks:
		for _, ch := range children {
			l, ok := ch.(*Link)
			if !ok {
				return fmt.Errorf("%w: %s in %s", ErrForeignObject, ch.TypeName(), group)
			}
			net.pendingLinks = append(net.pendingLinks, l)
		}
	default:
		return fmt.Errorf("%w: group %q", persist.ErrNotParent, group)
	}

	return nil
}

// PostLoad implements persist.Fixer: it rebuilds the adjacency index through
// AddNode and AddLink, converting link endpoint positions into live IDs.
func (net *Network[N]) PostLoad() error {
	nodes, links := net.pendingNodes, net.pendingLinks
	net.pendingNodes, net.pendingLinks = nil, nil
	net.Clear()

	for _, n := range nodes {
		if _, err := net.AddNode(n); err != nil {
			return err
		}
	}
	for i, l := range links {
		src, ok := net.NodeAt(l.srcIndex)
		if !ok {
			return fmt.Errorf("%w: link %d source %d", ErrIndexOutOfRange, i, l.srcIndex)
		}
		dst, ok := net.NodeAt(l.dstIndex)
		if !ok {
			return fmt.Errorf("%w: link %d dest %d", ErrIndexOutOfRange, i, l.dstIndex)
		}
		l.source = src.MeshNode().id
		l.dest = dst.MeshNode().id
		if err := net.AddLink(l); err != nil {
			return err
		}
	}

	return nil
}

// RegisterLink installs the Link factory unless it is already present.
func RegisterLink(reg *persist.Registry) error {
	if reg.Has(TypeLink) {
		return nil
	}

	return reg.Register(TypeLink, func() persist.Object { return newBlankLink() })
}

// Register installs factories for MeshNode, Link and MeshNetwork. Loaded
// nodes draw IDs from ids, and loaded networks use ids plus opts.
func Register(reg *persist.Registry, ids *IDAllocator, opts ...Option) error {
	netOpts := append(append([]Option(nil), opts...), WithAllocator(ids))

	return errors.Join(
		reg.Register(TypeMeshNode, func() persist.Object { return NewNode(ids) }),
		RegisterLink(reg),
		reg.Register(TypeMeshNetwork, func() persist.Object { return NewMeshNetwork(netOpts...) }),
	)
}
