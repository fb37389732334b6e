// SPDX-License-Identifier: MIT

package nav

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/idledeity/marsminingco-sub000/mesh"
	"github.com/idledeity/marsminingco-sub000/persist"
)

// Persisted type tags.
const (
	TypeNavigationNode    = "NavigationNode"
	TypeNavigationNetwork = "NavigationNetwork"
)

// Node is a mesh node with a position.
type Node struct {
	*mesh.Node
	position r3.Vec
}

// NewNode allocates the next ID from ids and returns an unowned node at pos.
func NewNode(ids *mesh.IDAllocator, pos r3.Vec) *Node {
	return &Node{Node: mesh.NewNode(ids), position: pos}
}

// IsNil implements mesh.Noder.
func (n *Node) IsNil() bool { return n == nil || n.Node == nil }

// Position returns a copy of the node's position.
func (n *Node) Position() r3.Vec { return n.position }

// SetPosition stores a copy of pos. Links already attached keep their weights.
func (n *Node) SetPosition(pos r3.Vec) { n.position = pos }

// TypeName implements persist.Object.
func (n *Node) TypeName() string { return TypeNavigationNode }

// Serialize implements persist.Object.
func (n *Node) Serialize(v persist.Visitor) error {
	v.Float("x", &n.position.X)
	v.Float("y", &n.position.Y)
	v.Float("z", &n.position.Z)

	return v.Err()
}

// Euclidean is the straight-line distance between two nodes.
func Euclidean(from, to *Node) float64 {
	return r3.Norm(r3.Sub(from.position, to.position))
}
