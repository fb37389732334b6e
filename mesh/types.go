// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID/OwnerID, sentinel errors, Node, Noder and Link.

package mesh

import (
	"errors"

	"github.com/google/uuid"

	"github.com/idledeity/marsminingco-sub000/persist"
)

// NodeID identifies a node. IDs are unique per IDAllocator.
type NodeID int64

// InvalidID is the ID reported for failed insertions and unset link endpoints.
const InvalidID NodeID = -1

// OwnerID identifies a network. The zero value means "no owner".
type OwnerID uuid.UUID

// NoOwner is the OwnerID of unowned nodes and links.
var NoOwner OwnerID

func newOwnerID() OwnerID { return OwnerID(uuid.New()) }

// String returns the canonical UUID text.
func (o OwnerID) String() string { return uuid.UUID(o).String() }

// Sentinel errors for mesh operations.
var (
	ErrNilNode         = errors.New("mesh: node is nil")
	ErrNodeOwned       = errors.New("mesh: node already owned by a network")
	ErrDuplicateNode   = errors.New("mesh: node ID already present")
	ErrNilLink         = errors.New("mesh: link is nil")
	ErrNodeNotFound    = errors.New("mesh: node not found")
	ErrDuplicateLink   = errors.New("mesh: link already present")
	ErrLinkOwned       = errors.New("mesh: link owned by another network")
	ErrParallelLink    = errors.New("mesh: nodes already linked in this direction")
	ErrBrokenPath      = errors.New("mesh: path has a hop without a link")
	ErrForeignObject   = errors.New("mesh: persisted object has unexpected type")
	ErrIndexOutOfRange = errors.New("mesh: node index out of range")
)

// Node is a graph vertex with a fixed ID.
type Node struct {
	id    NodeID
	owner OwnerID
}

// NewNode allocates the next ID from ids and returns an unowned node.
func NewNode(ids *IDAllocator) *Node {
	return &Node{id: ids.Next()}
}

// ID returns the node's identifier.
func (n *Node) ID() NodeID { return n.id }

// Owner returns the network holding the node, or NoOwner.
func (n *Node) Owner() OwnerID { return n.owner }

// Owned reports whether the node belongs to a network.
func (n *Node) Owned() bool { return n.owner != NoOwner }

// MeshNode returns the node itself; embedding types inherit it.
func (n *Node) MeshNode() *Node { return n }

// IsNil reports whether the receiver is a nil pointer, without reflection.
// Types embedding *Node must define their own IsNil.
func (n *Node) IsNil() bool { return n == nil }

// TypeName implements persist.Object.
func (n *Node) TypeName() string { return TypeMeshNode }

// Serialize implements persist.Object. IDs are process-local and not stored.
func (n *Node) Serialize(v persist.Visitor) error { return v.Err() }

// Noder is the constraint on node types a Network can hold.
type Noder interface {
	persist.Object

	// MeshNode returns the embedded base node.
	MeshNode() *Node

	// IsNil reports whether the value is a nil pointer.
	IsNil() bool
}

// Link is a directed, weighted edge between two node IDs.
//
// Weights are in caller units and should be non-negative; this is not
// enforced, but the search assumes it.
type Link struct {
	source NodeID
	dest   NodeID
	weight float64
	owner  OwnerID

	// Positions of the endpoints in the owning network's node collection,
	// filled by Serialize while loading and consumed by Network.PostLoad.
	srcIndex int
	dstIndex int
}

// NewLink returns an unowned link src→dst.
func NewLink(src, dst NodeID, weight float64) *Link {
	return &Link{source: src, dest: dst, weight: weight, srcIndex: -1, dstIndex: -1}
}

func newBlankLink() *Link { return NewLink(InvalidID, InvalidID, 0) }

// Source returns the ID of the node the link leaves.
func (l *Link) Source() NodeID { return l.source }

// Dest returns the ID of the node the link enters.
func (l *Link) Dest() NodeID { return l.dest }

// Weight returns the traversal cost.
func (l *Link) Weight() float64 { return l.weight }

// Owner returns the network holding the link, or NoOwner.
func (l *Link) Owner() OwnerID { return l.owner }

// TypeName implements persist.Object.
func (l *Link) TypeName() string { return TypeLink }

// NeedsParent implements persist.Dependent: endpoint positions only mean
// something inside a network document.
func (l *Link) NeedsParent() bool { return true }

// Serialize implements persist.Object. Endpoints travel as positions in the
// owning network's node collection; the network maps them back to IDs in
// PostLoad. Networks write links through linkRecord, so on the write side
// this only sees a standalone link, which Encode rejects.
func (l *Link) Serialize(v persist.Visitor) error {
	src, dst := int64(l.srcIndex), int64(l.dstIndex)
	v.Int("source", &src)
	v.Int("dest", &dst)
	v.Float("weight", &l.weight)
	if v.Loading() {
		l.srcIndex, l.dstIndex = int(src), int(dst)
	}

	return v.Err()
}
