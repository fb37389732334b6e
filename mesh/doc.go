// SPDX-License-Identifier: MIT

// Package mesh provides a directed, weighted graph container (Network) and a
// goal-directed best-first route search over it.
//
// A Network owns its nodes and links and keeps an adjacency index:
//
//	adjacency[nodeID] = { index in the node collection, outgoing links in insertion order }
//
// The container is generic over the node type so that specializations (see
// package nav) get typed accessors back. Any pointer type that embeds *Node
// and implements Noder can be stored.
//
// Identity and ownership:
//
//   - Node IDs come from an explicit IDAllocator (monotonic from 0). A Network
//     owns one unless WithAllocator injects a shared one.
//   - A node or link remembers the OwnerID of the network it was added to. The
//     back-reference is only used to reject double insertion; the Network is
//     the sole owner.
//   - Clear empties the container without detaching anyone.
//
// Search:
//
//	FindPath(src, dst, estimate) ([]NodeID, bool)
//
// Each iteration picks the open element with the lowest estimated total cost
// (partial cost + estimate(node, dst)); among equal costs the most recently
// opened element wins. The selected element is closed and its outgoing links
// relaxed: closed neighbors are skipped, open neighbors are only updated on a
// strictly lower partial cost, unseen neighbors are opened. The result is an
// optimized route; it is the shortest one only when estimate never overstates
// the remaining cost.
//
// The open set is a worklist scanned in full each iteration (FrontierList,
// default) or a B-tree ordered on (estimate, open order) (FrontierOrdered).
// Both pick the same element every iteration and so return the same routes.
//
// Errors:
//
//	ErrNilNode        - nil node passed to AddNode.
//	ErrNodeOwned      - node already belongs to a network.
//	ErrDuplicateNode  - a node with the same ID is already present.
//	ErrNilLink        - nil link passed to AddLink.
//	ErrNodeNotFound   - a link endpoint is not a node of this network.
//	ErrDuplicateLink  - the same link instance is already present.
//	ErrLinkOwned      - link belongs to another network.
//	ErrParallelLink   - (source, dest) already linked under WithUniqueLinks.
//	ErrBrokenPath     - PathCost found a hop with no link.
//	ErrForeignObject  - persisted child of the wrong type.
//	ErrIndexOutOfRange - persisted link endpoint index outside the node collection.
//
// Failed operations log the rejected precondition through the network's
// slog.Logger and, with WithStrictChecks, panic so the failure can be
// inspected where it happened.
//
// Networks are not safe for concurrent mutation. FindPath only reads the
// network, so concurrent searches on a network that is no longer mutated are fine.
package mesh
