// SPDX-License-Identifier: MIT

package mesh

import "sync/atomic"

// IDAllocator hands out monotonically increasing node IDs starting at 0.
// It is safe for concurrent use; share one between networks whose nodes must
// never collide.
type IDAllocator struct {
	next atomic.Int64
}

// NewIDAllocator returns an allocator whose first ID is 0.
func NewIDAllocator() *IDAllocator { return &IDAllocator{} }

// Next returns a fresh ID.
func (a *IDAllocator) Next() NodeID {
	return NodeID(a.next.Add(1) - 1)
}

// Peek returns the ID the next call to Next will return.
func (a *IDAllocator) Peek() NodeID { return NodeID(a.next.Load()) }

// Reset restarts numbering at 0. Only safe when no node from this allocator
// is still in use.
func (a *IDAllocator) Reset() { a.next.Store(0) }
