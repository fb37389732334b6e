// SPDX-License-Identifier: MIT

// Package worklist provides List, an insertion-ordered, doubly-linked sequence
// used as scratch storage by searches that need cheap insertion at the front and
// are happy to pay a linear scan for removal and lookup.
//
// List has no priority semantics of its own. Callers that need "the best item"
// scan it with Each and pick one themselves; the mesh search does exactly that.
//
// Complexity:
//
//	PushFront   O(1)
//	Remove      O(n)  (identity scan from the front)
//	Contains    O(n)
//	Each        O(n)  (stops early when the callback returns false)
//	Empty, Len  O(1)
//
// List is not safe for concurrent use.
package worklist
