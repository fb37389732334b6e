// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: Open-set structures used by FindPath: linear-scan worklist and ordered B-tree.
//
// Both implementations select the element with the lowest estimate and, among
// equal estimates, the one opened most recently. The worklist gets that order
// from PushFront plus a front-to-back scan that only replaces the current best
// on a strictly lower estimate; the B-tree gets it from its key
// (estimate asc, seq desc).

package mesh

import (
	"github.com/tidwall/btree"

	"github.com/idledeity/marsminingco-sub000/worklist"
)

// frontier is the open set of one search.
type frontier[N Noder] interface {
	// push adds e, whose estimate and seq are already set.
	push(e *element[N])
	// update changes the estimate of an element that is already open.
	update(e *element[N], estimate float64)
	remove(e *element[N])
	// best returns the element to expand next without removing it.
	best() *element[N]
	empty() bool
}

func newFrontier[N Noder](kind FrontierKind) frontier[N] {
	if kind == FrontierOrdered {
		return newOrderedFrontier[N]()
	}

	return &listFrontier[N]{open: worklist.New[*element[N]]()}
}

// listFrontier scans the whole worklist on every best() call: O(n).
type listFrontier[N Noder] struct {
	open *worklist.List[*element[N]]
}

func (f *listFrontier[N]) push(e *element[N]) { f.open.PushFront(e) }

func (f *listFrontier[N]) update(e *element[N], estimate float64) { e.estimate = estimate }

func (f *listFrontier[N]) remove(e *element[N]) { f.open.Remove(e) }

func (f *listFrontier[N]) empty() bool { return f.open.Empty() }

// best keeps the first of equal estimates; PushFront puts the newest first.
func (f *listFrontier[N]) best() *element[N] {
	var best *element[N]
	f.open.Each(func(e *element[N]) bool {
		if best == nil || e.estimate < best.estimate {
			best = e
		}
		return true
	})

	return best
}

// orderedFrontier keeps open elements sorted: O(log n) per operation.
type orderedFrontier[N Noder] struct {
	tree *btree.BTreeG[*element[N]]
}

func newOrderedFrontier[N Noder]() *orderedFrontier[N] {
	less := func(a, b *element[N]) bool {
		if a.estimate != b.estimate {
			return a.estimate < b.estimate
		}
		return a.seq > b.seq
	}

	return &orderedFrontier[N]{
		tree: btree.NewBTreeGOptions(less, btree.Options{NoLocks: true}),
	}
}

func (f *orderedFrontier[N]) push(e *element[N]) { f.tree.Set(e) }

// update re-keys e; it must be removed under its old estimate first.
func (f *orderedFrontier[N]) update(e *element[N], estimate float64) {
	f.tree.Delete(e)
	e.estimate = estimate
	f.tree.Set(e)
}

func (f *orderedFrontier[N]) remove(e *element[N]) { f.tree.Delete(e) }

func (f *orderedFrontier[N]) empty() bool { return f.tree.Len() == 0 }

func (f *orderedFrontier[N]) best() *element[N] {
	e, ok := f.tree.Min()
	if !ok {
		return nil
	}

	return e
}
