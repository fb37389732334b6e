// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: Generic doubly-linked worklist (PushFront/Remove/Each/Contains).

package worklist

// element is one cell of the list.
type element[T comparable] struct {
	value      T
	prev, next *element[T]
}

// List is a doubly-linked sequence of comparable items, newest first.
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	head *element[T] // most recently pushed
	tail *element[T] // oldest
	len  int
}

// New returns an empty List.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// PushFront inserts v at the front of the list. Duplicates are allowed;
// Remove drops the first (most recent) occurrence.
// Complexity: O(1).
func (l *List[T]) PushFront(v T) {
	e := &element[T]{value: v, next: l.head}
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
	l.len++
}

// Remove unlinks the first element equal to v, scanning from the front.
// It reports whether an element was removed.
// Complexity: O(n).
func (l *List[T]) Remove(v T) bool {
	e := l.find(v)
	if e == nil {
		return false
	}
	l.unlink(e)

	return true
}

// Contains reports whether some element equals v.
// Complexity: O(n).
func (l *List[T]) Contains(v T) bool {
	return l.find(v) != nil
}

// Each calls fn for every item from front (newest) to back (oldest) until fn
// returns false. fn must not mutate the list.
func (l *List[T]) Each(fn func(v T) bool) {
	for e := l.head; e != nil; e = e.next {
		if !fn(e.value) {
			return
		}
	}
}

// Front returns the most recently pushed item.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.value, true
}

// Empty reports whether the list holds no items.
func (l *List[T]) Empty() bool { return l.len == 0 }

// Len returns the number of items.
func (l *List[T]) Len() int { return l.len }

// Clear drops every item.
func (l *List[T]) Clear() {
	// Break the links so a retained element cannot pin the rest of the chain.
	for e := l.head; e != nil; {
		next := e.next
		e.prev, e.next = nil, nil
		e = next
	}
	l.head, l.tail, l.len = nil, nil, 0
}

func (l *List[T]) find(v T) *element[T] {
	for e := l.head; e != nil; e = e.next {
		if e.value == v {
			return e
		}
	}

	return nil
}

func (l *List[T]) unlink(e *element[T]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev, e.next = nil, nil
	l.len--
}
