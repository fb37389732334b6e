// SPDX-License-Identifier: MIT

package worklist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idledeity/marsminingco-sub000/worklist"
)

// collect returns the list contents front to back.
func collect[T comparable](l *worklist.List[T]) []T {
	var out []T
	l.Each(func(v T) bool {
		out = append(out, v)
		return true
	})

	return out
}

func TestList_ZeroValueIsEmpty(t *testing.T) {
	var l worklist.List[int]
	require.True(t, l.Empty())
	require.Equal(t, 0, l.Len())
	_, ok := l.Front()
	require.False(t, ok)
	require.False(t, l.Remove(1))
}

func TestList_PushFrontOrdersNewestFirst(t *testing.T) {
	l := worklist.New[string]()
	l.PushFront("a")
	l.PushFront("b")
	l.PushFront("c")

	require.Equal(t, []string{"c", "b", "a"}, collect(l))
	require.Equal(t, 3, l.Len())
	front, ok := l.Front()
	require.True(t, ok)
	require.Equal(t, "c", front)
}

func TestList_RemoveHeadMiddleTail(t *testing.T) {
	l := worklist.New[int]()
	for i := 1; i <= 5; i++ {
		l.PushFront(i)
	}
	// 5 4 3 2 1

	require.True(t, l.Remove(3)) // middle
	require.Equal(t, []int{5, 4, 2, 1}, collect(l))

	require.True(t, l.Remove(5)) // head
	require.Equal(t, []int{4, 2, 1}, collect(l))

	require.True(t, l.Remove(1)) // tail
	require.Equal(t, []int{4, 2}, collect(l))

	require.False(t, l.Remove(42))
	require.Equal(t, 2, l.Len())

	// List stays usable after tail removal.
	l.PushFront(9)
	require.Equal(t, []int{9, 4, 2}, collect(l))
}

func TestList_RemoveDropsMostRecentDuplicate(t *testing.T) {
	type item struct{ n int }
	a, b := &item{1}, &item{2}

	l := worklist.New[*item]()
	l.PushFront(a)
	l.PushFront(b)
	l.PushFront(a)

	require.True(t, l.Remove(a))
	require.Equal(t, []*item{b, a}, collect(l))
	require.True(t, l.Contains(a))
}

func TestList_EachStopsEarly(t *testing.T) {
	l := worklist.New[int]()
	for i := 0; i < 10; i++ {
		l.PushFront(i)
	}

	visited := 0
	l.Each(func(v int) bool {
		visited++
		return v != 7
	})
	require.Equal(t, 3, visited) // 9, 8, 7
}

func TestList_ContainsAndClear(t *testing.T) {
	l := worklist.New[int]()
	l.PushFront(1)
	l.PushFront(2)
	require.True(t, l.Contains(1))
	require.False(t, l.Contains(3))

	l.Clear()
	require.True(t, l.Empty())
	require.False(t, l.Contains(1))
	require.Nil(t, collect(l))
}
