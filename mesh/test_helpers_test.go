// SPDX-License-Identifier: MIT

package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idledeity/marsminingco-sub000/mesh"
)

// Common weights used across mesh tests.
const (
	W1  = 1.0
	W2  = 2.0
	W5  = 5.0
	W10 = 10.0
)

// zeroEstimate turns the search into a uniform-cost search.
func zeroEstimate(_, _ *mesh.Node) float64 { return 0 }

// buildNodes adds n fresh nodes to net and returns their IDs in order.
func buildNodes(t *testing.T, net *mesh.Network[*mesh.Node], n int) []mesh.NodeID {
	t.Helper()
	ids := make([]mesh.NodeID, n)
	for i := range ids {
		id, err := net.AddNode(mesh.NewNode(net.Allocator()))
		require.NoError(t, err)
		ids[i] = id
	}

	return ids
}

// mustLink adds src→dst with weight w.
func mustLink(t *testing.T, net *mesh.Network[*mesh.Node], src, dst mesh.NodeID, w float64) {
	t.Helper()
	require.NoError(t, net.LinkNode(src, dst, w))
}

// indices maps a route of IDs to node positions, for comparisons across networks.
func indices(t *testing.T, net *mesh.Network[*mesh.Node], path []mesh.NodeID) []int {
	t.Helper()
	out := make([]int, len(path))
	for i, id := range path {
		idx, ok := net.IndexOf(id)
		require.True(t, ok, "route node %d not in network", id)
		out[i] = idx
	}

	return out
}
