// SPDX-License-Identifier: MIT

// Package mesh_test provides runnable examples for the mesh container and search.
package mesh_test

import (
	"fmt"

	"github.com/idledeity/marsminingco-sub000/mesh"
)

// ExampleNetwork_FindPath builds a small directed network and searches it with
// a zero estimate, which turns the search into a uniform-cost search.
func ExampleNetwork_FindPath() {
	// 1) Create a network; it owns its own ID allocator, starting at 0.
	net := mesh.NewMeshNetwork()

	// 2) Add four nodes: IDs 0..3.
	for i := 0; i < 4; i++ {
		if _, err := net.AddNode(mesh.NewNode(net.Allocator())); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	// 3) A direct but expensive link 0→3, and a cheap detour 0→1→2→3.
	_ = net.LinkNode(0, 3, 10)
	_ = net.LinkNode(0, 1, 1)
	_ = net.LinkNode(1, 2, 1)
	_ = net.LinkNode(2, 3, 1)

	// 4) Search and price the route.
	path, ok := net.FindPath(0, 3, func(_, _ *mesh.Node) float64 { return 0 })
	cost, _ := net.PathCost(path)
	fmt.Println(ok, path, cost)
	// Output: true [0 1 2 3] 3
}

// ExampleNetwork_LinkNodes shows bidirectional linking with a distinct reverse weight.
func ExampleNetwork_LinkNodes() {
	net := mesh.NewMeshNetwork(mesh.WithUniqueLinks())
	a, _ := net.AddNode(mesh.NewNode(net.Allocator()))
	b, _ := net.AddNode(mesh.NewNode(net.Allocator()))

	// Uphill costs 4, downhill costs 1.
	if err := net.LinkNodes(a, b, 4, mesh.WithReverseWeight(1)); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, l := range net.AllLinks() {
		fmt.Printf("%d→%d w=%g\n", l.Source(), l.Dest(), l.Weight())
	}

	// A second a→b link is rejected under WithUniqueLinks.
	fmt.Println(net.LinkNode(a, b, 2) != nil)
	// Output:
	// 0→1 w=4
	// 1→0 w=1
	// true
}
