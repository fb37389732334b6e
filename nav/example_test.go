// SPDX-License-Identifier: MIT

package nav_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/idledeity/marsminingco-sub000/mesh"
	"github.com/idledeity/marsminingco-sub000/nav"
)

// ExampleNetwork_FindPath routes along a corridor of three waypoints. Links
// take the distance between waypoints as their weight.
func ExampleNetwork_FindPath() {
	net := nav.NewNetwork()
	a, _ := net.AddAt(r3.Vec{X: 0})
	b, _ := net.AddAt(r3.Vec{X: 2})
	c, _ := net.AddAt(r3.Vec{X: 3})

	_ = net.LinkNodes(a, b, mesh.Bidirectional())
	_ = net.LinkNodes(b, c, mesh.Bidirectional())

	path, ok := net.FindPath(a, c)
	cost, _ := net.PathCost(path)
	fmt.Println(ok, path, cost)
	// Output: true [0 1 2] 3
}

// ExampleNetwork_Nearest snaps an arbitrary point to the closest waypoint.
func ExampleNetwork_Nearest() {
	net := nav.NewNetwork()
	_, _ = net.AddAt(r3.Vec{X: 0, Y: 0})
	_, _ = net.AddAt(r3.Vec{X: 10, Y: 0})

	n, _ := net.Nearest(r3.Vec{X: 7, Y: 3})
	fmt.Println(n.ID(), n.Position().X)
	// Output: 1 10
}
