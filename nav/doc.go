// SPDX-License-Identifier: MIT

// Package nav specializes the mesh container for spatial navigation.
//
// A nav Node carries a 3-D position (gonum r3.Vec, stored by value). A nav
// Network links nodes with the straight-line distance between them unless a
// weight is given, and searches with the same distance as its cost estimate:
//
//	net := nav.NewNetwork()
//	a, _ := net.AddAt(r3.Vec{})
//	b, _ := net.AddAt(r3.Vec{X: 2})
//	_ = net.LinkNodes(a, b, mesh.Bidirectional())
//	route, ok := net.FindPath(a, b)
//
// The estimate never overstates the remaining cost as long as every link
// weighs at least the distance between its endpoints. Default weights always
// do; explicit weights below that distance are accepted but logged as a
// warning, since routes through them may no longer be shortest.
//
// Navigation networks persist through package persist like mesh networks do,
// under the tags NavigationNode and NavigationNetwork. Call Register to install
// the factories.
package nav
