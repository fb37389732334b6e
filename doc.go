// Package navmesh is a weighted mesh graph with a goal-directed route search
// and a spatial specialization for waypoint navigation.
//
// Packages:
//
//	worklist/  generic doubly-linked worklist used as the search's open set
//	mesh/      Node, Link, Network container, FindPath, frontiers, search metrics
//	nav/       positioned nodes, distance-weighted links, Euclidean FindPath
//	persist/   Object/Parent/Fixer contract, type registry, YAML record codec
//	navstore/  named networks in an embedded BadgerDB
//	builder/   grid, corridor and scattered-waypoint generators
//	config/    YAML configuration with validation
//	cmd/navmesh  CLI: info, path, batch, gen, store
//
// Quick example, a corridor of three waypoints:
//
//	(0,0,0) ── (2,0,0) ── (3,0,0)
//
//	net := nav.NewNetwork()
//	a, _ := net.AddAt(r3.Vec{})
//	b, _ := net.AddAt(r3.Vec{X: 2})
//	c, _ := net.AddAt(r3.Vec{X: 3})
//	_ = net.LinkNodes(a, b, mesh.Bidirectional())
//	_ = net.LinkNodes(b, c, mesh.Bidirectional())
//	route, ok := net.FindPath(a, c) // [0 1 2], true; cost 3
//
//	go install github.com/idledeity/marsminingco-sub000/cmd/navmesh@latest
package navmesh
