// SPDX-License-Identifier: MIT

// Package builder generates navigation networks with a known shape: grids,
// straight corridors and scattered waypoint fields. They feed tests, examples
// and the "navmesh gen" command.
//
// Every constructor is deterministic for a fixed seed. Nodes are added in a
// documented order, so node positions (insertion indices) are stable:
//
//	Grid(rows, cols)  index = r*cols + c, position (c*spacing, r*spacing, 0)
//	Path(n)           index = i, position (i*spacing, 0, 0)
//	Scatter(n, k)     index = draw order, uniform in [0, extent)² at z = 0
//
// All links are bidirectional and weigh the distance between their endpoints.
//
// Errors:
//
//	ErrTooFewNodes - a size parameter is below its minimum.
//	ErrBadDegree   - Scatter's k is not in [1, n-1].
package builder
