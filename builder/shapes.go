// SPDX-License-Identifier: MIT
//
// File: shapes.go
// Role: Grid, Path and Scatter constructors.
//
// Determinism:
//   - Nodes are added in a fixed order (row-major for Grid, index order otherwise).
//   - Links are emitted in a fixed order per node; Scatter depends only on the seed.
//   - Every link is bidirectional with the distance as weight.

package builder

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/idledeity/marsminingco-sub000/mesh"
	"github.com/idledeity/marsminingco-sub000/nav"
)

const (
	methodGrid    = "Grid"
	methodPath    = "Path"
	methodScatter = "Scatter"
)

// Grid builds a rows×cols lattice in the z=0 plane with 4-neighborhood links
// (8-neighborhood with WithDiagonals). For each cell, links are emitted to the
// right, bottom, then the two bottom diagonals.
//
// Complexity:
//
//   - Time:  O(rows*cols)
//   - Space: O(rows*cols)
func Grid(rows, cols int) Constructor {
	return func(net *nav.Network, cfg builderConfig) error {
		// 1) Validate parameters; no partial work on failure.
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ 1): %w", methodGrid, rows, cols, ErrTooFewNodes)
		}

		// 2) Positions in row-major order; cell (r,c) sits at (c, r) * spacing.
		pts := make([]r3.Vec, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, r3.Vec{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing})
			}
		}
		ids, err := addAll(net, methodGrid, pts)
		if err != nil {
			return err
		}

		// 3) Links: right, bottom, then bottom-right and bottom-left.
		at := func(r, c int) mesh.NodeID { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				var next [][2]int
				if c+1 < cols {
					next = append(next, [2]int{r, c + 1})
				}
				if r+1 < rows {
					next = append(next, [2]int{r + 1, c})
				}
				if cfg.diagonals && r+1 < rows {
					if c+1 < cols {
						next = append(next, [2]int{r + 1, c + 1})
					}
					if c > 0 {
						next = append(next, [2]int{r + 1, c - 1})
					}
				}
				for _, n := range next {
					if err = link(net, methodGrid, at(r, c), at(n[0], n[1])); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Path builds n nodes along the x axis, each linked to the next.
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(net *nav.Network, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d (must be ≥ 1): %w", methodPath, n, ErrTooFewNodes)
		}
		pts := make([]r3.Vec, n)
		for i := range pts {
			pts[i] = r3.Vec{X: float64(i) * cfg.spacing}
		}
		ids, err := addAll(net, methodPath, pts)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(net, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Scatter draws n random positions and links every node to its k nearest
// neighbors. A pair chosen from both sides is linked once. Positions fall in
// [0, extent) on x and y, with z = 0.
//
// Complexity:
//
//   - Time:  O(n² log n)
//   - Space: O(n + n*k)
func Scatter(n, k int) Constructor {
	return func(net *nav.Network, cfg builderConfig) error {
		// 1) Validate parameters.
		if n < 2 {
			return fmt.Errorf("%s: n=%d (must be ≥ 2): %w", methodScatter, n, ErrTooFewNodes)
		}
		if k < 1 || k >= n {
			return fmt.Errorf("%s: k=%d with n=%d: %w", methodScatter, k, n, ErrBadDegree)
		}

		// 2) Draw positions from the seeded source.
		pts := make([]r3.Vec, n)
		for i := range pts {
			pts[i] = r3.Vec{X: cfg.rng.Float64() * cfg.extent, Y: cfg.rng.Float64() * cfg.extent}
		}
		ids, err := addAll(net, methodScatter, pts)
		if err != nil {
			return err
		}

		// 3) For each node, rank all nodes by distance (stable, so ties keep
		//    index order) and link the first k others.
		type pair struct{ a, b int }
		linked := make(map[pair]bool, n*k)
		order := make([]int, n)
		for i := range pts {
			for j := range order {
				order[j] = j
			}
			sort.SliceStable(order, func(x, y int) bool {
				return r3.Norm(r3.Sub(pts[order[x]], pts[i])) < r3.Norm(r3.Sub(pts[order[y]], pts[i]))
			})
			picked := 0
			for _, j := range order {
				if picked == k {
					break
				}
				if j == i {
					continue
				}
				picked++
				p := pair{min(i, j), max(i, j)}
				// Already linked from the other side.
				if linked[p] {
					continue
				}
				linked[p] = true
				if err = link(net, methodScatter, ids[p.a], ids[p.b]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
