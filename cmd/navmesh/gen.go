// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/idledeity/marsminingco-sub000/builder"
	"github.com/idledeity/marsminingco-sub000/persist"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		out       string
		spacing   float64
		extent    float64
		seed      int64
		diagonals bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a navigation network document",
	}
	cmd.PersistentFlags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	cmd.PersistentFlags().Float64Var(&spacing, "spacing", builder.DefaultSpacing, "distance between grid or path neighbors")

	// emit builds with ctor and writes the document.
	emit := func(cmd *cobra.Command, ctor builder.Constructor, opts ...builder.Option) error {
		if !(spacing > 0) {
			return fmt.Errorf("navmesh: --spacing must be positive, got %g", spacing)
		}
		opts = append(opts, builder.WithSpacing(spacing), builder.WithNetworkOptions(a.cfg.NetworkOptions(a.logger)...))
		net, err := builder.Build(ctor, opts...)
		if err != nil {
			return err
		}
		var w io.Writer = cmd.OutOrStdout()
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		return persist.Save(w, net)
	}

	grid := &cobra.Command{
		Use:   "grid ROWS COLS",
		Short: "Rectangular lattice",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, cols, err := parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			var opts []builder.Option
			if diagonals {
				opts = append(opts, builder.WithDiagonals())
			}
			return emit(cmd, builder.Grid(rows, cols), opts...)
		},
	}
	grid.Flags().BoolVar(&diagonals, "diagonals", false, "also link diagonal neighbors")

	path := &cobra.Command{
		Use:   "path N",
		Short: "Straight corridor along the x axis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return emit(cmd, builder.Path(n))
		},
	}

	scatter := &cobra.Command{
		Use:   "scatter N K",
		Short: "Random waypoints, each linked to its K nearest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, k, err := parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			if !(extent > 0) {
				return fmt.Errorf("navmesh: --extent must be positive, got %g", extent)
			}
			return emit(cmd, builder.Scatter(n, k), builder.WithSeed(seed), builder.WithExtent(extent))
		},
	}
	scatter.Flags().Int64Var(&seed, "seed", builder.DefaultSeed, "random seed")
	scatter.Flags().Float64Var(&extent, "extent", builder.DefaultExtent, "side of the square waypoints are drawn from")

	cmd.AddCommand(grid, path, scatter)

	return cmd
}
