// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the size and search settings of a network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type:     %s\n", g.kind)
			fmt.Fprintf(out, "nodes:    %d\n", g.stats.Nodes)
			fmt.Fprintf(out, "links:    %d\n", g.stats.Links)
			fmt.Fprintf(out, "frontier: %s\n", g.stats.Frontier)
			fmt.Fprintf(out, "unique:   %t\n", g.stats.UniqueLinks)

			return nil
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Find a route between two node positions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			g, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			r, err := g.query(from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)

			return nil
		},
	}
}

func newBatchCmd(a *app) *cobra.Command {
	var queries string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Answer many route queries concurrently",
		Long: `Reads one "FROM TO" pair per line (blank lines and # comments are
skipped) from --queries or stdin, and prints the answers in input order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			if queries != "" && queries != "-" {
				f, err := os.Open(queries)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			pairs, err := readPairs(in)
			if err != nil {
				return err
			}
			g, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			routes, err := runBatch(cmd.Context(), g, pairs, a.cfg.Batch.Workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range routes {
				fmt.Fprintln(out, r)
			}
			a.logger.Debug("batch done", "queries", len(routes), "workers", a.cfg.Batch.Workers)

			return nil
		},
	}
	cmd.Flags().StringVarP(&queries, "queries", "q", "", `query file ("-" or empty for stdin)`)

	return cmd
}

// runBatch answers pairs with at most workers concurrent searches. Searches
// only read the network, which is not mutated while the batch runs.
func runBatch(ctx context.Context, g *graph, pairs [][2]int, workers int) ([]route, error) {
	routes := make([]route, len(pairs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, p := range pairs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := g.query(p[0], p[1])
			if err != nil {
				return fmt.Errorf("query %d (%d %d): %w", i+1, p[0], p[1], err)
			}
			routes[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return routes, nil
}

func parsePair(a, b string) (int, int, error) {
	from, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("navmesh: bad node position %q", a)
	}
	to, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("navmesh: bad node position %q", b)
	}

	return from, to, nil
}

func readPairs(r io.Reader) ([][2]int, error) {
	var pairs [][2]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("navmesh: line %d: want FROM TO, got %q", line, text)
		}
		from, to, err := parsePair(fields[0], fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pairs = append(pairs, [2]int{from, to})
	}

	return pairs, sc.Err()
}
