// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/idledeity/marsminingco-sub000/mesh"
	"github.com/idledeity/marsminingco-sub000/nav"
	"github.com/idledeity/marsminingco-sub000/navstore"
	"github.com/idledeity/marsminingco-sub000/persist"
)

// fixture writes a config pointing at a fresh store and a nav network file:
//
//	0 ↔ 1 ↔ 2 along the x axis, 3 isolated.
func fixture(t *testing.T) (cfgPath, netPath string) {
	t.Helper()
	dir := t.TempDir()

	net := nav.NewNetwork()
	for _, p := range []r3.Vec{{}, {X: 2}, {X: 3}, {Y: 10}} {
		_, err := net.AddAt(p)
		require.NoError(t, err)
	}
	require.NoError(t, net.LinkNodes(0, 1, mesh.Bidirectional()))
	require.NoError(t, net.LinkNodes(1, 2, mesh.Bidirectional()))

	netPath = filepath.Join(dir, "site.yaml")
	f, err := os.Create(netPath)
	require.NoError(t, err)
	require.NoError(t, persist.Save(f, net))
	require.NoError(t, f.Close())

	cfgPath = filepath.Join(dir, "navmesh.yaml")
	cfg := "store:\n  path: " + filepath.Join(dir, "db") + "\nbatch:\n  workers: 3\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	return cfgPath, netPath
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd, a := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := a.execute(cmd)

	return out.String(), err
}

func TestInfo(t *testing.T) {
	cfg, file := fixture(t)
	out, err := run(t, "", "-c", cfg, "info", "-f", file)
	require.NoError(t, err)
	require.Contains(t, out, "type:     NavigationNetwork")
	require.Contains(t, out, "nodes:    4")
	require.Contains(t, out, "links:    4")
	require.Contains(t, out, "frontier: list")
}

func TestPath(t *testing.T) {
	cfg, file := fixture(t)

	out, err := run(t, "", "-c", cfg, "path", "-f", file, "0", "2")
	require.NoError(t, err)
	require.Equal(t, "0 -> 2: [0 1 2] cost=3\n", out)

	out, err = run(t, "", "-c", cfg, "path", "-f", file, "0", "3")
	require.NoError(t, err)
	require.Equal(t, "0 -> 3: unreachable\n", out)

	_, err = run(t, "", "-c", cfg, "path", "-f", file, "0", "9")
	require.ErrorIs(t, err, mesh.ErrIndexOutOfRange)

	_, err = run(t, "", "-c", cfg, "path", "0", "2")
	require.ErrorIs(t, err, errNoSource)

	_, err = run(t, "", "-c", cfg, "path", "-f", file, "zero", "2")
	require.ErrorContains(t, err, "bad node position")
}

func TestBatch_KeepsInputOrder(t *testing.T) {
	cfg, file := fixture(t)
	queries := "# from to\n0 2\n\n2 0\n1 3\n0 0\n"

	out, err := run(t, queries, "-c", cfg, "batch", "-f", file)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"0 -> 2: [0 1 2] cost=3",
		"2 -> 0: [2 1 0] cost=3",
		"1 -> 3: unreachable",
		"0 -> 0: [0] cost=0",
	}, "\n")+"\n", out)

	_, err = run(t, "0 1 2\n", "-c", cfg, "batch", "-f", file)
	require.ErrorContains(t, err, "line 1")

	_, err = run(t, "0 1\n7 0\n", "-c", cfg, "batch", "-f", file)
	require.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
}

func TestStoreLifecycle(t *testing.T) {
	cfg, file := fixture(t)

	_, err := run(t, "", "-c", cfg, "store", "put", "quarry", file)
	require.NoError(t, err)

	out, err := run(t, "", "-c", cfg, "store", "ls")
	require.NoError(t, err)
	require.Equal(t, "quarry\n", out)

	out, err = run(t, "", "-c", cfg, "store", "get", "quarry")
	require.NoError(t, err)
	require.Contains(t, out, "type: NavigationNetwork")

	out, err = run(t, "", "-c", cfg, "path", "-n", "quarry", "2", "0")
	require.NoError(t, err)
	require.Equal(t, "2 -> 0: [2 1 0] cost=3\n", out)

	_, err = run(t, "", "-c", cfg, "store", "rm", "quarry")
	require.NoError(t, err)
	_, err = run(t, "", "-c", cfg, "store", "rm", "quarry")
	require.ErrorIs(t, err, navstore.ErrNotFound)
	_, err = run(t, "", "-c", cfg, "info", "-n", "quarry")
	require.ErrorIs(t, err, navstore.ErrNotFound)
}

func TestMeshNetworkUsesUniformCost(t *testing.T) {
	cfg, _ := fixture(t)
	net := mesh.NewMeshNetwork()
	for i := 0; i < 3; i++ {
		_, err := net.AddNode(mesh.NewNode(net.Allocator()))
		require.NoError(t, err)
	}
	require.NoError(t, net.LinkNode(0, 2, 9))
	require.NoError(t, net.LinkNode(0, 1, 1))
	require.NoError(t, net.LinkNode(1, 2, 1))

	data, err := persist.Marshal(net)
	require.NoError(t, err)
	file := filepath.Join(t.TempDir(), "mesh.yaml")
	require.NoError(t, os.WriteFile(file, data, 0o600))

	out, err := run(t, "", "-c", cfg, "--file", file, "path", "0", "2")
	require.NoError(t, err)
	require.Equal(t, "0 -> 2: [0 1 2] cost=2\n", out)
}

func TestGenThenQuery(t *testing.T) {
	cfg, _ := fixture(t)
	file := filepath.Join(t.TempDir(), "grid.yaml")

	_, err := run(t, "", "-c", cfg, "gen", "grid", "2", "3", "--spacing", "2", "-o", file)
	require.NoError(t, err)

	out, err := run(t, "", "-c", cfg, "info", "-f", file)
	require.NoError(t, err)
	require.Contains(t, out, "nodes:    6")
	require.Contains(t, out, "links:    14")

	out, err = run(t, "", "-c", cfg, "path", "-f", file, "0", "5")
	require.NoError(t, err)
	require.Contains(t, out, "cost=6")

	out, err = run(t, "", "-c", cfg, "gen", "scatter", "10", "2", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "type: NavigationNetwork")

	_, err = run(t, "", "-c", cfg, "gen", "path", "3", "--spacing", "0")
	require.ErrorContains(t, err, "--spacing must be positive")
}

// The exporter is flushed even when the command fails: the first query runs a
// search, the second names a node that does not exist.
//
// The global MeterProvider delegates to the first provider ever installed, so
// this is the only test in the package that enables an exporter.
func TestStdoutMetricsFlushedWhenCommandFails(t *testing.T) {
	cfg, file := fixture(t)
	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	withMetrics := filepath.Join(t.TempDir(), "metrics.yaml")
	doc := strings.Replace(string(data), "workers: 3", "workers: 1", 1) + "metrics:\n  exporter: stdout\n"
	require.NoError(t, os.WriteFile(withMetrics, []byte(doc), 0o600))

	cmd, a := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader("0 2\n0 9\n"))
	cmd.SetArgs([]string{"-c", withMetrics, "batch", "-f", file})

	err = a.execute(cmd)
	require.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), "navmesh_search_total")
}
