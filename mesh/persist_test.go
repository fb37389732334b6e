// SPDX-License-Identifier: MIT

package mesh_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idledeity/marsminingco-sub000/mesh"
	"github.com/idledeity/marsminingco-sub000/persist"
)

func newMeshRegistry(t *testing.T) (*persist.Registry, *mesh.IDAllocator) {
	t.Helper()
	reg := persist.NewRegistry()
	ids := mesh.NewIDAllocator()
	require.NoError(t, mesh.Register(reg, ids))

	return reg, ids
}

func TestPersist_RoundTripKeepsShapeAndRoutes(t *testing.T) {
	src := mesh.NewMeshNetwork()
	ids := buildNodes(t, src, 5)
	require.NoError(t, src.LinkNodes(ids[0], ids[1], W2, mesh.Bidirectional()))
	require.NoError(t, src.LinkNodes(ids[1], ids[2], W2, mesh.WithReverseWeight(W5)))
	mustLink(t, src, ids[0], ids[3], W1)
	mustLink(t, src, ids[3], ids[2], W1)
	// ids[4] stays isolated.

	data, err := persist.Marshal(src)
	require.NoError(t, err)

	reg, _ := newMeshRegistry(t)
	dst, err := persist.LoadAs[*mesh.Network[*mesh.Node]](strings.NewReader(string(data)), reg)
	require.NoError(t, err)

	require.Equal(t, src.NodeCount(), dst.NodeCount())
	require.Equal(t, src.LinkCount(), dst.LinkCount())
	require.NotEqual(t, src.ID(), dst.ID())

	for i := 0; i < src.NodeCount(); i++ {
		n, ok := dst.NodeAt(i)
		require.True(t, ok)
		require.Equal(t, dst.ID(), n.Owner())
		want, _ := src.NodeAt(i)
		require.Len(t, dst.Links(n.ID()), len(src.Links(want.ID())))
	}

	for from := 0; from < src.NodeCount(); from++ {
		for to := 0; to < src.NodeCount(); to++ {
			a, _ := src.NodeAt(from)
			b, _ := src.NodeAt(to)
			wantPath, wantOK := src.FindPath(a.ID(), b.ID(), zeroEstimate)

			c, _ := dst.NodeAt(from)
			d, _ := dst.NodeAt(to)
			gotPath, gotOK := dst.FindPath(c.ID(), d.ID(), zeroEstimate)

			require.Equal(t, wantOK, gotOK, "%d→%d", from, to)
			require.Equal(t, indices(t, src, wantPath), indices(t, dst, gotPath), "%d→%d", from, to)
		}
	}
}

func TestPersist_LinksTravelAsIndices(t *testing.T) {
	net := mesh.NewMeshNetwork(mesh.WithAllocator(mesh.NewIDAllocator()))
	// Burn a few IDs so IDs and positions differ.
	for i := 0; i < 10; i++ {
		net.Allocator().Next()
	}
	ids := buildNodes(t, net, 2)
	mustLink(t, net, ids[1], ids[0], W5)

	rec, err := persist.Encode(net)
	require.NoError(t, err)
	require.Equal(t, mesh.TypeMeshNetwork, rec.Type)
	require.Len(t, rec.Children[mesh.GroupNodes], 2)
	links := rec.Children[mesh.GroupLinks]
	require.Len(t, links, 1)
	require.Equal(t, int64(1), links[0].Fields["source"])
	require.Equal(t, int64(0), links[0].Fields["dest"])
	require.Equal(t, W5, links[0].Fields["weight"])
}

func TestPersist_LoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "link index out of range",
			doc: `type: MeshNetwork
children:
  nodes:
    - type: MeshNode
  links:
    - type: Link
      fields: {source: 0, dest: 3, weight: 1}
`,
			want: mesh.ErrIndexOutOfRange,
		},
		{
			name: "link in node group",
			doc: `type: MeshNetwork
children:
  nodes:
    - type: Link
      fields: {source: 0, dest: 0, weight: 1}
`,
			want: mesh.ErrForeignObject,
		},
		{
			name: "link without weight",
			doc: `type: MeshNetwork
children:
  nodes:
    - type: MeshNode
  links:
    - type: Link
      fields: {source: 0, dest: 0}
`,
			want: persist.ErrMissingField,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg, _ := newMeshRegistry(t)
			_, err := persist.Load(strings.NewReader(tc.doc), reg)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPersist_RegisterTwiceFails(t *testing.T) {
	reg, ids := newMeshRegistry(t)
	require.ErrorIs(t, mesh.Register(reg, ids), persist.ErrDuplicateType)
	require.NoError(t, mesh.RegisterLink(reg), "RegisterLink is idempotent")
}

func TestPersist_BlankLinkDefaultsToInvalidEndpoints(t *testing.T) {
	reg, _ := newMeshRegistry(t)
	obj, err := reg.New(mesh.TypeLink)
	require.NoError(t, err)
	l := obj.(*mesh.Link)
	require.Equal(t, mesh.InvalidID, l.Source())
	require.Equal(t, mesh.InvalidID, l.Dest())
}

// Saving only reads the network, so concurrent saves produce identical
// documents and leave nothing behind for the race detector.
func TestPersist_ConcurrentMarshal(t *testing.T) {
	const workers = 8
	net := mesh.NewMeshNetwork()
	ids := buildNodes(t, net, 3)
	require.NoError(t, net.LinkNodes(ids[0], ids[1], W2, mesh.Bidirectional()))
	mustLink(t, net, ids[2], ids[0], W5)

	want, err := persist.Marshal(net)
	require.NoError(t, err)

	out := make([][]byte, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[w], errs[w] = persist.Marshal(net)
		}()
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		require.Equal(t, string(want), string(out[w]))
	}
	require.Equal(t, 3, net.LinkCount())
}

func TestPersist_LinkOnlyInsideNetwork(t *testing.T) {
	reg, _ := newMeshRegistry(t)
	_, err := persist.Load(strings.NewReader("type: Link\nfields: {source: 0, dest: 1, weight: 1}\n"), reg)
	require.ErrorIs(t, err, persist.ErrNeedsParent)

	_, err = persist.Encode(mesh.NewLink(0, 1, W1))
	require.ErrorIs(t, err, persist.ErrNeedsParent)
}
