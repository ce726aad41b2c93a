package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clusterfield/cluster"
	"github.com/katalvlaran/clusterfield/gridgraph"
)

// foreignRows holds a region labeled 5 before the run, touching the
// candidates at (0,1).
var foreignRows = [][]int{
	{1, 1, 5},
	{0, 0, 5},
	{0, 0, 0},
}

// TestPolicy_StrictPartition keeps the pre-labeled region out of the cluster.
func TestPolicy_StrictPartition(t *testing.T) {
	g, keeper := indexRows(t, foreignRows, cluster.WithPolicy(cluster.StrictPartition))

	require.Equal(t, 1, keeper.Len())
	assert.Equal(t, []gridgraph.Coordinate{rc(0, 1), rc(0, 0)}, keeper[0].Points())
	assert.Equal(t, [][]int{{2, 2, 5}, {0, 0, 5}, {0, 0, 0}}, g.Rows())
	assert.NoError(t, keeper.Validate(g))
}

// TestPolicy_MergeOnContact absorbs the touching region into the cluster and
// appends its cells in discovery order.
func TestPolicy_MergeOnContact(t *testing.T) {
	g, keeper := indexRows(t, foreignRows, cluster.WithPolicy(cluster.MergeOnContact))

	require.Equal(t, 1, keeper.Len())
	assert.Equal(t, []gridgraph.Coordinate{
		rc(0, 1), rc(0, 2), rc(0, 0), rc(1, 2),
	}, keeper[0].Points())
	assert.Equal(t, [][]int{{2, 2, 2}, {0, 0, 2}, {0, 0, 0}}, g.Rows())
	assert.NoError(t, keeper.Validate(g))
}

// TestPolicy_SameOnFreshGrids: on a 0/1 grid finished clusters are closed
// under adjacency, so both policies agree.
func TestPolicy_SameOnFreshGrids(t *testing.T) {
	rows := [][]int{
		{1, 1, 0, 1},
		{0, 1, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 0, 0},
	}
	g1, k1 := indexRows(t, rows, cluster.WithPolicy(cluster.StrictPartition))
	g2, k2 := indexRows(t, rows, cluster.WithPolicy(cluster.MergeOnContact))

	assert.Equal(t, g1.Rows(), g2.Rows())
	require.Equal(t, k1.Len(), k2.Len())
	for i := range k1 {
		assert.Equal(t, k1[i].Points(), k2[i].Points())
	}
}

// TestValidate_LabelCollision flags a pre-assigned label equal to an id the
// run handed out.
func TestValidate_LabelCollision(t *testing.T) {
	g, keeper := indexRows(t, [][]int{
		{1, 0, 2},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.Equal(t, 1, keeper.Len())
	assert.ErrorIs(t, keeper.Validate(g), cluster.ErrLabelCollision)
}

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		in   string
		want cluster.Policy
		err  error
	}{
		{"strict", cluster.StrictPartition, nil},
		{" MERGE ", cluster.MergeOnContact, nil},
		{"late-merge", cluster.StrictPartition, cluster.ErrUnknownPolicy},
	}
	for _, tc := range cases {
		got, err := cluster.ParsePolicy(tc.in)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, got, mustParse(t, got.String()))
	}
	assert.Equal(t, "Policy(7)", cluster.Policy(7).String())
}

func mustParse(t *testing.T, s string) cluster.Policy {
	t.Helper()
	p, err := cluster.ParsePolicy(s)
	require.NoError(t, err)
	return p
}
