package embedding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensketch/embedding"
	"github.com/katalvlaran/tensketch/tennet"
)

// mixedFixture builds a network whose path exercises all three partition
// classes: a joint entry (both operands pending), a reduce entry (one
// operand with a single pending dimension), and a plain entry.
func mixedFixture(t *testing.T) (x *tennet.Network, path tennet.Path, s0, s1, s2 *tennet.Edge) {
	t.Helper()
	x = tennet.NewNetwork()
	s0 = tennet.NewEdge("s0", 2, tennet.WithSketch())
	s1 = tennet.NewEdge("s1", 2, tennet.WithSketch())
	s2 = tennet.NewEdge("s2", 2, tennet.WithSketch())
	c01 := tennet.NewEdge("c01", 2)
	c23 := tennet.NewEdge("c23", 2)
	c45 := tennet.NewEdge("c45", 2)

	for _, spec := range []struct {
		shape []int
		edges []*tennet.Edge
	}{
		{[]int{2, 2}, []*tennet.Edge{s0, c01}},  // node 0: pending s0
		{[]int{2, 2}, []*tennet.Edge{c01, s1}},  // node 1: pending s1
		{[]int{2, 2}, []*tennet.Edge{c23, s2}},  // node 2: pending s2
		{[]int{2}, []*tennet.Edge{c23}},         // node 3: clean
		{[]int{2}, []*tennet.Edge{c45}},         // node 4: clean
		{[]int{2}, []*tennet.Edge{c45}},         // node 5: clean
	} {
		_, err := x.AddNode(zeros(t, spec.shape...), spec.edges)
		require.NoError(t, err)
	}

	return x, tennet.Path{{0, 1}, {2, 3}, {4, 5}}, s0, s1, s2
}

// TestPartition_Classification verifies the three-way split laws on the
// mixed fixture.
func TestPartition_Classification(t *testing.T) {
	x, path, s0, s1, s2 := mixedFixture(t)

	buckets, joint, rest, err := embedding.PartitionForTest(x, path, x.EdgesToSketch())
	require.NoError(t, err)

	// (0,1): both sides pending ⇒ joint, not in any bucket.
	assert.True(t, joint[tennet.Contraction{0, 1}])
	assert.Empty(t, buckets[s0])
	assert.Empty(t, buckets[s1])

	// (2,3): node 2 carries s2 as its sole pending dimension ⇒ reduce bucket.
	assert.Equal(t, []tennet.Contraction{{2, 3}}, buckets[s2])
	assert.False(t, joint[tennet.Contraction{2, 3}])

	// (4,5): plain; joint ⊆ rest; rest keeps path order.
	assert.Equal(t, []tennet.Contraction{{0, 1}, {4, 5}}, rest)
	for c := range joint {
		assert.Contains(t, rest, c, "every joint entry must also drive the tree pass")
	}

	// Every path entry lands in exactly one of {some bucket, rest}.
	total := len(rest)
	for _, bucket := range buckets {
		total += len(bucket)
	}
	assert.Equal(t, len(path), total)
}

// TestPartition_Idempotence verifies that re-partitioning an unmutated
// network yields identical results: a pure function of its inputs.
func TestPartition_Idempotence(t *testing.T) {
	x, path, _, _, _ := mixedFixture(t)
	edges := x.EdgesToSketch()

	b1, j1, r1, err := embedding.PartitionForTest(x, path, edges)
	require.NoError(t, err)
	b2, j2, r2, err := embedding.PartitionForTest(x, path, edges)
	require.NoError(t, err)

	assert.Equal(t, b1, b2)
	assert.Equal(t, j1, j2)
	assert.Equal(t, r1, r2)
}

// TestPartition_Ambiguous verifies rejection of the classification gap: one
// operand with several pending dimensions against a clean operand.
func TestPartition_Ambiguous(t *testing.T) {
	x := tennet.NewNetwork()
	sa := tennet.NewEdge("sa", 2, tennet.WithSketch())
	sb := tennet.NewEdge("sb", 2, tennet.WithSketch())
	inner := tennet.NewEdge("c", 2)

	a, err := x.AddNode(zeros(t, 2, 2, 2), []*tennet.Edge{sa, sb, inner})
	require.NoError(t, err)
	b, err := x.AddNode(zeros(t, 2), []*tennet.Edge{inner})
	require.NoError(t, err)

	_, _, _, err = embedding.PartitionForTest(x, tennet.Path{{a, b}}, x.EdgesToSketch())
	assert.ErrorIs(t, err, embedding.ErrAmbiguousPartition)
}

// TestPartition_UnknownNode verifies ErrMalformedPath for dangling ids.
func TestPartition_UnknownNode(t *testing.T) {
	x, _, _, _, _ := mixedFixture(t)

	_, _, _, err := embedding.PartitionForTest(x, tennet.Path{{0, 77}}, x.EdgesToSketch())
	assert.ErrorIs(t, err, embedding.ErrMalformedPath)
}
