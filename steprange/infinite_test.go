package steprange_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrange/steprange"
)

// TestBuildInfinite_Prefix takes prefixes of unbounded walks.
func TestBuildInfinite_Prefix(t *testing.T) {
	inf := intOps().Infinite()

	seq, err := inf(0, 5)
	require.NoError(t, err)
	assert.False(t, seq.Bounded())
	assert.Equal(t, []int{0, 5, 10}, seq.Take(3))
	assert.Equal(t, []int{15, 20}, seq.Take(2), "Take continues where it stopped")

	seq, err = inf(0, -3)
	require.NoError(t, err)
	assert.Equal(t, steprange.Backward, seq.Direction())
	assert.Equal(t, []int{0, -3, -6, -9}, seq.Take(4))
}

// TestBuildInfinite_ZeroStep collapses a non-progressing walk to [start].
func TestBuildInfinite_ZeroStep(t *testing.T) {
	seq, err := intOps().Infinite()(4, 0)
	require.NoError(t, err)
	assert.True(t, seq.Bounded())
	assert.Equal(t, []int{4}, seq.Take(1_000))

	v, ok := seq.Next()
	assert.False(t, ok)
	assert.Zero(t, v)
}

// TestBuildInfinite_Validation rejects an invalid start.
func TestBuildInfinite_Validation(t *testing.T) {
	ops := intOps()
	ops.Validate = func(v int) bool { return v >= 0 }

	seq, err := ops.Infinite()(-1, 1)
	assert.ErrorIs(t, err, steprange.ErrInvalidEndpoint)
	assert.Nil(t, seq)
	assert.Contains(t, err.Error(), "BuildInfinite: start -1")

	// Values produced later are not validated.
	seq, err = ops.Infinite()(1, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, -1}, seq.Take(3))
}

// TestBuildInfinite_NilNegateAllowed shows Ops.Infinite ignores Negate.
func TestBuildInfinite_NilNegateAllowed(t *testing.T) {
	ops := intOps()
	ops.Negate = nil
	seq, err := ops.Infinite()(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seq.Take(2))
	assert.Panics(t, func() { ops.Range() })
}

// TestBuildInfinite_WrappingAddKeepsGoing walks a 24-hour clock: the walk
// has no stop rule, so it wraps past midnight.
func TestBuildInfinite_WrappingAddKeepsGoing(t *testing.T) {
	inf := steprange.BuildInfinite(
		func(h int) bool { return h >= 0 && h < 24 },
		func(h, s int) int { return (h + s) % 24 },
		steprange.FromCmp(cmp.Compare[int]),
	)
	seq, err := inf(22, 1)
	require.NoError(t, err)
	assert.False(t, seq.Bounded())
	assert.Equal(t, []int{22, 23, 0, 1, 2}, seq.Take(5))

	// int8 overflow wraps the same way.
	wrap := steprange.BuildInfinite(
		func(int8) bool { return true },
		func(a, s int8) int8 { return a + s },
		steprange.FromCmp(cmp.Compare[int8]),
	)
	wseq, err := wrap(110, 10)
	require.NoError(t, err)
	assert.Equal(t, []int8{110, 120, -126, -116}, wseq.Take(4))
}

// TestBuildInfinite_NilOpsPanic checks fail-fast on nil operations.
func TestBuildInfinite_NilOpsPanic(t *testing.T) {
	ops := intOps()
	assert.Panics(t, func() { steprange.BuildInfinite(nil, ops.Add, ops.Compare) })
	assert.Panics(t, func() { steprange.BuildInfinite[int, int](ops.Validate, nil, ops.Compare) })
	assert.Panics(t, func() { steprange.BuildInfinite[int, int](ops.Validate, ops.Add, nil) })
}
