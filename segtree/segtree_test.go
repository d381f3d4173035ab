package segtree_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalgo/segtree"
)

// sample is the reference array used by the sum tests.
var sample = []int{10, 2, 14, 5, 5, 19}

// concat is associative but not commutative.
func concat(a, b string) string { return a + b }

// naiveFold folds values[l..r] left to right.
func naiveFold[T any](values []T, l, r int, op segtree.Operation[T]) T {
	acc := values[l]
	for i := l + 1; i <= r; i++ {
		acc = op(acc, values[i])
	}

	return acc
}

func TestNew_Validation(t *testing.T) {
	_, err := segtree.New(0, []int{}, 0, segtree.Sum[int])
	assert.ErrorIs(t, err, segtree.ErrEmpty)

	_, err = segtree.New(3, []int{1, 2}, 0, segtree.Sum[int])
	assert.ErrorIs(t, err, segtree.ErrSizeMismatch)

	_, err = segtree.New[int](2, []int{1, 2}, 0, nil)
	assert.ErrorIs(t, err, segtree.ErrNilOperation)

	_, err = segtree.FromSlice([]int{}, 0, segtree.Sum[int])
	assert.ErrorIs(t, err, segtree.ErrEmpty)

	assert.Panics(t, func() { segtree.MustNew(1, []int{}, 0, segtree.Sum[int]) })
}

func TestQuery_SumExample(t *testing.T) {
	st := segtree.MustNew(len(sample), sample, 0, segtree.Sum[int])

	got, err := st.Query(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 55, got)

	got, err = st.Query(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 31, got)

	require.NoError(t, st.Update(4, 0))
	got, err = st.Query(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 24, got)
}

func TestNew_CopiesInput(t *testing.T) {
	values := []int{1, 2, 3}
	st := segtree.MustNew(3, values, 0, segtree.Sum[int])
	values[0] = 100

	got, err := st.Query(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
	assert.Equal(t, []int{1, 2, 3}, st.Values())
}

func TestQuery_EmptyRangeReturnsZeroWithoutCallingOperation(t *testing.T) {
	calls := 0
	op := func(a, b int) int {
		calls++
		return a + b
	}
	st := segtree.MustNew(len(sample), sample, -7, op)
	calls = 0

	for _, tc := range []struct{ l, r int }{{3, 2}, {5, 0}, {1, -1}, {10, 3}} {
		got, err := st.Query(tc.l, tc.r)
		require.NoError(t, err)
		assert.Equal(t, -7, got, "Query(%d,%d)", tc.l, tc.r)
	}
	assert.Zero(t, calls, "operation must not run for empty ranges")
}

func TestQuery_SingleElementDoesNotCombine(t *testing.T) {
	calls := 0
	op := func(a, b int) int {
		calls++
		return a + b
	}
	st := segtree.MustNew(len(sample), sample, 0, op)
	calls = 0

	for i, want := range sample {
		got, err := st.Query(i, i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Zero(t, calls)
}

func TestQuery_OutOfRange(t *testing.T) {
	st := segtree.MustNew(len(sample), sample, 0, segtree.Sum[int])

	for _, tc := range []struct{ l, r int }{{-1, 2}, {0, 6}, {-3, 10}, {6, 6}} {
		_, err := st.Query(tc.l, tc.r)
		assert.ErrorIs(t, err, segtree.ErrIndexOutOfRange, "Query(%d,%d)", tc.l, tc.r)
	}
}

func TestUpdate_OutOfRangeLeavesTreeIntact(t *testing.T) {
	st := segtree.MustNew(len(sample), sample, 0, segtree.Sum[int])

	assert.ErrorIs(t, st.Update(-1, 9), segtree.ErrIndexOutOfRange)
	assert.ErrorIs(t, st.Update(6, 9), segtree.ErrIndexOutOfRange)

	got, err := st.Query(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 55, got)
	assert.Equal(t, sample, st.Values())
}

func TestAt(t *testing.T) {
	st := segtree.MustNew(len(sample), sample, 0, segtree.Sum[int])
	require.NoError(t, st.Update(2, 1))

	v, err := st.At(2)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = st.At(len(sample))
	assert.ErrorIs(t, err, segtree.ErrIndexOutOfRange)
	assert.Equal(t, len(sample), st.Len())
	assert.Equal(t, 0, st.Zero())
}

func TestQuery_NonCommutativeFoldOrder(t *testing.T) {
	letters := strings.Split("abcdefghijk", "")
	st := segtree.MustNew(len(letters), letters, "", concat)

	for l := 0; l < len(letters); l++ {
		for r := l; r < len(letters); r++ {
			got, err := st.Query(l, r)
			require.NoError(t, err)
			require.Equal(t, strings.Join(letters[l:r+1], ""), got, "Query(%d,%d)", l, r)
		}
	}
}

func TestMinMax_ZeroIsNotAnIdentity(t *testing.T) {
	values := []int{-5, -3, -9, -1}
	// 0 would win every max fold if it were ever combined.
	st := segtree.MustNew(len(values), values, 0, segtree.Max[int])

	got, err := st.Query(0, 2)
	require.NoError(t, err)
	assert.Equal(t, -3, got)

	mn := segtree.MustNew(len(values), values, 0, segtree.Min[int])
	got, err = mn.Query(1, 3)
	require.NoError(t, err)
	assert.Equal(t, -9, got)
}

// TestRandomized_FoldAndUpdate checks the fold invariant against a naive
// fold after every random update, and that ranges not covering the updated
// position keep their value.
func TestRandomized_FoldAndUpdate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 2, 3, 7, 16, 33} {
		values := make([]string, n)
		for i := range values {
			values[i] = strconv.Itoa(rng.Intn(10))
		}
		st := segtree.MustNew(n, values, "", concat)

		for step := 0; step < 50; step++ {
			pos := rng.Intn(n)
			val := strconv.Itoa(rng.Intn(100))

			l, r := rng.Intn(n), rng.Intn(n)
			if l > r {
				l, r = r, l
			}
			before, err := st.Query(l, r)
			require.NoError(t, err)

			require.NoError(t, st.Update(pos, val))
			values[pos] = val

			one, err := st.Query(pos, pos)
			require.NoError(t, err)
			require.Equal(t, val, one)

			after, err := st.Query(l, r)
			require.NoError(t, err)
			require.Equal(t, naiveFold(values, l, r, concat), after)
			if pos < l || pos > r {
				require.Equal(t, before, after, "range [%d,%d] does not contain %d", l, r, pos)
			}
		}
	}
}

func TestSum_Floats(t *testing.T) {
	st, err := segtree.FromSlice([]float64{0.5, 1.25, 2}, 0, segtree.Sum[float64])
	require.NoError(t, err)

	got, err := st.Query(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.75, got, 1e-12)
}
