package matrixes_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/katalvlaran/gridmat/matrixes"
	"github.com/katalvlaran/gridmat/parallel"
	"github.com/stretchr/testify/require"
)

// product runs the driver with the canonical accumulation body and returns c.
func product(t *testing.T, a, b *matrix.Matrix[int], opts ...matrixes.Option) *matrix.Matrix[int] {
	t.Helper()
	c, err := matrix.Repeat(0, a.Rows(), b.Cols())
	require.NoError(t, err)
	ra, rb, rc := a.Raw(), b.Raw(), c.Raw()
	err = matrixes.Multiply(a, b, func(i, j, k int) {
		rc[i][j] += ra[i][k] * rb[k][j]
	}, opts...)
	require.NoError(t, err)
	return c
}

func TestMultiply_SquareProduct(t *testing.T) {
	a := mustOf(t, []int{1, 2}, []int{3, 4})
	b := mustOf(t, []int{5, 6}, []int{7, 8})

	c := product(t, a, b)
	require.Equal(t, [][]int{{19, 22}, {43, 50}}, c.Raw())
}

func TestMultiply_Identity(t *testing.T) {
	a := mustOf(t, []int{1, 2}, []int{3, 4})
	id, err := matrix.DiagonalLU2RD([]int{1, 1})
	require.NoError(t, err)

	require.True(t, matrix.Equal(a, product(t, a, id)))
	require.True(t, matrix.Equal(a, product(t, id, a)))
}

func TestMultiply_RectangularShapes(t *testing.T) {
	// Each case makes a different dimension the smallest, covering the
	// distinct loop nestings.
	cases := []struct {
		name string
		a, b [][]int
		want [][]int
	}{
		{
			name: "rowsA smallest",
			a:    [][]int{{1, 2, 3}},       // 1x3
			b:    [][]int{{1, 0}, {0, 1}, {1, 1}}, // 3x2
			want: [][]int{{4, 5}},
		},
		{
			name: "colsA smallest",
			a:    [][]int{{1}, {2}, {3}}, // 3x1
			b:    [][]int{{4, 5, 6}},     // 1x3
			want: [][]int{{4, 5, 6}, {8, 10, 12}, {12, 15, 18}},
		},
		{
			name: "colsB smallest",
			a:    [][]int{{1, 2, 3}, {4, 5, 6}}, // 2x3
			b:    [][]int{{1}, {1}, {1}},        // 3x1
			want: [][]int{{6}, {15}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := matrix.New(tc.a)
			require.NoError(t, err)
			b, err := matrix.New(tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.want, product(t, a, b).Raw())
		})
	}
}

func TestMultiply_InnerDimensionMismatch(t *testing.T) {
	a := mustOf(t, []int{1, 2}, []int{3, 4}) // 2x2
	b := mustOf(t, []int{1, 2})              // 1x2

	err := matrixes.Multiply(a, b, func(i, j, k int) {})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	err = matrixes.Multiply(nil, b, func(i, j, k int) {})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

func TestMultiply_EmptyOperandIsNoop(t *testing.T) {
	a := mustOf(t, []int{1, 2}) // 1x2
	empty, err := matrix.Repeat(0, 2, 0)
	require.NoError(t, err)

	calls := 0
	require.NoError(t, matrixes.Multiply(a, empty, func(i, j, k int) { calls++ }))
	require.Equal(t, 0, calls)
}

func TestMultiply_VisitsEveryTripleOnce(t *testing.T) {
	a := mustOf(t, []int{1, 2, 3}, []int{4, 5, 6})            // 2x3
	b := mustOf(t, []int{1, 2}, []int{3, 4}, []int{5, 6})     // 3x2

	seen := make(map[[3]int]int)
	require.NoError(t, matrixes.Multiply(a, b, func(i, j, k int) {
		seen[[3]int{i, j, k}]++
	}, matrixes.WithParallel(parallel.WithMode(parallel.Off))))

	require.Len(t, seen, 2*2*3)
	for triple, n := range seen {
		require.Equal(t, 1, n, "triple %v visited %d times", triple, n)
	}
}

func TestMultiply_ParallelMatchesSequential(t *testing.T) {
	a := mustOf(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})
	b := mustOf(t, []int{9, 8, 7}, []int{6, 5, 4}, []int{3, 2, 1})

	seq := product(t, a, b, matrixes.WithParallel(parallel.WithMode(parallel.Off)))

	// Forced parallel run: 3x3 squares keep rowsA outermost, so each worker
	// owns whole output rows and the += body needs no extra locking here;
	// the mutex below guards the general contract anyway.
	c, err := matrix.Repeat(0, 3, 3)
	require.NoError(t, err)
	ra, rb, rc := a.Raw(), b.Raw(), c.Raw()
	var mu sync.Mutex
	err = matrixes.Multiply(a, b, func(i, j, k int) {
		mu.Lock()
		rc[i][j] += ra[i][k] * rb[k][j]
		mu.Unlock()
	}, matrixes.WithParallel(parallel.WithMode(parallel.On), parallel.WithWorkers(3)))
	require.NoError(t, err)
	require.True(t, matrix.Equal(seq, c))
}
