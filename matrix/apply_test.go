package matrix_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/katalvlaran/gridmat/parallel"
	"github.com/stretchr/testify/require"
)

func TestMap_SameType(t *testing.T) {
	m := mustOf(t, []int{1, 2}, []int{3, 4})
	doubled := m.Map(func(v int) int { return v * 2 })
	require.Equal(t, [][]int{{2, 4}, {6, 8}}, doubled.Raw())
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Raw()) // source untouched
}

func TestMapTo_ChangesElementType(t *testing.T) {
	m := mustOf(t, []int{1, 2}, []int{3, 4})
	halves := matrix.MapTo(m, func(v int) float64 { return float64(v) / 2 })
	require.Equal(t, [][]float64{{0.5, 1}, {1.5, 2}}, halves.Raw())
}

func TestMapTo_ForcedParallel_MatchesSequential(t *testing.T) {
	m := mustOf(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})
	seq := matrix.MapTo(m, func(v int) int { return v * v }, parallel.WithMode(parallel.Off))
	par := matrix.MapTo(m, func(v int) int { return v * v }, parallel.WithMode(parallel.On), parallel.WithWorkers(3))
	require.True(t, matrix.Equal(seq, par)) // mode changes scheduling, never the result
}

func TestUpdateAll(t *testing.T) {
	m := mustOf(t, []int{1, 2}, []int{3, 4})
	m.UpdateAll(func(v int) int { return v + 10 })
	require.Equal(t, [][]int{{11, 12}, {13, 14}}, m.Raw())
}

func TestUpdateAllAt_CoordinateFill(t *testing.T) {
	m, err := matrix.Repeat(0, 3, 3)
	require.NoError(t, err)
	m.UpdateAllAt(func(i, j int) int { return i*3 + j })
	require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}, m.Raw())
}

func TestUpdateRow_UpdateColumn(t *testing.T) {
	m := mustOf(t, []int{1, 2}, []int{3, 4})

	require.NoError(t, m.UpdateRow(0, func(v int) int { return -v }))
	require.Equal(t, [][]int{{-1, -2}, {3, 4}}, m.Raw())

	require.NoError(t, m.UpdateColumn(1, func(v int) int { return v * 10 }))
	require.Equal(t, [][]int{{-1, -20}, {3, 40}}, m.Raw())

	require.ErrorIs(t, m.UpdateRow(2, func(v int) int { return v }), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.UpdateColumn(-1, func(v int) int { return v }), matrix.ErrIndexOutOfBounds)
}

func TestReplaceIf(t *testing.T) {
	m := mustOf(t, []int{1, 2}, []int{3, 4})
	m.ReplaceIf(func(v int) bool { return v%2 == 0 }, 0)
	require.Equal(t, [][]int{{1, 0}, {3, 0}}, m.Raw())
}

func TestReplaceIfAt(t *testing.T) {
	m, err := matrix.Repeat(1, 3, 3)
	require.NoError(t, err)
	m.ReplaceIfAt(func(i, j int) bool { return i == j }, 9)
	require.Equal(t, [][]int{{9, 1, 1}, {1, 9, 1}, {1, 1, 9}}, m.Raw())
}

func TestForEach_VisitsEveryCellOnce(t *testing.T) {
	m := mustOf(t, []int{1, 2}, []int{3, 4})

	sum := 0
	m.ForEach(func(v int) { sum += v }, parallel.WithMode(parallel.Off))
	require.Equal(t, 10, sum)

	// Under forced parallel execution the action must be self-synchronized.
	var mu sync.Mutex
	sum = 0
	m.ForEach(func(v int) {
		mu.Lock()
		sum += v
		mu.Unlock()
	}, parallel.WithMode(parallel.On), parallel.WithWorkers(2))
	require.Equal(t, 10, sum)
}

func TestForEachRange(t *testing.T) {
	m := mustOf(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})

	var got []int
	err := m.ForEachRange(0, 2, 1, 3, func(v int) { got = append(got, v) }, parallel.WithMode(parallel.Off))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 5, 6}, got) // outer/inner order, sequential

	err = m.ForEachRange(0, 4, 0, 3, func(int) {})
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = m.ForEachRange(0, 3, 2, 1, func(int) {})
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestMapTo_EmptyMatrix(t *testing.T) {
	m, err := matrix.Repeat(0, 0, 5)
	require.NoError(t, err)
	out := matrix.MapTo(m, func(v int) int { return v })
	require.True(t, out.IsEmpty())
}
