package parallel_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/gridmat/parallel"
	"github.com/stretchr/testify/require"
)

// TestRunInvalidRange ensures malformed bounds are rejected before any call.
func TestRunInvalidRange(t *testing.T) {
	called := false
	fn := func(i, j int) { called = true }

	err := parallel.Run(2, 1, 0, 3, fn, parallel.Default()) // fromRow > toRow
	require.ErrorIs(t, err, parallel.ErrInvalidRange)

	err = parallel.Run(0, 2, -1, 3, fn, parallel.Default()) // negative fromCol
	require.ErrorIs(t, err, parallel.ErrInvalidRange)

	require.False(t, called) // callback never invoked on invalid input
}

// TestRunEmptyRegion verifies a zero-extent region is a no-op.
func TestRunEmptyRegion(t *testing.T) {
	calls := 0
	err := parallel.Run(3, 3, 0, 5, func(i, j int) { calls++ }, parallel.Default())

	require.NoError(t, err)
	require.Zero(t, calls)
}

// TestRunSequentialOrder pins the visit order for a wide region: rows is the
// smaller extent, so iteration is row-major.
func TestRunSequentialOrder(t *testing.T) {
	p := parallel.Default().WithMode(parallel.Off)

	var got [][2]int
	err := parallel.Run(0, 2, 0, 3, func(i, j int) {
		got = append(got, [2]int{i, j})
	}, p)

	require.NoError(t, err)
	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	require.Equal(t, want, got)
}

// TestRunSequentialOrderTall pins column-major order for a tall region,
// where cols is the smaller extent.
func TestRunSequentialOrderTall(t *testing.T) {
	p := parallel.Default().WithMode(parallel.Off)

	var got [][2]int
	err := parallel.Run(0, 3, 0, 2, func(i, j int) {
		got = append(got, [2]int{i, j})
	}, p)

	require.NoError(t, err)
	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	require.Equal(t, want, got)
}

// TestRunParallelExactlyOnce checks the exactly-once visitation contract
// under forced parallel execution: no duplicates, no omissions.
func TestRunParallelExactlyOnce(t *testing.T) {
	const rows, cols = 64, 37

	p := parallel.Gather(parallel.WithMode(parallel.On), parallel.WithWorkers(4))

	var mu sync.Mutex
	seen := make(map[[2]int]int)

	err := parallel.Run(0, rows, 0, cols, func(i, j int) {
		mu.Lock()
		seen[[2]int{i, j}]++
		mu.Unlock()
	}, p)
	require.NoError(t, err)

	require.Len(t, seen, rows*cols) // every coordinate visited
	for coord, n := range seen {
		require.Equal(t, 1, n, "coordinate %v visited %d times", coord, n)
	}
}

// TestRunParallelSubRegion verifies offsets are honored when parallel.
func TestRunParallelSubRegion(t *testing.T) {
	p := parallel.Gather(parallel.WithMode(parallel.On), parallel.WithWorkers(3))

	var mu sync.Mutex
	seen := make(map[[2]int]bool)

	err := parallel.Run(2, 5, 1, 4, func(i, j int) {
		mu.Lock()
		seen[[2]int{i, j}] = true
		mu.Unlock()
	}, p)
	require.NoError(t, err)

	require.Len(t, seen, 9)
	for coord := range seen {
		require.GreaterOrEqual(t, coord[0], 2)
		require.Less(t, coord[0], 5)
		require.GreaterOrEqual(t, coord[1], 1)
		require.Less(t, coord[1], 4)
	}
}

// TestRunPropagatesWorkerPanic ensures the first worker panic is re-raised
// on the calling goroutine after the join.
func TestRunPropagatesWorkerPanic(t *testing.T) {
	p := parallel.Gather(parallel.WithMode(parallel.On), parallel.WithWorkers(4))

	require.PanicsWithValue(t, "boom", func() {
		_ = parallel.Run(0, 8, 0, 8, func(i, j int) {
			if i == 3 && j == 3 {
				panic("boom")
			}
		}, p)
	})
}

// TestForRangeSequential pins in-order execution without fan-out.
func TestForRangeSequential(t *testing.T) {
	p := parallel.Default().WithMode(parallel.Off)

	var got []int
	parallel.ForRange(5, func(k int) { got = append(got, k) }, p)

	require.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

// TestForRangeParallelCoverage checks exactly-once coverage with fan-out.
func TestForRangeParallelCoverage(t *testing.T) {
	const n = 1000
	p := parallel.Gather(parallel.WithMode(parallel.On), parallel.WithWorkers(7))

	counts := make([]int, n)
	var mu sync.Mutex
	parallel.ForRange(n, func(k int) {
		mu.Lock()
		counts[k]++
		mu.Unlock()
	}, p)

	for k, c := range counts {
		require.Equal(t, 1, c, "index %d", k)
	}
}

// TestForRangeNonPositive verifies n <= 0 is a no-op.
func TestForRangeNonPositive(t *testing.T) {
	calls := 0
	parallel.ForRange(0, func(int) { calls++ }, parallel.Default())
	parallel.ForRange(-3, func(int) { calls++ }, parallel.Default())
	require.Zero(t, calls)
}
