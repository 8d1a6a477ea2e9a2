// SPDX-License-Identifier: MIT

package parallel

import (
	"errors"
	"sync"
)

// ErrInvalidRange indicates a region bound with from > to or from < 0.
var ErrInvalidRange = errors.New("parallel: invalid index range")

// Run invokes fn exactly once per coordinate (i, j) with
// fromRow <= i < toRow and fromCol <= j < toCol.
//
// The smaller of the two extents becomes the outer loop. Sequential execution
// visits coordinates in that outer/inner order; parallel execution partitions
// the outer index range across workers with no ordering guarantee between
// partitions. fn must be safe for concurrent invocation when the policy
// chooses parallel execution — built-in callers satisfy this by writing each
// coordinate to its own output cell.
func Run(fromRow, toRow, fromCol, toCol int, fn func(i, j int), p Policy) error {
	if fromRow < 0 || fromRow > toRow {
		return ErrInvalidRange
	}
	if fromCol < 0 || fromCol > toCol {
		return ErrInvalidRange
	}

	rows := toRow - fromRow
	cols := toCol - fromCol
	if rows == 0 || cols == 0 {
		return nil
	}

	par := p.ShouldParallelize(rows * cols)
	if rows <= cols {
		forOuter(fromRow, toRow, par, p.Workers, func(i int) {
			for j := fromCol; j < toCol; j++ {
				fn(i, j)
			}
		})
	} else {
		forOuter(fromCol, toCol, par, p.Workers, func(j int) {
			for i := fromRow; i < toRow; i++ {
				fn(i, j)
			}
		})
	}

	return nil
}

// ForRange invokes fn once per k in [0, n). The parallel decision is made on
// n itself; callers dispatching a heavier per-index body (e.g. the multiply
// driver) pre-force the mode via Policy.WithMode.
func ForRange(n int, fn func(k int), p Policy) {
	if n <= 0 {
		return
	}
	forOuter(0, n, p.ShouldParallelize(n), p.Workers, fn)
}

// forOuter drives the outer loop, either inline or chunked across workers.
// Worker panics are captured and the first one re-raised after the join, so
// a failing callback propagates to the caller once all partitions stopped.
func forOuter(from, to int, par bool, workers int, fn func(k int)) {
	if !par {
		for k := from; k < to; k++ {
			fn(k)
		}
		return
	}

	n := to - from
	chunk := (n + workers - 1) / workers

	var (
		wg    sync.WaitGroup
		once  sync.Once
		first any
	)
	for lo := from; lo < to; lo += chunk {
		hi := lo + chunk
		if hi > to {
			hi = to
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { first = r })
				}
			}()
			for k := lo; k < hi; k++ {
				fn(k)
			}
		}(lo, hi)
	}
	wg.Wait()

	if first != nil {
		panic(first)
	}
}
