// SPDX-License-Identifier: MIT

// Package matrixes: generalized multiplication index driver.

package matrixes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/katalvlaran/gridmat/parallel"
)

// Multiply drives a matrix-product traversal over a (rowsA x colsA) and
// b (colsA x colsB) without touching element data: fn receives every index
// triple (i, j, k) with 0 <= i < rowsA, 0 <= j < colsB, 0 <= k < colsA, and
// typically accumulates c[i][j] += a[i][k] * b[k][j] over storage it owns.
//
// The smallest of {rowsA, colsA, colsB} drives the outermost loop and the
// second-smallest the middle one, keeping the hot inner loop on the longest
// extent. Under a parallel policy the outermost loop fans out across
// workers, so fn must be safe for concurrent invocation — note that when
// colsA is smallest the k dimension is the one partitioned, and a plain
// += accumulation then needs caller-side synchronization.
func Multiply(a, b Shaped, fn func(i, j, k int), opts ...Option) error {
	if a == nil || b == nil {
		return fmt.Errorf("nil operand: %w", matrix.ErrInvalidArgument)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("inner dimensions %d and %d: %w", a.Cols(), b.Rows(), matrix.ErrShapeMismatch)
	}

	rowsA, colsA, colsB := a.Rows(), a.Cols(), b.Cols()
	if rowsA == 0 || colsA == 0 || colsB == 0 {
		return nil
	}

	// Decide parallelism on the full work volume, then pin the mode so the
	// runner's own size check (which only sees the outer extent) cannot
	// disagree.
	p := gather(opts...).policy
	if p.ShouldParallelize(workCount(rowsA, colsA, colsB)) {
		p = p.WithMode(parallel.On)
	} else {
		p = p.WithMode(parallel.Off)
	}

	switch {
	case rowsA <= colsA && rowsA <= colsB:
		if colsA <= colsB {
			parallel.ForRange(rowsA, func(i int) {
				for k := 0; k < colsA; k++ {
					for j := 0; j < colsB; j++ {
						fn(i, j, k)
					}
				}
			}, p)
		} else {
			parallel.ForRange(rowsA, func(i int) {
				for j := 0; j < colsB; j++ {
					for k := 0; k < colsA; k++ {
						fn(i, j, k)
					}
				}
			}, p)
		}
	case colsA <= rowsA && colsA <= colsB:
		if rowsA <= colsB {
			parallel.ForRange(colsA, func(k int) {
				for i := 0; i < rowsA; i++ {
					for j := 0; j < colsB; j++ {
						fn(i, j, k)
					}
				}
			}, p)
		} else {
			parallel.ForRange(colsA, func(k int) {
				for j := 0; j < colsB; j++ {
					for i := 0; i < rowsA; i++ {
						fn(i, j, k)
					}
				}
			}, p)
		}
	default:
		if rowsA <= colsA {
			parallel.ForRange(colsB, func(j int) {
				for i := 0; i < rowsA; i++ {
					for k := 0; k < colsA; k++ {
						fn(i, j, k)
					}
				}
			}, p)
		} else {
			parallel.ForRange(colsB, func(j int) {
				for k := 0; k < colsA; k++ {
					for i := 0; i < rowsA; i++ {
						fn(i, j, k)
					}
				}
			}, p)
		}
	}

	return nil
}

// workCount saturates rowsA*colsA*colsB at MaxInt instead of overflowing.
func workCount(rowsA, colsA, colsB int) int {
	n := uint64(rowsA) * uint64(colsA)
	if colsA != 0 && n/uint64(colsA) != uint64(rowsA) {
		return math.MaxInt
	}
	m := n * uint64(colsB)
	if n != 0 && m/n != uint64(colsB) || m > math.MaxInt {
		return math.MaxInt
	}
	return int(m)
}
