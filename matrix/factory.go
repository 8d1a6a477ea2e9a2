// SPDX-License-Identifier: MIT

// Package matrix: factories that allocate fresh storage.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gridmat/arrayx"
)

// Repeat builds a rows x cols matrix with every cell set to element.
// Negative dimensions yield ErrInvalidArgument; rows*cols is overflow-checked.
func Repeat[T any](element T, rows, cols int) (*Matrix[T], error) {
	if err := checkNonNegative(rows, "rows"); err != nil {
		return nil, err
	}
	if err := checkNonNegative(cols, "cols"); err != nil {
		return nil, err
	}
	if _, err := checkedCount(rows, cols); err != nil {
		return nil, err
	}

	data := allocGrid[T](rows, cols)
	for i := range data {
		arrayx.Fill(data[i], element)
	}
	return fromGrid(data), nil
}

// DiagonalLU2RD builds a len(d) x len(d) matrix with d along the main
// diagonal and zero values elsewhere.
func DiagonalLU2RD[T any](d []T) (*Matrix[T], error) {
	return Diagonal(d, nil)
}

// DiagonalRU2LD builds a len(d) x len(d) matrix with d along the
// anti-diagonal and zero values elsewhere.
func DiagonalRU2LD[T any](d []T) (*Matrix[T], error) {
	return Diagonal(nil, d)
}

// Diagonal builds a square matrix from a main diagonal, an anti-diagonal, or
// both. When both are given their lengths must match (ErrInvalidArgument).
// The anti-diagonal is written first and the main diagonal second, so at the
// shared center cell of an odd-sized matrix the main-diagonal value wins —
// a deliberate, tested precedence rule.
func Diagonal[T any](main, anti []T) (*Matrix[T], error) {
	if len(main) > 0 && len(anti) > 0 && len(main) != len(anti) {
		return nil, fmt.Errorf("main length %d, anti length %d: %w", len(main), len(anti), ErrInvalidArgument)
	}

	n := len(main)
	if len(anti) > n {
		n = len(anti)
	}
	data := allocGrid[T](n, n)

	for i, v := range anti {
		data[i][n-1-i] = v
	}
	for i, v := range main {
		data[i][i] = v
	}

	return fromGrid(data), nil
}
