// SPDX-License-Identifier: MIT

// Package matrix: centralized validation helpers. Every exported operation
// funnels its checks through these so the sentinel mapping stays uniform.

package matrix

import "fmt"

// checkRectangular verifies rows is non-nil and every row matches the first
// row's length. A zero-row source is legal (the empty matrix).
func checkRectangular[T any](rows [][]T) error {
	if rows == nil {
		return ErrInvalidShape
	}
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrInvalidShape)
		}
	}
	return nil
}

// checkIndex validates 0 <= i < n.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("index %d outside [0, %d): %w", i, n, ErrIndexOutOfBounds)
	}
	return nil
}

// checkFromTo validates 0 <= from <= to <= n for half-open sub-ranges.
func checkFromTo(from, to, n int) error {
	if from < 0 || from > to || to > n {
		return fmt.Errorf("range [%d, %d) outside [0, %d]: %w", from, to, n, ErrIndexOutOfBounds)
	}
	return nil
}

// checkNonNegative rejects a negative dimension or offset argument.
func checkNonNegative(v int, name string) error {
	if v < 0 {
		return fmt.Errorf("%s must be non-negative, got %d: %w", name, v, ErrInvalidArgument)
	}
	return nil
}

// checkedCount multiplies two non-negative dimensions, reporting
// ErrDimensionOverflow when the product is not representable.
func checkedCount(rows, cols int) (int, error) {
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	n := rows * cols
	if n/rows != cols || n < 0 {
		return 0, fmt.Errorf("%d x %d: %w", rows, cols, ErrDimensionOverflow)
	}
	return n, nil
}

// allocGrid allocates a rows x cols backing store of zero values.
func allocGrid[T any](rows, cols int) [][]T {
	g := make([][]T, rows)
	for i := range g {
		g[i] = make([]T, cols)
	}
	return g
}
