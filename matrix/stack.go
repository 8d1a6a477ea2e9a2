// SPDX-License-Identifier: MIT

// Package matrix: stacking, flattening, and whole-store fills.

package matrix

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/gridmat/arrayx"
)

// Vstack concatenates other's rows below m's. Column counts must match
// (ErrShapeMismatch). Rows are copied, never shared with either source.
func (m *Matrix[T]) Vstack(other *Matrix[T]) (*Matrix[T], error) {
	if other == nil {
		return nil, fmt.Errorf("nil other: %w", ErrInvalidArgument)
	}
	if m.cols != other.cols {
		return nil, fmt.Errorf("column counts %d and %d: %w", m.cols, other.cols, ErrShapeMismatch)
	}

	c := make([][]T, 0, m.rows+other.rows)
	for _, row := range m.data {
		c = append(c, slices.Clone(row))
	}
	for _, row := range other.data {
		c = append(c, slices.Clone(row))
	}
	return fromGrid(c), nil
}

// Hstack concatenates other's columns to the right of m's. Row counts must
// match (ErrShapeMismatch).
func (m *Matrix[T]) Hstack(other *Matrix[T]) (*Matrix[T], error) {
	if other == nil {
		return nil, fmt.Errorf("nil other: %w", ErrInvalidArgument)
	}
	if m.rows != other.rows {
		return nil, fmt.Errorf("row counts %d and %d: %w", m.rows, other.rows, ErrShapeMismatch)
	}

	c := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		c[i] = make([]T, m.cols+other.cols)
		copy(c[i], m.data[i])
		copy(c[i][m.cols:], other.data[i])
	}
	return fromGrid(c), nil
}

// Flatten returns all elements in row-major order as one fresh slice.
// ErrTooLarge when the element count exceeds the maximum slice length.
func (m *Matrix[T]) Flatten() ([]T, error) {
	if m.rows > 0 && uint64(m.rows)*uint64(m.cols) > uint64(math.MaxInt) {
		return nil, ErrTooLarge
	}
	flat := make([]T, 0, m.Count())
	for _, row := range m.data {
		flat = append(flat, row...)
	}
	return flat, nil
}

// FlatOp applies op to each live backing row in order. Mutations through the
// slice are visible in the matrix; op must not resize it.
func (m *Matrix[T]) FlatOp(op func(row []T)) {
	for _, row := range m.data {
		op(row)
	}
}

// Fill assigns v to every cell.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		arrayx.Fill(m.data[i], v)
	}
}

// FillFrom copies patch into the matrix with its top-left cell at
// (fromRow, fromCol), clipping whatever does not fit. The origin must be a
// valid cell (ErrIndexOutOfBounds) and the patch rectangular
// (ErrInvalidShape). Patch rows shorter than the clip width copy what they
// have; the remaining cells keep their values.
func (m *Matrix[T]) FillFrom(fromRow, fromCol int, patch [][]T) error {
	if err := checkIndex(fromRow, m.rows); err != nil {
		return err
	}
	if err := checkIndex(fromCol, m.cols); err != nil {
		return err
	}
	if err := checkRectangular(patch); err != nil {
		return err
	}

	maxRows := m.rows - fromRow
	if len(patch) < maxRows {
		maxRows = len(patch)
	}
	for i := 0; i < maxRows; i++ {
		width := m.cols - fromCol
		if len(patch[i]) < width {
			width = len(patch[i])
		}
		copy(m.data[i+fromRow][fromCol:], patch[i][:width])
	}
	return nil
}
