// SPDX-License-Identifier: MIT

// Package matrix: pure transformations. Everything here allocates a fresh
// backing store and leaves the receiver untouched, except ReverseH/ReverseV
// which mutate in place (FlipH/FlipV are their copying counterparts).

package matrix

import (
	"slices"

	"github.com/katalvlaran/gridmat/arrayx"
)

// Copy returns a deep copy: fresh outer slice, fresh rows.
func (m *Matrix[T]) Copy() *Matrix[T] {
	return fromGrid(arrayx.Clone2D(m.data))
}

// CopyRows returns a deep copy of rows [fromRow, toRow).
func (m *Matrix[T]) CopyRows(fromRow, toRow int) (*Matrix[T], error) {
	if err := checkFromTo(fromRow, toRow, m.rows); err != nil {
		return nil, err
	}
	c := make([][]T, toRow-fromRow)
	for i := fromRow; i < toRow; i++ {
		c[i-fromRow] = slices.Clone(m.data[i])
	}
	return fromGrid(c), nil
}

// CopyRange returns a deep copy of the sub-rectangle
// [fromRow, toRow) x [fromCol, toCol).
func (m *Matrix[T]) CopyRange(fromRow, toRow, fromCol, toCol int) (*Matrix[T], error) {
	if err := checkFromTo(fromRow, toRow, m.rows); err != nil {
		return nil, err
	}
	if err := checkFromTo(fromCol, toCol, m.cols); err != nil {
		return nil, err
	}
	c := make([][]T, toRow-fromRow)
	for i := fromRow; i < toRow; i++ {
		c[i-fromRow] = slices.Clone(m.data[i][fromCol:toCol])
	}
	return fromGrid(c), nil
}

// Transpose returns the cols x rows matrix with (i, j) mapped to (j, i).
// The smaller dimension drives the outer loop to keep the inner loop on
// contiguous source rows.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	c := allocGrid[T](m.cols, m.rows)
	if m.rows <= m.cols {
		for j := 0; j < m.rows; j++ {
			for i := 0; i < m.cols; i++ {
				c[i][j] = m.data[j][i]
			}
		}
	} else {
		for i := 0; i < m.cols; i++ {
			for j := 0; j < m.rows; j++ {
				c[i][j] = m.data[j][i]
			}
		}
	}
	return fromGrid(c)
}

// Rotate90 returns the matrix rotated 90 degrees clockwise:
// source (i, j) lands at (j, rows-1-i) in a cols x rows result.
func (m *Matrix[T]) Rotate90() *Matrix[T] {
	c := allocGrid[T](m.cols, m.rows)
	if m.rows <= m.cols {
		for j := 0; j < m.rows; j++ {
			for i := 0; i < m.cols; i++ {
				c[i][j] = m.data[m.rows-1-j][i]
			}
		}
	} else {
		for i := 0; i < m.cols; i++ {
			for j := 0; j < m.rows; j++ {
				c[i][j] = m.data[m.rows-1-j][i]
			}
		}
	}
	return fromGrid(c)
}

// Rotate180 returns the matrix rotated 180 degrees:
// source (i, j) lands at (rows-1-i, cols-1-j), same shape.
func (m *Matrix[T]) Rotate180() *Matrix[T] {
	c := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		c[i] = slices.Clone(m.data[m.rows-1-i])
		arrayx.Reverse(c[i])
	}
	return fromGrid(c)
}

// Rotate270 returns the matrix rotated 90 degrees counter-clockwise:
// source (i, j) lands at (cols-1-j, i) in a cols x rows result.
func (m *Matrix[T]) Rotate270() *Matrix[T] {
	c := allocGrid[T](m.cols, m.rows)
	if m.rows <= m.cols {
		for j := 0; j < m.rows; j++ {
			for i := 0; i < m.cols; i++ {
				c[i][j] = m.data[j][m.cols-1-i]
			}
		}
	} else {
		for i := 0; i < m.cols; i++ {
			for j := 0; j < m.rows; j++ {
				c[i][j] = m.data[j][m.cols-1-i]
			}
		}
	}
	return fromGrid(c)
}

// ReverseH reverses every row in place (mirror across the vertical axis).
func (m *Matrix[T]) ReverseH() {
	for i := 0; i < m.rows; i++ {
		arrayx.Reverse(m.data[i])
	}
}

// ReverseV reverses the row order of every column in place (mirror across
// the horizontal axis).
func (m *Matrix[T]) ReverseV() {
	for j := 0; j < m.cols; j++ {
		for l, h := 0, m.rows-1; l < h; l, h = l+1, h-1 {
			m.data[l][j], m.data[h][j] = m.data[h][j], m.data[l][j]
		}
	}
}

// FlipH returns a copy with each row reversed. Non-mutating ReverseH.
func (m *Matrix[T]) FlipH() *Matrix[T] {
	c := m.Copy()
	c.ReverseH()
	return c
}

// FlipV returns a copy with the column order reversed. Non-mutating ReverseV.
func (m *Matrix[T]) FlipV() *Matrix[T] {
	c := m.Copy()
	c.ReverseV()
	return c
}

// Reshape reads the source in row-major order and writes a newRows x newCols
// matrix in row-major order. When the new shape holds fewer cells, trailing
// source cells are dropped; when it holds more, trailing destination cells
// keep the zero value. This is flatten-then-refill: a value's logical row can
// change silently, so Reshape is NOT a structure-preserving resize (Extend is).
func (m *Matrix[T]) Reshape(newRows, newCols int) (*Matrix[T], error) {
	if err := checkNonNegative(newRows, "newRows"); err != nil {
		return nil, err
	}
	if err := checkNonNegative(newCols, "newCols"); err != nil {
		return nil, err
	}
	n, err := checkedCount(newRows, newCols)
	if err != nil {
		return nil, err
	}

	c := allocGrid[T](newRows, newCols)
	if n == 0 || m.IsEmpty() {
		return fromGrid(c), nil
	}

	limit := m.Count()
	if n < limit {
		limit = n
	}
	for k := 0; k < limit; k++ {
		c[k/newCols][k%newCols] = m.data[k/m.cols][k%m.cols]
	}
	return fromGrid(c), nil
}

// Extend grows (or shrinks) the matrix to newRows x newCols, anchored at the
// top-left. Cells beyond the original extent receive fill. Shrinking in both
// dimensions delegates to CopyRange.
func (m *Matrix[T]) Extend(newRows, newCols int, fill T) (*Matrix[T], error) {
	if err := checkNonNegative(newRows, "newRows"); err != nil {
		return nil, err
	}
	if err := checkNonNegative(newCols, "newCols"); err != nil {
		return nil, err
	}
	if _, err := checkedCount(newRows, newCols); err != nil {
		return nil, err
	}

	if newRows <= m.rows && newCols <= m.cols {
		return m.CopyRange(0, newRows, 0, newCols)
	}

	b := make([][]T, newRows)
	for i := 0; i < newRows; i++ {
		b[i] = make([]T, newCols)
		if i < m.rows {
			copied := copy(b[i], m.data[i])
			arrayx.Fill(b[i][copied:], fill)
		} else {
			arrayx.Fill(b[i], fill)
		}
	}
	return fromGrid(b), nil
}

// ExtendAround grows the matrix by up/down/left/right cells on each side,
// re-anchoring the original content at offset (up, left); all new cells
// receive fill. Zero growth on all sides returns a plain copy.
func (m *Matrix[T]) ExtendAround(up, down, left, right int, fill T) (*Matrix[T], error) {
	for _, arg := range [...]struct {
		v    int
		name string
	}{{up, "up"}, {down, "down"}, {left, "left"}, {right, "right"}} {
		if err := checkNonNegative(arg.v, arg.name); err != nil {
			return nil, err
		}
	}

	if up == 0 && down == 0 && left == 0 && right == 0 {
		return m.Copy(), nil
	}

	newRows := up + m.rows + down
	newCols := left + m.cols + right
	if newRows < 0 || newCols < 0 {
		return nil, ErrDimensionOverflow
	}
	if _, err := checkedCount(newRows, newCols); err != nil {
		return nil, err
	}

	b := make([][]T, newRows)
	for i := 0; i < newRows; i++ {
		b[i] = make([]T, newCols)
		if i >= up && i < up+m.rows {
			arrayx.Fill(b[i][:left], fill)
			copy(b[i][left:], m.data[i-up])
			arrayx.Fill(b[i][left+m.cols:], fill)
		} else {
			arrayx.Fill(b[i], fill)
		}
	}
	return fromGrid(b), nil
}

// Repelem expands every cell into a rowRepeats x colRepeats block of copies,
// yielding a (rows*rowRepeats) x (cols*colRepeats) matrix. Repeats must be
// positive.
func (m *Matrix[T]) Repelem(rowRepeats, colRepeats int) (*Matrix[T], error) {
	newRows, newCols, err := m.repeatedShape(rowRepeats, colRepeats)
	if err != nil {
		return nil, err
	}

	c := allocGrid[T](newRows, newCols)
	for i := 0; i < m.rows; i++ {
		first := c[i*rowRepeats]
		for j := 0; j < m.cols; j++ {
			arrayx.Fill(first[j*colRepeats:(j+1)*colRepeats], m.data[i][j])
		}
		for k := 1; k < rowRepeats; k++ {
			copy(c[i*rowRepeats+k], first)
		}
	}
	return fromGrid(c), nil
}

// Repmat tiles the whole matrix rowRepeats times vertically and colRepeats
// times horizontally. Same output shape as Repelem, different arrangement:
// the grid repeats as a unit instead of each cell expanding into a block.
func (m *Matrix[T]) Repmat(rowRepeats, colRepeats int) (*Matrix[T], error) {
	newRows, newCols, err := m.repeatedShape(rowRepeats, colRepeats)
	if err != nil {
		return nil, err
	}

	c := allocGrid[T](newRows, newCols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < colRepeats; j++ {
			copy(c[i][j*m.cols:], m.data[i])
		}
	}
	for r := 1; r < rowRepeats; r++ {
		for i := 0; i < m.rows; i++ {
			copy(c[r*m.rows+i], c[i])
		}
	}
	return fromGrid(c), nil
}

// repeatedShape validates repeat counts and overflow-checks the output shape
// shared by Repelem and Repmat.
func (m *Matrix[T]) repeatedShape(rowRepeats, colRepeats int) (int, int, error) {
	if rowRepeats <= 0 || colRepeats <= 0 {
		return 0, 0, ErrInvalidArgument
	}
	newRows, err := checkedCount(m.rows, rowRepeats)
	if err != nil {
		return 0, 0, err
	}
	newCols, err := checkedCount(m.cols, colRepeats)
	if err != nil {
		return 0, 0, err
	}
	if _, err := checkedCount(newRows, newCols); err != nil {
		return 0, 0, err
	}
	return newRows, newCols, nil
}
