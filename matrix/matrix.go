// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridmat/arrayx"
)

// Matrix is a rectangular 2D container of T. rows and cols are derived from
// the backing store at construction and never change afterwards; every row
// slice has exactly cols elements.
type Matrix[T any] struct {
	rows int
	cols int
	data [][]T // adopted or allocated backing store, len(data) == rows
}

// New adopts rows as the backing store of a new Matrix. The slice is taken
// by reference: no defensive copy is made, so mutations through the original
// remain visible to the matrix and vice versa. Returns ErrInvalidShape when
// rows is nil or jagged. A zero-row source builds the empty matrix.
func New[T any](rows [][]T) (*Matrix[T], error) {
	if err := checkRectangular(rows); err != nil {
		return nil, err
	}
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	return &Matrix[T]{rows: len(rows), cols: cols, data: rows}, nil
}

// Of is variadic sugar over New: Of(row0, row1, ...).
func Of[T any](rows ...[]T) (*Matrix[T], error) {
	return New(rows)
}

// fromGrid wraps a store already known rectangular. Internal constructor for
// transformation results.
func fromGrid[T any](data [][]T) *Matrix[T] {
	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}
	return &Matrix[T]{rows: len(data), cols: cols, data: data}
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.cols }

// Count returns rows*cols, the total number of cells.
func (m *Matrix[T]) Count() int { return m.rows * m.cols }

// IsEmpty reports whether the matrix holds no cells.
func (m *Matrix[T]) IsEmpty() bool { return m.Count() == 0 }

// Shape returns the (rows, cols) pair.
func (m *Matrix[T]) Shape() Shape { return Shape{Rows: m.rows, Cols: m.cols} }

// Raw returns the live backing store. Mutating it mutates the matrix;
// reshaping it (appending rows, resizing a row) breaks the container's
// invariants and is the caller's fault.
func (m *Matrix[T]) Raw() [][]T { return m.data }

// Get retrieves the element at (i, j).
func (m *Matrix[T]) Get(i, j int) (T, error) {
	var zero T
	if err := checkIndex(i, m.rows); err != nil {
		return zero, err
	}
	if err := checkIndex(j, m.cols); err != nil {
		return zero, err
	}
	return m.data[i][j], nil
}

// GetAt retrieves the element at p.
func (m *Matrix[T]) GetAt(p Point) (T, error) {
	return m.Get(p.Row, p.Col)
}

// Set assigns v at (i, j).
func (m *Matrix[T]) Set(i, j int, v T) error {
	if err := checkIndex(i, m.rows); err != nil {
		return err
	}
	if err := checkIndex(j, m.cols); err != nil {
		return err
	}
	m.data[i][j] = v
	return nil
}

// SetAt assigns v at p.
func (m *Matrix[T]) SetAt(p Point, v T) error {
	return m.Set(p.Row, p.Col, v)
}

// Row returns the LIVE backing slice for row i: writes through the returned
// slice mutate the matrix. Column is the copying counterpart; the asymmetry
// reflects row-contiguous storage and is part of the contract.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := checkIndex(i, m.rows); err != nil {
		return nil, err
	}
	return m.data[i], nil
}

// Column returns an independent copy of column j.
func (m *Matrix[T]) Column(j int) ([]T, error) {
	if err := checkIndex(j, m.cols); err != nil {
		return nil, err
	}
	c := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		c[i] = m.data[i][j]
	}
	return c, nil
}

// SetRow overwrites row i with row's elements. len(row) must equal Cols().
func (m *Matrix[T]) SetRow(i int, row []T) error {
	if err := checkIndex(i, m.rows); err != nil {
		return err
	}
	if len(row) != m.cols {
		return fmt.Errorf("row length %d, want %d: %w", len(row), m.cols, ErrInvalidArgument)
	}
	copy(m.data[i], row)
	return nil
}

// SetColumn overwrites column j with column's elements. len(column) must
// equal Rows().
func (m *Matrix[T]) SetColumn(j int, column []T) error {
	if err := checkIndex(j, m.cols); err != nil {
		return err
	}
	if len(column) != m.rows {
		return fmt.Errorf("column length %d, want %d: %w", len(column), m.rows, ErrInvalidArgument)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][j] = column[i]
	}
	return nil
}

// UpOf returns the value above (i, j); ok is false on row 0.
func (m *Matrix[T]) UpOf(i, j int) (T, bool) {
	var zero T
	if i <= 0 || i >= m.rows || j < 0 || j >= m.cols {
		return zero, false
	}
	return m.data[i-1][j], true
}

// DownOf returns the value below (i, j); ok is false on the last row.
func (m *Matrix[T]) DownOf(i, j int) (T, bool) {
	var zero T
	if i < 0 || i >= m.rows-1 || j < 0 || j >= m.cols {
		return zero, false
	}
	return m.data[i+1][j], true
}

// LeftOf returns the value left of (i, j); ok is false on column 0.
func (m *Matrix[T]) LeftOf(i, j int) (T, bool) {
	var zero T
	if i < 0 || i >= m.rows || j <= 0 || j >= m.cols {
		return zero, false
	}
	return m.data[i][j-1], true
}

// RightOf returns the value right of (i, j); ok is false on the last column.
func (m *Matrix[T]) RightOf(i, j int) (T, bool) {
	var zero T
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols-1 {
		return zero, false
	}
	return m.data[i][j+1], true
}

// Adjacent4 returns the in-bounds orthogonal neighbor coordinates of (i, j)
// in up, right, down, left order.
func (m *Matrix[T]) Adjacent4(i, j int) []Point {
	pts := make([]Point, 0, 4)
	if i > 0 {
		pts = append(pts, Pt(i-1, j))
	}
	if j < m.cols-1 {
		pts = append(pts, Pt(i, j+1))
	}
	if i < m.rows-1 {
		pts = append(pts, Pt(i+1, j))
	}
	if j > 0 {
		pts = append(pts, Pt(i, j-1))
	}
	return pts
}

// Adjacent8 returns the in-bounds neighbor coordinates of (i, j) in
// left-up, up, right-up, right, right-down, down, left-down, left order.
func (m *Matrix[T]) Adjacent8(i, j int) []Point {
	pts := make([]Point, 0, 8)
	if i > 0 && j > 0 {
		pts = append(pts, Pt(i-1, j-1))
	}
	if i > 0 {
		pts = append(pts, Pt(i-1, j))
	}
	if i > 0 && j < m.cols-1 {
		pts = append(pts, Pt(i-1, j+1))
	}
	if j < m.cols-1 {
		pts = append(pts, Pt(i, j+1))
	}
	if i < m.rows-1 && j < m.cols-1 {
		pts = append(pts, Pt(i+1, j+1))
	}
	if i < m.rows-1 {
		pts = append(pts, Pt(i+1, j))
	}
	if i < m.rows-1 && j > 0 {
		pts = append(pts, Pt(i+1, j-1))
	}
	if j > 0 {
		pts = append(pts, Pt(i, j-1))
	}
	return pts
}

// EqualFunc reports whether m and other share a shape and eq holds for every
// aligned cell pair.
func (m *Matrix[T]) EqualFunc(other *Matrix[T], eq func(a, b T) bool) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if !eq(m.data[i][j], other.data[i][j]) {
				return false
			}
		}
	}
	return true
}

// Equal reports shape and element equality of two matrices of a comparable
// element type. (Defined as a package function: Go methods cannot add the
// comparable constraint to an unconstrained receiver parameter.)
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.rows == b.rows && a.cols == b.cols && arrayx.Equal2D(a.data, b.data)
}

// String renders one bracketed row per line, "%v" per element.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i][j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
