// SPDX-License-Identifier: MIT

// Package matrix: domain-facing value types shared across files.

package matrix

import "fmt"

// Point addresses one cell as a (row, column) pair. Always transient: built
// on demand by traversals and neighbor queries, never stored by the matrix.
type Point struct {
	Row int
	Col int
}

// Pt is shorthand for Point{Row: i, Col: j}.
func Pt(i, j int) Point {
	return Point{Row: i, Col: j}
}

// String renders the point as "(row, col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Shape is the (rows, cols) pair describing a matrix's dimensions.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "rowsxcols".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
