// SPDX-License-Identifier: MIT

package matrix

import "iter"

// Iterator traversals. All sequences are single-pass views over the live
// backing store: mutating the matrix mid-iteration is visible to the
// consumer, and SeqR yields live row slices while SeqC yields copies,
// matching the Row/Column asymmetry.

// All yields every (position, value) pair in row-major order.
func (m *Matrix[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				if !yield(Pt(i, j), m.data[i][j]) {
					return
				}
			}
		}
	}
}

// SeqH yields every value in row-major order (left to right, top to bottom).
func (m *Matrix[T]) SeqH() iter.Seq[T] {
	seq, _ := m.SeqHRange(0, m.rows)
	return seq
}

// SeqHRange yields values of rows [fromRow, toRow) in row-major order.
func (m *Matrix[T]) SeqHRange(fromRow, toRow int) (iter.Seq[T], error) {
	if err := checkFromTo(fromRow, toRow, m.rows); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for i := fromRow; i < toRow; i++ {
			for j := 0; j < m.cols; j++ {
				if !yield(m.data[i][j]) {
					return
				}
			}
		}
	}, nil
}

// SeqV yields every value in column-major order (top to bottom, left to
// right).
func (m *Matrix[T]) SeqV() iter.Seq[T] {
	seq, _ := m.SeqVRange(0, m.cols)
	return seq
}

// SeqVRange yields values of columns [fromCol, toCol) in column-major order.
func (m *Matrix[T]) SeqVRange(fromCol, toCol int) (iter.Seq[T], error) {
	if err := checkFromTo(fromCol, toCol, m.cols); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for j := fromCol; j < toCol; j++ {
			for i := 0; i < m.rows; i++ {
				if !yield(m.data[i][j]) {
					return
				}
			}
		}
	}, nil
}

// SeqR yields each row as a live slice, top to bottom. Writes through a
// yielded slice mutate the matrix.
func (m *Matrix[T]) SeqR() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(m.data[i]) {
				return
			}
		}
	}
}

// SeqC yields each column as a fresh copy, left to right.
func (m *Matrix[T]) SeqC() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for j := 0; j < m.cols; j++ {
			col := make([]T, m.rows)
			for i := 0; i < m.rows; i++ {
				col[i] = m.data[i][j]
			}
			if !yield(col) {
				return
			}
		}
	}
}

// SeqLU2RD yields the main diagonal (top-left to bottom-right). The matrix
// must be square.
func (m *Matrix[T]) SeqLU2RD() (iter.Seq[T], error) {
	if err := m.checkSquare(); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(m.data[i][i]) {
				return
			}
		}
	}, nil
}

// SeqRU2LD yields the anti-diagonal (top-right to bottom-left). The matrix
// must be square.
func (m *Matrix[T]) SeqRU2LD() (iter.Seq[T], error) {
	if err := m.checkSquare(); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(m.data[i][m.cols-1-i]) {
				return
			}
		}
	}, nil
}

// PointsH yields every position in row-major order.
func (m *Matrix[T]) PointsH() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				if !yield(Pt(i, j)) {
					return
				}
			}
		}
	}
}

// PointsV yields every position in column-major order.
func (m *Matrix[T]) PointsV() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for j := 0; j < m.cols; j++ {
			for i := 0; i < m.rows; i++ {
				if !yield(Pt(i, j)) {
					return
				}
			}
		}
	}
}

// PointsLU2RD yields the main-diagonal positions of a square matrix.
func (m *Matrix[T]) PointsLU2RD() (iter.Seq[Point], error) {
	if err := m.checkSquare(); err != nil {
		return nil, err
	}
	return func(yield func(Point) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(Pt(i, i)) {
				return
			}
		}
	}, nil
}

// PointsRU2LD yields the anti-diagonal positions of a square matrix.
func (m *Matrix[T]) PointsRU2LD() (iter.Seq[Point], error) {
	if err := m.checkSquare(); err != nil {
		return nil, err
	}
	return func(yield func(Point) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(Pt(i, m.cols-1-i)) {
				return
			}
		}
	}, nil
}
