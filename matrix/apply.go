// SPDX-License-Identifier: MIT

// Package matrix: per-cell transforms and in-place updates. Whole-matrix
// variants dispatch through parallel.Run and accept ...parallel.Option;
// single-row/column variants are plain loops.

package matrix

import (
	"github.com/katalvlaran/gridmat/parallel"
)

// runAll drives fn over the full grid. Bounds are valid by construction, so
// the runner's range error cannot occur.
func (m *Matrix[T]) runAll(fn func(i, j int), opts []parallel.Option) {
	_ = parallel.Run(0, m.rows, 0, m.cols, fn, parallel.Gather(opts...))
}

// Map returns a new matrix with fn applied to every cell. Same element type;
// use MapTo to project to a different one.
func (m *Matrix[T]) Map(fn func(T) T, opts ...parallel.Option) *Matrix[T] {
	return MapTo(m, fn, opts...)
}

// MapTo returns a new matrix of element type R with fn applied to every cell
// of m. (A package function: Go methods cannot introduce the extra type
// parameter; with reified generics no runtime element-type token is needed
// to allocate the result.)
func MapTo[T, R any](m *Matrix[T], fn func(T) R, opts ...parallel.Option) *Matrix[R] {
	result := allocGrid[R](m.rows, m.cols)
	m.runAll(func(i, j int) {
		result[i][j] = fn(m.data[i][j])
	}, opts)
	return fromGrid(result)
}

// UpdateAll applies fn to every cell in place.
func (m *Matrix[T]) UpdateAll(fn func(T) T, opts ...parallel.Option) {
	m.runAll(func(i, j int) {
		m.data[i][j] = fn(m.data[i][j])
	}, opts)
}

// UpdateAllAt assigns fn(i, j) to every cell in place. The position-aware
// variant of UpdateAll, for coordinate-dependent fills such as checkerboards.
func (m *Matrix[T]) UpdateAllAt(fn func(i, j int) T, opts ...parallel.Option) {
	m.runAll(func(i, j int) {
		m.data[i][j] = fn(i, j)
	}, opts)
}

// UpdateRow applies fn to every cell of row i in place.
func (m *Matrix[T]) UpdateRow(i int, fn func(T) T) error {
	if err := checkIndex(i, m.rows); err != nil {
		return err
	}
	for j := 0; j < m.cols; j++ {
		m.data[i][j] = fn(m.data[i][j])
	}
	return nil
}

// UpdateColumn applies fn to every cell of column j in place.
func (m *Matrix[T]) UpdateColumn(j int, fn func(T) T) error {
	if err := checkIndex(j, m.cols); err != nil {
		return err
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][j] = fn(m.data[i][j])
	}
	return nil
}

// ReplaceIf assigns v to every cell whose current value satisfies pred.
func (m *Matrix[T]) ReplaceIf(pred func(T) bool, v T, opts ...parallel.Option) {
	m.runAll(func(i, j int) {
		if pred(m.data[i][j]) {
			m.data[i][j] = v
		}
	}, opts)
}

// ReplaceIfAt assigns v to every cell whose coordinates satisfy pred.
func (m *Matrix[T]) ReplaceIfAt(pred func(i, j int) bool, v T, opts ...parallel.Option) {
	m.runAll(func(i, j int) {
		if pred(i, j) {
			m.data[i][j] = v
		}
	}, opts)
}

// ForEach invokes action once per cell value. Ordering follows the runner's
// contract: deterministic outer/inner order sequentially, none across
// partitions when parallel.
func (m *Matrix[T]) ForEach(action func(T), opts ...parallel.Option) {
	m.runAll(func(i, j int) {
		action(m.data[i][j])
	}, opts)
}

// ForEachRange invokes action once per cell value inside
// [fromRow, toRow) x [fromCol, toCol).
func (m *Matrix[T]) ForEachRange(fromRow, toRow, fromCol, toCol int, action func(T), opts ...parallel.Option) error {
	if err := checkFromTo(fromRow, toRow, m.rows); err != nil {
		return err
	}
	if err := checkFromTo(fromCol, toCol, m.cols); err != nil {
		return err
	}
	return parallel.Run(fromRow, toRow, fromCol, toCol, func(i, j int) {
		action(m.data[i][j])
	}, parallel.Gather(opts...))
}
