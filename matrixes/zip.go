// SPDX-License-Identifier: MIT

// Package matrixes: element-wise zips over aligned grids.

package matrixes

import (
	"fmt"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/katalvlaran/gridmat/parallel"
)

// ZipWith combines two same-shaped matrices cell by cell into a fresh
// matrix: out[i][j] = fn(a[i][j], b[i][j]).
func ZipWith[A, B, R any](a *matrix.Matrix[A], b *matrix.Matrix[B], fn func(A, B) R, opts ...Option) (*matrix.Matrix[R], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("nil matrix: %w", matrix.ErrInvalidArgument)
	}
	if !SameShape(a, b) {
		return nil, fmt.Errorf("shapes %s and %s: %w", a.Shape(), b.Shape(), matrix.ErrShapeMismatch)
	}

	ra, rb := a.Raw(), b.Raw()
	data := newGrid[R](a.Rows(), a.Cols())
	_ = parallel.Run(0, a.Rows(), 0, a.Cols(), func(i, j int) {
		data[i][j] = fn(ra[i][j], rb[i][j])
	}, gather(opts...).policy)
	return matrix.New(data)
}

// ZipWith3 combines three same-shaped matrices cell by cell:
// out[i][j] = fn(a[i][j], b[i][j], c[i][j]).
func ZipWith3[A, B, C, R any](a *matrix.Matrix[A], b *matrix.Matrix[B], c *matrix.Matrix[C], fn func(A, B, C) R, opts ...Option) (*matrix.Matrix[R], error) {
	if a == nil || b == nil || c == nil {
		return nil, fmt.Errorf("nil matrix: %w", matrix.ErrInvalidArgument)
	}
	if !SameShape3(a, b, c) {
		return nil, fmt.Errorf("shapes %s, %s and %s: %w", a.Shape(), b.Shape(), c.Shape(), matrix.ErrShapeMismatch)
	}

	ra, rb, rc := a.Raw(), b.Raw(), c.Raw()
	data := newGrid[R](a.Rows(), a.Cols())
	_ = parallel.Run(0, a.Rows(), 0, a.Cols(), func(i, j int) {
		data[i][j] = fn(ra[i][j], rb[i][j], rc[i][j])
	}, gather(opts...).policy)
	return matrix.New(data)
}

// Zip left-folds fn across N same-shaped, same-type matrices:
// out[i][j] = fn(fn(ms[0][i][j], ms[1][i][j]), ms[2][i][j]) and so on.
// A single matrix returns a plain copy without invoking fn, and exactly two
// delegate to ZipWith; both shortcuts are behavioral no-ops.
func Zip[T any](ms []*matrix.Matrix[T], fn func(T, T) T, opts ...Option) (*matrix.Matrix[T], error) {
	if err := checkOperands(ms); err != nil {
		return nil, err
	}
	switch len(ms) {
	case 1:
		return ms[0].Copy(), nil
	case 2:
		return ZipWith(ms[0], ms[1], fn, opts...)
	}

	raws := rawGrids(ms)
	data := newGrid[T](ms[0].Rows(), ms[0].Cols())
	_ = parallel.Run(0, ms[0].Rows(), 0, ms[0].Cols(), func(i, j int) {
		acc := fn(raws[0][i][j], raws[1][i][j])
		for k := 2; k < len(raws); k++ {
			acc = fn(acc, raws[k][i][j])
		}
		data[i][j] = acc
	}, gather(opts...).policy)
	return matrix.New(data)
}

// ZipN hands fn one slice per cell holding that cell's value from every
// input, in input order: out[i][j] = fn([]T{ms[0][i][j], ..., ms[N-1][i][j]}).
//
// By default the slice is freshly allocated per cell, so fn may retain it.
// Under WithSharedScratch a sequential run reuses one buffer for the whole
// traversal (fn must not retain it past the call); a parallel run ignores
// the option and keeps per-cell allocation.
func ZipN[T, R any](ms []*matrix.Matrix[T], fn func([]T) R, opts ...Option) (*matrix.Matrix[R], error) {
	if err := checkOperands(ms); err != nil {
		return nil, err
	}

	cfg := gather(opts...)
	rows, cols := ms[0].Rows(), ms[0].Cols()

	var scratch []T
	if cfg.shareScratch && !cfg.policy.ShouldParallelize(rows*cols) {
		scratch = make([]T, len(ms))
	}

	raws := rawGrids(ms)
	data := newGrid[R](rows, cols)
	_ = parallel.Run(0, rows, 0, cols, func(i, j int) {
		buf := scratch
		if buf == nil {
			buf = make([]T, len(raws))
		}
		for k := range raws {
			buf[k] = raws[k][i][j]
		}
		data[i][j] = fn(buf)
	}, cfg.policy)
	return matrix.New(data)
}

// checkOperands rejects an empty operand list, nil entries, and shape
// disagreement. Shared by the N-ary zips.
func checkOperands[T any](ms []*matrix.Matrix[T]) error {
	if len(ms) == 0 {
		return fmt.Errorf("no matrices: %w", matrix.ErrInvalidArgument)
	}
	for _, m := range ms {
		if m == nil {
			return fmt.Errorf("nil matrix: %w", matrix.ErrInvalidArgument)
		}
	}
	if !SameShapeAll(ms...) {
		return fmt.Errorf("%d matrices with differing shapes: %w", len(ms), matrix.ErrShapeMismatch)
	}
	return nil
}

// rawGrids snapshots the live backing stores of every operand.
func rawGrids[T any](ms []*matrix.Matrix[T]) [][][]T {
	raws := make([][][]T, len(ms))
	for k, m := range ms {
		raws[k] = m.Raw()
	}
	return raws
}

// newGrid allocates a rows x cols zero-valued store.
func newGrid[T any](rows, cols int) [][]T {
	g := make([][]T, rows)
	for i := range g {
		g[i] = make([]T, cols)
	}
	return g
}
