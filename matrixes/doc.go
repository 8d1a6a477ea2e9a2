// SPDX-License-Identifier: MIT

// Package matrixes combines several matrices into one: element-wise zips
// over two, three, or N aligned grids, and a generalized multiplication
// driver that hands the caller every (i, j, k) index triple in a
// cache-friendly nesting order.
//
// All combinators reuse the matrix package's sentinel errors
// (matrix.ErrShapeMismatch, matrix.ErrInvalidArgument) so call sites match
// one error set across both packages. Execution is tuned per call with
// functional options: WithParallel forwards parallel.Option values to the
// underlying runner, WithSharedScratch lets ZipN reuse its per-cell buffer
// when running sequentially.
//
// Inputs are never mutated; every zip allocates a fresh result.
package matrixes
