// SPDX-License-Identifier: MIT

// Package matrix provides Matrix[T], a generic rectangular 2D container with
// transformation, combination, and traversal operations.
//
// The package provides:
//
//   - Construction from an existing [][]T (adopted by reference, validated
//     rectangular once) and factories (Repeat, Diagonal, DiagonalLU2RD,
//     DiagonalRU2LD) that allocate fresh storage.
//   - Pure transformations that allocate and return (Transpose, Rotate90/180/270,
//     FlipH/FlipV, Reshape, Extend, Repelem, Repmat, Vstack, Hstack) and
//     imperative in-place mutators (ReverseH, ReverseV, Fill, UpdateAll,
//     ReplaceIf, ...).
//   - Row/column/diagonal traversal as restartable iter.Seq sequences.
//
// Ownership rules worth knowing before reaching for an accessor:
//
//   - New adopts the caller's slice without copying; mutations through the
//     original slice remain visible. Use Copy first when isolation matters.
//   - Row returns the LIVE backing slice for that row, Column returns an
//     independent copy. Rows are stored contiguously and columns are not;
//     the asymmetry is deliberate and the two operations are named and
//     documented separately so the ownership difference stays visible.
//
// Bulk element operations (Map, UpdateAll, ReplaceIf, ForEach and the zip
// family in package matrixes) accept ...parallel.Option and may fan out over
// worker goroutines per the resulting parallel.Policy. A single bulk
// operation writes each coordinate exactly once; concurrent bulk operations
// on the same Matrix from different goroutines are the caller's
// responsibility to serialize.
//
// All user-triggered failures are sentinel errors matched with errors.Is;
// no exported operation panics on bad input.
package matrix
