// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped with
// fmt.Errorf("op: %w", ...) context) and tests match them via errors.Is.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

var (
	// ErrInvalidShape is returned when constructing from a nil or jagged
	// source: every row must have the length of the first row.
	ErrInvalidShape = errors.New("matrix: source rows must be non-nil and rectangular")

	// ErrInvalidArgument covers negative dimensions, zero repeat counts,
	// nil required arguments, and replacement arrays of the wrong length.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrIndexOutOfBounds indicates a row or column index outside
	// [0, Rows()) x [0, Cols()), or a copy range outside the matrix.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShapeMismatch indicates an operation that requires compatible
	// shapes (zip, Vstack column counts, Hstack row counts, Multiply's
	// inner dimension) received matrices whose shapes differ.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals a diagonal operation on a non-square matrix.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionOverflow signals that a derived dimension (Extend,
	// Repelem, Repmat, Reshape) would exceed the representable element count.
	ErrDimensionOverflow = errors.New("matrix: derived dimensions overflow")

	// ErrTooLarge signals that flattening would exceed the maximum
	// addressable slice length.
	ErrTooLarge = errors.New("matrix: element count too large to flatten")
)
