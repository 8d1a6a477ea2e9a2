// SPDX-License-Identifier: MIT

// Package matrixes: shape predicates over anything with dimensions.

package matrixes

// Shaped is the minimal dimension surface a combinator needs. Every
// *matrix.Matrix[T] satisfies it; so does any caller-side grid type that
// reports its extent.
type Shaped interface {
	Rows() int
	Cols() int
}

// SameShape reports whether a and b have equal dimensions.
func SameShape(a, b Shaped) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

// SameShape3 reports whether a, b and c all have equal dimensions.
func SameShape3(a, b, c Shaped) bool {
	return SameShape(a, b) && SameShape(a, c)
}

// SameShapeAll reports whether every element of ms has equal dimensions.
// Zero or one element is trivially true.
func SameShapeAll[S Shaped](ms ...S) bool {
	for i := 1; i < len(ms); i++ {
		if !SameShape(ms[0], ms[i]) {
			return false
		}
	}
	return true
}
