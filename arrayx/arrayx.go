// SPDX-License-Identifier: MIT

package arrayx

import (
	"errors"
	"slices"
)

// ErrEmpty indicates a reduction over an empty slice.
var ErrEmpty = errors.New("arrayx: empty slice")

// ErrRange indicates an index range outside a slice's bounds.
var ErrRange = errors.New("arrayx: index range out of bounds")

// Number covers the built-in numeric kinds the reductions accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min returns the smallest element, or ErrEmpty.
func Min[T Number](a []T) (T, error) {
	var zero T
	if len(a) == 0 {
		return zero, ErrEmpty
	}
	m := a[0]
	for _, v := range a[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

// Max returns the largest element, or ErrEmpty.
func Max[T Number](a []T) (T, error) {
	var zero T
	if len(a) == 0 {
		return zero, ErrEmpty
	}
	m := a[0]
	for _, v := range a[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// Sum returns the sum of all elements; the sum of an empty slice is zero.
func Sum[T Number](a []T) T {
	var s T
	for _, v := range a {
		s += v
	}
	return s
}

// Average returns the arithmetic mean as float64, or ErrEmpty.
func Average[T Number](a []T) (float64, error) {
	if len(a) == 0 {
		return 0, ErrEmpty
	}
	var s float64
	for _, v := range a {
		s += float64(v)
	}
	return s / float64(len(a)), nil
}

// Median returns the lower-middle element of the sorted values, or ErrEmpty.
// For odd lengths this is the true median; for even lengths the smaller of
// the two central elements. The input is not modified.
func Median[T Number](a []T) (T, error) {
	var zero T
	if len(a) == 0 {
		return zero, ErrEmpty
	}
	sorted := slices.Clone(a)
	slices.Sort(sorted)
	return sorted[(len(sorted)-1)/2], nil
}

// Reverse reverses a in place.
func Reverse[T any](a []T) {
	for l, h := 0, len(a)-1; l < h; l, h = l+1, h-1 {
		a[l], a[h] = a[h], a[l]
	}
}

// Fill assigns v to every element of a.
func Fill[T any](a []T, v T) {
	for i := range a {
		a[i] = v
	}
}

// FillRange assigns v to a[from:to], validating the range first.
func FillRange[T any](a []T, from, to int, v T) error {
	if err := CheckFromToIndex(from, to, len(a)); err != nil {
		return err
	}
	for i := from; i < to; i++ {
		a[i] = v
	}
	return nil
}

// CopyOf returns a fresh slice of length newLen holding a's leading elements;
// positions past len(a) hold the zero value.
func CopyOf[T any](a []T, newLen int) []T {
	c := make([]T, newLen)
	copy(c, a)
	return c
}

// Clone2D deep-copies a 2D slice: fresh outer slice, fresh rows.
func Clone2D[T any](a [][]T) [][]T {
	c := make([][]T, len(a))
	for i, row := range a {
		c[i] = slices.Clone(row)
	}
	return c
}

// Equal2D reports element-wise equality of two 2D slices, including the
// per-row lengths.
func Equal2D[T comparable](a, b [][]T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether a holds v.
func Contains[T comparable](a []T, v T) bool {
	return slices.Contains(a, v)
}

// CheckFromToIndex validates 0 <= from <= to <= length, returning ErrRange
// otherwise.
func CheckFromToIndex(from, to, length int) error {
	if from < 0 || from > to || to > length {
		return ErrRange
	}
	return nil
}
