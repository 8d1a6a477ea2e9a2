// SPDX-License-Identifier: MIT

// Package tuple: pair/triple containers and the numeric fixed-arity Tuple.

package tuple

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridmat/arrayx"
)

// MaxArity is the largest element count a numeric Tuple can hold.
const MaxArity = 9

// ErrArity indicates a Tuple construction or access outside arity 0..9.
var ErrArity = errors.New("tuple: arity out of range")

// Pair groups two values of independent types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Reverse returns the pair with its elements swapped.
func (p Pair[A, B]) Reverse() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// String renders the pair as "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple groups three values of independent types.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf builds a Triple.
func TripleOf[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

// Reverse returns the triple with its element order flipped.
func (t Triple[A, B, C]) Reverse() Triple[C, B, A] {
	return Triple[C, B, A]{First: t.Third, Second: t.Second, Third: t.First}
}

// String renders the triple as "(first, second, third)".
func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}

// Tuple is an immutable group of up to MaxArity numeric values. The zero
// value is the empty tuple.
type Tuple[T arrayx.Number] struct {
	vals []T // never exposed; ToSlice copies
}

// Of builds a Tuple from up to MaxArity values. More yields ErrArity.
func Of[T arrayx.Number](vals ...T) (Tuple[T], error) {
	if len(vals) > MaxArity {
		return Tuple[T]{}, fmt.Errorf("%d elements, max %d: %w", len(vals), MaxArity, ErrArity)
	}
	if len(vals) == 0 {
		return Tuple[T]{}, nil
	}
	return Tuple[T]{vals: arrayx.CopyOf(vals, len(vals))}, nil
}

// Arity returns the element count.
func (t Tuple[T]) Arity() int { return len(t.vals) }

// At returns the i-th element; ErrArity outside [0, Arity()).
func (t Tuple[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(t.vals) {
		return zero, fmt.Errorf("index %d outside [0, %d): %w", i, len(t.vals), ErrArity)
	}
	return t.vals[i], nil
}

// Min returns the smallest element; arrayx.ErrEmpty on the empty tuple.
func (t Tuple[T]) Min() (T, error) { return arrayx.Min(t.vals) }

// Max returns the largest element; arrayx.ErrEmpty on the empty tuple.
func (t Tuple[T]) Max() (T, error) { return arrayx.Max(t.vals) }

// Sum returns the element total; the empty tuple sums to zero.
func (t Tuple[T]) Sum() T { return arrayx.Sum(t.vals) }

// Average returns the arithmetic mean; arrayx.ErrEmpty on the empty tuple.
func (t Tuple[T]) Average() (float64, error) { return arrayx.Average(t.vals) }

// Median returns the lower-middle element of the sorted values;
// arrayx.ErrEmpty on the empty tuple.
func (t Tuple[T]) Median() (T, error) { return arrayx.Median(t.vals) }

// Contains reports whether v equals any element.
func (t Tuple[T]) Contains(v T) bool { return arrayx.Contains(t.vals, v) }

// Reversed returns a new tuple with the element order flipped.
func (t Tuple[T]) Reversed() Tuple[T] {
	if len(t.vals) == 0 {
		return Tuple[T]{}
	}
	r := arrayx.CopyOf(t.vals, len(t.vals))
	arrayx.Reverse(r)
	return Tuple[T]{vals: r}
}

// ToSlice returns the elements as a fresh slice.
func (t Tuple[T]) ToSlice() []T {
	return arrayx.CopyOf(t.vals, len(t.vals))
}

// String renders the tuple as "(v1, v2, ...)".
func (t Tuple[T]) String() string {
	s := "("
	for i, v := range t.vals {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", v)
	}
	return s + ")"
}
