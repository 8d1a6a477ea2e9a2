// SPDX-License-Identifier: MIT

// Package tuple provides small fixed-arity value groups: generic Pair and
// Triple for heterogeneous elements, and an immutable numeric Tuple of
// arity 0 to 9 with slice-style reductions (Min, Max, Sum, Average, Median)
// backed by the arrayx helpers.
//
// Tuples are values: methods never mutate the receiver, Reversed returns a
// new tuple, and ToSlice hands out a fresh copy.
package tuple
