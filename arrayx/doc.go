// SPDX-License-Identifier: MIT

// Package arrayx provides the small slice utilities the matrix and tuple
// packages are built on: numeric reductions (Min/Max/Sum/Average/Median),
// copy/fill/reverse helpers, deep equality over 2D slices, and bounds-checked
// range validation.
//
// All helpers are pure: none retains a reference to its input beyond the
// call, and every returned slice is freshly allocated unless documented
// otherwise.
package arrayx
