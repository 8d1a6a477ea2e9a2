// SPDX-License-Identifier: MIT

// Package gridmat is your in-memory toolkit for building, reshaping,
// and combining generic 2D grids — from single-matrix transformations to
// multi-matrix zips with tunable parallel execution.
//
// 🚀 What is gridmat?
//
//	A modern, generics-first library that brings together:
//		• Core container: Matrix[T] for any element type, rectangular by construction
//		• Transformations: transpose, rotations, flips, reshape, extend, tiling
//		• Traversals: row/column/diagonal iterators, neighbor queries
//		• Combinators: ZipWith/Zip/ZipN over aligned grids, a multiply index driver
//		• Execution control: per-call parallel policy (Auto/On/Off, workers, threshold)
//		• Companions: numeric tuples and primitive-slice helpers
//
// ✨ Why choose gridmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable contracts – sentinel errors, no panics on user input
//   - Pure data structures – library packages stay log-free and lock-free
//   - Tunable – opt into goroutine fan-out per call, never via global state
//
// Under the hood, everything is organized under five subpackages:
//
//	arrayx/   — primitive-slice reductions & helpers shared by the rest
//	matrix/   — the generic Matrix[T] container and its transformations
//	matrixes/ — multi-matrix zips and the generalized multiply driver
//	parallel/ — execution policy and the chunked grid runner
//	tuple/    — pairs, triples & fixed-arity numeric tuples
//
// Quick example:
//
//	m, _ := matrix.Of(
//		[]int{1, 2, 3},
//		[]int{4, 5, 6},
//		[]int{7, 8, 9},
//	)
//	r := m.Rotate90()            // [[7,4,1] [8,5,2] [9,6,3]]
//	sum, _ := matrixes.ZipWith(m, r, func(a, b int) int { return a + b })
//	_ = sum
//
// Start with matrix.Of or matrix.Repeat, reach for matrixes when several
// grids line up, and pass parallel.WithMode(parallel.On) when the work is
// big enough to fan out.
package gridmat
