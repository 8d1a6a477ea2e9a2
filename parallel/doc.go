// SPDX-License-Identifier: MIT

// Package parallel decides and drives data-parallel execution of bulk
// grid operations.
//
// The package provides:
//
//   - Policy, an explicit tri-state execution policy (On / Off / Auto) with a
//     size threshold. A Policy is a plain value threaded through call sites;
//     there is no process- or goroutine-scoped ambient state. Temporarily
//     overriding the mode is a value copy (see Policy.WithMode), which makes
//     the save/restore contract of a scoped override trivially correct.
//   - Run, which invokes a callback exactly once per (row, column) coordinate
//     of a rectangular region, sequentially or fanned out over worker
//     goroutines. The smaller extent becomes the outer loop so that parallel
//     dispatch pays its overhead on the cheaper dimension.
//   - ForRange, the one-dimensional analogue used by triple-loop drivers.
//
// When a callback panics inside a worker, the first recovered panic is
// re-raised on the calling goroutine after all workers have joined, so a
// failing user function surfaces the same way it would sequentially.
package parallel
