// SPDX-License-Identifier: MIT

package parallel

import "runtime"

// DefaultThreshold is the element count at or above which Auto mode chooses
// parallel execution.
const DefaultThreshold = 8192

// Mode controls whether bulk operations run data-parallel.
type Mode int

const (
	// Auto parallelizes only when the operation covers at least
	// Policy.Threshold elements and more than one worker is available.
	Auto Mode = iota
	// On forces parallel execution regardless of size.
	On
	// Off forces sequential execution regardless of size.
	Off
)

// String returns the mode name for logs and test failure messages.
func (m Mode) String() string {
	switch m {
	case On:
		return "On"
	case Off:
		return "Off"
	default:
		return "Auto"
	}
}

// Policy is the execution policy consulted by every bulk operation.
// The zero value is NOT ready to use; construct via Default or Gather.
type Policy struct {
	// Mode selects parallel, sequential, or size-based execution.
	Mode Mode
	// Threshold is the minimum element count for Auto mode to parallelize.
	Threshold int
	// Workers caps the number of worker goroutines for one operation.
	Workers int
}

// Default returns the policy used when callers pass no options:
// Auto mode, DefaultThreshold, one worker per available CPU.
func Default() Policy {
	return Policy{
		Mode:      Auto,
		Threshold: DefaultThreshold,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// ShouldParallelize reports whether an operation over count elements should
// fan out under this policy. Off always wins over count; On always wins
// except when no second worker exists.
func (p Policy) ShouldParallelize(count int) bool {
	if p.Workers <= 1 {
		return false
	}
	switch p.Mode {
	case On:
		return true
	case Off:
		return false
	default:
		return count >= p.Threshold
	}
}

// WithMode returns a copy of the policy with the mode replaced.
// The receiver is unchanged, so "run with mode X, then restore" is simply
// passing the copy down one call chain.
func (p Policy) WithMode(m Mode) Policy {
	p.Mode = m
	return p
}
