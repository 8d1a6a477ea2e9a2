// SPDX-License-Identifier: MIT

package parallel

// Option adjusts a Policy. Bulk operations across the module accept
// ...Option so a caller can tune execution per call instead of mutating
// shared state.
type Option func(*Policy)

// WithMode sets the execution mode.
func WithMode(m Mode) Option {
	return func(p *Policy) { p.Mode = m }
}

// WithThreshold sets the Auto-mode element-count threshold.
// Panics on a negative threshold (programmer error, same contract as the
// validated WithX constructors elsewhere in this module).
func WithThreshold(n int) Option {
	if n < 0 {
		panic("parallel: WithThreshold requires n >= 0")
	}
	return func(p *Policy) { p.Threshold = n }
}

// WithWorkers caps worker goroutines for one operation.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("parallel: WithWorkers requires n >= 1")
	}
	return func(p *Policy) { p.Workers = n }
}

// Gather applies opts on top of Default and returns the resulting Policy.
func Gather(opts ...Option) Policy {
	p := Default()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
