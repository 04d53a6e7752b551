// SPDX-License-Identifier: MIT

// Package perftable: functional configuration for BuildAll.
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors that panic on nonsensical values (programmer error).
package perftable

import "runtime"

// DefaultWorkers is the worker count used when WithWorkers is not given:
// runtime.GOMAXPROCS(0) at call time.
const DefaultWorkers = 0

const panicWorkersInvalid = "perftable: WithWorkers: n must be >= 1"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	workers int // > 0 once resolved
}

// WithWorkers bounds the number of records BuildAll processes at once.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
