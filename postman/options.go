// SPDX-License-Identifier: MIT
//
// options.go — functional options for Solve.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input;
//     Solve itself never panics.
//   • Defaults come from DefaultOptions; no package-level mutable state.
//   • The logger defaults to a discarding logrus instance: the library is
//     silent unless a caller wires its own logger.

package postman

import (
	"fmt"
	"io"
	"runtime"

	log "github.com/sirupsen/logrus"
)

// Options configures Solve.
//
//	Start          – vertex the circuit begins and ends at (default 0).
//	Workers        – goroutines for the shortest-path table (default GOMAXPROCS).
//	MaxOddVertices – refuse inputs with more odd vertices (0 = unlimited).
//	Extractor      – circuit algorithm (default FleuryExtractor).
//	Logger         – receives Debug traces of each phase.
type Options struct {
	Start          int
	Workers        int
	MaxOddVertices int
	Extractor      Extractor
	Logger         log.FieldLogger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the settings Solve starts from before applying options.
func DefaultOptions() Options {
	return Options{
		Start:          0,
		Workers:        runtime.GOMAXPROCS(0),
		MaxOddVertices: 0,
		Extractor:      FleuryExtractor,
		Logger:         discardLogger(),
	}
}

// WithStart sets the start vertex. Panics if v < 0.
func WithStart(v int) Option {
	if v < 0 {
		panic(fmt.Sprintf("postman: WithStart(%d)", v))
	}
	return func(o *Options) {
		o.Start = v
	}
}

// WithWorkers bounds the goroutines computing shortest paths. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("postman: WithWorkers(%d)", n))
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxOddVertices makes Solve fail with ErrTooManyOddVertices instead of
// enumerating matchings of more than k odd vertices. 0 disables the guard;
// k < 0 panics.
func WithMaxOddVertices(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("postman: WithMaxOddVertices(%d)", k))
	}
	return func(o *Options) {
		o.MaxOddVertices = k
	}
}

// WithExtractor selects the circuit algorithm. Panics on unknown values.
func WithExtractor(x Extractor) Option {
	if x != FleuryExtractor && x != HierholzerExtractor {
		panic(fmt.Sprintf("postman: WithExtractor(%d)", int(x)))
	}
	return func(o *Options) {
		o.Extractor = x
	}
}

// WithLogger routes phase traces to l. Panics on nil.
func WithLogger(l log.FieldLogger) Option {
	if l == nil {
		panic("postman: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// discardLogger returns a logrus logger that writes nowhere.
func discardLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)

	return l
}
