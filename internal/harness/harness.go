// Package harness runs the directed functional tests behind libmatrix-test.
package harness

import (
	"fmt"
	"io"
	"time"
)

// Options control a test run.
type Options struct {
	Verbose bool // write intermediate matrices to the log
}

// Test is one named functional check. Run returns a non-nil error on failure
// and may write diagnostics to log when Options.Verbose is set.
type Test struct {
	Name string
	Run  func(opts Options, log io.Writer) error
}

// Result is the outcome of a single Test.
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Pass reports whether the test succeeded.
func (r Result) Pass() bool { return r.Err == nil }

// Run executes tests in order, calling report after each one. A panicking
// test is recorded as a failure and the run continues.
func Run(tests []Test, opts Options, log io.Writer, report func(Result)) []Result {
	results := make([]Result, 0, len(tests))
	for _, t := range tests {
		start := time.Now()
		err := runOne(t, opts, log)
		r := Result{Name: t.Name, Err: err, Duration: time.Since(start)}
		results = append(results, r)
		if report != nil {
			report(r)
		}
	}
	return results
}

func runOne(t Test, opts Options, log io.Writer) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	if !opts.Verbose {
		log = io.Discard
	}
	return t.Run(opts, log)
}

// Failed returns the number of failed results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Pass() {
			n++
		}
	}
	return n
}
