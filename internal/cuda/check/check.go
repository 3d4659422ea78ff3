// Package check reacts to CUDA runtime status codes.
//
// Every failure writes one diagnostic (enclosing function, call label,
// runtime message, numeric code) and then, depending on the method, exits the
// process, sets a caller flag, reports false, returns an *Error or panics
// with an *Error. Check is the general form; the others cover call sites
// whose own contract has no error return.
package check

import (
	"os"
	"runtime"
	"sync/atomic"

	"github.com/samcharles93/gpucheck/internal/cuda/cudart"
	"github.com/samcharles93/gpucheck/internal/logger"
)

// ExitCode is passed to the exit function by Must and its companions.
const ExitCode = 1

// Checker is immutable after New and safe for concurrent use.
type Checker struct {
	rt       cudart.Runtime
	log      logger.Logger
	exit     func(int)
	exitCode int
}

type Option func(*Checker)

// WithLogger sets where diagnostics are written.
func WithLogger(log logger.Logger) Option {
	return func(c *Checker) {
		if log != nil {
			c.log = log
		}
	}
}

// WithExit replaces os.Exit for the terminating variants.
func WithExit(exit func(int)) Option {
	return func(c *Checker) {
		if exit != nil {
			c.exit = exit
		}
	}
}

// WithExitCode overrides ExitCode. Zero and negative codes are ignored so a
// terminating failure never exits successfully.
func WithExitCode(code int) Option {
	return func(c *Checker) {
		if code > 0 {
			c.exitCode = code
		}
	}
}

func New(rt cudart.Runtime, opts ...Option) *Checker {
	if rt == nil {
		rt = cudart.Native()
	}
	c := &Checker{
		rt:       rt,
		log:      logger.Default(),
		exit:     os.Exit,
		exitCode: ExitCode,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var std atomic.Pointer[Checker]

// Default returns the process-wide Checker, built on cudart.Native on first use.
func Default() *Checker {
	if c := std.Load(); c != nil {
		return c
	}
	std.CompareAndSwap(nil, New(cudart.Native()))
	return std.Load()
}

// SetDefault replaces the process-wide Checker.
func SetDefault(c *Checker) {
	if c != nil {
		std.Store(c)
	}
}

// Runtime returns the runtime the Checker reports against.
func (c *Checker) Runtime() cudart.Runtime {
	return c.rt
}

// Must exits the process when st is not Success.
func (c *Checker) Must(st cudart.Status, label string) {
	c.must(st, label, 2)
}

// MustCall runs fn and applies Must to its status.
func (c *Checker) MustCall(label string, fn func() cudart.Status) {
	c.must(fn(), label, 2)
}

// Flag sets *failed and returns false when st is not Success. On success
// *failed is left untouched. Callers return their own failure value:
//
//	if !chk.Flag(st, "cudaMemcpy", &failed) {
//		return false
//	}
func (c *Checker) Flag(st cudart.Status, label string, failed *bool) bool {
	return c.flag(st, label, failed, 2)
}

// FlagCall runs fn and applies Flag to its status.
func (c *Checker) FlagCall(label string, failed *bool, fn func() cudart.Status) bool {
	return c.flag(fn(), label, failed, 2)
}

// OK reports whether st is Success, writing the diagnostic when it is not.
// It serves call sites that simply return on failure.
func (c *Checker) OK(st cudart.Status, label string) bool {
	return c.check(st, label, 2) == nil
}

// OKCall runs fn and applies OK to its status.
func (c *Checker) OKCall(label string, fn func() cudart.Status) bool {
	return c.check(fn(), label, 2) == nil
}

// Check returns an *Error when st is not Success.
func (c *Checker) Check(st cudart.Status, label string) error {
	return c.check(st, label, 2)
}

// Call runs fn and applies Check to its status.
func (c *Checker) Call(label string, fn func() cudart.Status) error {
	return c.check(fn(), label, 2)
}

// Raise panics with an *Error when st is not Success.
func (c *Checker) Raise(st cudart.Status, label string) {
	c.raise(st, label, 2)
}

// RaiseCall runs fn and applies Raise to its status.
func (c *Checker) RaiseCall(label string, fn func() cudart.Status) {
	c.raise(fn(), label, 2)
}

// The skip argument of the helpers below counts frames from the helper to
// the function that should be named in the diagnostic; 1 is its caller.

func (c *Checker) must(st cudart.Status, label string, skip int) {
	if st.OK() {
		return
	}
	c.fail(st, label, skip+1)
	c.exit(c.exitCode)
}

func (c *Checker) flag(st cudart.Status, label string, failed *bool, skip int) bool {
	if st.OK() {
		return true
	}
	c.fail(st, label, skip+1)
	if failed != nil {
		*failed = true
	}
	return false
}

func (c *Checker) check(st cudart.Status, label string, skip int) error {
	if st.OK() {
		return nil
	}
	return c.fail(st, label, skip+1)
}

func (c *Checker) raise(st cudart.Status, label string, skip int) {
	if st.OK() {
		return
	}
	panic(c.fail(st, label, skip+1))
}

func (c *Checker) fail(st cudart.Status, label string, skip int) *Error {
	e := &Error{
		Status:  st,
		Call:    label,
		Func:    callerName(skip + 1),
		Message: c.rt.ErrorString(st),
	}
	c.log.Error("cuda call failed",
		"func", e.Func,
		"call", e.Call,
		"error", e.Message,
		"code", int(e.Status),
	)
	return e
}

func callerName(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip+1, pcs[:]) == 0 {
		return "unknown"
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.Function == "" {
		return "unknown"
	}
	return frame.Function
}
