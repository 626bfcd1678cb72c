// Package leaktest holds goroutine leak checks for tests that start pools or
// background workers.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultTimeout bounds how long Check waits for goroutines to wind down.
const DefaultTimeout = time.Second

// GoroutineChecker records a goroutine baseline and later compares against it.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Before returns the recorded baseline.
func (g *GoroutineChecker) Before() int { return g.before }

// Check fails the test if more than tolerance goroutines outlive the baseline
// after waiting up to timeout.
func (g *GoroutineChecker) Check(tolerance int, timeout time.Duration) {
	g.t.Helper()

	after := settle(g.before+tolerance, timeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// Check records a baseline and returns the verification to defer:
//
//	defer leaktest.Check(t)()
func Check(t testing.TB) func() {
	t.Helper()
	checker := NewGoroutineChecker(t)
	return func() {
		t.Helper()
		checker.Check(0, DefaultTimeout)
	}
}

// settle polls until the goroutine count drops to target or timeout passes,
// returning the last observed count.
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(10 * time.Millisecond)
	}
}
