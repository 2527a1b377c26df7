// Package leaktest holds test helpers that catch goroutine and heap growth
// left behind by long-lived components such as the SSE hub and the stores.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settle bounds how long Check waits for goroutines to exit
const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker helps detect goroutine leaks
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if, after waiting up to settleTimeout, more than
// tolerance goroutines remain on top of those counted at construction.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	limit := g.before + tolerance
	after := waitForCount(limit, settleTimeout)
	if after > limit {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// MemoryChecker helps detect heap growth across repeated operations
type MemoryChecker struct {
	before uint64
	t      testing.TB
}

// NewMemoryChecker creates a new checker and records the live heap
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{before: liveHeap(), t: t}
}

// Check fails the test if the live heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	after := liveHeap()
	growthMB := (float64(after) - float64(m.before)) / 1024 / 1024
	if growthMB > maxGrowthMB {
		m.t.Errorf("Potential memory leak: before=%.2fMB, after=%.2fMB, growth=%.2fMB (max=%.2fMB)",
			float64(m.before)/1024/1024, float64(after)/1024/1024, growthMB, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines are running
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if n := waitForCount(target, timeout); n > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", n, target)
	}
}

func waitForCount(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
