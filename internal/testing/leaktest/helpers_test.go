package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures instead of failing the outer test
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(50 * time.Millisecond)
	}()

	checker.Check(0)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	go func() {
		<-done
	}()

	checker.Check(0)
	assert.True(t, rec.failed)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	defer close(done)
	go func() {
		<-done
	}()

	checker.Check(2)
}

func TestMemoryChecker_SmallAllocation(t *testing.T) {
	checker := NewMemoryChecker(t)
	_ = make([]byte, 1024)
	checker.Check(1.0)
}

func TestMemoryChecker_DetectsRetainedHeap(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewMemoryChecker(rec)

	retained := make([]byte, 8<<20)
	for i := range retained {
		retained[i] = byte(i)
	}

	checker.Check(1.0)
	runtime.KeepAlive(retained)
	assert.True(t, rec.failed)
}

func TestCheckNoGoroutineLeak_Success(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestWaitForGoroutines_Success(t *testing.T) {
	before := runtime.NumGoroutine()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(10 * time.Millisecond)
		}()
	}

	WaitForGoroutines(t, before, time.Second)
	wg.Wait()
}
