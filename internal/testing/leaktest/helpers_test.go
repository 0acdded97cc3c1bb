package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)

	// Nothing started, nothing should leak

	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	// Park one goroutine on purpose, within tolerance
	done := make(chan struct{})
	go func() {
		<-done
	}()

	time.Sleep(20 * time.Millisecond)

	checker.Check(2)

	close(done)
}

func TestMemoryChecker_SmallAllocation(t *testing.T) {
	checker := NewMemoryChecker(t)

	// Small allocation that the GC reclaims
	_ = make([]byte, 1024)

	checker.Check(1.0)
}

func TestCheckNoGoroutineLeak_Success(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(1 * time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestCheckNoMemoryLeak_Success(t *testing.T) {
	CheckNoMemoryLeak(t, 1.0, func() {
		data := make([]byte, 1024)
		_ = data
	})
}

func TestWaitForGoroutines_Success(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(5)

	before := runtime.NumGoroutine()

	for i := 0; i < 5; i++ {
		go func() {
			defer wg.Done()
			time.Sleep(10 * time.Millisecond)
		}()
	}

	wg.Wait()

	// wg.Wait returns before the goroutines fully exit
	WaitForGoroutines(t, before, 1*time.Second)
}

func TestGoroutineChecker_Integration(t *testing.T) {
	t.Run("goroutines cleaned up after fan-out", func(t *testing.T) {
		checker := NewGoroutineChecker(t)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(5 * time.Millisecond)
			}()
		}

		wg.Wait()
		checker.Check(0)
	})
}
