package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/statuseffect"
)

// EffectExpiryWorker runs a nightly sweep at 00:00 UTC+7 that deactivates
// status effects past their end time. The ledger already expires effects
// lazily on write; the sweep covers players with no ledger activity so their
// effect lists don't accumulate stale rows.
type EffectExpiryWorker struct {
	effectService statuseffect.Service
	timer         *time.Timer
	shutdown      chan struct{}
	wg            sync.WaitGroup
	mu            sync.Mutex
}

// NewEffectExpiryWorker creates a new EffectExpiryWorker
func NewEffectExpiryWorker(effectService statuseffect.Service) *EffectExpiryWorker {
	return &EffectExpiryWorker{
		effectService: effectService,
		shutdown:      make(chan struct{}),
	}
}

// Start initializes the worker and schedules the first sweep
func (w *EffectExpiryWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until the next 00:00 UTC+7 and schedules
// the sweep
func (w *EffectExpiryWorker) scheduleNext() {
	duration := timeUntilNextSweep()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent "tight loop" rescheduling caused by early triggers
	if duration > 1*time.Hour {
		// Stage 1: Long-range (Standby). Wake up 45 minutes before the sweep.
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		nextCheck := time.Now().UTC().Add(waitDuration)
		log.Info(LogMsgEffectSweepStandby, "next_check_at", nextCheck)
		return
	}

	// Stage 2: Final approach. Schedule the actual sweep.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Jitter protection: if the timer triggered early (jitter > 10s),
		// simply reschedule for the remaining time.
		// If duration is > 23h, it means we are actually on time or slightly LATE.
		rem := timeUntilNextSweep()
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeSweep()
		w.scheduleNext() // This will now calculate ~24h and jump back to Stage 1
	})
	w.mu.Unlock()

	nextSweep := time.Now().UTC().Add(duration)
	log.Info(LogMsgEffectSweepApproach, "next_sweep_at", nextSweep)
}

// executeSweep performs the expiry sweep in a tracked goroutine
func (w *EffectExpiryWorker) executeSweep() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgEffectSweepStarting)

		affected, err := w.effectService.ExpireStale(ctx)
		if err != nil {
			log.Error(LogMsgEffectSweepFailed, "error", err)
			return
		}

		log.Info(LogMsgEffectSweepCompleted, "effects_expired", affected)
	}()
}

// Shutdown gracefully shuts down the effect expiry worker.
// Cancels the pending timer and waits for any in-flight sweeps to complete.
func (w *EffectExpiryWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down effect expiry worker")

	// Signal shutdown to timer callback (safe to close once)
	select {
	case <-w.shutdown:
		// Already closed, nothing to do
	default:
		close(w.shutdown)
	}

	// Cancel pending timer
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending effect expiry sweep")
	}
	w.mu.Unlock()

	// Wait for any in-flight sweeps to complete
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Effect expiry worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Effect expiry worker shutdown timeout, a sweep may still be running")
		return ctx.Err()
	}
}

// timeUntilNextSweep calculates the duration until the next 00:00 UTC+7
func timeUntilNextSweep() time.Duration {
	location := time.FixedZone("UTC+7", 7*60*60)
	now := time.Now().In(location)
	nextSweep := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0, location,
	)
	if !nextSweep.After(now) {
		nextSweep = nextSweep.AddDate(0, 0, 1)
	}
	return nextSweep.Sub(now)
}
