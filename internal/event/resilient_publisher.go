package event

import (
	"context"
	"sync"
	"time"

	"github.com/rakandito/ClassQuest_Go/internal/logger"
)

// retryEntry is a failed publish waiting in the retry queue
type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
	nextTry  time.Time
}

// ResilientPublisher wraps an event Bus with a bounded retry queue and a
// dead-letter file. Callers never see publish failures: the first attempt
// happens inline, failed events are queued for exponential-backoff retries by
// a background worker, and events that exhaust their retries (or overflow the
// queue) are written to the dead-letter file for operator replay.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

// NewResilientPublisher opens the dead-letter file and starts the retry worker.
// Non-positive maxRetries or retryDelay fall back to the package defaults.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	if maxRetries <= 0 {
		maxRetries = RetryMaxAttempts
	}
	if retryDelay <= 0 {
		retryDelay = RetryInitialDelaySeconds * time.Second
	}

	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// PublishWithRetry attempts one inline publish and queues the event for
// background retries on failure. It never reports an error to the caller.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	p.enqueue(retryEntry{
		event:    event,
		attempts: 1,
		lastErr:  err,
		nextTry:  time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
	})
}

// Publish satisfies the Bus interface. Failures are absorbed by the retry
// machinery, so the returned error is always nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
			logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
		}
	}
}

// retryWorker drains the retry queue until shutdown. Entries whose backoff has
// not elapsed are slept on; the queue preserves arrival order.
func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.processRetry(entry)
		case <-p.shutdown:
			p.drainQueue()
			return
		}
	}
}

func (p *ResilientPublisher) processRetry(entry retryEntry) {
	if wait := time.Until(entry.nextTry); wait > 0 {
		select {
		case <-time.After(wait):
		case <-p.shutdown:
			// Shutdown in progress, attempt immediately so the drain sees
			// as few pending entries as possible
		}
	}

	err := p.bus.Publish(context.Background(), entry.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type,
			"attempt", entry.attempts)
		return
	}

	entry.lastErr = err

	if entry.attempts >= p.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted,
			"event_type", entry.event.Type,
			"attempts", entry.attempts,
			"error", err)
		if werr := p.deadLetter.Write(entry.event, entry.attempts, err); werr != nil {
			logger.Error(LogMsgDeadLetterWriteFailed, "error", werr)
		}
		return
	}

	entry.attempts++
	entry.nextTry = time.Now().Add(CalculateRetryDelay(p.retryDelay, entry.attempts))

	logger.Warn(LogMsgEventRetryFailed,
		"event_type", entry.event.Type,
		"attempt", entry.attempts,
		"error", err)

	p.enqueue(entry)
}

// drainQueue gives every queued entry one final attempt, dead-lettering
// whatever still fails. Runs on the worker goroutine during shutdown.
func (p *ResilientPublisher) drainQueue() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			if err := p.bus.Publish(context.Background(), entry.event); err != nil {
				if werr := p.deadLetter.Write(entry.event, entry.attempts, err); werr != nil {
					logger.Error(LogMsgDeadLetterWriteFailedS, "error", werr)
				}
				logger.Warn(LogMsgEventDroppedShutdown, "event_type", entry.event.Type)
			}
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "drained", drained)
			}
			return
		}
	}
}

// Shutdown stops the retry worker, drains the queue, and closes the
// dead-letter file. Returns the context error when the drain exceeds the
// deadline.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	return p.deadLetter.Close()
}
