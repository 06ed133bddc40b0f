// ABOUTME: Pacing policies for spacing out sequential feed fetches and API calls
// ABOUTME: Provides fixed-delay and token-bucket pacers behind the Pacer interface

package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// FixedDelayPacer pauses for a constant duration on every call.
type FixedDelayPacer struct {
	delay time.Duration
	wait  func(ctx context.Context, d time.Duration) error
}

// NewFixedDelay returns a pacer that sleeps for delay on each Pause.
// A non-positive delay yields a pacer whose Pause returns immediately.
func NewFixedDelay(delay time.Duration) *FixedDelayPacer {
	return &FixedDelayPacer{
		delay: delay,
		wait:  contextSleep,
	}
}

// Pause blocks for the configured delay or until ctx is cancelled.
func (p *FixedDelayPacer) Pause(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	return p.wait(ctx, p.delay)
}

// contextSleep sleeps for d, waking early when ctx is cancelled.
func contextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TokenBucketPacer spaces calls with a rate limiter, allowing an
// initial burst before the steady interval applies.
type TokenBucketPacer struct {
	limiter *rate.Limiter
}

// NewTokenBucket returns a pacer that admits one call per interval
// after an initial burst. Burst values below 1 are raised to 1.
func NewTokenBucket(interval time.Duration, burst int) *TokenBucketPacer {
	if burst < 1 {
		burst = 1
	}
	return &TokenBucketPacer{
		limiter: rate.NewLimiter(rate.Every(interval), burst),
	}
}

// Pause blocks until the limiter admits the next call.
func (p *TokenBucketPacer) Pause(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NonePacer never pauses; used when pacing is disabled.
type NonePacer struct{}

// NewNone returns a pacer whose Pause is a no-op.
func NewNone() *NonePacer {
	return &NonePacer{}
}

// Pause returns immediately with the context's error, if any.
func (p *NonePacer) Pause(ctx context.Context) error {
	return ctx.Err()
}
