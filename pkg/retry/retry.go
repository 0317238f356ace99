package retry

import (
	"context"
	"errors"
	"time"

	errs "swarmtrack/pkg/errors"
)

// Decision tells the fetch loop what to do with a failed request.
type Decision struct {
	// Retry indicates the same request should be re-issued after Delay.
	Retry bool
	// Delay is how long to wait before the next attempt.
	Delay time.Duration
}

// Policy maps error kinds to retry decisions. Rate-limit and network waits
// are fixed delays with no attempt cap: the same offset is re-requested until
// it succeeds or the context is cancelled. Everything else aborts.
type Policy struct {
	// RateLimitWait is the delay applied after an HTTP 429
	RateLimitWait time.Duration
	// NetworkWait is the delay applied after a transient network failure
	NetworkWait time.Duration
}

// NewPolicy creates a retry policy with the given fixed waits
func NewPolicy(rateLimitWait, networkWait time.Duration) *Policy {
	return &Policy{
		RateLimitWait: rateLimitWait,
		NetworkWait:   networkWait,
	}
}

// Decide returns the retry decision for an error
func (p *Policy) Decide(err error) Decision {
	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Type {
		case errs.ErrorTypeRateLimit:
			return Decision{Retry: true, Delay: p.RateLimitWait}
		case errs.ErrorTypeNetwork:
			return Decision{Retry: true, Delay: p.NetworkWait}
		}
	}
	return Decision{}
}

// Sleeper abstracts blocking waits so retry behavior can be tested without
// real sleeps.
type Sleeper interface {
	Sleep(ctx context.Context, delay time.Duration) error
}

type realSleeper struct{}

func (realSleeper) Sleep(ctx context.Context, delay time.Duration) error {
	return Wait(ctx, delay)
}

// NewSleeper returns a Sleeper backed by real timers
func NewSleeper() Sleeper {
	return realSleeper{}
}

// Wait waits for the specified duration or until context is cancelled
func Wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
