package services

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy bounds redelivery of failed queue entries.
//
// After the n-th failure an entry waits Delay(n) before the next attempt.
// Once MaxRetries failures are recorded the entry is parked until the user
// resets or purges it. n counts failures since the last reset, see
// models.QueuedOperation.Attempts.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
	Max        time.Duration
}

// Exhausted reports whether an entry with attempts failures is parked.
func (p RetryPolicy) Exhausted(attempts int) bool {
	return p.MaxRetries > 0 && attempts >= p.MaxRetries
}

// Delay is the wait after the attempts-th failure: Base, 2*Base, 4*Base...
// capped at Max. A zero Base disables backoff.
func (p RetryPolicy) Delay(attempts int) time.Duration {
	if p.Base <= 0 || attempts <= 0 {
		return 0
	}

	b := retry.NewExponential(p.Base)
	if p.Max > 0 {
		b = retry.WithCappedDuration(p.Max, b)
	}

	var d time.Duration
	for i := 0; i < attempts; i++ {
		next, stop := b.Next()
		if stop {
			break
		}
		d = next
		if p.Max > 0 && d >= p.Max {
			break
		}
	}
	return d
}
