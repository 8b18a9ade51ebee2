package realtime

import "time"

// Backoff computes capped exponential retry delays.
type Backoff struct {
	Base       time.Duration
	Max        time.Duration
	MaxRetries int
}

// Delay returns the wait before retry number attempt (1-based): Base, 2*Base, 4*Base, ... capped at Max.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := b.Base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if b.Max > 0 && delay >= b.Max {
			return b.Max
		}
	}

	if b.Max > 0 && delay > b.Max {
		return b.Max
	}

	return delay
}

// Exhausted reports whether failure number attempt is past the retry budget.
func (b Backoff) Exhausted(attempt int) bool {
	return b.MaxRetries > 0 && attempt > b.MaxRetries
}

// Timer is a cancellable scheduled call.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed calls.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
