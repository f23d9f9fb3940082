package realtime

import "time"

const (
	DefaultReconnectBaseDelay = time.Second
	DefaultReconnectMaxDelay  = 30 * time.Second
)

// Backoff yields min(Base * 2^attempt, Max) and advances the attempt counter.
type Backoff struct {
	Base    time.Duration
	Max     time.Duration
	attempt int
}

func NewBackoff(base, max time.Duration) *Backoff {
	if base <= 0 {
		base = DefaultReconnectBaseDelay
	}
	if max < base {
		max = base
	}
	return &Backoff{Base: base, Max: max}
}

func (b *Backoff) Delay(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= b.Max {
			return b.Max
		}
	}
	if d > b.Max {
		return b.Max
	}
	return d
}

// Next returns the delay for the current attempt, then advances.
func (b *Backoff) Next() time.Duration {
	d := b.Delay(b.attempt)
	b.attempt++
	return d
}

func (b *Backoff) Reset() { b.attempt = 0 }

func (b *Backoff) Attempt() int { return b.attempt }
