package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrExhausted marks a write that failed on every retry attempt.
var ErrExhausted = errors.New("storage retries exhausted")

// Policy bounds retries for storage writes: a fixed attempt count with a
// fixed delay between attempts. There is no wall-clock timeout; the two
// fields bound the worst case.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultPolicy is two attempts with a flat 500ms backoff.
var DefaultPolicy = Policy{Attempts: 2, Delay: 500 * time.Millisecond}

// Retry runs op until it succeeds or the attempt budget is spent. The
// exhausted case wraps ErrExhausted around the final failure.
func Retry(p Policy, op func() error) error {
	if p.Attempts < 1 {
		p.Attempts = 1
	}
	var err error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if attempt > 1 {
			log.Debug().Int("attempt", attempt).Err(err).Msg("retrying storage write")
			time.Sleep(p.Delay)
		}
		if err = op(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrExhausted, p.Attempts, err)
}
