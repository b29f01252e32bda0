package breaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed state = iota + 1
	open
	halfOpen
)

var ErrOpen = errors.New("circuit breaker is open")

// CircuitBreaker guards calls to a flaky collaborator. It tracks the failure
// rate over a sliding window of recent calls; past the threshold it fails
// fast, then probes with a limited number of calls after a cooldown.
type CircuitBreaker struct {
	mu sync.Mutex

	state           state
	window          []bool
	pos             int
	threshold       float64
	cooldown        time.Duration
	lastAttemptedAt time.Time

	// consecutive successes needed in half-open before closing again
	recovery     int
	successCount int
}

func New(windowSize int, cooldown time.Duration, threshold float64, recovery int) *CircuitBreaker {
	return &CircuitBreaker{
		state:     closed,
		window:    make([]bool, windowSize),
		cooldown:  cooldown,
		threshold: threshold,
		recovery:  recovery,
	}
}

func (cb *CircuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == open {
		if time.Since(cb.lastAttemptedAt) <= cb.cooldown {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.state = halfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.window[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.window)

	if cb.state == halfOpen {
		if err != nil {
			cb.trip()
		} else {
			cb.successCount++
			if cb.successCount > cb.recovery {
				cb.Reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range cb.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.window)) >= cb.threshold {
		cb.trip()
	}
	return err
}

func (cb *CircuitBreaker) trip() {
	cb.state = open
	cb.successCount = 0
	cb.lastAttemptedAt = time.Now()
}

func (cb *CircuitBreaker) Reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.pos = 0
	cb.successCount = 0
	cb.state = closed
}
