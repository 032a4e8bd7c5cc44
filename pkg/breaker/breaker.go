package breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

var ErrOpen = errors.New("circuit breaker is open")

// Breaker guards calls to a flaky dependency. It opens once the failure
// share over the tracked window reaches the threshold, rejects calls for
// the cooldown period, then probes in half-open until enough consecutive
// successes close it again.
type Breaker struct {
	mu sync.Mutex

	state State
	// failure window, ring buffer
	window []bool
	pos    int
	// failure share that opens the breaker
	threshold float64
	// how long the breaker stays open before probing
	cooldown time.Duration
	openedAt time.Time
	// consecutive successes required to close from half-open
	recovery     int
	successCount int
}

func New(windowSize int, cooldown time.Duration, threshold float64, recovery int) *Breaker {
	return &Breaker{
		state:     Closed,
		window:    make([]bool, windowSize),
		cooldown:  cooldown,
		threshold: threshold,
		recovery:  recovery,
	}
}

func (b *Breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == Open {
		if time.Since(b.openedAt) <= b.cooldown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = HalfOpen
		b.successCount = 0
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.window[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.window)

	if b.state == HalfOpen {
		if err != nil {
			b.state = Open
			b.successCount = 0
			b.openedAt = time.Now()
		} else {
			b.successCount++
			if b.successCount > b.recovery {
				b.reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range b.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(b.window)) >= b.threshold {
		b.state = Open
		b.successCount = 0
		b.openedAt = time.Now()
	}

	return err
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) reset() {
	for i := range b.window {
		b.window[i] = false
	}
	b.pos = 0
	b.successCount = 0
	b.state = Closed
}
