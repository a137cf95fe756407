package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker trips after a run of consecutive failures and lets a
// bounded number of probe requests through once the open window lapses.
type CircuitBreaker struct {
	mu sync.Mutex

	threshold   int
	openWindow  time.Duration
	probeBudget int

	state    CircuitState
	failures int
	opened   time.Time
	inFlight int
	probesOK int
	now      func() time.Time
}

func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration, halfOpenMaxReq int) *CircuitBreaker {
	if failureThreshold < 1 {
		failureThreshold = 1
	}
	if openTimeout <= 0 {
		openTimeout = 15 * time.Second
	}
	if halfOpenMaxReq < 1 {
		halfOpenMaxReq = 1
	}

	return &CircuitBreaker{
		threshold:   failureThreshold,
		openWindow:  openTimeout,
		probeBudget: halfOpenMaxReq,
		state:       CircuitStateClosed,
		now:         time.Now,
	}
}

// refresh promotes an expired open state to half-open. Caller holds mu.
func (b *CircuitBreaker) refresh(now time.Time) {
	if b.state == CircuitStateOpen && now.Sub(b.opened) >= b.openWindow {
		b.state = CircuitStateHalfOpen
		b.inFlight = 0
		b.probesOK = 0
	}
}

func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refresh(b.now())

	switch b.state {
	case CircuitStateOpen:
		return ErrCircuitOpen
	case CircuitStateHalfOpen:
		if b.inFlight >= b.probeBudget {
			return ErrCircuitOpen
		}
		b.inFlight++
	}
	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		if b.inFlight > 0 {
			b.inFlight--
		}
		b.probesOK++
		if b.probesOK >= b.probeBudget && b.inFlight == 0 {
			b.state = CircuitStateClosed
			b.failures = 0
			b.probesOK = 0
			b.opened = time.Time{}
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.threshold {
			b.trip()
		}
	case CircuitStateHalfOpen:
		if b.inFlight > 0 {
			b.inFlight--
		}
		b.trip()
	case CircuitStateOpen:
		// Failures while open extend the window.
		b.opened = b.now()
	}
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.opened) >= b.openWindow {
		return CircuitStateHalfOpen
	}
	return b.state
}

// trip opens the circuit. Caller holds mu.
func (b *CircuitBreaker) trip() {
	b.state = CircuitStateOpen
	b.opened = b.now()
	b.inFlight = 0
	b.probesOK = 0
}
