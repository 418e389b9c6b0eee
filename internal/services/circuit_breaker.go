package services

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// CircuitBreakerState is exported as the circuit_breaker_state gauge value.
type CircuitBreakerState int

const (
	StateClosed CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

var circuitBreakerStateNames = map[CircuitBreakerState]string{
	StateClosed:   "closed",
	StateOpen:     "open",
	StateHalfOpen: "half_open",
}

func (s CircuitBreakerState) String() string {
	if name, ok := circuitBreakerStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// CircuitBreakerConfig: MaxFailures consecutive failures open the breaker, it probes again
// after ResetTimeout and closes after HalfOpenSuccesses successful probes.
type CircuitBreakerConfig struct {
	MaxFailures       int
	ResetTimeout      time.Duration
	HalfOpenSuccesses int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:       5,
		ResetTimeout:      30 * time.Second,
		HalfOpenSuccesses: 3,
	}
}

// StateChangeFunc is called outside the breaker lock whenever the state moves.
type StateChangeFunc func(from, to CircuitBreakerState)

// CircuitBreaker guards an outbound collaborator shared by concurrent workers.
type CircuitBreaker struct {
	mu            sync.Mutex
	config        CircuitBreakerConfig
	state         CircuitBreakerState
	failures      int
	probes        int
	openedAt      time.Time
	now           func() time.Time
	onStateChange StateChangeFunc
}

func NewCircuitBreaker(config CircuitBreakerConfig) CircuitBreakerInterface {
	return NewCircuitBreakerWithHook(config, nil)
}

func NewCircuitBreakerWithHook(config CircuitBreakerConfig, onStateChange StateChangeFunc) CircuitBreakerInterface {
	return newCircuitBreaker(config, onStateChange, time.Now)
}

func newCircuitBreaker(config CircuitBreakerConfig, onStateChange StateChangeFunc, now func() time.Time) *CircuitBreaker {
	if config.MaxFailures <= 0 {
		config.MaxFailures = 1
	}
	if config.HalfOpenSuccesses <= 0 {
		config.HalfOpenSuccesses = 1
	}
	return &CircuitBreaker{
		config:        config,
		now:           now,
		onStateChange: onStateChange,
	}
}

// IsOpen reports whether calls must be skipped. An open breaker whose reset timeout
// has passed turns half-open and lets the caller through as a probe.
func (cb *CircuitBreaker) IsOpen() bool {
	state := cb.update(func() {
		if cb.state == StateOpen && cb.now().Sub(cb.openedAt) > cb.config.ResetTimeout {
			cb.moveTo(StateHalfOpen)
		}
	})
	return state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.update(func() {
		switch cb.state {
		case StateClosed:
			cb.failures = 0
		case StateHalfOpen:
			cb.probes++
			if cb.probes >= cb.config.HalfOpenSuccesses {
				cb.moveTo(StateClosed)
			}
		}
	})
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.update(func() {
		switch cb.state {
		case StateClosed:
			cb.failures++
			if cb.failures >= cb.config.MaxFailures {
				cb.moveTo(StateOpen)
			}
		case StateHalfOpen:
			cb.moveTo(StateOpen)
		case StateOpen:
			cb.openedAt = cb.now()
		}
	})
}

func (cb *CircuitBreaker) GetState() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.update(func() { cb.moveTo(StateClosed) })
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}

// update runs fn under the lock and fires the hook once the lock is released.
func (cb *CircuitBreaker) update(fn func()) CircuitBreakerState {
	cb.mu.Lock()
	from := cb.state
	fn()
	to := cb.state
	cb.mu.Unlock()

	if from != to && cb.onStateChange != nil {
		cb.onStateChange(from, to)
	}
	return to
}

// moveTo must be called with mu held.
func (cb *CircuitBreaker) moveTo(state CircuitBreakerState) {
	cb.state = state
	cb.probes = 0
	switch state {
	case StateOpen:
		cb.openedAt = cb.now()
	case StateClosed:
		cb.failures = 0
	}
}
