package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

type transition struct{ from, to CircuitBreakerState }

func newTestBreaker(t *testing.T) (*CircuitBreaker, *fakeClock, *[]transition) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var moves []transition
	cb := newCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:       3,
		ResetTimeout:      time.Minute,
		HalfOpenSuccesses: 2,
	}, func(from, to CircuitBreakerState) {
		moves = append(moves, transition{from, to})
	}, clock.Now)
	return cb, clock, &moves
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb, _, moves := newTestBreaker(t)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 2, cb.GetFailureCount())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, []transition{{StateClosed, StateOpen}}, *moves)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb, _, _ := newTestBreaker(t)

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	assert.Equal(t, StateClosed, cb.GetState())
	assert.Equal(t, 1, cb.GetFailureCount())
}

func TestCircuitBreaker_HalfOpenAfterResetTimeout(t *testing.T) {
	cb, clock, moves := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}

	clock.Advance(30 * time.Second)
	assert.True(t, cb.IsOpen())

	clock.Advance(31 * time.Second)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.GetState())
	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.GetState())
	assert.Equal(t, 0, cb.GetFailureCount())

	assert.Equal(t, []transition{
		{StateClosed, StateOpen},
		{StateOpen, StateHalfOpen},
		{StateHalfOpen, StateClosed},
	}, *moves)
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	cb, clock, _ := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}
	clock.Advance(2 * time.Minute)
	require.False(t, cb.IsOpen())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	clock.Advance(59 * time.Second)
	assert.True(t, cb.IsOpen(), "reset timeout restarts from the failed probe")
}

func TestCircuitBreaker_FailureWhileOpenExtendsTimeout(t *testing.T) {
	cb, clock, _ := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}

	clock.Advance(50 * time.Second)
	cb.RecordFailure()
	clock.Advance(50 * time.Second)
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb, _, moves := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}

	cb.Reset()
	assert.Equal(t, StateClosed, cb.GetState())
	assert.Equal(t, 0, cb.GetFailureCount())
	assert.Len(t, *moves, 2)

	cb.Reset()
	assert.Len(t, *moves, 2)
}

func TestCircuitBreaker_ZeroConfigOpensOnFirstFailure(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{ResetTimeout: time.Hour})
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half_open", StateHalfOpen.String())
	assert.Equal(t, "unknown", CircuitBreakerState(9).String())
}

func TestCircuitBreaker_ConcurrentUse(t *testing.T) {
	cb := NewCircuitBreaker(DefaultCircuitBreakerConfig())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				cb.RecordFailure()
			} else {
				cb.RecordSuccess()
			}
			cb.IsOpen()
		}(i)
	}
	wg.Wait()

	assert.Contains(t, []CircuitBreakerState{StateClosed, StateOpen}, cb.GetState())
}
