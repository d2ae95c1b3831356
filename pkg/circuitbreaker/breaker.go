package circuitbreaker

import (
	"errors"
	"sync"
	"time"

	"github.com/tair/shopfront/pkg/logger"
)

// ErrOpen is returned by Call while the breaker is rejecting requests
var ErrOpen = errors.New("circuit breaker is open")

// State represents the state of a circuit breaker
type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half-open"
)

// Settings configures a Breaker
type Settings struct {
	Name string
	// MaxFailures is the number of consecutive failures that opens the circuit.
	// Zero or less disables the breaker.
	MaxFailures int
	// Cooldown is how long the circuit stays open before probing again.
	Cooldown time.Duration
	// HalfOpenSuccesses closes a half-open circuit once reached.
	HalfOpenSuccesses int
}

// Breaker implements the circuit breaker pattern around outbound calls
type Breaker struct {
	settings Settings

	mu              sync.Mutex
	state           State
	failures        int
	successes       int
	lastStateChange time.Time
	now             func() time.Time
}

// New creates a closed breaker
func New(settings Settings) *Breaker {
	if settings.Cooldown <= 0 {
		settings.Cooldown = 30 * time.Second
	}
	if settings.HalfOpenSuccesses <= 0 {
		settings.HalfOpenSuccesses = 3
	}
	return &Breaker{
		settings:        settings,
		state:           StateClosed,
		lastStateChange: time.Now(),
		now:             time.Now,
	}
}

// Call runs fn unless the circuit is open. Any non-nil error returned by fn
// counts as a failure.
func (b *Breaker) Call(fn func() error) error {
	if b == nil || b.settings.MaxFailures <= 0 {
		return fn()
	}

	b.mu.Lock()
	if b.state == StateOpen && b.now().Sub(b.lastStateChange) >= b.settings.Cooldown {
		b.transition(StateHalfOpen)
	}
	state := b.state
	b.mu.Unlock()

	if state == StateOpen {
		return ErrOpen
	}

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.onFailure()
	} else {
		b.onSuccess()
	}
	return err
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) onFailure() {
	b.failures++
	switch {
	case b.state == StateHalfOpen:
		b.transition(StateOpen)
		logger.Logger.Warn().Str("circuit", b.settings.Name).Msg("Circuit breaker reopened after half-open failure")
	case b.failures >= b.settings.MaxFailures:
		b.transition(StateOpen)
		logger.Logger.Error().
			Str("circuit", b.settings.Name).
			Int("failures", b.failures).
			Int("threshold", b.settings.MaxFailures).
			Msg("Circuit breaker opened")
	}
}

func (b *Breaker) onSuccess() {
	switch b.state {
	case StateHalfOpen:
		b.successes++
		if b.successes >= b.settings.HalfOpenSuccesses {
			b.transition(StateClosed)
			logger.Logger.Info().Str("circuit", b.settings.Name).Msg("Circuit breaker closed after recovery")
		}
	case StateClosed:
		b.failures = 0
	}
}

// transition must be called with mu held
func (b *Breaker) transition(to State) {
	b.state = to
	b.successes = 0
	if to == StateClosed {
		b.failures = 0
	}
	b.lastStateChange = b.now()
}
