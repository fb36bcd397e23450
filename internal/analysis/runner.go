// internal/analysis/runner.go
package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Phase is the lifecycle position of one analysis contract.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLoading  Phase = "loading"
	PhaseRetrying Phase = "retrying"
	PhaseSuccess  Phase = "success"
	PhaseFailed   Phase = "failed"
)

// State is a snapshot of a runner. Result holds the last successful value;
// it is kept through a reload so consumers keep rendering stale-but-valid
// data while a refresh is in flight.
type State[T any] struct {
	Phase       Phase     `json:"phase"`
	Attempt     int       `json:"attempt,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt,omitempty"`
	Error       string    `json:"error,omitempty"`
	Result      *T        `json:"result,omitempty"`
}

// Runner drives one analysis contract through the state machine
// {Idle, Loading, Retrying, Success, Failed}.
//
// Failure semantics: a transient failure schedules exactly one retry after
// retryDelay with a visible Retrying state; each new transient failure
// reschedules. A permanent failure lands in Failed immediately. Failures
// never escape the runner.
//
// Ordering: every Trigger bumps a request ordinal; a response (or a pending
// retry) whose ordinal is no longer current is discarded, so a slow early
// response can never overwrite a later result.
type Runner[T any] struct {
	mu    sync.Mutex
	fetch func(ctx context.Context, items []StockItemInput) (*T, error)

	retryDelay time.Duration
	debounce   time.Duration

	state State[T]
	seq   uint64

	pendingInput  []StockItemInput
	debounceTimer *time.Timer
	retryTimer    *time.Timer

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

func NewRunner[T any](fetch func(ctx context.Context, items []StockItemInput) (*T, error), retryDelay, debounce time.Duration) *Runner[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner[T]{
		fetch:      fetch,
		retryDelay: retryDelay,
		debounce:   debounce,
		state:      State[T]{Phase: PhaseIdle},
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Trigger starts an analysis for input immediately, superseding anything in
// flight. An empty input skips the external call entirely and lands in a
// neutral Idle state: no error, no result.
func (r *Runner[T]) Trigger(input []StockItemInput) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.stopTimersLocked()
	r.seq++
	ord := r.seq

	if len(input) == 0 {
		r.state = State[T]{Phase: PhaseIdle}
		r.mu.Unlock()
		return
	}

	r.state.Phase = PhaseLoading
	r.state.Attempt = 0
	r.state.ScheduledAt = time.Time{}
	r.state.Error = ""
	r.mu.Unlock()

	go r.run(ord, input)
}

// TriggerDebounced coalesces bursts of triggers: only the last input within
// the quiet window starts a request.
func (r *Runner[T]) TriggerDebounced(input []StockItemInput) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.pendingInput = input
	if r.debounceTimer != nil {
		r.debounceTimer.Stop()
	}
	r.debounceTimer = time.AfterFunc(r.debounce, func() {
		r.mu.Lock()
		pending := r.pendingInput
		r.pendingInput = nil
		r.mu.Unlock()
		r.Trigger(pending)
	})
	r.mu.Unlock()
}

// State returns a copy of the current state.
func (r *Runner[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Close stops pending timers and invalidates in-flight requests, for
// shutdown and teardown paths.
func (r *Runner[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.stopTimersLocked()
	r.cancel()
}

func (r *Runner[T]) run(ord uint64, input []StockItemInput) {
	result, err := r.fetch(r.ctx, input)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || ord != r.seq {
		// A newer request was started while this one was in flight.
		return
	}

	if err == nil {
		r.state = State[T]{Phase: PhaseSuccess, Result: result}
		return
	}

	if IsTransient(err) {
		r.state.Phase = PhaseRetrying
		r.state.Attempt++
		r.state.ScheduledAt = time.Now().Add(r.retryDelay)
		r.state.Error = err.Error()
		log.Warn().Err(err).Int("attempt", r.state.Attempt).Msg("analysis transient failure, retry scheduled")

		r.retryTimer = time.AfterFunc(r.retryDelay, func() {
			r.mu.Lock()
			if r.closed || ord != r.seq {
				r.mu.Unlock()
				return
			}
			r.state.Phase = PhaseLoading
			r.mu.Unlock()
			r.run(ord, input)
		})
		return
	}

	r.state.Phase = PhaseFailed
	r.state.Error = err.Error()
	log.Error().Err(err).Msg("analysis failed")
}

func (r *Runner[T]) stopTimersLocked() {
	if r.debounceTimer != nil {
		r.debounceTimer.Stop()
		r.debounceTimer = nil
	}
	if r.retryTimer != nil {
		r.retryTimer.Stop()
		r.retryTimer = nil
	}
}
