package entity

import (
	"context"
	"sync"
)

// CompletionKey is the parameter key under which a popup receives its
// result completion.
const CompletionKey = "_completion"

// CompletionState is the settlement state of a Completion.
type CompletionState int

const (
	CompletionPending CompletionState = iota
	CompletionResolved
	CompletionCancelled
	CompletionFaulted
)

func (s CompletionState) String() string {
	switch s {
	case CompletionPending:
		return "pending"
	case CompletionResolved:
		return "resolved"
	case CompletionCancelled:
		return "cancelled"
	case CompletionFaulted:
		return "faulted"
	default:
		return "invalid"
	}
}

// Canceller is the non-generic view of a Completion.
type Canceller interface {
	TryCancel() bool
	State() CompletionState
}

// Completion is a single-assignment future. The first Try* call that
// reaches it wins; later calls report false and change nothing.
type Completion[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	state CompletionState
	value T
	err   error
}

// NewCompletion returns a pending completion.
func NewCompletion[T any]() *Completion[T] {
	return &Completion[T]{done: make(chan struct{})}
}

// TryResolve settles the completion with value.
func (c *Completion[T]) TryResolve(value T) bool {
	return c.settle(CompletionResolved, value, nil)
}

// TryCancel settles the completion as cancelled.
func (c *Completion[T]) TryCancel() bool {
	var zero T
	return c.settle(CompletionCancelled, zero, ErrCompletionCancelled)
}

// TryFault settles the completion with err. A nil err is replaced by
// ErrCompletionFaulted.
func (c *Completion[T]) TryFault(err error) bool {
	if err == nil {
		err = ErrCompletionFaulted
	}
	var zero T
	return c.settle(CompletionFaulted, zero, err)
}

func (c *Completion[T]) settle(state CompletionState, value T, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != CompletionPending {
		return false
	}
	c.state = state
	c.value = value
	c.err = err
	close(c.done)
	return true
}

// State returns the current settlement state.
func (c *Completion[T]) State() CompletionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done is closed once the completion settles.
func (c *Completion[T]) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the completion settles or ctx is done. A cancelled
// completion returns ErrCompletionCancelled; a done ctx returns ctx.Err()
// and leaves the completion pending.
func (c *Completion[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-c.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.err
}
