// Package resource adapts an asynchronous operation into a non-blocking, poll-based read.
//
// A Resource starts Pending and settles exactly once, to Ready or Failed, when its underlying
// Operation completes. Callers that observe Pending wait on Done (or use Await) and poll again;
// they never spin and never start the operation a second time.
package resource

import (
	"context"
	"errors"
	"sync/atomic"
)

var (
	// ErrPending is returned by Read while the underlying operation has not settled.
	ErrPending = errors.New("resource is pending")

	// ErrNilRejection replaces a nil error passed to Future.Reject.
	ErrNilRejection = errors.New("operation rejected without an error")
)

type State uint8

const (
	Pending State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single Poll. Value is only meaningful when State is Ready,
// Err only when State is Failed.
type Result[T any] struct {
	State State
	Value T
	Err   error
}

// Pollable is what a cooperative consumer needs from a Resource: a non-blocking poll and a
// channel to park on until polling again is worthwhile.
type Pollable[T any] interface {
	Poll() Result[T]
	Done() <-chan struct{}
}

type outcome[T any] struct {
	value T
	err   error
}

type Resource[T any] struct {
	settled atomic.Pointer[outcome[T]]
	done    chan struct{}
}

var _ Pollable[struct{}] = (*Resource[struct{}])(nil)

// New wraps op and returns immediately in the Pending state.
func New[T any](op Operation[T]) *Resource[T] {
	r := &Resource[T]{done: make(chan struct{})}

	op.Subscribe(
		func(v T) { r.publish(&outcome[T]{value: v}) },
		func(err error) { r.publish(&outcome[T]{err: err}) },
	)

	return r
}

// publish stores the outcome once; done is closed only after the outcome is visible.
func (r *Resource[T]) publish(o *outcome[T]) {
	if r.settled.CompareAndSwap(nil, o) {
		close(r.done)
	}
}

func (r *Resource[T]) Poll() Result[T] {
	o := r.settled.Load()
	if o == nil {
		return Result[T]{State: Pending}
	}

	if o.err != nil {
		return Result[T]{State: Failed, Err: o.err}
	}

	return Result[T]{State: Ready, Value: o.value}
}

// Read returns the value, the operation's error verbatim, or ErrPending.
func (r *Resource[T]) Read() (T, error) {
	res := r.Poll()
	switch res.State {
	case Ready:
		return res.Value, nil
	case Failed:
		var zero T
		return zero, res.Err
	default:
		var zero T
		return zero, ErrPending
	}
}

// Done is closed once the resource has settled. Registering after settlement is fine: the
// channel stays closed.
func (r *Resource[T]) Done() <-chan struct{} {
	return r.done
}

// Await suspends the caller until p settles or ctx ends. Cancelling ctx only stops the wait,
// the underlying operation keeps running.
func Await[T any](ctx context.Context, p Pollable[T]) (T, error) {
	for {
		res := p.Poll()
		switch res.State {
		case Ready:
			return res.Value, nil
		case Failed:
			var zero T
			return zero, res.Err
		}

		select {
		case <-p.Done():
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}
