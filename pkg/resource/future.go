package resource

import (
	"context"
	"fmt"
	"sync"
)

// Operation is an asynchronous computation that settles exactly once, either with a value or
// with an error. Subscribers registered before or after settlement are each notified once.
type Operation[T any] interface {
	Subscribe(onValue func(T), onError func(error))
	Done() <-chan struct{}
}

// Future is the default Operation. The zero value is not usable, create one with NewFuture or Go.
type Future[T any] struct {
	mu      sync.Mutex
	done    chan struct{}
	settled bool
	value   T
	err     error
	subs    []subscriber[T]
}

type subscriber[T any] struct {
	onValue func(T)
	onError func(error)
}

var _ Operation[struct{}] = (*Future[struct{}])(nil)

func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go runs fn on its own goroutine and returns the Future settled by its outcome.
// A panic inside fn rejects the future instead of crashing the process.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := NewFuture[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.Reject(fmt.Errorf("operation panicked: %v", r))
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			f.Reject(err)
			return
		}

		f.Resolve(v)
	}()

	return f
}

// Resolve settles the future with v. It returns false if the future was already settled.
func (f *Future[T]) Resolve(v T) bool {
	return f.settle(v, nil)
}

// Reject settles the future with err. A nil err is replaced by ErrNilRejection so that a
// rejected future never looks successful.
func (f *Future[T]) Reject(err error) bool {
	if err == nil {
		err = ErrNilRejection
	}

	var zero T
	return f.settle(zero, err)
}

func (f *Future[T]) settle(v T, err error) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}

	f.settled = true
	f.value = v
	f.err = err
	subs := f.subs
	f.subs = nil
	f.mu.Unlock()

	for _, s := range subs {
		s.notify(v, err)
	}

	close(f.done)

	return true
}

// Subscribe registers continuations for the outcome. Exactly one of them fires, once.
// Subscribing after settlement fires the matching continuation immediately on the caller's goroutine.
func (f *Future[T]) Subscribe(onValue func(T), onError func(error)) {
	s := subscriber[T]{onValue: onValue, onError: onError}

	f.mu.Lock()
	if !f.settled {
		f.subs = append(f.subs, s)
		f.mu.Unlock()
		return
	}

	v, err := f.value, f.err
	f.mu.Unlock()

	s.notify(v, err)
}

// Done is closed after every continuation registered before settlement has run.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (s subscriber[T]) notify(v T, err error) {
	if err != nil {
		if s.onError != nil {
			s.onError(err)
		}
		return
	}

	if s.onValue != nil {
		s.onValue(v)
	}
}
