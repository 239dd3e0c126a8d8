// Package async bridges blocking callers and deferred operations.
//
// The API clients in this module block natively, which already suits most
// callers. Embedding applications that drive many calls at once (a Discord
// bot fanning out lookups, a batch job probing several sites) start each call
// as a Task and join the results when they need them. The one invariant the
// package preserves is that a caller is never blocked on its own goroutine:
// every Task owns the goroutine its operation runs on, and joining is always
// a plain channel wait.
package async

import (
	"context"
	"fmt"
)

// Task is a deferred operation that has been started and will run to
// completion exactly once on its own goroutine. The result is immutable once
// the operation finishes; Wait may be called any number of times, from any
// goroutine.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error

	// panicked holds a panic raised by the operation, re-raised in Wait so
	// the failure surfaces in the caller rather than killing the process
	// from an anonymous goroutine.
	panicked any
}

// Go starts fn on its own goroutine and returns a Task handle for joining it.
// fn runs to completion regardless of whether anyone waits.
func Go[T any](fn func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.panicked = r
			}
		}()
		t.val, t.err = fn()
	}()
	return t
}

// Done returns a channel that is closed when the operation has completed.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the operation completes and returns its value or its
// error unchanged. If the operation panicked, Wait re-raises the original
// panic value in the calling goroutine.
//
// A cancelled ctx abandons the wait and returns ctx.Err(); the operation
// itself keeps running to completion and its result remains collectible by a
// later Wait.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		if t.panicked != nil {
			panic(t.panicked)
		}
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("awaiting task: %w", ctx.Err())
	}
}

// Run executes fn to completion on its own goroutine and blocks the caller
// until it finishes, returning the operation's value or error unchanged.
// It is the one-shot form of Go followed by Wait.
//
// The join is unconditional: cancelling ctx does not abandon the operation,
// it is delivered to fn through its context argument, and Run returns
// whatever fn returns in response. Run therefore never leaks a goroutine on
// any exit path.
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	t := Go(func() (T, error) { return fn(ctx) })
	<-t.done
	if t.panicked != nil {
		panic(t.panicked)
	}
	return t.val, t.err
}
