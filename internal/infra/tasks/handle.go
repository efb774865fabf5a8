package tasks

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
)

// JoinError reports a unit of work that panicked or was cancelled before it completed.
type JoinError struct {
	Name      string
	Cancelled bool
	Panic     any
	Stack     []byte
	Cause     error
}

func (e *JoinError) Error() string {
	label := "task"
	if e.Name != "" {
		label = fmt.Sprintf("task %q", e.Name)
	}
	if e.Cancelled {
		return label + " was cancelled"
	}
	return fmt.Sprintf("%s panicked: %v", label, e.Panic)
}

func (e *JoinError) Unwrap() error {
	return e.Cause
}

// JoinFailure marks JoinError as a task join failure for domain error classification.
func (e *JoinError) JoinFailure() {}

// IsCancelled reports whether err is a join failure caused by cancellation.
func IsCancelled(err error) bool {
	var joinErr *JoinError
	return errors.As(err, &joinErr) && joinErr.Cancelled
}

// IsPanic reports whether err is a join failure caused by a panic.
func IsPanic(err error) bool {
	var joinErr *JoinError
	return errors.As(err, &joinErr) && !joinErr.Cancelled
}

// Handle tracks one spawned unit of work.
type Handle[T any] struct {
	name   string
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	aborted bool
	value   T
	err     error
}

// Spawn runs fn in a new goroutine under a context derived from ctx.
func Spawn[T any](ctx context.Context, name string, fn func(context.Context) (T, error)) *Handle[T] {
	taskCtx, cancel := context.WithCancel(ctx)
	h := &Handle[T]{
		name:   name,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go h.run(taskCtx, fn)
	return h
}

func (h *Handle[T]) run(ctx context.Context, fn func(context.Context) (T, error)) {
	defer close(h.done)
	defer h.cancel()

	var (
		value T
		err   error
	)
	func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				err = &JoinError{Name: h.name, Panic: recovered, Stack: debug.Stack()}
			}
		}()
		value, err = fn(ctx)
	}()

	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		err = &JoinError{Name: h.name, Cancelled: true, Cause: ctxErr}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.aborted && err == nil {
		err = &JoinError{Name: h.name, Cancelled: true, Cause: context.Canceled}
	}
	h.value = value
	h.err = err
}

func (h *Handle[T]) Name() string {
	return h.name
}

// Abort cancels the unit's context. Joining an aborted unit reports a cancellation
// unless the unit had already finished.
func (h *Handle[T]) Abort() {
	select {
	case <-h.done:
		return
	default:
	}
	h.mu.Lock()
	h.aborted = true
	h.mu.Unlock()
	h.cancel()
}

// Done is closed once the unit has finished.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Join waits for the unit to finish and returns its result. If ctx ends first,
// Join returns ctx.Err() and the unit keeps running.
func (h *Handle[T]) Join(ctx context.Context) (T, error) {
	select {
	case <-h.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.value, h.err
}

// JoinAll joins handles in order, returning every value and the first error.
func JoinAll[T any](ctx context.Context, handles []*Handle[T]) ([]T, error) {
	values := make([]T, len(handles))
	var firstErr error
	for i, h := range handles {
		value, err := h.Join(ctx)
		values[i] = value
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return values, firstErr
}
