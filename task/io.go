package task

import (
	"context"
	"sync"
)

// IO is a zero-argument deferred computation. Building an IO performs no work;
// the effect (reading a clock, drawing a random number) happens each time the
// IO is invoked.
//
// Example:
//
//	var now task.IO[time.Time] = time.Now
//	fmt.Println(now())
type IO[T any] func() T

// Of lifts a plain value into an IO that always returns it.
func Of[T any](value T) IO[T] {
	return func() T {
		return value
	}
}

// Run invokes io. It exists so call sites can read as "run the effect".
func (io IO[T]) Run() T {
	return io()
}

// MapIO returns an IO that runs io and transforms its value with fn.
func MapIO[T any, U any](io IO[T], fn func(T) U) IO[U] {
	return func() U {
		return fn(io())
	}
}

// FlatMapIO sequences io with an IO-producing continuation.
func FlatMapIO[T any, U any](io IO[T], fn func(T) IO[U]) IO[U] {
	return func() U {
		return fn(io())()
	}
}

// Memo returns an IO that evaluates io on the first invocation only and then
// replays that value. It is safe for concurrent use.
func Memo[T any](io IO[T]) IO[T] {
	var (
		once  sync.Once
		value T
	)
	return func() T {
		once.Do(func() {
			value = io()
		})
		return value
	}
}

// FromIO lifts an IO into a Task. The IO is not run when ctx is already done.
func FromIO[T any](io IO[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return io(), nil
	}
}
