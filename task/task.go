// Package task defines deferred computations: IO for zero-argument effects
// and Task for context-aware effects that may fail.
//
// Example:
//
//	draw := task.IO[float64](rand.Float64)
//	printed := task.Map(task.FromIO(draw), func(v float64) string {
//		return strconv.FormatFloat(v, 'f', -1, 64)
//	})
package task

import (
	"context"
	"errors"
	"time"

	"github.com/charmingruby/fgp-interop/result"
)

// Task represents a computation that can be executed with a context.
//
// Example:
//
//	var fetchUser Task[User] = func(ctx context.Context) (User, error) {
//		return repo.Load(ctx)
//	}
type Task[T any] func(ctx context.Context) (T, error)

// From wraps an arbitrary context-aware function into a Task that checks for
// cancellation before running it.
func From[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}

// Pure lifts a value into a Task that respects cancellation.
func Pure[T any](value T) Task[T] {
	return FromIO(Of(value))
}

// Fail creates a Task that fails with err. A nil err is replaced by a
// placeholder error; a done context wins over both.
func Fail[T any](err error) Task[T] {
	if err == nil {
		err = errors.New("task: nil error")
	}
	return func(ctx context.Context) (T, error) {
		var zero T
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
		return zero, err
	}
}

// Map transforms the Task result when it succeeds.
func Map[T any, U any](t Task[T], fn func(T) U) Task[U] {
	return FlatMap(t, func(v T) Task[U] {
		return Pure(fn(v))
	})
}

// FlatMap chains two Tasks. The continuation is skipped when the first Task
// fails or ctx is done in between.
func FlatMap[T any, U any](t Task[T], fn func(T) Task[U]) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			var zero U
			return zero, err
		}
		return fn(val)(ctx)
	}
}

// Timeout bounds the execution time of a Task. A non-positive d disables the
// bound.
//
// Example:
//
//	fast := Timeout(fetchUser, 500*time.Millisecond)
func Timeout[T any](t Task[T], d time.Duration) Task[T] {
	if d <= 0 {
		return t
	}
	return func(ctx context.Context) (T, error) {
		ctxWithTimeout, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return t(ctxWithTimeout)
	}
}

// FromResult lifts an existing Result into a Task. Context cancellation takes
// precedence over the stored error.
func FromResult[T any](res result.Result[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return res.Unwrap()
	}
}

// ToResultTask converts a Task into one that only fails on context
// cancellation and reports every other failure inside a Result.
//
// Example:
//
//	wrapped := ToResultTask(fetchUser)
//	res, err := wrapped(ctx)
//	if err != nil {
//		return err // context cancellation
//	}
func ToResultTask[T any](t Task[T]) Task[result.Result[T]] {
	return func(ctx context.Context) (result.Result[T], error) {
		val, err := t(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return result.Result[T]{}, err
			}
			return result.Err[T](err), nil
		}
		return result.Ok(val), nil
	}
}
