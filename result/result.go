// Package result provides a success/error abstraction similar to Go's (T, error).
//
// Its main job here is to sit at the boundary of code that reports failure
// out of band (returned errors, panics) and turn that failure into a value:
//
//	res := result.TryCatch(func() (any, error) {
//		return parser.Parse(input)
//	}, nil)
//	fmt.Println(res) // Ok(...) or Err(...)
//
// Result combinators uphold Functor/Monad laws (see laws_result_test.go).
package result

import (
	"errors"
	"fmt"
)

var errNil = errors.New("result: nil error")

// Result represents the outcome of a computation that may succeed with a value
// or fail with an error. It never panics except in Unsafe helpers.
//
// Example:
//
//	res := result.Ok("token")
//	value, err := res.Unwrap()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(value)
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. Passing a nil error converts it into a
// descriptive placeholder so a failure can never read as success.
//
// Example:
//
//	res := result.Err[int](errors.New("boom"))
//	_, err := res.Unwrap()
//	fmt.Println(err)
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errNil
	}
	return Result[T]{err: err}
}

// FromTuple converts a standard Go (value, error) pair to a Result.
//
// Example:
//
//	res := result.FromTuple(strconv.Atoi("42"))
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// TryCatch runs fn and captures both ways it can fail: a returned error and a
// panic. Either reason is handed to onThrow, whose error becomes the Err
// variant. A nil onThrow keeps returned errors as they are and turns panic
// values into errors carrying their text.
//
// Example:
//
//	res := result.TryCatch(func() (any, error) {
//		return parser.Parse(`{"a":"a"}`)
//	}, func(reason any) error {
//		return fmt.Errorf("parse: %v", reason)
//	})
func TryCatch[T any](fn func() (T, error), onThrow func(reason any) error) (res Result[T]) {
	defer func() {
		if reason := recover(); reason != nil {
			res = Err[T](catch(reason, onThrow))
		}
	}()
	value, err := fn()
	if err != nil {
		return Err[T](catch(err, onThrow))
	}
	return Ok(value)
}

// Try is TryCatch with the default reason conversion.
func Try[T any](fn func() (T, error)) Result[T] {
	return TryCatch(fn, nil)
}

func catch(reason any, onThrow func(any) error) error {
	if onThrow != nil {
		return onThrow(reason)
	}
	if err, ok := reason.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(reason))
}

// IsOk reports whether the Result represents success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result represents failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error, if any.
func (r Result[T]) Err() error {
	return r.err
}

// UnsafeUnwrap returns the underlying value or panics if the Result is an error.
func (r Result[T]) UnsafeUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Unwrap returns the value and error, mirroring standard Go semantics.
//
// Example:
//
//	value, err := res.Unwrap()
//	if err != nil {
//		return err
//	}
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value when ok, otherwise returns fallback.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// UnwrapOrElse lazily computes a fallback using fn when the Result is an error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err == nil {
		return r.value
	}
	return fn(r.err)
}

// String renders the Result for console output, e.g. Ok(42) or Err(boom).
func (r Result[T]) String() string {
	if r.err == nil {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map transforms the value on success.
//
// Example:
//
//	length := result.Map(res, func(s string) int { return len(s) })
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err == nil {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// FlatMap chains computations, propagating the first error.
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err == nil {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// MapErr transforms the stored error when present.
//
// Example:
//
//	res := result.MapErr(parsed, func(err error) error {
//		return fmt.Errorf("config: %w", err)
//	})
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if fn == nil || r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// Recover converts an error Result into success using fn while keeping success
// values untouched.
func Recover[T any](r Result[T], fn func(error) T) Result[T] {
	if r.err == nil {
		return r
	}
	return Ok(fn(r.err))
}

// Fold collapses the Result into a single value.
//
// Example:
//
//	message := result.Fold(res,
//		func(err error) string { return "failed: " + err.Error() },
//		func(val string) string { return "ok: " + val },
//	)
func Fold[T any, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if r.err == nil {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Tap executes fn when the Result is Ok and returns the original Result.
func Tap[T any](r Result[T], fn func(T)) Result[T] {
	if r.err == nil {
		fn(r.value)
	}
	return r
}

// TapErr executes fn when the Result is Err and returns the original Result.
func TapErr[T any](r Result[T], fn func(error)) Result[T] {
	if r.err != nil {
		fn(r.err)
	}
	return r
}

// Collect gathers the successful values, ignoring failures. The returned
// slice never shares the backing array with inputs.
func Collect[T any](results []Result[T]) []T {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err == nil {
			values = append(values, r.value)
		}
	}
	return values
}

// Sequence converts a slice of Results into a Result containing a slice of
// values, failing fast on the first error.
func Sequence[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// Traverse maps input values to Results and sequences them.
//
// Example:
//
//	docs := result.Traverse(inputs, func(s string) result.Result[any] {
//		return parse.Parse(s)(parse.JSON)
//	})
func Traverse[A any, B any](items []A, fn func(A) Result[B]) Result[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := fn(item)
		if res.err != nil {
			return Err[[]B](res.err)
		}
		values = append(values, res.value)
	}
	return Ok(values)
}

// Tuple2 represents a pair of values.
type Tuple2[A any, B any] struct {
	First  A
	Second B
}
