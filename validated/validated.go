// Package validated accumulates every failure of a set of checks instead of
// stopping at the first one. The config loader uses it so a broken scenario
// file is reported in full.
package validated

import (
	"errors"

	"github.com/charmingruby/fgp-interop/result"
)

// Validated wraps either a valid value or the errors that made it invalid.
type Validated[E any, T any] struct {
	value  T
	errors []E
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid constructs a failed Validated holding a copy of errs.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	return Validated[E, T]{errors: append([]E{}, errs...)}
}

// Ensure is Valid when ok holds and Invalid with err otherwise.
//
// Example:
//
//	check := validated.Ensure(len(names) > 0, errors.New("names: empty"))
func Ensure[E any](ok bool, err E) Validated[E, struct{}] {
	if ok {
		return Valid[E](struct{}{})
	}
	return Invalid[E, struct{}](err)
}

// IsValid reports whether no errors were collected.
func (v Validated[E, T]) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns a copy of the collected errors.
func (v Validated[E, T]) Errors() []E {
	return append([]E{}, v.errors...)
}

// UnsafeValue returns the stored value even when invalid.
func (v Validated[E, T]) UnsafeValue() T {
	return v.value
}

// Map transforms the stored value when valid.
func Map[E any, A any, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.IsValid() {
		return Validated[E, B]{errors: v.errors}
	}
	return Valid[E](fn(v.value))
}

// Zip combines two Validated values, accumulating errors from both sides.
func Zip[E any, A any, B any](a Validated[E, A], b Validated[E, B]) Validated[E, result.Tuple2[A, B]] {
	if a.IsValid() && b.IsValid() {
		return Valid[E](result.Tuple2[A, B]{First: a.value, Second: b.value})
	}
	return Validated[E, result.Tuple2[A, B]]{errors: appendErrors(a.errors, b.errors)}
}

// Sequence collapses a slice of Validated values into the slice of values, or
// into every error found across all of them.
func Sequence[E any, T any](items []Validated[E, T]) Validated[E, []T] {
	return Traverse(items, func(v Validated[E, T]) Validated[E, T] { return v })
}

// Traverse maps the input slice to Validated values and sequences them.
func Traverse[E any, A any, B any](items []A, fn func(A) Validated[E, B]) Validated[E, []B] {
	values := make([]B, 0, len(items))
	var errs []E
	for _, item := range items {
		res := fn(item)
		if res.IsValid() {
			values = append(values, res.value)
			continue
		}
		errs = appendErrors(errs, res.errors)
	}
	if len(errs) > 0 {
		return Validated[E, []B]{errors: errs}
	}
	return Valid[E](values)
}

// FromResult lifts a Result into a Validated.
func FromResult[T any](res result.Result[T]) Validated[error, T] {
	value, err := res.Unwrap()
	if err != nil {
		return Invalid[error, T](err)
	}
	return Valid[error](value)
}

// ToResult converts a Validated of errors into a Result, joining the errors
// when the value is invalid.
func ToResult[T any](v Validated[error, T]) result.Result[T] {
	if v.IsValid() {
		return result.Ok(v.value)
	}
	return result.Err[T](errors.Join(v.errors...))
}

func appendErrors[E any](dst []E, src []E) []E {
	if len(src) == 0 {
		return dst
	}
	return append(dst, src...)
}
