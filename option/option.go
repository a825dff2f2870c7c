// Package option implements a generic Option type for presence/absence
// semantics. It replaces the two out-of-band ways Go code usually signals
// "nothing found": a nil pointer and a sentinel value such as -1.
package option

import (
	"errors"
	"fmt"

	"github.com/charmingruby/fgp-interop/result"
)

// Option represents presence or absence of a value of type T. The zero value is
// None. Values are stored inline, so Some(nil) is a present nil for nil-capable
// types; use IsSome to tell it apart from absence.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option for the provided type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk constructs an Option from a value and ok flag, mirroring Go's
// comma-ok returns (map lookups, type assertions).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr creates an Option from a nullable pointer, treating nil as None.
//
// Example:
//
//	opt := option.FromPtr(seq.FindPtr(names, isAaa))
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromSentinel treats sentinel as the "no value" marker: it returns None when
// value equals sentinel and Some(value) otherwise.
//
// Example:
//
//	idx := option.FromSentinel(strings.Index(s, "x"), -1)
func FromSentinel[T comparable](value, sentinel T) Option[T] {
	if value == sentinel {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports true when the Option contains a value (even if that value is
// nil).
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports true when the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value along with a boolean indicating whether it
// was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnsafeGet returns the contained value or panics when the Option is None.
func (o Option[T]) UnsafeGet() T {
	if !o.ok {
		panic("option: UnsafeGet on None")
	}
	return o.value
}

// GetOrElse returns the contained value when present, otherwise fallback.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// GetOrElseFunc behaves like GetOrElse but only evaluates fn on None.
func (o Option[T]) GetOrElseFunc(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// OrElse returns the Option itself when it is Some, otherwise other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// ToPtr converts the Option back into a nullable pointer. The pointer
// references a copy of the stored value.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}

// Filter keeps the value when predicate returns true, otherwise it becomes None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToResult converts an Option into a Result, producing errFactory() when the
// Option is None. A nil factory, or one returning nil, yields a generic
// "missing value" error.
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	if o.ok {
		return result.Ok(o.value)
	}
	var err error
	if errFactory != nil {
		err = errFactory()
	}
	if err == nil {
		err = errors.New("option: missing value")
	}
	return result.Err[T](err)
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Fold collapses the Option into a single value.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Map transforms the contained value with fn when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains the Option with another Option-valued function.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// Tap runs fn on the value when present and returns o unchanged.
func Tap[T any](o Option[T], fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}

// Zip pairs two Options; it is None unless both are present.
func Zip[A any, B any](a Option[A], b Option[B]) Option[result.Tuple2[A, B]] {
	if !a.ok || !b.ok {
		return None[result.Tuple2[A, B]]()
	}
	return Some(result.Tuple2[A, B]{First: a.value, Second: b.value})
}

// Sequence turns a slice of Options into an Option of a slice, which is None
// as soon as any element is None.
func Sequence[T any](opts []Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.ok {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// Traverse maps items through fn and sequences the results.
func Traverse[A any, B any](items []A, fn func(A) Option[B]) Option[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		o := fn(item)
		if !o.ok {
			return None[[]B]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}
