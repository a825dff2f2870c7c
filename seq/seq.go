// Package seq offers slice helpers whose lookups report absence as an
// option.Option instead of -1 or a nil pointer.
//
// IndexOf and FindPtr keep the conventional out-of-band signals for callers
// that need them; FindIndex and Find are the same scans lifted into Options.
package seq

import (
	"github.com/samber/lo"

	"github.com/charmingruby/fgp-interop/option"
)

// NotFound is the sentinel IndexOf returns when nothing matches.
const NotFound = -1

// IndexOf returns the index of the first element satisfying predicate, or
// NotFound.
func IndexOf[T any](in []T, predicate func(T) bool) int {
	_, idx, _ := lo.FindIndexOf(in, predicate)
	return idx
}

// FindPtr returns a pointer to the first element satisfying predicate, or nil.
// The pointer refers to the element inside in.
func FindPtr[T any](in []T, predicate func(T) bool) *T {
	idx := IndexOf(in, predicate)
	if idx == NotFound {
		return nil
	}
	return &in[idx]
}

// FindIndex returns Some(index) of the first element satisfying predicate, or
// None. The index is never negative.
//
// Example:
//
//	seq.FindIndex([]string{"aaa", "bbb"}, isAaa) // Some(0)
func FindIndex[T any](in []T, predicate func(T) bool) option.Option[int] {
	return option.FromSentinel(IndexOf(in, predicate), NotFound)
}

// Find returns Some(element) for the first element satisfying predicate, or
// None.
//
// Example:
//
//	seq.Find([]string{"aaa", "bbb"}, isDdd) // None
func Find[T any](in []T, predicate func(T) bool) option.Option[T] {
	return option.FromPtr(FindPtr(in, predicate))
}

// Equals returns a predicate matching values equal to want.
func Equals[T comparable](want T) func(T) bool {
	return func(v T) bool {
		return v == want
	}
}

// Map transforms each element using fn and returns a new slice with the same
// length as in.
func Map[A any, B any](in []A, fn func(A) B) []B {
	return lo.Map(in, func(v A, _ int) B {
		return fn(v)
	})
}

// Filter keeps values satisfying predicate. The returned slice shares no
// backing array with the input.
func Filter[T any](in []T, predicate func(T) bool) []T {
	return lo.Filter(in, func(v T, _ int) bool {
		return predicate(v)
	})
}
