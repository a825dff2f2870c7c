package result

import "github.com/samber/mo"

// FromMo converts a samber/mo Result into a Result.
func FromMo[T any](r mo.Result[T]) Result[T] {
	return FromTuple(r.Get())
}

// ToMo converts the Result into its samber/mo counterpart for callers already
// built on that library.
func (r Result[T]) ToMo() mo.Result[T] {
	if r.err != nil {
		return mo.Err[T](r.err)
	}
	return mo.Ok(r.value)
}
