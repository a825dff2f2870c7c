package option

import "github.com/samber/mo"

// FromMo converts a samber/mo Option into an Option.
func FromMo[T any](o mo.Option[T]) Option[T] {
	return FromOk(o.Get())
}

// ToMo converts the Option into its samber/mo counterpart.
func (o Option[T]) ToMo() mo.Option[T] {
	if !o.ok {
		return mo.None[T]()
	}
	return mo.Some(o.value)
}
