package duet

import (
	"sync"

	"github.com/duet-json/duet/tree"
)

// Lazy defers converter construction until first actual use, which lets a
// converter definition reference itself (directly or mutually) without
// recursing at construction time. The factory runs at most once; converters
// are pure, so memoizing is observationally equivalent to calling the
// factory per invocation.
func Lazy[T any](factory func() Converter[T]) Converter[T] {
	var (
		once sync.Once
		c    Converter[T]
	)
	force := func() Converter[T] {
		once.Do(func() { c = factory() })
		return c
	}
	return NewConverter(
		func(v T) tree.Value { return force().EncodeValue(v) },
		func(v tree.Value) (T, error) { return force().DecodeValue(v) },
	)
}
