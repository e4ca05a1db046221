package duet

import "github.com/duet-json/duet/tree"

// Iso is a bidirectional pair of total functions between A and B.
// Get and ReverseGet must be mutual inverses for every value the converter
// will see; the library does not check the law, it is a caller obligation
// verified by tests. A violated iso breaks the encode/decode round trip, it
// does not crash.
type Iso[A, B any] struct {
	Get        func(A) B
	ReverseGet func(B) A
}

// Map lifts a Converter[A] to a Converter[B] through an iso: encoding goes
// ReverseGet then the inner encoder, decoding goes the inner decoder then
// Get. It introduces no failure modes beyond the wrapped converter's.
func Map[A, B any](iso Iso[A, B], c Converter[A]) Converter[B] {
	return NewConverter(
		func(b B) tree.Value { return c.EncodeValue(iso.ReverseGet(b)) },
		func(v tree.Value) (B, error) {
			a, err := c.DecodeValue(v)
			if err != nil {
				var zero B
				return zero, err
			}
			return iso.Get(a), nil
		},
	)
}

// Reverse swaps the directions of an iso.
func Reverse[A, B any](iso Iso[A, B]) Iso[B, A] {
	return Iso[B, A]{Get: iso.ReverseGet, ReverseGet: iso.Get}
}

// Compose chains two isos: Get runs f then g, ReverseGet runs g then f.
func Compose[A, B, C any](f Iso[A, B], g Iso[B, C]) Iso[A, C] {
	return Iso[A, C]{
		Get:        func(a A) C { return g.Get(f.Get(a)) },
		ReverseGet: func(c C) A { return f.ReverseGet(g.ReverseGet(c)) },
	}
}
