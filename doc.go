// Package duet provides:
//
// - Paired, statically-typed JSON encoders and decoders (Converter[T]) built
//   from small primitives and combinators
// - A stable error model via Issues (JSON Pointer, code, message, cause)
// - Iso-based mapping between wire and domain representations
// - Lazy converters for self-referential and mutually recursive data shapes
//
// Design policy:
// - Keep only public APIs in the root package; the value tree and its text
//   boundary live under tree/, combinators under dsl/, alternative input
//   sources under source/, and the CLI under cmd/duet.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	conv := dsl.MustBuild(...)
//	text := duet.Encode(conv, 2, value)
//	v, err := duet.DecodeString(conv, text)
package duet
