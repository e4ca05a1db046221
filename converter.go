package duet

import (
	"io"

	"github.com/duet-json/duet/tree"
)

// Converter pairs a total encoder with a failable decoder for one data type.
// Converters are immutable values: build them once at setup and reuse them
// from any goroutine; encode and decode never mutate shared state.
type Converter[T any] struct {
	encode func(T) tree.Value
	decode func(tree.Value) (T, error)
}

// NewConverter builds a Converter from an encoder/decoder pair. The encoder
// must be total for every value of T the program can construct; the decoder
// must return Issues (never panic) on malformed input.
func NewConverter[T any](encode func(T) tree.Value, decode func(tree.Value) (T, error)) Converter[T] {
	return Converter[T]{encode: encode, decode: decode}
}

// EncodeValue applies the encoder side.
func (c Converter[T]) EncodeValue(v T) tree.Value { return c.encode(v) }

// DecodeValue applies the decoder side.
func (c Converter[T]) DecodeValue(v tree.Value) (T, error) { return c.decode(v) }

// Encode serializes v through the converter. indentWidth <= 0 yields compact
// output, a positive width pretty-prints with that many spaces per level.
func Encode[T any](c Converter[T], indentWidth int, v T) string {
	return tree.Serialize(c.EncodeValue(v), indentWidth)
}

// DecodeValue decodes an already-parsed tree value.
func DecodeValue[T any](c Converter[T], v tree.Value) (T, error) {
	return c.DecodeValue(v)
}

// DecodeString parses text as JSON and decodes the result. A syntax failure
// surfaces as Issues with code parse_error, distinct from a structural
// mismatch.
func DecodeString[T any](c Converter[T], text string) (T, error) {
	return DecodeBytes(c, []byte(text))
}

// DecodeBytes parses data as JSON and decodes the result.
func DecodeBytes[T any](c Converter[T], data []byte) (T, error) {
	v, err := tree.Parse(data)
	if err != nil {
		var zero T
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return c.DecodeValue(v)
}

// DecodeReader parses one JSON document from r and decodes the result.
func DecodeReader[T any](c Converter[T], r io.Reader) (T, error) {
	v, err := tree.ParseReader(r)
	if err != nil {
		var zero T
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return c.DecodeValue(v)
}
