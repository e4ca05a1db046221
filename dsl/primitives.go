// Package dsl provides the converter-building surface: primitive converters,
// container combinators, and the object field accumulator.
package dsl

import (
	"math"

	duet "github.com/duet-json/duet"
	"github.com/duet-json/duet/tree"
)

// String returns the converter for JSON strings.
func String() duet.Converter[string] {
	return duet.NewConverter(
		func(s string) tree.Value { return tree.String(s) },
		func(v tree.Value) (string, error) {
			s, ok := v.AsString()
			if !ok {
				return "", mismatch(v, "expected string")
			}
			return s, nil
		},
	)
}

// Bool returns the converter for JSON booleans.
func Bool() duet.Converter[bool] {
	return duet.NewConverter(
		func(b bool) tree.Value { return tree.Bool(b) },
		func(v tree.Value) (bool, error) {
			b, ok := v.AsBool()
			if !ok {
				return false, mismatch(v, "expected boolean")
			}
			return b, nil
		},
	)
}

// Float returns the converter for JSON numbers as float64.
func Float() duet.Converter[float64] {
	return duet.NewConverter(
		func(f float64) tree.Value { return tree.Number(f) },
		func(v tree.Value) (float64, error) {
			f, ok := v.AsNumber()
			if !ok {
				return 0, mismatch(v, "expected number")
			}
			return f, nil
		},
	)
}

// Int returns the converter for integral JSON numbers. Decoding a number
// with a fractional part, or one outside the exactly-representable int
// range, fails with invalid_type.
func Int() duet.Converter[int] {
	return duet.NewConverter(
		func(i int) tree.Value { return tree.Number(float64(i)) },
		func(v tree.Value) (int, error) {
			f, ok := v.AsNumber()
			if !ok {
				return 0, mismatch(v, "expected number")
			}
			if math.Trunc(f) != f {
				return 0, duet.Issues{duet.Issue{Path: "/", Code: duet.CodeInvalidType, Message: "fractional part not allowed for int"}}
			}
			if f < minExactInt || f > maxExactInt {
				return 0, duet.Issues{duet.Issue{Path: "/", Code: duet.CodeInvalidType, Message: "number out of int range"}}
			}
			return int(f), nil
		},
	)
}

// Exact float64 integer range; beyond it int(f) would silently lose digits.
const (
	maxExactInt = float64(1 << 53)
	minExactInt = -maxExactInt
)

// Null returns a converter that always encodes JSON null and decodes any
// JSON null to the fixed value supplied at construction. Decoding a non-null
// value fails with invalid_null.
func Null[T any](fixed T) duet.Converter[T] {
	return duet.NewConverter(
		func(T) tree.Value { return tree.Null() },
		func(v tree.Value) (T, error) {
			if !v.IsNull() {
				var zero T
				return zero, duet.Issues{duet.Issue{Path: "/", Code: duet.CodeInvalidNull, Message: "expected null, found " + v.Kind().String()}}
			}
			return fixed, nil
		},
	)
}

// Value returns the identity converter: both directions pass the subtree
// through unconverted.
func Value() duet.Converter[tree.Value] {
	return duet.NewConverter(
		func(v tree.Value) tree.Value { return v },
		func(v tree.Value) (tree.Value, error) { return v, nil },
	)
}

// mismatch classifies a wrong-kind failure: null input reports invalid_null,
// anything else invalid_type.
func mismatch(v tree.Value, hint string) duet.Issues {
	if v.IsNull() {
		return duet.Issues{duet.Issue{Path: "/", Code: duet.CodeInvalidNull, Message: "unexpected null", Hint: hint}}
	}
	return duet.Issues{duet.Issue{Path: "/", Code: duet.CodeInvalidType, Message: "found " + v.Kind().String(), Hint: hint}}
}
