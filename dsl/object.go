package dsl

import (
	"reflect"
	"strconv"

	duet "github.com/duet-json/duet"
	"github.com/duet-json/duet/tree"
)

// ObjectBuilder accumulates named fields into one object-shaped converter
// for record type R. Fields are appended in declaration order; that order
// fixes both the encoded member order and the positional order of the
// constructor arguments handed to Build. Field lookup during decoding is by
// key, so the JSON text may list members in any order.
//
// Arity is a runtime contract: the terminal Build step checks the
// constructor's arity and argument types against the declared fields and
// refuses to produce a converter on mismatch.
type ObjectBuilder[R any] struct {
	fields []anyField[R]
}

// anyField is the type-erased accumulator entry: one closure per direction
// plus the reflect type the positional constructor argument must have.
type anyField[R any] struct {
	name          string
	encode        func(R) (tree.Value, bool) // false means omit the member
	decodePresent func(tree.Value) (any, error)
	decodeAbsent  func() (any, error)
	argType       reflect.Type
}

// Object creates an empty field accumulator for record type R.
func Object[R any]() *ObjectBuilder[R] {
	return &ObjectBuilder[R]{}
}

// Field appends a required field. Encoding always emits the member using the
// getter; decoding requires the key to be present and applies the decoded
// value as the next positional constructor argument. An absent key fails
// with a required issue, a malformed value propagates the inner issues with
// the field name prefixed onto their paths.
func Field[R, F any](b *ObjectBuilder[R], name string, get func(R) F, c duet.Converter[F]) *ObjectBuilder[R] {
	b.fields = append(b.fields, anyField[R]{
		name: name,
		encode: func(r R) (tree.Value, bool) {
			return c.EncodeValue(get(r)), true
		},
		decodePresent: func(v tree.Value) (any, error) {
			fv, err := c.DecodeValue(v)
			if err != nil {
				return nil, err
			}
			return fv, nil
		},
		decodeAbsent: func() (any, error) {
			return nil, duet.Issues{duet.Issue{Path: "/" + name, Code: duet.CodeRequired, Message: "missing required field " + strconv.Quote(name)}}
		},
		argType: reflect.TypeFor[F](),
	})
	return b
}

// Option appends an optional field with getter type *F. A nil getter result
// omits the member entirely (the key never appears with value null; wrap the
// inner converter with Nullable to model a present-but-null field). Decoding
// an absent key yields nil; a present key decodes through the inner
// converter into a non-nil pointer.
func Option[R, F any](b *ObjectBuilder[R], name string, get func(R) *F, c duet.Converter[F]) *ObjectBuilder[R] {
	b.fields = append(b.fields, anyField[R]{
		name: name,
		encode: func(r R) (tree.Value, bool) {
			p := get(r)
			if p == nil {
				return tree.Value{}, false
			}
			return c.EncodeValue(*p), true
		},
		decodePresent: func(v tree.Value) (any, error) {
			fv, err := c.DecodeValue(v)
			if err != nil {
				return nil, err
			}
			return &fv, nil
		},
		decodeAbsent: func() (any, error) {
			return (*F)(nil), nil
		},
		argType: reflect.TypeFor[*F](),
	})
	return b
}

// Build validates the accumulated fields against the constructor and returns
// the object converter. ctor must be a non-variadic func taking exactly one
// argument per declared field, in declaration order, and returning R.
func (b *ObjectBuilder[R]) Build(ctor any) (duet.Converter[R], error) {
	var zero duet.Converter[R]
	seen := map[string]struct{}{}
	for _, f := range b.fields {
		if _, dup := seen[f.name]; dup {
			return zero, singleBuildIssue("duplicate field " + strconv.Quote(f.name))
		}
		seen[f.name] = struct{}{}
	}
	cv := reflect.ValueOf(ctor)
	if !cv.IsValid() || cv.Kind() != reflect.Func {
		return zero, singleBuildIssue("object constructor must be a func")
	}
	ct := cv.Type()
	if ct.IsVariadic() {
		return zero, singleBuildIssue("object constructor must not be variadic")
	}
	if ct.NumIn() != len(b.fields) {
		return zero, singleBuildIssue("constructor arity mismatch: " +
			strconv.Itoa(ct.NumIn()) + " parameters for " + strconv.Itoa(len(b.fields)) + " declared fields")
	}
	for i, f := range b.fields {
		if !f.argType.AssignableTo(ct.In(i)) {
			return zero, singleBuildIssue("constructor parameter " + strconv.Itoa(i) +
				" (" + ct.In(i).String() + ") does not accept field " + strconv.Quote(f.name) +
				" of type " + f.argType.String())
		}
	}
	if ct.NumOut() != 1 || ct.Out(0) != reflect.TypeFor[R]() {
		return zero, singleBuildIssue("constructor must return exactly one " + reflect.TypeFor[R]().String())
	}

	fields := append([]anyField[R](nil), b.fields...)
	enc := func(r R) tree.Value {
		members := make([]tree.Member, 0, len(fields))
		for _, f := range fields {
			if v, ok := f.encode(r); ok {
				members = append(members, tree.Entry(f.name, v))
			}
		}
		return tree.Object(members...)
	}
	dec := func(v tree.Value) (R, error) {
		var zr R
		if _, ok := v.AsObject(); !ok {
			iss := mismatch(v, "expected object")
			return zr, iss
		}
		args := make([]reflect.Value, len(fields))
		for i, f := range fields {
			var (
				fv  any
				err error
			)
			if mv, ok := v.Get(f.name); ok {
				fv, err = f.decodePresent(mv)
				if err != nil {
					return zr, duet.PrefixIssues("/"+f.name, err)
				}
			} else {
				fv, err = f.decodeAbsent()
				if err != nil {
					return zr, err
				}
			}
			rv := reflect.ValueOf(fv)
			if !rv.IsValid() {
				rv = reflect.Zero(ct.In(i))
			}
			args[i] = rv
		}
		out := cv.Call(args)
		return out[0].Interface().(R), nil
	}
	return duet.NewConverter(enc, dec), nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder[R]) MustBuild(ctor any) duet.Converter[R] {
	c, err := b.Build(ctor)
	if err != nil {
		panic(err)
	}
	return c
}

func singleBuildIssue(msg string) duet.Issues {
	return duet.Issues{duet.Issue{Path: "/", Code: duet.CodeParseError, Message: msg}}
}

