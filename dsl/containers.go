package dsl

import (
	"iter"
	"sort"
	"strconv"

	duet "github.com/duet-json/duet"
	"github.com/duet-json/duet/tree"
)

// List lifts an element converter to ordered slices backed by JSON arrays.
// Decoding fails on the first failing element, with that element's index
// prefixed onto the inner issue paths.
func List[E any](elem duet.Converter[E]) duet.Converter[[]E] {
	return duet.NewConverter(
		func(vs []E) tree.Value {
			out := make([]tree.Value, len(vs))
			for i, v := range vs {
				out[i] = elem.EncodeValue(v)
			}
			return tree.Array(out...)
		},
		func(v tree.Value) ([]E, error) {
			arr, ok := v.AsArray()
			if !ok {
				return nil, mismatch(v, "expected array")
			}
			out := make([]E, 0, len(arr))
			for i, el := range arr {
				ev, err := elem.DecodeValue(el)
				if err != nil {
					return nil, duet.PrefixIssues("/"+strconv.Itoa(i), err)
				}
				out = append(out, ev)
			}
			return out, nil
		},
	)
}

// Seq lifts an element converter to Go's native iterator sequences,
// round-tripping through the same JSON array shape as List. Go keeps one
// in-memory ordered sequence type, so Seq covers the second array-like
// surface via iter.Seq.
func Seq[E any](elem duet.Converter[E]) duet.Converter[iter.Seq[E]] {
	inner := List(elem)
	return duet.NewConverter(
		func(s iter.Seq[E]) tree.Value {
			var vs []E
			for v := range s {
				vs = append(vs, v)
			}
			return inner.EncodeValue(vs)
		},
		func(v tree.Value) (iter.Seq[E], error) {
			vs, err := inner.DecodeValue(v)
			if err != nil {
				return nil, err
			}
			return func(yield func(E) bool) {
				for _, e := range vs {
					if !yield(e) {
						return
					}
				}
			}, nil
		},
	)
}

// Dict lifts a value converter to string-keyed maps backed by JSON objects.
// Encoding emits members in sorted key order for deterministic output;
// decoding fails on the first failing value with the offending key prefixed
// onto the inner issue paths.
func Dict[V any](val duet.Converter[V]) duet.Converter[map[string]V] {
	return duet.NewConverter(
		func(m map[string]V) tree.Value {
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			members := make([]tree.Member, 0, len(keys))
			for _, k := range keys {
				members = append(members, tree.Entry(k, val.EncodeValue(m[k])))
			}
			return tree.Object(members...)
		},
		func(v tree.Value) (map[string]V, error) {
			obj, ok := v.AsObject()
			if !ok {
				return nil, mismatch(v, "expected object")
			}
			out := make(map[string]V, len(obj))
			for _, m := range obj {
				vv, err := val.DecodeValue(m.Value)
				if err != nil {
					return nil, duet.PrefixIssues("/"+m.Key, err)
				}
				out[m.Key] = vv
			}
			return out, nil
		},
	)
}

// Nullable lifts a converter to pointers where nil means JSON null. It is
// distinct from an optional object field: a nullable field is present with
// value null, an optional field is omitted entirely (see Option).
func Nullable[E any](elem duet.Converter[E]) duet.Converter[*E] {
	return duet.NewConverter(
		func(p *E) tree.Value {
			if p == nil {
				return tree.Null()
			}
			return elem.EncodeValue(*p)
		},
		func(v tree.Value) (*E, error) {
			if v.IsNull() {
				return nil, nil
			}
			ev, err := elem.DecodeValue(v)
			if err != nil {
				return nil, err
			}
			return &ev, nil
		},
	)
}
