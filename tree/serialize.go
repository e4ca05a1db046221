package tree

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// Serialize renders a Value as JSON text. indentWidth <= 0 produces compact
// output; a positive width pretty-prints with that many spaces per level.
// Member and element order are preserved as constructed.
//
// Encoding is total over well-formed values; a non-finite Number is a
// precondition violation and panics.
func Serialize(v Value, indentWidth int) string {
	b := &strings.Builder{}
	writeValue(b, v, indentWidth, 0)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, width, level int) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(formatNumber(v.num))
	case KindString:
		writeString(b, v.str)
	case KindArray:
		if len(v.elems) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, el := range v.elems {
			if i > 0 {
				b.WriteByte(',')
			}
			newlineIndent(b, width, level+1)
			writeValue(b, el, width, level+1)
		}
		newlineIndent(b, width, level)
		b.WriteByte(']')
	case KindObject:
		if len(v.members) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				b.WriteByte(',')
			}
			newlineIndent(b, width, level+1)
			writeString(b, m.Key)
			b.WriteByte(':')
			if width > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, m.Value, width, level+1)
		}
		newlineIndent(b, width, level)
		b.WriteByte('}')
	}
}

func newlineIndent(b *strings.Builder, width, level int) {
	if width <= 0 {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < width*level; i++ {
		b.WriteByte(' ')
	}
}

func writeString(b *strings.Builder, s string) {
	// Delegate escaping to the JSON encoder; marshaling a string cannot fail.
	data, err := j.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("tree: marshal string: %v", err))
	}
	b.Write(data)
}

func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("tree: cannot serialize non-finite number")
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
