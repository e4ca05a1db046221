package tree

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// Parse reads one JSON document into a Value. Trailing non-whitespace input
// after the document is an error.
func Parse(data []byte) (Value, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader reads one JSON document from r into a Value.
func ParseReader(r io.Reader) (Value, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, fmt.Errorf("unexpected trailing content after JSON document")
	}
	return v, nil
}

func parseValue(dec *j.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *j.Decoder, tok j.Token) (Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case j.Number:
		f, perr := strconv.ParseFloat(t.String(), 64)
		if perr != nil {
			return Value{}, fmt.Errorf("invalid number literal %q: %w", t.String(), perr)
		}
		return Number(f), nil
	case float64:
		// UseNumber keeps this branch dormant; kept for decoder compatibility.
		return Number(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *j.Decoder) (Value, error) {
	var members []Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: val})
	}
	// consume '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Object(members...), nil
}

func parseArray(dec *j.Decoder) (Value, error) {
	var elems []Value
	for dec.More() {
		el, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, el)
	}
	// consume ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Array(elems...), nil
}
