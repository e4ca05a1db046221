// Package yaml bridges YAML documents into the converter pipeline by
// mapping the first document of the input onto a tree.Value.
package yaml

import (
	"bytes"
	"fmt"
	"strconv"

	goyaml "gopkg.in/yaml.v3"

	duet "github.com/duet-json/duet"
	"github.com/duet-json/duet/tree"
)

// Parse reads the first YAML document in data into a tree.Value. Mapping
// keys must be strings; member order follows the document. Anchors and
// aliases are resolved during conversion.
func Parse(data []byte) (tree.Value, error) {
	var root goyaml.Node
	if err := goyaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		return tree.Value{}, err
	}
	return fromNode(&root)
}

// Decode parses YAML and decodes the resulting tree through the converter.
// Parse failures surface as Issues with code parse_error, the same contract
// as the JSON entry points.
func Decode[T any](c duet.Converter[T], data []byte) (T, error) {
	v, err := Parse(data)
	if err != nil {
		var zero T
		return zero, duet.Issues{duet.Issue{Path: "/", Code: duet.CodeParseError, Message: err.Error(), Cause: err}}
	}
	return duet.DecodeValue(c, v)
}

func fromNode(n *goyaml.Node) (tree.Value, error) {
	switch n.Kind {
	case goyaml.DocumentNode:
		if len(n.Content) == 0 {
			return tree.Null(), nil
		}
		return fromNode(n.Content[0])
	case goyaml.AliasNode:
		return fromNode(n.Alias)
	case goyaml.ScalarNode:
		return fromScalar(n)
	case goyaml.SequenceNode:
		elems := make([]tree.Value, 0, len(n.Content))
		for _, c := range n.Content {
			ev, err := fromNode(c)
			if err != nil {
				return tree.Value{}, err
			}
			elems = append(elems, ev)
		}
		return tree.Array(elems...), nil
	case goyaml.MappingNode:
		members := make([]tree.Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != goyaml.ScalarNode || (k.Tag != "!!str" && k.Tag != "") {
				return tree.Value{}, fmt.Errorf("yaml: line %d: non-string mapping key", k.Line)
			}
			mv, err := fromNode(n.Content[i+1])
			if err != nil {
				return tree.Value{}, err
			}
			members = append(members, tree.Entry(k.Value, mv))
		}
		return tree.Object(members...), nil
	default:
		return tree.Value{}, fmt.Errorf("yaml: unsupported node kind %d", n.Kind)
	}
}

func fromScalar(n *goyaml.Node) (tree.Value, error) {
	switch n.Tag {
	case "!!null", "":
		return tree.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			// YAML 1.1 spellings like "yes"/"no"
			switch n.Value {
			case "yes", "Yes", "YES", "on", "On", "ON":
				return tree.Bool(true), nil
			case "no", "No", "NO", "off", "Off", "OFF":
				return tree.Bool(false), nil
			}
			return tree.Value{}, fmt.Errorf("yaml: line %d: invalid bool %q", n.Line, n.Value)
		}
		return tree.Bool(b), nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return tree.Value{}, fmt.Errorf("yaml: line %d: invalid number %q", n.Line, n.Value)
		}
		return tree.Number(f), nil
	case "!!str":
		return tree.String(n.Value), nil
	default:
		return tree.Value{}, fmt.Errorf("yaml: line %d: unsupported scalar tag %s", n.Line, n.Tag)
	}
}
