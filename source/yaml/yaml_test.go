package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	duet "github.com/duet-json/duet"
	"github.com/duet-json/duet/dsl"
	"github.com/duet-json/duet/source/yaml"
	"github.com/duet-json/duet/tree"
)

func TestParse_ScalarsAndContainers(t *testing.T) {
	v, err := yaml.Parse([]byte("name: John\nage: 30\nactive: true\ncity: null\ntags:\n  - a\n  - b\n"))
	require.NoError(t, err)

	want := tree.Object(
		tree.Entry("name", tree.String("John")),
		tree.Entry("age", tree.Number(30)),
		tree.Entry("active", tree.Bool(true)),
		tree.Entry("city", tree.Null()),
		tree.Entry("tags", tree.Array(tree.String("a"), tree.String("b"))),
	)
	assert.True(t, v.Equal(want), "parsed %s", v)
}

func TestParse_PreservesMappingOrder(t *testing.T) {
	v, err := yaml.Parse([]byte("z: 1\na: 2\n"))
	require.NoError(t, err)
	members, ok := v.AsObject()
	require.True(t, ok)
	require.Len(t, members, 2)
	assert.Equal(t, "z", members[0].Key)
	assert.Equal(t, "a", members[1].Key)
}

func TestParse_RejectsNonStringKeys(t *testing.T) {
	_, err := yaml.Parse([]byte("1: one\n"))
	assert.Error(t, err)
}

func TestDecode_ThroughConverter(t *testing.T) {
	type server struct {
		Host string
		Port int
	}
	b := dsl.Object[server]()
	dsl.Field(b, "host", func(s server) string { return s.Host }, dsl.String())
	dsl.Field(b, "port", func(s server) int { return s.Port }, dsl.Int())
	conv := b.MustBuild(func(host string, port int) server { return server{Host: host, Port: port} })

	got, err := yaml.Decode(conv, []byte("host: localhost\nport: 8080\n"))
	require.NoError(t, err)
	assert.Equal(t, server{Host: "localhost", Port: 8080}, got)
}

func TestDecode_ParseFailureSurfacesAsIssues(t *testing.T) {
	_, err := yaml.Decode(dsl.String(), []byte("a: [1, 2"))
	iss, ok := duet.AsIssues(err)
	require.True(t, ok, "expected Issues, got %v", err)
	assert.Equal(t, duet.CodeParseError, iss[0].Code)
}

func TestDecode_StructuralMismatchKeepsConverterSemantics(t *testing.T) {
	_, err := yaml.Decode(dsl.Int(), []byte("not-a-number\n"))
	iss, ok := duet.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, duet.CodeInvalidType, iss[0].Code)
}
