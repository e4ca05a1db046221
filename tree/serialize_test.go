package tree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duet-json/duet/tree"
)

func TestSerialize_Compact(t *testing.T) {
	v := tree.Object(
		tree.Entry("name", tree.String("John")),
		tree.Entry("age", tree.Number(30)),
		tree.Entry("tags", tree.Array(tree.String("a"), tree.String("b"))),
		tree.Entry("city", tree.Null()),
	)
	assert.Equal(t, `{"name":"John","age":30,"tags":["a","b"],"city":null}`, tree.Serialize(v, 0))
}

func TestSerialize_Indented(t *testing.T) {
	v := tree.Object(
		tree.Entry("a", tree.Number(1)),
		tree.Entry("b", tree.Array(tree.Bool(true))),
	)
	want := "{\n  \"a\": 1,\n  \"b\": [\n    true\n  ]\n}"
	assert.Equal(t, want, tree.Serialize(v, 2))
}

func TestSerialize_EmptyContainers(t *testing.T) {
	assert.Equal(t, "[]", tree.Serialize(tree.Array(), 2))
	assert.Equal(t, "{}", tree.Serialize(tree.Object(), 2))
}

func TestSerialize_StringEscaping(t *testing.T) {
	assert.Equal(t, `"he said \"hi\""`, tree.Serialize(tree.String(`he said "hi"`), 0))
	assert.Equal(t, `"line\nbreak"`, tree.Serialize(tree.String("line\nbreak"), 0))
}

func TestSerialize_ParseRoundTrip(t *testing.T) {
	v := tree.Object(
		tree.Entry("n", tree.Number(-2.5)),
		tree.Entry("s", tree.String("é \" \\")),
		tree.Entry("l", tree.Array(tree.Null(), tree.Bool(false), tree.Number(1e9))),
		tree.Entry("o", tree.Object(tree.Entry("inner", tree.String("v")))),
	)
	for _, width := range []int{0, 2, 4} {
		back, err := tree.Parse([]byte(tree.Serialize(v, width)))
		require.NoError(t, err)
		assert.True(t, back.Equal(v), "width %d: %s", width, back)
	}
}

func TestSerialize_NonFiniteNumberPanics(t *testing.T) {
	assert.Panics(t, func() { tree.Serialize(tree.Number(math.NaN()), 0) })
	assert.Panics(t, func() { tree.Serialize(tree.Number(math.Inf(1)), 0) })
}
