package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Object(t *testing.T) {
	doc, err := Parse(`{"scale":2,"name":"mysprite"}`)
	require.NoError(t, err)
	require.Equal(t, KindObject, doc.Kind)

	assert.Equal(t, []string{"scale", "name"}, doc.Obj.Keys())
	assert.Equal(t, "2", doc.Obj.Get("scale").Num)
	assert.Equal(t, "mysprite", doc.Obj.Get("name").Str)
}

func TestParse_NestedStructures(t *testing.T) {
	doc, err := Parse(`[{"frames":[1,2,3],"meta":{"loop":true,"speed":null}}]`)
	require.NoError(t, err)
	require.Equal(t, KindArray, doc.Kind)
	require.Len(t, doc.Arr, 1)

	obj := doc.Arr[0].Obj
	require.NotNil(t, obj)
	assert.Len(t, obj.Get("frames").Arr, 3)
	meta := obj.Get("meta").Obj
	assert.Equal(t, KindBool, meta.Get("loop").Kind)
	assert.Equal(t, KindNull, meta.Get("speed").Kind)
}

func TestParse_DuplicateKeysLastWriteWins(t *testing.T) {
	doc, err := Parse(`{"a":1,"b":2,"a":3}`)
	require.NoError(t, err)

	// The later value wins but the key keeps its first position.
	assert.Equal(t, []string{"a", "b"}, doc.Obj.Keys())
	assert.Equal(t, "3", doc.Obj.Get("a").Num)
	assert.Equal(t, `{"a":3,"b":2}`, Serialize(doc))
}

func TestParse_TrailingCommaTolerated(t *testing.T) {
	doc, err := Parse(`{"a":1,}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, Serialize(doc))

	doc, err = Parse(`[1,2,]`)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, Serialize(doc))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unterminated string", `{"a":"b`},
		{"unbalanced braces", `{"a":1`},
		{"unbalanced brackets", `[1,2`},
		{"missing colon", `{"a" 1}`},
		{"bare key", `{a:1}`},
		{"invalid literal", `{"a":nope}`},
		{"trailing data", `{"a":1}{"b":2}`},
		{"escape at end of input", `"abc\`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)

			var malformed *MalformedDocumentError
			require.ErrorAs(t, err, &malformed)
			assert.NotEmpty(t, malformed.Reason)
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := Parse(`{"a":1,"b":oops}`)
	var malformed *MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 11, malformed.Position)
}

func TestSerialize_FixedPoint(t *testing.T) {
	inputs := []string{
		`{}`,
		`[]`,
		`null`,
		`true`,
		`-12.50`,
		`"text"`,
		`{"scale":2,"name":"mysprite"}`,
		`[{"id":"x","frames":[0,1]},{"id":"y"}]`,
		`{"a":{"b":{"c":[null,false,"d"]}}}`,
		`{"note":"escaped \"quote\" and \\ slash"}`,
	}
	for _, input := range inputs {
		doc, err := Parse(input)
		require.NoError(t, err, "input: %s", input)
		assert.Equal(t, input, Serialize(doc), "minimized text must round-trip unchanged")
	}
}

func TestSerialize_NumberTextPreserved(t *testing.T) {
	// 1.50 must not become 1.5; the original digits pass through.
	doc, err := Parse(`{"scale":1.50,"big":10000000000000000001}`)
	require.NoError(t, err)
	assert.Equal(t, `{"scale":1.50,"big":10000000000000000001}`, Serialize(doc))
}

func TestObject_SetGetDelete(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Number("1"))
	obj.Set("b", String("x"))
	obj.Set("a", Number("2"))

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	assert.Equal(t, "2", obj.Get("a").Num)
	assert.True(t, obj.Has("b"))

	obj.Delete("a")
	assert.False(t, obj.Has("a"))
	assert.Equal(t, []string{"b"}, obj.Keys())
	assert.Equal(t, 1, obj.Len())

	// Deleting an absent key is a no-op.
	obj.Delete("missing")
	assert.Equal(t, 1, obj.Len())
}
