package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svetikas/ttbuild/internal/document"
	"github.com/svetikas/ttbuild/internal/rewrite"
)

func TestNormalize_CommentedLooseInput(t *testing.T) {
	input := "{ \"scale\" : 2 // pixel scale\n, \"name\": mysprite }"
	got, err := Normalize(input, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"scale":2,"name":"mysprite"}`, got)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"[ { \"id\": \"a\" }, // first\n { \"id\": \"b\", \"scale\": 1.50 } ]",
		`{"text":"with // inside","n":-3}`,
		"{ frames : [0, 1, 2,] }",
	}
	for _, input := range inputs {
		once, err := Normalize(input, nil)
		require.NoError(t, err, "input: %s", input)
		twice, err := Normalize(once, nil)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "normalizing normalized output must change nothing")
	}
}

func TestNormalize_DeprecatedKeyFails(t *testing.T) {
	_, err := Normalize(`{"privileged": true}`, rewrite.PluginPolicy())
	require.Error(t, err)

	var stage *StageError
	require.ErrorAs(t, err, &stage)
	assert.Equal(t, StageRewrite, stage.Stage)

	var deprecated *rewrite.DeprecatedAttributeError
	require.ErrorAs(t, err, &deprecated)
	assert.Equal(t, "privileged", deprecated.Key)
}

func TestNormalize_ConditionalInsertRoundTrip(t *testing.T) {
	got, err := Normalize(`{"script":"main.lua"}`, rewrite.PluginPolicy())
	require.NoError(t, err)
	assert.Equal(t, `{"script":"main.lua","mute lua":true}`, got)

	again, err := Normalize(got, rewrite.PluginPolicy())
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestNormalize_ParseFailureAttributed(t *testing.T) {
	_, err := Normalize(`{"a": "unterminated`, nil)
	require.Error(t, err)

	var stage *StageError
	require.ErrorAs(t, err, &stage)
	assert.Equal(t, StageParse, stage.Stage)

	var malformed *document.MalformedDocumentError
	assert.ErrorAs(t, err, &malformed)
}

func TestNormalize_EmptyRulesSkipRewrite(t *testing.T) {
	got, err := Normalize(`{"strict lua": true}`, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"strict lua":true}`, got)
}

func TestParse_ReturnsDocument(t *testing.T) {
	doc, err := Parse("{ \"title\": My Plugin // name\n, \"version\": \"1.0\" }")
	require.NoError(t, err)
	require.Equal(t, document.KindObject, doc.Kind)
	assert.Equal(t, "My Plugin", doc.Obj.Get("title").Str)
}
