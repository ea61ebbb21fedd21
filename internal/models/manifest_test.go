package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest(`{"title":"Sample Park","version":"1.2","thumbnail":"preview.png"}`)
	require.NoError(t, err)

	assert.Equal(t, "Sample Park", m.Title())
	assert.Equal(t, "1.2", m.Version())
	thumb, ok := m.Thumbnail()
	assert.True(t, ok)
	assert.Equal(t, "preview.png", thumb)
}

func TestParseManifest_WithCommentsAndBareTokens(t *testing.T) {
	raw := "{\n  \"title\": \"Sample Park\", // shown in the store\n  \"version\": 1.0,\n  author: someone\n}"
	_, err := ParseManifest(raw)
	// version is a number here, not a string, so the manifest is rejected.
	require.Error(t, err)

	raw = "{\n  \"title\": \"Sample Park\", // shown in the store\n  \"version\": \"1.0\",\n  author: someone\n}"
	m, err := ParseManifest(raw)
	require.NoError(t, err)
	assert.Equal(t, "Sample Park", m.Title())
	assert.Equal(t, "1.0", m.Version())
}

func TestParseManifest_Errors(t *testing.T) {
	cases := map[string]string{
		"not an object":   `[{"title":"x","version":"1"}]`,
		"missing title":   `{"version":"1.0"}`,
		"missing version": `{"title":"x"}`,
		"unparseable":     `{"title": "x`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseManifest(raw)
			assert.Error(t, err)
		})
	}
}

func TestManifest_RemoveThumbnail(t *testing.T) {
	m, err := ParseManifest(`{"title":"x","version":"1.0","thumbnail":"preview.png"}`)
	require.NoError(t, err)

	m.RemoveThumbnail()
	_, ok := m.Thumbnail()
	assert.False(t, ok)
	assert.Equal(t, `{"title":"x","version":"1.0"}`, m.Render())
}

func TestLoadManifestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"x","version":"2.0"}`), 0644))

	m, err := LoadManifestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2.0", m.Version())

	_, err = LoadManifestFromFile(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
