package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func rels(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Rel)
	}
	return out
}

func TestWalk_IncludesPluginFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "plugin.manifest")
	writeFile(t, root, "buildings.json")
	writeFile(t, root, "textures/house.png")

	entries, skipped, err := Walk(root, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.ElementsMatch(t, []string{"plugin.manifest", "buildings.json", "textures/house.png"}, rels(entries))
}

func TestWalk_IgnoredExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "data.json")
	writeFile(t, root, "README.md")
	writeFile(t, root, "build.py")
	writeFile(t, root, "deploy.sh")

	entries, skipped, err := Walk(root, DefaultOptions())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"data.json"}, rels(entries))
	assert.Len(t, skipped, 3)
}

func TestWalk_HiddenItems(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".git/config.json")
	writeFile(t, root, "_drafts/tree.json")
	writeFile(t, root, ".DS_Store")
	writeFile(t, root, "roads.json")

	entries, skipped, err := Walk(root, DefaultOptions())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"roads.json"}, rels(entries))
	require.Len(t, skipped, 3)
}

func TestWalk_HiddenItemsKeptWhenDisabled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "_drafts/tree.json")

	opts := DefaultOptions()
	opts.ExcludeHidden = false
	entries, _, err := Walk(root, opts)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"_drafts/tree.json"}, rels(entries))
}

func TestWalk_IgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Redundancy/old.json")
	writeFile(t, root, "nested/Redundancy/older.json")
	writeFile(t, root, "Redundancy.json") // a file, not the directory

	entries, skipped, err := Walk(root, DefaultOptions())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Redundancy.json"}, rels(entries))
	assert.Len(t, skipped, 2)

	for _, s := range skipped {
		assert.Equal(t, "ignored directory Redundancy", s.Reason)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	_, _, err := Walk(filepath.Join(t.TempDir(), "absent"), DefaultOptions())
	assert.Error(t, err)
}
