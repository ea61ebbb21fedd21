package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProjectFromFile_MissingFileGivesDefaults(t *testing.T) {
	p, err := LoadProjectFromFile(filepath.Join(t.TempDir(), ProjectFileName))
	require.NoError(t, err)

	assert.Equal(t, "output", p.Output.Directory)
	assert.Equal(t, "store", p.Output.Format)
	assert.Equal(t, []string{".py", ".md", ".sh"}, p.Ignore.Extensions)
	assert.Equal(t, []string{"Redundancy"}, p.Ignore.Directories)
	require.NotNil(t, p.Ignore.Hidden)
	assert.True(t, *p.Ignore.Hidden)
}

func TestLoadProjectFromFile_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectFileName)
	content := "output:\n  directory: dist\nignore:\n  extensions: [\".bak\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := LoadProjectFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "dist", p.Output.Directory)
	assert.Equal(t, "store", p.Output.Format)
	assert.Equal(t, []string{".bak"}, p.Ignore.Extensions)
	assert.Equal(t, []string{"Redundancy"}, p.Ignore.Directories)
}

func TestLoadProjectFromFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectFileName)
	require.NoError(t, os.WriteFile(path, []byte(":\n\t bad"), 0644))

	_, err := LoadProjectFromFile(path)
	assert.Error(t, err)
}

func TestProject_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectFileName)
	p := DefaultProject()
	p.Output.Directory = "build"
	require.NoError(t, p.SaveToFile(path))

	loaded, err := LoadProjectFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "build", loaded.Output.Directory)
}

func TestProject_WalkerOptions(t *testing.T) {
	hidden := false
	p := &Project{
		Ignore: IgnoreConfig{
			Extensions:  []string{".tmp"},
			Directories: []string{"Old"},
			Hidden:      &hidden,
		},
	}
	opts := p.WalkerOptions()
	assert.Equal(t, []string{".tmp"}, opts.IgnoredExtensions)
	assert.Equal(t, []string{"Old"}, opts.IgnoredDirs)
	assert.False(t, opts.ExcludeHidden)
}
