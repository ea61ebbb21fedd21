package models

import (
	"fmt"
	"os"

	"github.com/svetikas/ttbuild/internal/document"
	"github.com/svetikas/ttbuild/internal/pipeline"
)

// ManifestFileName is the plugin descriptor expected at the root of every
// plugin directory.
const ManifestFileName = "plugin.manifest"

// Manifest is the plugin's top-level descriptor. Like every other plugin
// JSON file it may carry comments and loose formatting, so it is read
// through the normalization pipeline.
type Manifest struct {
	doc *document.Value
}

// LoadManifestFromFile reads and parses a plugin.manifest.
func LoadManifestFromFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(string(data))
}

// ParseManifest parses manifest text. The document must be a JSON object
// naming at least a title and a version, which become the archive name.
func ParseManifest(raw string) (*Manifest, error) {
	doc, err := pipeline.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	if doc.Kind != document.KindObject {
		return nil, fmt.Errorf("manifest must be a JSON object")
	}
	m := &Manifest{doc: doc}
	if m.Title() == "" {
		return nil, fmt.Errorf("manifest has no title")
	}
	if m.Version() == "" {
		return nil, fmt.Errorf("manifest has no version")
	}
	return m, nil
}

// Title returns the plugin title, or "" when absent.
func (m *Manifest) Title() string {
	return m.stringAttr("title")
}

// Version returns the plugin version, or "" when absent.
func (m *Manifest) Version() string {
	return m.stringAttr("version")
}

// Thumbnail returns the manifest-declared preview image path, relative to
// the plugin directory.
func (m *Manifest) Thumbnail() (string, bool) {
	s := m.stringAttr("thumbnail")
	return s, s != ""
}

// RemoveThumbnail drops the thumbnail attribute. The plugin store ignores
// it, so store-mode archives ship the manifest without it.
func (m *Manifest) RemoveThumbnail() {
	m.doc.Obj.Delete("thumbnail")
}

// Render serializes the manifest as minimized JSON.
func (m *Manifest) Render() string {
	return document.Serialize(m.doc)
}

func (m *Manifest) stringAttr(key string) string {
	v := m.doc.Obj.Get(key)
	if v == nil || v.Kind != document.KindString {
		return ""
	}
	return v.Str
}
