// Package walker selects the plugin files that belong in an archive. It
// applies the loading-order exclusion rules: ignored extensions, items whose
// name starts with . or _, and named ignore directories.
package walker

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Options controls which files are excluded from a walk.
type Options struct {
	IgnoredExtensions []string
	IgnoredDirs       []string
	ExcludeHidden     bool // items starting with . or _
}

// DefaultOptions matches the plugin loading rules: build scripts and docs
// never ship, hidden items are skipped, and the Redundancy directory holds
// material that must stay out of the archive.
func DefaultOptions() Options {
	return Options{
		IgnoredExtensions: []string{".py", ".md", ".sh"},
		IgnoredDirs:       []string{"Redundancy"},
		ExcludeHidden:     true,
	}
}

// Entry is one file selected for packaging.
type Entry struct {
	Path string // absolute (or root-joined) path on disk
	Rel  string // slash-separated path inside the archive
}

// Skipped records a file left out of the walk and why.
type Skipped struct {
	Rel    string
	Reason string
}

// Walk traverses root and splits its files into included entries and
// skipped ones. Directory structure below root is preserved in the
// relative paths.
func Walk(root string, opts Options) ([]Entry, []Skipped, error) {
	var entries []Entry
	var skipped []Skipped

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if reason := opts.skipReason(rel); reason != "" {
			skipped = append(skipped, Skipped{Rel: rel, Reason: reason})
			return nil
		}

		entries = append(entries, Entry{Path: path, Rel: rel})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return entries, skipped, nil
}

func (o Options) skipReason(rel string) string {
	for _, ext := range o.IgnoredExtensions {
		if strings.HasSuffix(rel, ext) {
			return "ignored extension " + ext
		}
	}

	parts := strings.Split(rel, "/")
	if o.ExcludeHidden {
		for _, part := range parts {
			if strings.HasPrefix(part, ".") || strings.HasPrefix(part, "_") {
				return "hidden item " + part
			}
		}
	}
	for _, dir := range o.IgnoredDirs {
		for _, part := range parts[:len(parts)-1] {
			if part == dir {
				return "ignored directory " + dir
			}
		}
	}
	return ""
}
