// Package builder drives a full plugin build: select files, normalize the
// JSON ones, rewrite the manifest, and pack everything into the archive.
package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/svetikas/ttbuild/internal/archive"
	"github.com/svetikas/ttbuild/internal/models"
	"github.com/svetikas/ttbuild/internal/pipeline"
	"github.com/svetikas/ttbuild/internal/rewrite"
	"github.com/svetikas/ttbuild/internal/walker"
)

// Format is the archive output format.
type Format string

// FormatStore is the uncompressed plugin-store format. Compressed formats
// may be added later.
const FormatStore Format = "store"

// SupportedFormats lists the accepted --output-format values.
var SupportedFormats = []string{string(FormatStore)}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	if s == string(FormatStore) {
		return FormatStore, nil
	}
	return "", fmt.Errorf("unsupported output format %q, supported formats are: %s",
		s, strings.Join(SupportedFormats, ", "))
}

// Config describes one build run.
type Config struct {
	InputDir  string
	OutputDir string
	Format    Format
	Walk      walker.Options
	Jobs      int // concurrent normalizations, defaults to 4
}

// Result reports what a successful build produced.
type Result struct {
	ArchivePath string
	Packed      []string // relative paths written to the archive
	Normalized  []string // subset of Packed that went through the pipeline
	Skipped     []walker.Skipped
}

// FileError attaches the failing file to a normalization error.
type FileError struct {
	Rel string
	Err error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Rel, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Progress is called after each file is processed.
type Progress func(done, total int, rel string)

// Build runs the whole pipeline for one plugin directory and writes the
// archive named "{title} {version}.zip" into the output directory. Nothing
// is written unless every file processed cleanly; the first failure aborts
// the run with the file identity attached.
func Build(cfg Config, manifest *models.Manifest, progress Progress) (*Result, error) {
	entries, skipped, err := walker.Walk(cfg.InputDir, cfg.Walk)
	if err != nil {
		return nil, fmt.Errorf("could not scan %s: %w", cfg.InputDir, err)
	}

	// The store does not use the thumbnail, so drop the attribute and keep
	// the referenced image out of the archive.
	if cfg.Format == FormatStore {
		if thumb, ok := manifest.Thumbnail(); ok {
			manifest.RemoveThumbnail()
			entries, skipped = excludeThumbnail(entries, skipped, thumb)
		}
	}

	files, normalized, err := processEntries(cfg, manifest, entries, progress)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create output directory: %w", err)
	}

	dest := filepath.Join(cfg.OutputDir, ArchiveName(manifest.Title(), manifest.Version()))
	if err := archive.Write(dest, files); err != nil {
		return nil, err
	}

	result := &Result{
		ArchivePath: dest,
		Normalized:  normalized,
		Skipped:     skipped,
	}
	for _, f := range files {
		result.Packed = append(result.Packed, f.Rel)
	}
	return result, nil
}

// processEntries produces the final bytes for every entry, normalizing
// .json files concurrently. Results keep walk order so archives come out
// deterministic.
func processEntries(cfg Config, manifest *models.Manifest, entries []walker.Entry, progress Progress) ([]archive.File, []string, error) {
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = 4
	}

	files := make([]archive.File, len(entries))
	errs := make([]error, len(entries))
	var normalized []string

	var wg sync.WaitGroup
	var mu sync.Mutex
	sem := make(chan struct{}, jobs)
	done := 0

	for i, entry := range entries {
		wg.Add(1)
		go func(i int, entry walker.Entry) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			data, wasNormalized, err := processEntry(entry, manifest)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[i] = &FileError{Rel: entry.Rel, Err: err}
			} else {
				files[i] = archive.File{Rel: entry.Rel, Data: data}
				if wasNormalized {
					normalized = append(normalized, entry.Rel)
				}
			}
			done++
			if progress != nil {
				progress(done, len(entries), entry.Rel)
			}
		}(i, entry)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return files, normalized, nil
}

func processEntry(entry walker.Entry, manifest *models.Manifest) ([]byte, bool, error) {
	if entry.Rel == models.ManifestFileName {
		return []byte(manifest.Render()), true, nil
	}

	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return nil, false, err
	}

	if strings.HasSuffix(entry.Rel, ".json") {
		out, err := pipeline.Normalize(string(data), rewrite.PluginPolicy())
		if err != nil {
			return nil, false, err
		}
		return []byte(out), true, nil
	}

	// Everything else ships byte for byte.
	return data, false, nil
}

func excludeThumbnail(entries []walker.Entry, skipped []walker.Skipped, thumb string) ([]walker.Entry, []walker.Skipped) {
	thumb = filepath.ToSlash(thumb)
	kept := entries[:0]
	for _, entry := range entries {
		if entry.Rel == thumb {
			skipped = append(skipped, walker.Skipped{Rel: entry.Rel, Reason: "thumbnail not needed in store format"})
			continue
		}
		kept = append(kept, entry)
	}
	return kept, skipped
}

// ArchiveName builds the archive file name from the manifest title and
// version, replacing characters that cannot appear in file names.
func ArchiveName(title, version string) string {
	name := fmt.Sprintf("%s %s.zip", title, version)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
}
