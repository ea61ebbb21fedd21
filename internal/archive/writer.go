// Package archive writes the final plugin zip. The plugin store expects an
// uncompressed archive, so entries use the store method.
package archive

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
)

// File is one archive entry: a slash-separated relative path and the final
// bytes to store under it.
type File struct {
	Rel  string
	Data []byte
}

// Write creates a store-mode zip at dest containing the given files. The
// archive is written through a temporary file and renamed into place, so a
// failed run never leaves a partial archive behind.
func Write(dest string, files []File) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".ttbuild-*.zip")
	if err != nil {
		return fmt.Errorf("could not create archive: %w", err)
	}
	defer os.Remove(tmp.Name())

	zw := zip.NewWriter(tmp)
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   f.Rel,
			Method: zip.Store,
		})
		if err != nil {
			return fmt.Errorf("could not add %s: %w", f.Rel, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return fmt.Errorf("could not write %s: %w", f.Rel, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finish archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
