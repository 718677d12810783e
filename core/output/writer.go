// Package output handles file naming and writing for animalpage outputs.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/animalpage/core"
)

// Writer writes rendered output to disk.
type Writer struct {
	// BaseDir resolves relative output paths. Empty means the working directory.
	BaseDir string
}

// New creates a Writer rooted at baseDir.
func New(baseDir string) *Writer {
	return &Writer{BaseDir: baseDir}
}

// Resolve returns the final path for an output file. A path without an
// extension gets ext appended; relative paths are joined to BaseDir.
func (w *Writer) Resolve(path string, ext string) string {
	if filepath.Ext(path) == "" {
		path += ext
	}
	if w.BaseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(w.BaseDir, path)
	}
	return path
}

// Write writes data to the resolved path, creating parent directories.
// Failures are core.ErrIO errors.
func (w *Writer) Write(path string, data []byte, ext string) (string, error) {
	fullPath := w.Resolve(path, ext)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", core.IOError(fmt.Sprintf("creating directory %s", dir), err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", core.IOError(fmt.Sprintf("writing file %s", fullPath), err)
	}
	return fullPath, nil
}
