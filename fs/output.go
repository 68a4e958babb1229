package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/invoicefmt"
)

// Ensure Writer implements invoicefmt.OutputWriter at compile time.
var _ invoicefmt.OutputWriter = (*Writer)(nil)

// Writer persists rendered documents into a directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer that writes into dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// NewProjectWriter creates a Writer for a project folder's output
// directory.
func NewProjectWriter(projectDir string) *Writer {
	return NewWriter(filepath.Join(projectDir, OutputDir))
}

// WriteHTML writes a rendered HTML document.
func (w *Writer) WriteHTML(ctx context.Context, name, html string) error {
	return w.write(name, []byte(html))
}

// WritePDF writes rasterized PDF bytes.
func (w *Writer) WritePDF(ctx context.Context, name string, pdf []byte) error {
	return w.write(name, pdf)
}

// Exists reports whether an output file with the given name is already
// present.
func (w *Writer) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(w.dir, name))
	return err == nil
}

func (w *Writer) write(name string, data []byte) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.dir, name), data, 0644)
}
