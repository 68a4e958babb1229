package mock

import (
	"context"

	"github.com/fwojciec/invoicefmt"
)

var _ invoicefmt.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of invoicefmt.OutputWriter.
type OutputWriter struct {
	WriteHTMLFn func(ctx context.Context, name, html string) error
	WritePDFFn  func(ctx context.Context, name string, pdf []byte) error
	ExistsFn    func(name string) bool
}

func (w *OutputWriter) WriteHTML(ctx context.Context, name, html string) error {
	return w.WriteHTMLFn(ctx, name, html)
}

func (w *OutputWriter) WritePDF(ctx context.Context, name string, pdf []byte) error {
	return w.WritePDFFn(ctx, name, pdf)
}

func (w *OutputWriter) Exists(name string) bool {
	if w.ExistsFn == nil {
		return false
	}
	return w.ExistsFn(name)
}
