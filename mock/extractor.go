package mock

import "github.com/fwojciec/invoicefmt"

var _ invoicefmt.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of invoicefmt.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (*invoicefmt.Invoice, error)
}

func (e *Extractor) Extract(rawHTML string) (*invoicefmt.Invoice, error) {
	return e.ExtractFn(rawHTML)
}
