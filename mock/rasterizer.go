package mock

import (
	"context"

	"github.com/fwojciec/invoicefmt"
)

var _ invoicefmt.Rasterizer = (*Rasterizer)(nil)

// Rasterizer is a mock implementation of invoicefmt.Rasterizer.
type Rasterizer struct {
	RasterizeFn func(ctx context.Context, html string) ([]byte, error)
	CloseFn     func() error
}

func (r *Rasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	return r.RasterizeFn(ctx, html)
}

func (r *Rasterizer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}
