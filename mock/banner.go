package mock

import (
	"context"

	"github.com/fwojciec/invoicefmt"
)

var _ invoicefmt.BannerResolver = (*BannerResolver)(nil)

// BannerResolver is a mock implementation of invoicefmt.BannerResolver.
type BannerResolver struct {
	ResolveFn func(ctx context.Context, path string) (*invoicefmt.BannerAsset, error)
}

func (r *BannerResolver) Resolve(ctx context.Context, path string) (*invoicefmt.BannerAsset, error) {
	return r.ResolveFn(ctx, path)
}
