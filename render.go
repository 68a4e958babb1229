package invoicefmt

import "context"

// BannerAsset is a resolved banner image, ready to embed.
type BannerAsset struct {
	// DataURI is the image encoded as a data: URI.
	DataURI string
}

// BannerResolver loads the banner image referenced by a config's
// banner_path. Implementations return (nil, nil) when the path is not
// applicable (empty, absolute URL, or data URI) and ENOTFOUND when the
// referenced asset does not exist. A nil asset is never fatal; the
// renderer degrades to referencing the path directly or omitting the
// banner block.
type BannerResolver interface {
	Resolve(ctx context.Context, path string) (*BannerAsset, error)
}

// Renderer produces the final output document for one invoice.
type Renderer interface {
	// Render is a pure function of its inputs. It never fails on
	// missing optional fields; the only error is EINVALID for
	// structurally impossible input (nil invoice). cfg, iban, and
	// banner may be nil, in which case defaults apply.
	Render(inv *Invoice, cfg *Config, iban *IbanConfig, banner *BannerAsset) (string, error)
}

// Rasterizer converts a rendered HTML document into PDF bytes. The
// underlying rendering surface is a shared, stateful resource;
// implementations serialize access internally but callers should not
// fan out requests.
type Rasterizer interface {
	// Rasterize returns EUNAVAILABLE when the rendering capability
	// failed and ETIMEOUT when the context deadline was exceeded.
	Rasterize(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// OutputWriter persists rendered documents keyed by computed filename.
type OutputWriter interface {
	WriteHTML(ctx context.Context, name, html string) error
	WritePDF(ctx context.Context, name string, pdf []byte) error

	// Exists reports whether an output with the given name was already
	// written. Used to implement the overwrite/skip policy.
	Exists(name string) bool
}
