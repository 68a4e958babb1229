package mock

import "github.com/fwojciec/invoicefmt"

var _ invoicefmt.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of invoicefmt.Renderer.
type Renderer struct {
	RenderFn func(inv *invoicefmt.Invoice, cfg *invoicefmt.Config, iban *invoicefmt.IbanConfig, banner *invoicefmt.BannerAsset) (string, error)
}

func (r *Renderer) Render(inv *invoicefmt.Invoice, cfg *invoicefmt.Config, iban *invoicefmt.IbanConfig, banner *invoicefmt.BannerAsset) (string, error) {
	return r.RenderFn(inv, cfg, iban, banner)
}
