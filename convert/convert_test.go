package convert_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/invoicefmt"
	"github.com/fwojciec/invoicefmt/convert"
	"github.com/fwojciec/invoicefmt/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outputRecorder collects written outputs in memory.
type outputRecorder struct {
	mu    sync.Mutex
	html  map[string]string
	pdf   map[string][]byte
	exist map[string]bool
}

func newOutputRecorder() *outputRecorder {
	return &outputRecorder{
		html:  map[string]string{},
		pdf:   map[string][]byte{},
		exist: map[string]bool{},
	}
}

func (r *outputRecorder) writer() *mock.OutputWriter {
	return &mock.OutputWriter{
		WriteHTMLFn: func(ctx context.Context, name, html string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.html[name] = html
			return nil
		},
		WritePDFFn: func(ctx context.Context, name string, pdf []byte) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.pdf[name] = pdf
			return nil
		},
		ExistsFn: func(name string) bool {
			r.mu.Lock()
			defer r.mu.Unlock()
			return r.exist[name]
		},
	}
}

func passthroughExtractor() *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(rawHTML string) (*invoicefmt.Invoice, error) {
			return &invoicefmt.Invoice{
				InvoiceNumber: rawHTML,
				ClientName:    invoicefmt.Markup("Client"),
			}, nil
		},
	}
}

func staticRenderer(doc string) *mock.Renderer {
	return &mock.Renderer{
		RenderFn: func(inv *invoicefmt.Invoice, cfg *invoicefmt.Config, iban *invoicefmt.IbanConfig, banner *invoicefmt.BannerAsset) (string, error) {
			return doc, nil
		},
	}
}

func validIban() *invoicefmt.IbanConfig {
	return &invoicefmt.IbanConfig{IBAN: "NL00BANK0123456789"}
}

func TestConverter_Preconditions(t *testing.T) {
	t.Parallel()

	t.Run("blank IBAN blocks the whole batch", func(t *testing.T) {
		t.Parallel()

		extracted := false
		c := &convert.Converter{
			Extractor: &mock.Extractor{ExtractFn: func(string) (*invoicefmt.Invoice, error) {
				extracted = true
				return nil, nil
			}},
			Renderer: staticRenderer("doc"),
			Outputs:  newOutputRecorder().writer(),
			Options:  convert.Options{KeepHTML: true},
		}

		_, err := c.Convert(context.Background(), []convert.Input{{Name: "a.html", HTML: "A-1"}}, nil)

		require.Error(t, err)
		assert.Equal(t, invoicefmt.EINVALID, invoicefmt.ErrorCode(err))
		assert.False(t, extracted, "no document should be touched")
	})

	t.Run("pdf generation without a rasterizer is rejected", func(t *testing.T) {
		t.Parallel()

		c := &convert.Converter{
			Extractor: passthroughExtractor(),
			Renderer:  staticRenderer("doc"),
			Outputs:   newOutputRecorder().writer(),
			Iban:      validIban(),
			Options:   convert.Options{GeneratePDF: true},
		}

		_, err := c.Convert(context.Background(), nil, nil)

		require.Error(t, err)
		assert.Equal(t, invoicefmt.EINVALID, invoicefmt.ErrorCode(err))
	})
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("writes html outputs under derived names", func(t *testing.T) {
		t.Parallel()

		rec := newOutputRecorder()
		c := &convert.Converter{
			Extractor: passthroughExtractor(),
			Renderer:  staticRenderer("<html>doc</html>"),
			Outputs:   rec.writer(),
			Iban:      validIban(),
			Options:   convert.Options{KeepHTML: true},
		}

		result, err := c.Convert(context.Background(), []convert.Input{
			{Name: "a.html", HTML: "A-1"},
			{Name: "b.html", HTML: "A-2"},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Converted)
		assert.Equal(t, 0, result.Errors)
		assert.Equal(t, "<html>doc</html>", rec.html["Invoice-A-1-Client-improved.html"])
		assert.Equal(t, "<html>doc</html>", rec.html["Invoice-A-2-Client-improved.html"])
	})

	t.Run("per-document failures do not abort the batch", func(t *testing.T) {
		t.Parallel()

		rec := newOutputRecorder()
		c := &convert.Converter{
			Extractor: &mock.Extractor{ExtractFn: func(rawHTML string) (*invoicefmt.Invoice, error) {
				if rawHTML == "bad" {
					return nil, invoicefmt.Errorf(invoicefmt.EINVALID, "not an invoice")
				}
				return &invoicefmt.Invoice{InvoiceNumber: rawHTML, ClientName: "Client"}, nil
			}},
			Renderer: staticRenderer("doc"),
			Outputs:  rec.writer(),
			Iban:     validIban(),
			Options:  convert.Options{KeepHTML: true},
		}

		var failed []string
		result, err := c.Convert(context.Background(), []convert.Input{
			{Name: "a.html", HTML: "A-1"},
			{Name: "b.html", HTML: "bad"},
			{Name: "c.html", HTML: "A-3"},
		}, func(e convert.ProgressEvent) {
			if e.Type == convert.ProgressFailed {
				failed = append(failed, e.Name)
			}
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Converted)
		assert.Equal(t, 1, result.Errors)
		assert.Equal(t, []string{"b.html"}, failed)
		assert.Contains(t, rec.html, "Invoice-A-3-Client-improved.html")
	})

	t.Run("existing outputs are skipped unless overwrite is set", func(t *testing.T) {
		t.Parallel()

		rec := newOutputRecorder()
		rec.exist["Invoice-A-1-Client-improved.html"] = true
		c := &convert.Converter{
			Extractor: passthroughExtractor(),
			Renderer:  staticRenderer("doc"),
			Outputs:   rec.writer(),
			Iban:      validIban(),
			Options:   convert.Options{KeepHTML: true},
		}

		result, err := c.Convert(context.Background(), []convert.Input{{Name: "a.html", HTML: "A-1"}}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
		assert.Empty(t, rec.html)

		c.Options.Overwrite = true
		result, err = c.Convert(context.Background(), []convert.Input{{Name: "a.html", HTML: "A-1"}}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Converted)
		assert.Contains(t, rec.html, "Invoice-A-1-Client-improved.html")
	})

	t.Run("rasterizes and writes pdf output", func(t *testing.T) {
		t.Parallel()

		rec := newOutputRecorder()
		c := &convert.Converter{
			Extractor: passthroughExtractor(),
			Renderer:  staticRenderer("doc"),
			Outputs:   rec.writer(),
			Rasterizer: &mock.Rasterizer{RasterizeFn: func(ctx context.Context, html string) ([]byte, error) {
				return []byte("%PDF " + html), nil
			}},
			Iban:    validIban(),
			Options: convert.Options{KeepHTML: true, GeneratePDF: true},
		}

		result, err := c.Convert(context.Background(), []convert.Input{{Name: "a.html", HTML: "A-1"}}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Converted)
		assert.Equal(t, []byte("%PDF doc"), rec.pdf["Invoice-A-1-Client.pdf"])
	})

	t.Run("html output is kept when rasterization fails", func(t *testing.T) {
		t.Parallel()

		rec := newOutputRecorder()
		c := &convert.Converter{
			Extractor: passthroughExtractor(),
			Renderer:  staticRenderer("doc"),
			Outputs:   rec.writer(),
			Rasterizer: &mock.Rasterizer{RasterizeFn: func(ctx context.Context, html string) ([]byte, error) {
				return nil, invoicefmt.Errorf(invoicefmt.EUNAVAILABLE, "browser crashed")
			}},
			Iban:    validIban(),
			Options: convert.Options{KeepHTML: true, GeneratePDF: true},
		}

		result, err := c.Convert(context.Background(), []convert.Input{{Name: "a.html", HTML: "A-1"}}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Errors)
		assert.Contains(t, rec.html, "Invoice-A-1-Client-improved.html")
		assert.Empty(t, rec.pdf)
	})

	t.Run("cancellation stops between documents", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		rec := newOutputRecorder()
		c := &convert.Converter{
			Extractor: &mock.Extractor{ExtractFn: func(rawHTML string) (*invoicefmt.Invoice, error) {
				cancel() // takes effect before the next document
				return &invoicefmt.Invoice{InvoiceNumber: rawHTML, ClientName: "Client"}, nil
			}},
			Renderer: staticRenderer("doc"),
			Outputs:  rec.writer(),
			Iban:     validIban(),
			Options:  convert.Options{KeepHTML: true},
		}

		result, err := c.Convert(ctx, []convert.Input{
			{Name: "a.html", HTML: "A-1"},
			{Name: "b.html", HTML: "A-2"},
		}, nil)

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, result.Converted)
		assert.Len(t, rec.html, 1)
	})
}

func TestConverter_Progress(t *testing.T) {
	t.Parallel()

	t.Run("reports started, per-document, and finished events", func(t *testing.T) {
		t.Parallel()

		c := &convert.Converter{
			Extractor: passthroughExtractor(),
			Renderer:  staticRenderer("doc"),
			Outputs:   newOutputRecorder().writer(),
			Iban:      validIban(),
			Options:   convert.Options{KeepHTML: true},
		}

		var events []convert.ProgressType
		_, err := c.Convert(context.Background(), []convert.Input{
			{Name: "a.html", HTML: "A-1"},
			{Name: "b.html", HTML: "A-2"},
		}, func(e convert.ProgressEvent) {
			events = append(events, e.Type)
		})

		require.NoError(t, err)
		assert.Equal(t, []convert.ProgressType{
			convert.ProgressStarted,
			convert.ProgressCompleted,
			convert.ProgressCompleted,
			convert.ProgressFinished,
		}, events)
	})
}

func TestConverter_Banner(t *testing.T) {
	t.Parallel()

	t.Run("resolved once per batch and passed to the renderer", func(t *testing.T) {
		t.Parallel()

		cfg := invoicefmt.DefaultConfig()
		cfg.BannerPath = "banner.png"

		resolves := 0
		var seen []*invoicefmt.BannerAsset
		asset := &invoicefmt.BannerAsset{DataURI: "data:image/png;base64,AAAA"}

		c := &convert.Converter{
			Extractor: passthroughExtractor(),
			Renderer: &mock.Renderer{RenderFn: func(inv *invoicefmt.Invoice, cfg *invoicefmt.Config, iban *invoicefmt.IbanConfig, banner *invoicefmt.BannerAsset) (string, error) {
				seen = append(seen, banner)
				return "doc", nil
			}},
			Outputs: newOutputRecorder().writer(),
			Banners: &mock.BannerResolver{ResolveFn: func(ctx context.Context, path string) (*invoicefmt.BannerAsset, error) {
				resolves++
				return asset, nil
			}},
			Config:  cfg,
			Iban:    validIban(),
			Options: convert.Options{KeepHTML: true},
		}

		_, err := c.Convert(context.Background(), []convert.Input{
			{Name: "a.html", HTML: "A-1"},
			{Name: "b.html", HTML: "A-2"},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, resolves)
		assert.Equal(t, []*invoicefmt.BannerAsset{asset, asset}, seen)
	})

	t.Run("unresolvable banner degrades to nil", func(t *testing.T) {
		t.Parallel()

		cfg := invoicefmt.DefaultConfig()
		cfg.BannerPath = "missing.png"

		var seen *invoicefmt.BannerAsset
		c := &convert.Converter{
			Extractor: passthroughExtractor(),
			Renderer: &mock.Renderer{RenderFn: func(inv *invoicefmt.Invoice, cfg *invoicefmt.Config, iban *invoicefmt.IbanConfig, banner *invoicefmt.BannerAsset) (string, error) {
				seen = banner
				return "doc", nil
			}},
			Outputs: newOutputRecorder().writer(),
			Banners: &mock.BannerResolver{ResolveFn: func(ctx context.Context, path string) (*invoicefmt.BannerAsset, error) {
				return nil, invoicefmt.Errorf(invoicefmt.ENOTFOUND, "banner %q not found", path)
			}},
			Config:  cfg,
			Iban:    validIban(),
			Options: convert.Options{KeepHTML: true},
		}

		result, err := c.Convert(context.Background(), []convert.Input{{Name: "a.html", HTML: "A-1"}}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Converted)
		assert.Nil(t, seen)
	})
}
