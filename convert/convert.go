// Package convert provides batch conversion orchestration. It feeds
// each input document through extraction, rendering, and rasterization,
// resolves output filenames, and hands results to the output writer.
package convert

import (
	"context"
	"log/slog"

	"github.com/fwojciec/invoicefmt"
)

// Input is one source document to convert. Name is only used for
// progress reporting; the orchestrator does not care how the content
// was obtained.
type Input struct {
	Name string
	HTML string
}

// Options control batch behavior.
type Options struct {
	// KeepHTML writes the rendered HTML document alongside the PDF.
	KeepHTML bool

	// Overwrite replaces existing output files; when false, documents
	// whose output name already exists are skipped.
	Overwrite bool

	// GeneratePDF rasterizes the rendered document. Requires a
	// Rasterizer on the Converter.
	GeneratePDF bool
}

// Result holds the outcome of a conversion batch.
type Result struct {
	Converted int
	Skipped   int
	Errors    int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a conversion batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Error     error
}

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// Converter orchestrates the conversion of invoice documents. The
// extractor and renderer are pure functions over their arguments, and
// the rasterizer is a shared stateful surface, so documents are
// processed strictly one at a time; the only mutable state is the set
// of already-written output names, owned by the Outputs collaborator.
type Converter struct {
	Extractor invoicefmt.Extractor
	Renderer  invoicefmt.Renderer
	Outputs   invoicefmt.OutputWriter

	// Rasterizer may be nil when Options.GeneratePDF is false.
	Rasterizer invoicefmt.Rasterizer

	// Banners may be nil; the banner block then degrades to a path
	// reference or omission.
	Banners invoicefmt.BannerResolver

	Config *invoicefmt.Config
	Iban   *invoicefmt.IbanConfig

	Options Options

	// Logger may be nil.
	Logger *slog.Logger
}

// Convert processes inputs sequentially. A non-blank IBAN is a hard
// precondition checked before any document is touched. Per-document
// failures increment the error count and never abort the batch; ctx
// cancellation is checked between documents.
func (c *Converter) Convert(ctx context.Context, inputs []Input, progress ProgressFunc) (*Result, error) {
	cfg := c.Config
	if cfg == nil {
		cfg = invoicefmt.DefaultConfig()
	}
	iban := c.Iban
	if iban == nil {
		iban = invoicefmt.DefaultIbanConfig()
	}

	if iban.IBAN == "" {
		return nil, invoicefmt.Errorf(invoicefmt.EINVALID, "IBAN is required before conversion")
	}
	if c.Options.GeneratePDF && c.Rasterizer == nil {
		return nil, invoicefmt.Errorf(invoicefmt.EINVALID, "PDF generation requested but no rasterizer configured")
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(inputs)})
	}

	// The banner is resolved once per batch; the same configuration
	// applies to every document.
	banner := c.resolveBanner(ctx, cfg)

	result := &Result{}
	for i, input := range inputs {
		// Coarse stop flag: no cancellation mid-document.
		if err := ctx.Err(); err != nil {
			return result, err
		}

		skipped, err := c.convertOne(ctx, input, cfg, iban, banner)
		switch {
		case err != nil:
			result.Errors++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: len(inputs), Name: input.Name, Error: err})
			}
		case skipped:
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Total: len(inputs), Name: input.Name})
			}
		default:
			result.Converted++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: len(inputs), Name: input.Name})
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(inputs), Total: len(inputs)})
	}
	return result, nil
}

// convertOne runs the extract → render → persist → rasterize pipeline
// for a single document.
func (c *Converter) convertOne(ctx context.Context, input Input, cfg *invoicefmt.Config, iban *invoicefmt.IbanConfig, banner *invoicefmt.BannerAsset) (skipped bool, err error) {
	inv, err := c.Extractor.Extract(input.HTML)
	if err != nil {
		return false, err
	}

	doc, err := c.Renderer.Render(inv, cfg, iban, banner)
	if err != nil {
		return false, err
	}

	htmlName := invoicefmt.HTMLName(inv)
	pdfName := invoicefmt.PDFName(inv)

	// Overwrite policy is resolved against the names this batch and
	// earlier runs have already produced.
	if !c.Options.Overwrite {
		if (c.Options.KeepHTML && c.Outputs.Exists(htmlName)) ||
			(c.Options.GeneratePDF && c.Outputs.Exists(pdfName)) {
			return true, nil
		}
	}

	if c.Options.KeepHTML {
		if err := c.Outputs.WriteHTML(ctx, htmlName, doc); err != nil {
			return false, err
		}
	}

	if c.Options.GeneratePDF {
		pdf, err := c.Rasterizer.Rasterize(ctx, doc)
		if err != nil {
			// The HTML output, if requested, is still kept.
			return false, err
		}
		if err := c.Outputs.WritePDF(ctx, pdfName, pdf); err != nil {
			return false, err
		}
	}

	return false, nil
}

// resolveBanner loads the configured banner asset. A missing asset is
// logged and degrades to nil; the renderer then references the raw path
// or omits the block.
func (c *Converter) resolveBanner(ctx context.Context, cfg *invoicefmt.Config) *invoicefmt.BannerAsset {
	if c.Banners == nil || cfg.BannerPath == "" {
		return nil
	}
	banner, err := c.Banners.Resolve(ctx, cfg.BannerPath)
	if err != nil {
		if c.Logger != nil {
			c.Logger.Warn("banner unavailable", "path", cfg.BannerPath, "err", err)
		}
		return nil
	}
	return banner
}
