// Package rod provides PDF rasterization using Chrome browser
// automation.
package rod

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/invoicefmt"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Rasterizer implements invoicefmt.Rasterizer at compile time.
var _ invoicefmt.Rasterizer = (*Rasterizer)(nil)

// Rasterizer converts rendered HTML documents into PDF bytes using a
// headless Chrome browser. The browser is a single shared rendering
// surface; calls are serialized internally, so Rasterizer is safe for
// concurrent use but does not render in parallel.
type Rasterizer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	mu       sync.Mutex
}

// NewRasterizer launches a headless Chrome browser. Close must be
// called when the Rasterizer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRasterizer() (*Rasterizer, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Rasterizer{browser: browser, launcher: lnchr}, nil
}

// Rasterize loads the document into a fresh page and prints it to PDF.
func (r *Rasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, mapError(ctx, err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, mapError(ctx, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, mapError(ctx, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, mapError(ctx, err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
	})
	if err != nil {
		return nil, mapError(ctx, err)
	}
	defer stream.Close()

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, mapError(ctx, err)
	}

	return pdf, nil
}

// Close releases browser resources.
func (r *Rasterizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// mapError translates rasterization failures into the domain's error
// codes: ETIMEOUT when the context deadline was exceeded, EUNAVAILABLE
// otherwise.
func mapError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return invoicefmt.Errorf(invoicefmt.ETIMEOUT, "pdf rasterization timed out: %v", err)
	}
	return invoicefmt.Errorf(invoicefmt.EUNAVAILABLE, "pdf rasterization failed: %v", err)
}
