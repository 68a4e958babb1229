package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/invoicefmt"
)

// Ensure LoggingRasterizer implements invoicefmt.Rasterizer.
var _ invoicefmt.Rasterizer = (*LoggingRasterizer)(nil)

// LoggingRasterizer wraps a Rasterizer with debug logging.
type LoggingRasterizer struct {
	next   invoicefmt.Rasterizer
	logger *slog.Logger
}

// NewLoggingRasterizer creates a new LoggingRasterizer.
func NewLoggingRasterizer(next invoicefmt.Rasterizer, logger *slog.Logger) *LoggingRasterizer {
	return &LoggingRasterizer{next: next, logger: logger}
}

// Rasterize logs the document size and duration and delegates to the
// wrapped rasterizer.
func (r *LoggingRasterizer) Rasterize(ctx context.Context, html string) (pdf []byte, err error) {
	defer func(begin time.Time) {
		r.logger.Info("rasterize",
			"html_bytes", len(html),
			"pdf_bytes", len(pdf),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Rasterize(ctx, html)
}

// Close delegates to the wrapped rasterizer.
func (r *LoggingRasterizer) Close() error {
	return r.next.Close()
}
