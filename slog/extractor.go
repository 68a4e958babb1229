// Package slog provides logging decorators for invoicefmt services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/invoicefmt"
)

// Ensure LoggingExtractor implements invoicefmt.Extractor.
var _ invoicefmt.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   invoicefmt.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next invoicefmt.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs what was found in the document and delegates to the
// wrapped extractor.
func (e *LoggingExtractor) Extract(rawHTML string) (inv *invoicefmt.Invoice, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(rawHTML),
			"duration", time.Since(begin),
			"err", err,
		}
		if inv != nil {
			attrs = append(attrs,
				"invoice_number", inv.InvoiceNumber,
				"items", len(inv.Items),
				"columns", len(inv.Columns),
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(rawHTML)
}
