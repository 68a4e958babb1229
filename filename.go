package invoicefmt

import "strings"

// Fallback filename tokens used when the respective source field is
// empty.
const (
	UnknownInvoice = "UNKNOWN"
	UnknownClient  = "UNKNOWN_CLIENT"
)

// SanitizeFilename makes a source-derived token safe for use in an
// output filename: runs of whitespace collapse to a single underscore,
// and every remaining rune outside [A-Za-z0-9_.-] becomes a dash.
func SanitizeFilename(s string) string {
	s = whitespaceRE.ReplaceAllString(strings.TrimSpace(s), "_")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '_', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// OutputBaseName computes the base output filename for an invoice:
// Invoice-{sanitizedInvoiceNumber}-{sanitizedClientName}.
func OutputBaseName(inv *Invoice) string {
	num := inv.InvoiceNumber
	if num == "" {
		num = UnknownInvoice
	}
	client := SanitizeFilename(inv.ClientName.Text())
	if client == "" {
		client = UnknownClient
	}
	return "Invoice-" + SanitizeFilename(num) + "-" + client
}

// HTMLName returns the output filename for the rendered HTML document.
func HTMLName(inv *Invoice) string {
	return OutputBaseName(inv) + "-improved.html"
}

// PDFName returns the output filename for the rasterized PDF.
func PDFName(inv *Invoice) string {
	return OutputBaseName(inv) + ".pdf"
}
