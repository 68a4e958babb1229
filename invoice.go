package invoicefmt

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Recognized line item column keys. The extractor maps source table
// headers onto these keys; the renderer emits them in this canonical
// order regardless of what a particular document contained.
const (
	ColDate        = "date"
	ColDescription = "description"
	ColAction      = "action"
	ColQuantity    = "quantity"
	ColUnitPrice   = "unit_price"
	ColDiscount    = "discount"
	ColTaxable     = "taxable"
	ColTaxAmount   = "tax_amount"
	ColTotal       = "total"
)

// CanonicalColumns is the fixed left-to-right column order used by the
// renderer when building the output table.
var CanonicalColumns = []string{
	ColDate,
	ColDescription,
	ColAction,
	ColQuantity,
	ColUnitPrice,
	ColDiscount,
	ColTaxable,
	ColTaxAmount,
	ColTotal,
}

// Markup is a trusted HTML fragment captured verbatim from a source
// document. Unlike every other extracted field, Markup values are
// re-embedded by the renderer without escaping; the type exists to make
// that asymmetry explicit rather than an accidental omission.
type Markup string

// Text returns the fragment's plain text with tags removed and
// whitespace collapsed.
func (m Markup) Text() string {
	if m == "" {
		return ""
	}
	var b strings.Builder
	tok := html.NewTokenizer(strings.NewReader(string(m)))
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(tok.Text())
		}
	}
	return CollapseWhitespace(b.String())
}

// Column describes one detected column of a source document's entries
// table: the canonical key it was mapped to and the literal header text
// it was detected from.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// LineItem maps column keys to raw cell text. Values are
// whitespace-collapsed but otherwise unnormalized.
type LineItem map[string]string

// Summary holds the aggregate rows of an invoice. Each value is a raw
// currency-formatted string (e.g. "€ 123,45") or empty when the source
// document had no matching row. TaxLabel round-trips the literal label
// text of the tax row (e.g. "VAT (9%)") when one was present.
type Summary struct {
	Net      string `json:"net"`
	Tax      string `json:"tax"`
	TaxLabel string `json:"taxLabel"`
	Total    string `json:"total"`
	Due      string `json:"due"`
}

// Invoice is the canonical intermediate representation of one source
// document. Every field independently degrades to its zero value when
// the source lacks it; an Invoice with all-empty fields is valid.
// The renderer treats an Invoice as immutable.
type Invoice struct {
	InvoiceNumber string `json:"invoiceNumber"`

	// Raw label-adjacent text; format is not normalized here. Date
	// reformatting is a renderer concern.
	Date    string `json:"date"`
	DueDate string `json:"dueDate"`

	// Inner markup of the four well-known class-marked blocks,
	// retained verbatim because source documents may embed line
	// breaks or emphasis.
	ClientName     Markup `json:"clientName"`
	ClientAddress  Markup `json:"clientAddress"`
	CompanyName    Markup `json:"companyName"`
	CompanyAddress Markup `json:"companyAddress"`

	// Items in document order. Order is significant and preserved
	// through rendering.
	Items []LineItem `json:"items"`

	Summary Summary `json:"summary"`

	// Columns discovered from the source table's header row, in
	// left-to-right document order.
	Columns []Column `json:"detectedColumns"`
}

// Extractor produces a canonical Invoice from one raw source document.
type Extractor interface {
	// Extract parses rawHTML and returns a best-effort record. Missing
	// or malformed fields degrade to empty values; the only failure
	// mode is input that cannot be interpreted as markup at all, which
	// returns EINVALID.
	Extract(rawHTML string) (*Invoice, error)
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims both ends. Applied to extracted text content only, never to
// retained Markup fields.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
