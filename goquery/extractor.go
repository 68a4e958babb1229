// Package goquery implements invoice extraction using CSS selectors.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/invoicefmt"
)

// Ensure Extractor implements invoicefmt.Extractor at compile time.
var _ invoicefmt.Extractor = (*Extractor)(nil)

// invoiceNumberRE matches the invoice number token following the
// literal "Invoice #" in the source markup.
var invoiceNumberRE = regexp.MustCompile(`(?i)Invoice\s*#([A-Za-z0-9_.\-]+)`)

// currencyRE matches the first currency-shaped token in a summary row.
var currencyRE = regexp.MustCompile(`€\s?[\d.,]+`)

// headerKeys maps lower-cased source header text to canonical column
// keys. Unrecognized headers are skipped, which drops the data in that
// column position since item cells are zipped positionally.
var headerKeys = map[string]string{
	"date":        invoicefmt.ColDate,
	"description": invoicefmt.ColDescription,
	"action":      invoicefmt.ColAction,
	"quantity":    invoicefmt.ColQuantity,
	"unit price":  invoicefmt.ColUnitPrice,
	"price":       invoicefmt.ColUnitPrice,
	"discount":    invoicefmt.ColDiscount,
	"taxable":     invoicefmt.ColTaxable,
	"tax amount":  invoicefmt.ColTaxAmount,
	"total":       invoicefmt.ColTotal,
}

// summaryLabel pairs a first-cell substring with the summary key it
// selects. Matching is checked in slice order so a row matching more
// than one label resolves deterministically to the first.
type summaryLabel struct {
	substr string
	key    string
}

var summaryLabels = []summaryLabel{
	{"net price", "net"},
	{"subtotal", "net"},
	{"tax", "tax"},
	{"btw", "tax"},
	{"total price", "total"},
	{"amount due", "due"},
}

// Extractor extracts a canonical invoice record from source HTML
// produced by the upstream invoicing tool. Every field degrades
// independently to its zero value when absent; Extract fails only when
// the input cannot be parsed as markup at all.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns a best-effort invoice record.
func (e *Extractor) Extract(rawHTML string) (*invoicefmt.Invoice, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, invoicefmt.Errorf(invoicefmt.EINVALID, "failed to parse HTML: %v", err)
	}

	inv := &invoicefmt.Invoice{
		InvoiceNumber:  extractInvoiceNumber(doc),
		Date:           findLabelValue(doc, "date"),
		DueDate:        findLabelValue(doc, "due date"),
		ClientName:     innerMarkup(doc, ".client-name"),
		ClientAddress:  innerMarkup(doc, ".client-address"),
		CompanyName:    innerMarkup(doc, ".company-name"),
		CompanyAddress: innerMarkup(doc, ".company-address"),
		Items:          []invoicefmt.LineItem{},
	}

	table := doc.Find(".entries-table table").First()
	if table.Length() > 0 {
		inv.Columns = detectColumns(table)
		inv.Items, inv.Summary = parseRows(table, inv.Columns)
	}

	return inv, nil
}

// extractInvoiceNumber searches the title block for the invoice number
// pattern, falling back to the whole body text when the title block is
// absent.
func extractInvoiceNumber(doc *goquery.Document) string {
	haystack := ""
	if title := doc.Find(".invoice-title").First(); title.Length() > 0 {
		haystack = title.Text()
	} else {
		haystack = doc.Find("body").Text()
	}
	if m := invoiceNumberRE.FindStringSubmatch(haystack); m != nil {
		return m[1]
	}
	return ""
}

// findLabelValue scans table cells in document order for a label cell
// whose trimmed text (colon stripped) equals label case-insensitively,
// and returns the next sibling cell's collapsed text.
func findLabelValue(doc *goquery.Document, label string) string {
	value := ""
	doc.Find("td").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		text = strings.ToLower(strings.TrimSpace(strings.Replace(text, ":", "", 1)))
		if text != label {
			return true
		}
		next := sel.Next()
		if next.Length() == 0 {
			return true
		}
		value = invoicefmt.CollapseWhitespace(next.Text())
		return false
	})
	return value
}

// innerMarkup captures the trimmed inner HTML of the first element
// matching selector. The markup is retained verbatim, not reduced to
// text, because source documents may embed line breaks or emphasis.
func innerMarkup(doc *goquery.Document, selector string) invoicefmt.Markup {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}
	inner, err := sel.Html()
	if err != nil {
		return ""
	}
	return invoicefmt.Markup(strings.TrimSpace(inner))
}

// detectColumns reads the table's header-row cells and maps each
// header's trimmed lower-cased text onto a canonical column key.
func detectColumns(table *goquery.Selection) []invoicefmt.Column {
	var columns []invoicefmt.Column
	table.Find("th").Each(func(_ int, sel *goquery.Selection) {
		label := invoicefmt.CollapseWhitespace(sel.Text())
		key, ok := headerKeys[strings.ToLower(label)]
		if !ok {
			return
		}
		columns = append(columns, invoicefmt.Column{Key: key, Label: label})
	})
	return columns
}

// parseRows classifies every non-header row of the entries table as
// either a summary row or an item row.
func parseRows(table *goquery.Selection, columns []invoicefmt.Column) ([]invoicefmt.LineItem, invoicefmt.Summary) {
	items := []invoicefmt.LineItem{}
	var summary invoicefmt.Summary

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		firstCell := invoicefmt.CollapseWhitespace(cells.First().Text())
		if key, ok := matchSummaryLabel(firstCell); ok {
			applySummary(&summary, key, firstCell, row)
			return
		}

		// Item row: zip cells positionally against the detected
		// columns. Cells beyond the detected column count are ignored.
		// This positional mapping is fragile when a document's cell
		// count disagrees with its header count, but it is kept for
		// compatibility with legacy documents.
		item := invoicefmt.LineItem{}
		cells.Each(func(i int, cell *goquery.Selection) {
			if i >= len(columns) {
				return
			}
			item[columns[i].Key] = invoicefmt.CollapseWhitespace(cell.Text())
		})

		// Spacer rows without a date or description are noise.
		if item[invoicefmt.ColDate] != "" || item[invoicefmt.ColDescription] != "" {
			items = append(items, item)
		}
	})

	return items, summary
}

// matchSummaryLabel checks the collapsed first-cell text against the
// summary labels by substring containment, in fixed priority order.
func matchSummaryLabel(firstCell string) (string, bool) {
	lowered := strings.ToLower(firstCell)
	for _, l := range summaryLabels {
		if strings.Contains(lowered, l.substr) {
			return l.key, true
		}
	}
	return "", false
}

// applySummary stores the first currency-shaped token found anywhere in
// the row's full text under the matched summary key. The tax row
// additionally round-trips its own label text.
func applySummary(summary *invoicefmt.Summary, key, firstCell string, row *goquery.Selection) {
	value := currencyRE.FindString(row.Text())
	switch key {
	case "net":
		summary.Net = value
	case "tax":
		summary.Tax = value
		summary.TaxLabel = firstCell
	case "total":
		summary.Total = value
	case "due":
		summary.Due = value
	}
}
