// Package render builds the standardized output document for an
// extracted invoice record.
package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/fwojciec/invoicefmt"
)

// Ensure Renderer implements invoicefmt.Renderer at compile time.
var _ invoicefmt.Renderer = (*Renderer)(nil)

// firstRowTint is the background of the first item row, a visual header
// accent carried over from legacy formatting.
const firstRowTint = "#92a7b6"

// defaultPaymentRequest is emitted when no payment request text is
// configured at all.
var defaultPaymentRequest = []string{
	"We kindly request you to transfer the above-mentioned amount before the due date",
	"to the bank account mentioned above in the name of Stichting Studiereis Astatine in Enschede,",
	"quoting the invoice number.",
}

// headerLabel maps canonical column keys to their display headers.
var headerLabel = map[string]string{
	invoicefmt.ColDate:        "Date",
	invoicefmt.ColDescription: "Description",
	invoicefmt.ColAction:      "Action",
	invoicefmt.ColQuantity:    "Quantity",
	invoicefmt.ColUnitPrice:   "Price",
	invoicefmt.ColDiscount:    "Discount",
	invoicefmt.ColTaxable:     "Taxable",
	invoicefmt.ColTaxAmount:   "Tax Amount",
	invoicefmt.ColTotal:       "Total",
}

// numberCellClass marks columns rendered with right-aligned numeric
// styling.
var numberCellClass = map[string]bool{
	invoicefmt.ColQuantity:  true,
	invoicefmt.ColUnitPrice: true,
	invoicefmt.ColDiscount:  true,
	invoicefmt.ColTaxAmount: true,
	invoicefmt.ColTotal:     true,
}

// Renderer renders an invoice record into the standardized HTML
// document. Render is a pure function of its inputs: the same record,
// configuration, and banner always produce byte-identical output.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the complete output document. It returns EINVALID for
// a nil invoice and otherwise never fails; missing optional fields
// degrade to omitted blocks.
func (r *Renderer) Render(inv *invoicefmt.Invoice, cfg *invoicefmt.Config, iban *invoicefmt.IbanConfig, banner *invoicefmt.BannerAsset) (string, error) {
	if inv == nil {
		return "", invoicefmt.Errorf(invoicefmt.EINVALID, "invoice record required")
	}
	if cfg == nil {
		cfg = invoicefmt.DefaultConfig()
	}
	if iban == nil {
		iban = invoicefmt.DefaultIbanConfig()
	}

	columns := visibleColumns(cfg)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html dir='auto'>\n<head>\n")
	b.WriteString(`<meta http-equiv="content-type" content="text/html; charset=utf-8" />` + "\n")
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(pageTitle(inv)))
	b.WriteString("</title>\n<style type=\"text/css\">\n")
	b.WriteString(documentStyle)
	b.WriteString("\n</style>\n</head>\n")
	b.WriteString(`<body text="#000000" link="#1c3661" bgcolor="#ffffff" style="margin: 0; padding: 0;">` + "\n")

	if bh := bannerHTML(banner, cfg); bh != "" {
		b.WriteString(`<div style="width: 100%; max-width: 1006px; margin: 0; padding: 0; left: 0; right: 0; position: relative;">`)
		b.WriteString(bh)
		b.WriteString("</div>\n")
	}

	b.WriteString(`<table cellspacing="0" cellpadding="0" border="0" width="100%" style="margin-left:0; margin-right:0; max-width: 1006px;"><tbody>` + "\n")
	b.WriteString("<tr><td><h3></h3></td></tr>\n<tr><td><div class=\"main-table\">\n")
	b.WriteString(`<table cellspacing="1" cellpadding="1" border="0" style="margin-left:auto; margin-right:auto"><tbody>` + "\n")

	// Title line.
	b.WriteString(`<tr><td colspan="2"><div class="invoice-title">Invoice #`)
	b.WriteString(html.EscapeString(inv.InvoiceNumber))
	b.WriteString("</div></td></tr>\n")

	// Date block.
	b.WriteString("<tr><td> </td><td><div class=\"div-align-right\"><div class=\"invoice-details-table\">\n")
	b.WriteString(`<table cellspacing="1" cellpadding="1" border="0" style="margin-left:auto; margin-right:auto"><tbody>` + "\n")
	if cfg.Dates.ShowDate && inv.Date != "" {
		writeDateRow(&b, "Date:", FormatDate(inv.Date, cfg.Dates.DateFormat))
	}
	if cfg.Dates.ShowDueDate && inv.DueDate != "" {
		writeDateRow(&b, "Due Date:", FormatDate(inv.DueDate, cfg.Dates.DueDateFormat))
	}
	b.WriteString("</tbody></table>\n</div></div></td></tr>\n")

	// Client / company two-column block. The four markup fields are
	// trusted fragments embedded verbatim; see invoicefmt.Markup.
	b.WriteString("<tr>\n<td><div class=\"client-table\">\n")
	b.WriteString(`<table cellspacing="1" cellpadding="1" border="0" style="margin-left:0; margin-right:0"><tbody>` + "\n")
	writeMarkupRow(&b, "client-name", inv.ClientName)
	writeMarkupRow(&b, "client-address", inv.ClientAddress)
	b.WriteString("</tbody></table>\n</div></td>\n")
	b.WriteString("<td><div class=\"div-align-right\"><div class=\"company-table\">\n")
	b.WriteString(`<table cellspacing="1" cellpadding="1" border="0" style="margin-left:auto; margin-right:auto"><tbody>` + "\n")
	writeMarkupRow(&b, "company-name", inv.CompanyName)
	writeMarkupRow(&b, "company-address", inv.CompanyAddress)
	b.WriteString("</tbody></table>\n</div></div></td>\n</tr>\n")
	b.WriteString(`<tr><td> </td><td><div class="div-align-right"> </div></td></tr>` + "\n")

	// Items table.
	b.WriteString("<tr><td colspan=\"2\"><div class=\"entries-table\">\n")
	b.WriteString(`<table cellspacing="1" cellpadding="1" border="0" style="margin-left:auto; margin-right:auto">` + "\n")
	b.WriteString("<thead><tr>")
	for _, key := range columns {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(headerLabel[key]))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	writeItemRows(&b, inv.Items, columns, cfg.HideEmptyFields)
	writeSummaryRows(&b, inv.Summary, cfg, len(columns))
	b.WriteString("</tbody></table>\n</div></td></tr>\n")

	// Notes block.
	b.WriteString("<tr><td colspan=\"2\"><div class=\"invoice-notes\">")
	b.WriteString(notesHTML(cfg, iban))
	b.WriteString("</div></td></tr>\n")

	b.WriteString("</tbody></table>\n</div></td></tr>\n</tbody></table>\n</body>\n</html>\n")
	return b.String(), nil
}

// pageTitle builds the document title from the invoice number and the
// client name reduced to plain text.
func pageTitle(inv *invoicefmt.Invoice) string {
	return "Invoice " + inv.InvoiceNumber + " - " + inv.ClientName.Text()
}

// visibleColumns filters the fixed canonical column order by the
// configured visibility. The renderer's column set is driven by
// configuration, not by what was detected in a particular document; a
// column enabled here but never extracted simply renders empty cells.
func visibleColumns(cfg *invoicefmt.Config) []string {
	var keys []string
	for _, key := range invoicefmt.CanonicalColumns {
		if cfg.Columns.Visible(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// bannerHTML builds the banner image tag, or empty when no banner is
// configured at all. A resolved asset embeds directly; otherwise an
// absolute URL or data URI is referenced as-is, and a relative path is
// resolved against the external config asset directory. Unresolvable
// images hide themselves and surface the missing path as alt text.
func bannerHTML(banner *invoicefmt.BannerAsset, cfg *invoicefmt.Config) string {
	if banner == nil && cfg.BannerPath == "" {
		return ""
	}

	var src, onError string
	switch {
	case banner != nil:
		src = banner.DataURI
	case strings.HasPrefix(cfg.BannerPath, "http") || strings.HasPrefix(cfg.BannerPath, "data:"):
		src = html.EscapeString(cfg.BannerPath)
		onError = ` onerror="this.style.display='none'; this.alt='Banner not found: ` + html.EscapeString(cfg.BannerPath) + `';"`
	default:
		path := "config/" + strings.TrimPrefix(cfg.BannerPath, "./")
		src = html.EscapeString(path)
		onError = ` onerror="this.style.display='none'; this.alt='Banner not found: ` + html.EscapeString(path) + `';"`
	}

	return `<img src="` + src + `" alt="Invoice Banner" style="width: 100%; display: block; margin: 0; padding: 0;"` + onError + ` />`
}

func writeDateRow(b *strings.Builder, label, value string) {
	b.WriteString("<tr><td>")
	b.WriteString(label)
	b.WriteString(`</td><td><div class="div-align-right">`)
	b.WriteString(html.EscapeString(value))
	b.WriteString("</div></td></tr>\n")
}

func writeMarkupRow(b *strings.Builder, class string, m invoicefmt.Markup) {
	b.WriteString(`<tr><td><div class="maybe-align-right `)
	b.WriteString(class)
	b.WriteString(`">`)
	b.WriteString(string(m))
	b.WriteString("</div></td></tr>\n")
}

// writeItemRows emits one row per item with only the visible columns.
// The first row receives the legacy header-accent tint.
func writeItemRows(b *strings.Builder, items []invoicefmt.LineItem, columns []string, hideEmpty bool) {
	for i, item := range items {
		bg := "#ffffff"
		if i == 0 {
			bg = firstRowTint
		}
		b.WriteString(`<tr bgcolor="` + bg + `">`)
		for _, key := range columns {
			value := item[key]
			if hideEmpty && strings.TrimSpace(value) == "" {
				value = ""
			}
			if numberCellClass[key] {
				b.WriteString(`<td class="number-cell">`)
			} else {
				b.WriteString("<td>")
			}
			b.WriteString(html.EscapeString(value))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
}

// writeSummaryRows emits the aggregate rows in fixed order. A row
// appears only when its visibility flag is on and the extracted value
// is non-empty.
//
// Tax label precedence: the label detected in the source document wins
// over the configured tax message, so a source row titled "VAT (9%)"
// round-trips its own label. The configured message applies only when
// the source carried no label, and the built-in default applies last.
func writeSummaryRows(b *strings.Builder, s invoicefmt.Summary, cfg *invoicefmt.Config, visibleCount int) {
	taxLabel := s.TaxLabel
	if taxLabel == "" {
		taxLabel = cfg.TaxMessage
	}
	if taxLabel == "" {
		taxLabel = "BTW (21%)"
	}

	rows := []struct {
		on    bool
		label string
		value string
	}{
		{cfg.Summary.ShowNetPrice, "Net Price", s.Net},
		{cfg.Summary.ShowTax, taxLabel, s.Tax},
		{cfg.Summary.ShowTotalPrice, "Total Price", s.Total},
		{cfg.Summary.ShowAmountDue, "Amount Due", s.Due},
	}

	colspan := visibleCount - 1
	if colspan < 1 {
		colspan = 1
	}

	for _, row := range rows {
		if !row.on || row.value == "" {
			continue
		}
		b.WriteString(`<tr bgcolor="#ffffff"><td class="total-label-cell">`)
		b.WriteString(html.EscapeString(row.label))
		b.WriteString(`</td><td class="total-number-cell" colspan="`)
		b.WriteString(strconv.Itoa(colspan))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(row.value))
		b.WriteString("</td></tr>\n")
	}
}

// notesHTML assembles the notes block: bank details, the payment
// request, and the treasurer closing. Lines are escaped individually
// and joined with line-break markers because the output is a single
// markup block.
func notesHTML(cfg *invoicefmt.Config, iban *invoicefmt.IbanConfig) string {
	var lines []string

	if iban.IBAN != "" || cfg.Bank.AccountName != "" || cfg.Bank.BIC != "" || cfg.Bank.BTWNumber != "" {
		lines = append(lines, "", "")
		if cfg.Bank.AccountName != "" {
			lines = append(lines, "Account name: "+cfg.Bank.AccountName)
		}
		if iban.IBAN != "" {
			lines = append(lines, "IBAN: "+iban.IBAN)
		}
		if cfg.Bank.BIC != "" {
			lines = append(lines, "BIC: "+cfg.Bank.BIC)
		}
		if cfg.Bank.BTWNumber != "" {
			lines = append(lines, "BTW number: "+cfg.Bank.BTWNumber)
		}
		lines = append(lines, "", "")
	}

	if cfg.PaymentRequest != "" {
		lines = append(lines, strings.Split(cfg.PaymentRequest, "\n")...)
	} else {
		lines = append(lines, defaultPaymentRequest...)
	}

	lines = append(lines, "", "With kind regards,", "")
	if cfg.Treasurer.Name != "" {
		lines = append(lines, cfg.Treasurer.Name)
	}
	if cfg.Treasurer.Title != "" {
		lines = append(lines, cfg.Treasurer.Title)
	}
	if cfg.Treasurer.Email != "" {
		lines = append(lines, cfg.Treasurer.Email)
	}

	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = html.EscapeString(line)
	}
	return strings.Join(escaped, "<br />")
}
