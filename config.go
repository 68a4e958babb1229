package invoicefmt

// BankSettings holds bank details rendered into the notes block.
type BankSettings struct {
	AccountName string `yaml:"account_name" json:"accountName"`
	BIC         string `yaml:"bic" json:"bic"`
	BTWNumber   string `yaml:"btw_number" json:"btwNumber"`
}

// ColumnSettings controls which item columns the renderer emits,
// independent of what columns were detected in the source document.
type ColumnSettings struct {
	ShowDate        bool `yaml:"show_date" json:"showDate"`
	ShowDescription bool `yaml:"show_description" json:"showDescription"`
	ShowAction      bool `yaml:"show_action" json:"showAction"`
	ShowQuantity    bool `yaml:"show_quantity" json:"showQuantity"`
	ShowPrice       bool `yaml:"show_price" json:"showPrice"`
	ShowDiscount    bool `yaml:"show_discount" json:"showDiscount"`
	ShowTaxable     bool `yaml:"show_taxable" json:"showTaxable"`
	ShowTaxAmount   bool `yaml:"show_tax_amount" json:"showTaxAmount"`
	ShowTotal       bool `yaml:"show_total" json:"showTotal"`
}

// Visible reports whether the column with the given canonical key is
// enabled. Unknown keys are never visible.
func (c ColumnSettings) Visible(key string) bool {
	switch key {
	case ColDate:
		return c.ShowDate
	case ColDescription:
		return c.ShowDescription
	case ColAction:
		return c.ShowAction
	case ColQuantity:
		return c.ShowQuantity
	case ColUnitPrice:
		return c.ShowPrice
	case ColDiscount:
		return c.ShowDiscount
	case ColTaxable:
		return c.ShowTaxable
	case ColTaxAmount:
		return c.ShowTaxAmount
	case ColTotal:
		return c.ShowTotal
	}
	return false
}

// DateSettings gates the date and due-date rows and configures their
// output formats. Format strings use %d/%m/%Y-style tokens.
type DateSettings struct {
	ShowDate      bool   `yaml:"show_date" json:"showDate"`
	ShowDueDate   bool   `yaml:"show_due_date" json:"showDueDate"`
	DateFormat    string `yaml:"date_format" json:"dateFormat"`
	DueDateFormat string `yaml:"due_date_format" json:"dueDateFormat"`
}

// SummarySettings controls which summary rows the renderer emits.
type SummarySettings struct {
	ShowNetPrice   bool `yaml:"show_net_price" json:"showNetPrice"`
	ShowTax        bool `yaml:"show_tax" json:"showTax"`
	ShowTotalPrice bool `yaml:"show_total_price" json:"showTotalPrice"`
	ShowAmountDue  bool `yaml:"show_amount_due" json:"showAmountDue"`
}

// TreasurerSettings are appended to the closing block of the notes.
type TreasurerSettings struct {
	Name  string `yaml:"name" json:"name"`
	Title string `yaml:"title" json:"title"`
	Email string `yaml:"email" json:"email"`
}

// Config holds all rendering options. Configuration objects are
// externally owned and must not be mutated by the renderer.
type Config struct {
	Bank            BankSettings      `yaml:"bank" json:"bank"`
	BannerPath      string            `yaml:"banner_path" json:"bannerPath"`
	Columns         ColumnSettings    `yaml:"column_settings" json:"columnSettings"`
	Dates           DateSettings      `yaml:"date_settings" json:"dateSettings"`
	HideEmptyFields bool              `yaml:"hide_empty_fields" json:"hideEmptyFields"`
	PaymentRequest  string            `yaml:"payment_request" json:"paymentRequest"`
	Summary         SummarySettings   `yaml:"summary_settings" json:"summarySettings"`
	TaxMessage      string            `yaml:"tax_message" json:"taxMessage"`
	Treasurer       TreasurerSettings `yaml:"treasurer" json:"treasurer"`
}

// DefaultConfig returns the built-in configuration. A partially loaded
// config file degrades to these values field-by-field.
func DefaultConfig() *Config {
	return &Config{
		Columns: ColumnSettings{
			ShowDate:        true,
			ShowDescription: true,
			ShowTotal:       true,
		},
		Dates: DateSettings{
			ShowDueDate:   true,
			DateFormat:    "%d/%m/%Y",
			DueDateFormat: "%d/%m/%Y",
		},
		PaymentRequest: "We kindly request you to transfer the above-mentioned amount before the due date to the bank account mentioned above, quoting the invoice number.",
		Summary: SummarySettings{
			ShowTax:        true,
			ShowTotalPrice: true,
			ShowAmountDue:  true,
		},
		TaxMessage: "BTW (21%)",
		Treasurer: TreasurerSettings{
			Title: "Treasurer",
		},
	}
}

// IbanConfig holds the bank account number rendered into the notes
// block. A non-blank IBAN is a precondition for conversion; the policy
// of blocking lives in the orchestrator, the renderer itself accepts an
// empty IBAN without failing.
type IbanConfig struct {
	IBAN string `yaml:"iban" json:"iban"`
}

// DefaultIbanConfig returns an empty IbanConfig.
func DefaultIbanConfig() *IbanConfig {
	return &IbanConfig{}
}
