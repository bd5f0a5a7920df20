package poverty

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyFormat is the digit-grouping convention used to display amounts of
// a currency.
type CurrencyFormat string

const (
	FormatAmerica    CurrencyFormat = "America"
	FormatEurope     CurrencyFormat = "Europe"
	FormatSinosphere CurrencyFormat = "Sinosphere"
	FormatIndia      CurrencyFormat = "India"
)

// ParseCurrencyFormat parses a string into a CurrencyFormat.
func ParseCurrencyFormat(s string) (CurrencyFormat, bool) {
	switch CurrencyFormat(s) {
	case FormatAmerica, FormatEurope, FormatSinosphere, FormatIndia:
		return CurrencyFormat(s), true
	}
	return "", false
}

// Currency declares a unit of value used by transactions, pools and budgets.
// At most one currency in a document carries Default=true; it is the one
// resolved when a record omits its currency.
type Currency struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Note     string            `json:"note"`
	Exchange []json.RawMessage `json:"exchange"`
	Format   CurrencyFormat    `json:"format"`
	Visible  *bool             `json:"visible"`
	Default  bool              `json:"default"`
}

// Validate checks the currency's shape and returns a canonical copy with
// defaults applied: format America, visible true, empty exchange list.
func (c Currency) Validate() (Currency, error) {
	if c.ID == "" {
		return c, invalidf(KindCurrency, "id is missing")
	}
	if c.Name == "" {
		return c, invalidf(KindCurrency, "name is missing")
	}
	if c.Format == "" {
		c.Format = FormatAmerica
	} else if _, ok := ParseCurrencyFormat(string(c.Format)); !ok {
		return c, invalidf(KindCurrency, "unknown format %q", c.Format)
	}
	if c.Exchange == nil {
		c.Exchange = []json.RawMessage{}
	}
	if c.Visible == nil {
		v := true
		c.Visible = &v
	}
	return c, nil
}

// MarshalJSON writes the currency with canonical field order.
func (c Currency) MarshalJSON() ([]byte, error) {
	exchange := c.Exchange
	if exchange == nil {
		exchange = []json.RawMessage{}
	}
	visible := true
	if c.Visible != nil {
		visible = *c.Visible
	}
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Append("note", c.Note)
	w.Append("exchange", exchange)
	w.Append("format", c.Format)
	w.Append("visible", visible)
	w.Append("default", c.Default)
	return w.MarshalJSON()
}

// FormatAmount renders an amount according to the currency's display
// convention. Sinosphere groups by thousands with the same separators as
// America, so both share a formatter. India falls back to plain thousand
// grouping, the formatter has no lakh support.
func (c *Currency) FormatAmount(v decimal.Decimal) string {
	var f *money.Formatter
	switch c.Format {
	case FormatEurope:
		f = money.NewFormatter(2, ",", ".", "", "1")
	default:
		f = money.NewFormatter(2, ".", ",", "", "1")
	}
	return f.Format(v.Shift(2).IntPart())
}

// CurrencyPatch carries the fields of an update; nil fields are left
// untouched on the existing record.
type CurrencyPatch struct {
	ID       string
	Name     *string
	Note     *string
	Exchange *[]json.RawMessage
	Format   *CurrencyFormat
	Visible  *bool
	Default  *bool
}

func (p CurrencyPatch) apply(c Currency) Currency {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Note != nil {
		c.Note = *p.Note
	}
	if p.Exchange != nil {
		c.Exchange = *p.Exchange
	}
	if p.Format != nil {
		c.Format = *p.Format
	}
	if p.Visible != nil {
		v := *p.Visible
		c.Visible = &v
	}
	if p.Default != nil {
		c.Default = *p.Default
	}
	return c
}
