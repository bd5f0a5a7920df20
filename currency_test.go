package poverty

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCurrencyValidateDefaults(t *testing.T) {
	got, err := Currency{ID: "usd", Name: "Dollar"}.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got.Format != FormatAmerica {
		t.Errorf("Format = %q, want %q", got.Format, FormatAmerica)
	}
	if got.Visible == nil || !*got.Visible {
		t.Error("Visible must default to true")
	}
	if got.Exchange == nil {
		t.Error("Exchange must canonicalize to an empty list")
	}
	if got.Default {
		t.Error("Default must stay false unless set")
	}
}

func TestCurrencyValidateRejects(t *testing.T) {
	if _, err := (Currency{ID: "usd"}).Validate(); err == nil {
		t.Error("Validate() accepted a currency without a name")
	}
	if _, err := (Currency{Name: "Dollar"}).Validate(); err == nil {
		t.Error("Validate() accepted a currency without an id")
	}
	if _, err := (Currency{ID: "usd", Name: "Dollar", Format: "Mars"}).Validate(); err == nil {
		t.Error("Validate() accepted an unknown format")
	}
}

func TestCurrencyFormatAmount(t *testing.T) {
	amount := decimal.RequireFromString("1234567.89")
	testCases := []struct {
		format CurrencyFormat
		want   string
	}{
		{FormatAmerica, "1,234,567.89"},
		{FormatEurope, "1.234.567,89"},
		{FormatSinosphere, "1,234,567.89"},
		{FormatIndia, "1,234,567.89"},
	}
	for _, tc := range testCases {
		t.Run(string(tc.format), func(t *testing.T) {
			c := Currency{ID: "x", Name: "x", Format: tc.format}
			if got := c.FormatAmount(amount); got != tc.want {
				t.Errorf("FormatAmount(%s) = %q, want %q", amount, got, tc.want)
			}
		})
	}
}
