package poverty

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionValidateDefaults(t *testing.T) {
	doc := NewDocument()
	doc.Currencies = []Currency{{ID: "usd", Name: "Dollar", Default: true}}

	got, err := Transaction{ID: "t1"}.Validate(doc)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got.Type != TypeTransfer {
		t.Errorf("Type = %q, want %q", got.Type, TypeTransfer)
	}
	if got.Currency != "usd" {
		t.Errorf("Currency = %q, want default currency %q", got.Currency, "usd")
	}
	if got.Time.IsZero() || got.Logtime.IsZero() {
		t.Errorf("Time/Logtime not defaulted: %v, %v", got.Time, got.Logtime)
	}
	if got.Tags == nil || got.Children == nil {
		t.Error("Tags and Children must canonicalize to empty lists")
	}
	if got.Price != nil {
		t.Errorf("Price = %v, want nil", got.Price)
	}
}

func TestTransactionValidateRejects(t *testing.T) {
	doc := NewDocument()
	doc.Currencies = []Currency{{ID: "usd", Name: "Dollar", Default: true}}

	testCases := []struct {
		name string
		tx   Transaction
	}{
		{name: "missing id", tx: Transaction{}},
		{name: "unknown type", tx: Transaction{ID: "t1", Type: "loan"}},
		{name: "self parent", tx: Transaction{ID: "t1", Parent: "t1"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.tx.Validate(doc)
			var invalid *InvalidError
			if !errors.As(err, &invalid) {
				t.Fatalf("Validate() error = %v, want InvalidError", err)
			}
			if invalid.Kind != KindTransaction {
				t.Errorf("Kind = %q, want %q", invalid.Kind, KindTransaction)
			}
		})
	}
}

func TestTransactionValidateNoDefaultCurrency(t *testing.T) {
	doc := NewDocument()

	_, err := Transaction{ID: "t1"}.Validate(doc)
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() error = %v, want InvalidError", err)
	}
}

func TestTransactionPatchApply(t *testing.T) {
	price := decimal.NewFromInt(10)
	base := Transaction{
		ID:       "t1",
		Name:     "lunch",
		Type:     TypeTransfer,
		Currency: "usd",
		Source:   "cash",
		Tags:     []string{"food"},
	}

	got := TransactionPatch{
		ID:     "t1",
		Name:   ptr("dinner"),
		Price:  &price,
		Source: ptr(""),
	}.apply(base)

	if got.Name != "dinner" {
		t.Errorf("Name = %q, want %q", got.Name, "dinner")
	}
	if got.Price == nil || !got.Price.Equal(price) {
		t.Errorf("Price = %v, want %s", got.Price, price)
	}
	if got.Source != "" {
		t.Errorf("Source = %q, want cleared", got.Source)
	}
	// untouched fields survive the merge
	if got.Currency != "usd" || len(got.Tags) != 1 {
		t.Errorf("untouched fields changed: %+v", got)
	}
}
