package poverty

import "testing"

// newTestEngine returns an engine holding one default currency, one pool
// and one budget with a single account, the minimal document most tests
// start from.
func newTestEngine(t *testing.T) *Poverty {
	t.Helper()
	p := New()
	if _, err := p.InsertCurrency(Currency{ID: "eur", Name: "Euro", Format: FormatEurope, Default: true}); err != nil {
		t.Fatalf("InsertCurrency() error = %v", err)
	}
	if _, err := p.InsertPool(Pool{ID: "cash", Name: "Cash"}); err != nil {
		t.Fatalf("InsertPool() error = %v", err)
	}
	if _, err := p.InsertBudget(Budget{ID: "food", Name: "Food", Accounts: []Account{{ID: "groceries", Name: "Groceries"}}}); err != nil {
		t.Fatalf("InsertBudget() error = %v", err)
	}
	return p
}

func mustInsertTransaction(t *testing.T, p *Poverty, tx Transaction) string {
	t.Helper()
	id, err := p.InsertTransaction(tx)
	if err != nil {
		t.Fatalf("InsertTransaction() error = %v", err)
	}
	return id
}

func ptr[T any](v T) *T { return &v }
