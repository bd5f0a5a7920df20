package poverty

import (
	"encoding/json"
	"errors"
	"testing"
)

func validTestDocument() *Document {
	visible := true
	total := true
	doc := NewDocument()
	doc.Currencies = []Currency{{ID: "eur", Name: "Euro", Format: FormatEurope, Visible: &visible, Default: true}}
	doc.Pools = []Pool{{ID: "cash", Name: "Cash", Currency: "eur", Total: &total}}
	doc.Budgets = []Budget{{
		ID:         "food",
		Name:       "Food",
		Currency:   "eur",
		Automation: Automation{Period: PeriodMonthly, Start: 1700000000000, Over: OverReturn},
		Accounts:   []Account{{ID: "groceries", Name: "Groceries", Budget: "food", Visible: &visible}},
	}}
	doc.Transactions = []Transaction{{
		ID: "t1", Type: TypeTransfer, Currency: "eur",
		Time: 1700000000000, Logtime: 1700000000000,
		Source: "cash", Budget: "groceries",
		Tags: []string{}, Children: []string{},
	}}
	return doc
}

func TestCheckIntegrityValid(t *testing.T) {
	if err := checkIntegrity(validTestDocument()); err != nil {
		t.Errorf("checkIntegrity() error = %v, want nil", err)
	}
}

func TestCheckIntegrityDuplicates(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*Document)
		wantKind Kind
	}{
		{
			name:     "duplicate transaction ids",
			mutate:   func(d *Document) { d.Transactions = append(d.Transactions, d.Transactions[0]) },
			wantKind: KindTransaction,
		},
		{
			name: "duplicate currency ids",
			mutate: func(d *Document) {
				d.Currencies = append(d.Currencies, Currency{ID: "eur", Name: "Other"})
			},
			wantKind: KindCurrency,
		},
		{
			name: "duplicate template ids",
			mutate: func(d *Document) {
				d.Templates = []Template{
					{raw: json.RawMessage(`{"id": "tpl1", "name": "Rent"}`)},
					{raw: json.RawMessage(`{"id": "tpl1", "name": "Salary"}`)},
				}
			},
			wantKind: KindTemplate,
		},
		{
			// Two templates without ids both probe as "" and collide.
			name: "duplicate id-less templates",
			mutate: func(d *Document) {
				d.Templates = []Template{
					{raw: json.RawMessage(`{"name": "Rent"}`)},
					{raw: json.RawMessage(`{"name": "Salary"}`)},
				}
			},
			wantKind: KindTemplate,
		},
		{
			name: "duplicate account ids across budgets",
			mutate: func(d *Document) {
				d.Budgets = append(d.Budgets, Budget{
					ID: "travel", Name: "Travel", Currency: "eur",
					Accounts: []Account{{ID: "groceries", Name: "Again", Budget: "travel"}},
				})
			},
			wantKind: KindAccount,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validTestDocument()
			tc.mutate(doc)
			err := checkIntegrity(doc)
			var dup *DuplicatesError
			if !errors.As(err, &dup) {
				t.Fatalf("checkIntegrity() error = %v, want DuplicatesError", err)
			}
			if dup.Kind != tc.wantKind {
				t.Errorf("Kind = %q, want %q", dup.Kind, tc.wantKind)
			}
		})
	}
}

func TestCheckIntegrityDanglingLinks(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*Document)
		wantKind Kind
		wantID   string
	}{
		{
			name:     "transaction currency",
			mutate:   func(d *Document) { d.Transactions[0].Currency = "gone" },
			wantKind: KindCurrency,
			wantID:   "gone",
		},
		{
			name:     "transaction source pool",
			mutate:   func(d *Document) { d.Transactions[0].Source = "gone" },
			wantKind: KindPool,
			wantID:   "gone",
		},
		{
			name:     "transaction target pool",
			mutate:   func(d *Document) { d.Transactions[0].Target = "gone" },
			wantKind: KindPool,
			wantID:   "gone",
		},
		{
			name:     "transaction budget",
			mutate:   func(d *Document) { d.Transactions[0].Budget = "gone" },
			wantKind: KindBudget,
			wantID:   "gone",
		},
		{
			name:     "transaction parent",
			mutate:   func(d *Document) { d.Transactions[0].Parent = "gone" },
			wantKind: KindTransaction,
			wantID:   "gone",
		},
		{
			name:     "transaction child",
			mutate:   func(d *Document) { d.Transactions[0].Children = []string{"gone"} },
			wantKind: KindTransaction,
			wantID:   "gone",
		},
		{
			name:     "pool currency",
			mutate:   func(d *Document) { d.Pools[0].Currency = "gone" },
			wantKind: KindCurrency,
			wantID:   "gone",
		},
		{
			name:     "budget currency",
			mutate:   func(d *Document) { d.Budgets[0].Currency = "gone" },
			wantKind: KindCurrency,
			wantID:   "gone",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validTestDocument()
			tc.mutate(doc)
			err := checkIntegrity(doc)
			var notExist *NotExistError
			if !errors.As(err, &notExist) {
				t.Fatalf("checkIntegrity() error = %v, want NotExistError", err)
			}
			if notExist.Kind != tc.wantKind || notExist.ID != tc.wantID {
				t.Errorf("got NotExist(%q, %q), want NotExist(%q, %q)", notExist.Kind, notExist.ID, tc.wantKind, tc.wantID)
			}
		})
	}
}

func TestCheckIntegrityBudgetReferenceResolvesAccount(t *testing.T) {
	doc := validTestDocument()
	// t1 points at the groceries account, not at the food budget itself.
	if err := checkIntegrity(doc); err != nil {
		t.Fatalf("checkIntegrity() error = %v, account ids must satisfy budget references", err)
	}
	doc.Transactions[0].Budget = "food"
	if err := checkIntegrity(doc); err != nil {
		t.Fatalf("checkIntegrity() error = %v, budget ids must satisfy budget references", err)
	}
}

func TestCheckIntegrityMultipleDefaultCurrencies(t *testing.T) {
	doc := validTestDocument()
	doc.Currencies = append(doc.Currencies, Currency{ID: "usd", Name: "Dollar", Default: true})
	err := checkIntegrity(doc)
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("checkIntegrity() error = %v, want InvalidError", err)
	}
	if invalid.Kind != KindCurrency {
		t.Errorf("Kind = %q, want %q", invalid.Kind, KindCurrency)
	}
}

func TestCheckIntegrityUniquenessBeforeLinks(t *testing.T) {
	doc := validTestDocument()
	// Break both a link and uniqueness: the duplicate must win.
	doc.Transactions[0].Currency = "gone"
	doc.Pools = append(doc.Pools, doc.Pools[0])
	err := checkIntegrity(doc)
	var dup *DuplicatesError
	if !errors.As(err, &dup) {
		t.Fatalf("checkIntegrity() error = %v, want DuplicatesError first", err)
	}
}
