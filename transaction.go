package poverty

import (
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes a value transfer from a balance statement.
type TransactionType string

const (
	TypeTransfer TransactionType = "transfer"
	TypeBalance  TransactionType = "balance"
)

// Transaction is a movement of value between pools and budgets, optionally
// grouped into a parent/children tree (a split purchase, for example).
//
// Source and Target name pools, Budget names a budget or one of its
// accounts, Parent and Children name other transactions. The empty string
// means unset for any of them and is persisted as null.
type Transaction struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Type     TransactionType  `json:"type"`
	Price    *decimal.Decimal `json:"price"`
	Currency string           `json:"currency"`
	Time     Timestamp        `json:"time"`
	Logtime  Timestamp        `json:"logtime"`
	Note     string           `json:"note"`
	Source   string           `json:"source"`
	Target   string           `json:"target"`
	Budget   string           `json:"budget"`
	Tags     []string         `json:"tags"`
	Children []string         `json:"children"`
	Parent   string           `json:"parent"`
}

// Validate checks the transaction's shape and returns a canonical copy with
// defaults applied: type transfer, the document's default currency, time
// and logtime set to now, empty tag and children lists.
func (t Transaction) Validate(doc *Document) (Transaction, error) {
	if t.ID == "" {
		return t, invalidf(KindTransaction, "id is missing")
	}
	switch t.Type {
	case "":
		t.Type = TypeTransfer
	case TypeTransfer, TypeBalance:
	default:
		return t, invalidf(KindTransaction, "unknown type %q", t.Type)
	}
	if t.Currency == "" {
		def := doc.defaultCurrency()
		if def == nil {
			return t, invalidf(KindTransaction, "currency is missing and the document has no default currency")
		}
		t.Currency = def.ID
	}
	if t.Time.IsZero() {
		t.Time = Now()
	}
	if t.Logtime.IsZero() {
		t.Logtime = Now()
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Children == nil {
		t.Children = []string{}
	}
	if t.Parent == t.ID {
		return t, invalidf(KindTransaction, "transaction %q is its own parent", t.ID)
	}
	return t, nil
}

// MarshalJSON writes the transaction with canonical field order, unset
// references and price as explicit nulls.
func (t Transaction) MarshalJSON() ([]byte, error) {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	children := t.Children
	if children == nil {
		children = []string{}
	}
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("name", t.Name)
	w.Append("type", t.Type)
	w.Nullable("price", t.Price)
	w.Append("currency", t.Currency)
	w.Append("time", t.Time)
	w.Append("logtime", t.Logtime)
	w.Append("note", t.Note)
	w.Nullable("source", t.Source)
	w.Nullable("target", t.Target)
	w.Nullable("budget", t.Budget)
	w.Append("tags", tags)
	w.Append("children", children)
	w.Nullable("parent", t.Parent)
	return w.MarshalJSON()
}

// TransactionPatch carries the fields of an update; nil fields are left
// untouched on the existing record. References patched to the empty string
// are cleared.
type TransactionPatch struct {
	ID       string
	Name     *string
	Type     *TransactionType
	Price    *decimal.Decimal
	Currency *string
	Time     *Timestamp
	Logtime  *Timestamp
	Note     *string
	Source   *string
	Target   *string
	Budget   *string
	Tags     *[]string
	Children *[]string
	Parent   *string
}

func (p TransactionPatch) apply(t Transaction) Transaction {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Price != nil {
		v := *p.Price
		t.Price = &v
	}
	if p.Currency != nil {
		t.Currency = *p.Currency
	}
	if p.Time != nil {
		t.Time = *p.Time
	}
	if p.Logtime != nil {
		t.Logtime = *p.Logtime
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	if p.Source != nil {
		t.Source = *p.Source
	}
	if p.Target != nil {
		t.Target = *p.Target
	}
	if p.Budget != nil {
		t.Budget = *p.Budget
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Children != nil {
		t.Children = append([]string(nil), (*p.Children)...)
	}
	if p.Parent != nil {
		t.Parent = *p.Parent
	}
	return t
}
