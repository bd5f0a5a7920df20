package poverty

import (
	"github.com/shopspring/decimal"
)

// Pool is a named balance-holding account, like a bank account or a wallet.
type Pool struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Total    *bool           `json:"total"`
	Note     string          `json:"note"`
}

// Validate checks the pool's shape and returns a canonical copy with
// defaults applied: the document's default currency, a zero balance, and
// Total=true.
func (p Pool) Validate(doc *Document) (Pool, error) {
	if p.ID == "" {
		return p, invalidf(KindPool, "id is missing")
	}
	if p.Name == "" {
		return p, invalidf(KindPool, "name is missing")
	}
	if p.Currency == "" {
		def := doc.defaultCurrency()
		if def == nil {
			return p, invalidf(KindPool, "currency is missing and the document has no default currency")
		}
		p.Currency = def.ID
	}
	if p.Total == nil {
		v := true
		p.Total = &v
	}
	return p, nil
}

// MarshalJSON writes the pool with canonical field order.
func (p Pool) MarshalJSON() ([]byte, error) {
	total := true
	if p.Total != nil {
		total = *p.Total
	}
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.Append("currency", p.Currency)
	w.Append("balance", p.Balance)
	w.Append("total", total)
	w.Append("note", p.Note)
	return w.MarshalJSON()
}

// PoolPatch carries the fields of an update; nil fields are left untouched
// on the existing record.
type PoolPatch struct {
	ID       string
	Name     *string
	Currency *string
	Balance  *decimal.Decimal
	Total    *bool
	Note     *string
}

func (patch PoolPatch) apply(p Pool) Pool {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Currency != nil {
		p.Currency = *patch.Currency
	}
	if patch.Balance != nil {
		p.Balance = *patch.Balance
	}
	if patch.Total != nil {
		v := *patch.Total
		p.Total = &v
	}
	if patch.Note != nil {
		p.Note = *patch.Note
	}
	return p
}
