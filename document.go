package poverty

// Meta pins the document to the engine's expected format and version. Both
// are compared by exact string equality, not semantic versioning.
type Meta struct {
	Format  string `json:"format"`
	Version string `json:"version"`
}

// The literal constants a Poverty JSON document must carry in meta.
const (
	DocumentFormat  = "Poverty JSON"
	DocumentVersion = "0.0.1"
)

// Document is the whole Poverty JSON document: five top-level collections
// plus the opaque templates.
type Document struct {
	Meta         Meta          `json:"meta"`
	Transactions []Transaction `json:"transactions"`
	Templates    []Template    `json:"templates"`
	Currencies   []Currency    `json:"currencies"`
	Pools        []Pool        `json:"pools"`
	Budgets      []Budget      `json:"budgets"`
}

// NewDocument returns an empty document with the expected meta constants.
func NewDocument() *Document {
	return &Document{
		Meta:         Meta{Format: DocumentFormat, Version: DocumentVersion},
		Transactions: []Transaction{},
		Templates:    []Template{},
		Currencies:   []Currency{},
		Pools:        []Pool{},
		Budgets:      []Budget{},
	}
}

// MarshalJSON writes the document with canonical top-level key order.
func (d Document) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("meta", d.Meta)
	w.Append("transactions", d.Transactions)
	w.Append("templates", d.Templates)
	w.Append("currencies", d.Currencies)
	w.Append("pools", d.Pools)
	w.Append("budgets", d.Budgets)
	return w.MarshalJSON()
}

// lookup helpers: all return nil when the id is unknown.

func (d *Document) transaction(id string) *Transaction {
	for i := range d.Transactions {
		if d.Transactions[i].ID == id {
			return &d.Transactions[i]
		}
	}
	return nil
}

func (d *Document) currency(id string) *Currency {
	for i := range d.Currencies {
		if d.Currencies[i].ID == id {
			return &d.Currencies[i]
		}
	}
	return nil
}

func (d *Document) pool(id string) *Pool {
	for i := range d.Pools {
		if d.Pools[i].ID == id {
			return &d.Pools[i]
		}
	}
	return nil
}

func (d *Document) budget(id string) *Budget {
	for i := range d.Budgets {
		if d.Budgets[i].ID == id {
			return &d.Budgets[i]
		}
	}
	return nil
}

// account returns the account and its owning budget.
func (d *Document) account(id string) (*Account, *Budget) {
	for i := range d.Budgets {
		b := &d.Budgets[i]
		for j := range b.Accounts {
			if b.Accounts[j].ID == id {
				return &b.Accounts[j], b
			}
		}
	}
	return nil, nil
}

// defaultCurrency returns the unique currency flagged default, or nil when
// none is. Document validation guarantees there is never more than one.
func (d *Document) defaultCurrency() *Currency {
	for i := range d.Currencies {
		if d.Currencies[i].Default {
			return &d.Currencies[i]
		}
	}
	return nil
}

func (d *Document) transactionIDs() []string {
	ids := make([]string, 0, len(d.Transactions))
	for _, t := range d.Transactions {
		ids = append(ids, t.ID)
	}
	return ids
}

func (d *Document) templateIDs() []string {
	ids := make([]string, 0, len(d.Templates))
	for _, t := range d.Templates {
		ids = append(ids, t.ID())
	}
	return ids
}

func (d *Document) currencyIDs() []string {
	ids := make([]string, 0, len(d.Currencies))
	for _, c := range d.Currencies {
		ids = append(ids, c.ID)
	}
	return ids
}

func (d *Document) poolIDs() []string {
	ids := make([]string, 0, len(d.Pools))
	for _, p := range d.Pools {
		ids = append(ids, p.ID)
	}
	return ids
}

func (d *Document) budgetIDs() []string {
	ids := make([]string, 0, len(d.Budgets))
	for _, b := range d.Budgets {
		ids = append(ids, b.ID)
	}
	return ids
}

// accountIDs flattens the account ids across all budgets.
func (d *Document) accountIDs() []string {
	var ids []string
	for i := range d.Budgets {
		ids = append(ids, d.Budgets[i].accountIDs()...)
	}
	return ids
}
