package poverty

// Poverty is the integrity engine. It owns exactly one document for its
// whole lifetime and exposes only typed CRUD operations over it; external
// callers must serialize access themselves, the check-then-act sequences
// here are not safe against interleaved mutation.
type Poverty struct {
	doc *Document
}

// New returns an engine over an empty, valid document.
func New() *Poverty {
	return &Poverty{doc: NewDocument()}
}

// FromDocument validates a parsed document (schema, then uniqueness and
// links) and returns an engine owning it. Any failure means no engine:
// there is no partially-usable engine over an invalid document. The schema
// pass canonicalizes doc in place, so on a link or uniqueness failure the
// caller's document carries the defaults already applied.
func FromDocument(doc *Document) (*Poverty, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	return &Poverty{doc: doc}, nil
}

// Document returns the engine's current document. It is a live view, not a
// copy: callers must treat it as read-only and route every mutation through
// the CRUD operations.
func (p *Poverty) Document() *Document { return p.doc }

// DefaultCurrency returns the unique currency flagged default, or nil when
// the document has none.
func (p *Poverty) DefaultCurrency() *Currency { return p.doc.defaultCurrency() }

/* Transactions */

// Transaction returns the transaction with this id, or nil if unknown.
func (p *Poverty) Transaction(id string) *Transaction { return p.doc.transaction(id) }

// InsertTransaction validates the candidate, assigns an id when it has
// none, and appends it. The assigned id is returned.
func (p *Poverty) InsertTransaction(t Transaction) (string, error) {
	if t.ID == "" {
		t.ID = newID(p.doc.transactionIDs())
	}
	t, err := t.Validate(p.doc)
	if err != nil {
		return "", err
	}
	if p.doc.transaction(t.ID) != nil {
		return "", &DuplicateError{Kind: KindTransaction, ID: t.ID}
	}
	if err := checkTransactionLinks(p.doc, &t); err != nil {
		return "", err
	}
	p.doc.Transactions = append(p.doc.Transactions, t)
	return t.ID, nil
}

// UpdateTransaction merges the patch's present fields onto the existing
// record, re-validates the whole merged record, and commits it in place.
func (p *Poverty) UpdateTransaction(patch TransactionPatch) error {
	existing := p.doc.transaction(patch.ID)
	if existing == nil {
		return &NotExistError{Kind: KindTransaction, ID: patch.ID}
	}
	merged, err := patch.apply(*existing).Validate(p.doc)
	if err != nil {
		return err
	}
	if err := checkTransactionLinks(p.doc, &merged); err != nil {
		return err
	}
	*existing = merged
	return nil
}

// DeleteTransaction removes the transaction after proving no other
// transaction lists it as parent, then prunes its id from every other
// transaction's children list.
func (p *Poverty) DeleteTransaction(id string) error {
	if p.doc.transaction(id) == nil {
		return &NotExistError{Kind: KindTransaction, ID: id}
	}
	for _, t := range p.doc.Transactions {
		if t.ID != id && t.Parent == id {
			return &InUseError{Kind: KindTransaction, ID: id}
		}
	}
	kept := p.doc.Transactions[:0]
	for _, t := range p.doc.Transactions {
		if t.ID == id {
			continue
		}
		t.Children = remove(t.Children, id)
		kept = append(kept, t)
	}
	p.doc.Transactions = kept
	return nil
}

/* Currencies */

// Currency returns the currency with this id, or nil if unknown.
func (p *Poverty) Currency(id string) *Currency { return p.doc.currency(id) }

// InsertCurrency validates the candidate, assigns an id when it has none,
// and appends it. A second default currency is rejected.
func (p *Poverty) InsertCurrency(c Currency) (string, error) {
	if c.ID == "" {
		c.ID = newID(p.doc.currencyIDs())
	}
	c, err := c.Validate()
	if err != nil {
		return "", err
	}
	if p.doc.currency(c.ID) != nil {
		return "", &DuplicateError{Kind: KindCurrency, ID: c.ID}
	}
	if c.Default && p.doc.defaultCurrency() != nil {
		return "", invalidf(KindCurrency, "a default currency is already defined")
	}
	p.doc.Currencies = append(p.doc.Currencies, c)
	return c.ID, nil
}

// UpdateCurrency merges the patch's present fields onto the existing
// record, re-validates, and commits in place.
func (p *Poverty) UpdateCurrency(patch CurrencyPatch) error {
	existing := p.doc.currency(patch.ID)
	if existing == nil {
		return &NotExistError{Kind: KindCurrency, ID: patch.ID}
	}
	merged, err := patch.apply(*existing).Validate()
	if err != nil {
		return err
	}
	if merged.Default {
		if def := p.doc.defaultCurrency(); def != nil && def.ID != merged.ID {
			return invalidf(KindCurrency, "a default currency is already defined")
		}
	}
	*existing = merged
	return nil
}

// DeleteCurrency removes the currency unless a transaction, template, pool
// or budget still references it.
func (p *Poverty) DeleteCurrency(id string) error {
	if p.doc.currency(id) == nil {
		return &NotExistError{Kind: KindCurrency, ID: id}
	}
	for _, t := range p.doc.Transactions {
		if t.Currency == id {
			return &InUseError{Kind: KindCurrency, ID: id}
		}
	}
	for _, t := range p.doc.Templates {
		if t.usesCurrency(id) {
			return &InUseError{Kind: KindCurrency, ID: id}
		}
	}
	for _, pool := range p.doc.Pools {
		if pool.Currency == id {
			return &InUseError{Kind: KindCurrency, ID: id}
		}
	}
	for _, b := range p.doc.Budgets {
		if b.Currency == id {
			return &InUseError{Kind: KindCurrency, ID: id}
		}
	}
	kept := p.doc.Currencies[:0]
	for _, c := range p.doc.Currencies {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	p.doc.Currencies = kept
	return nil
}

/* Pools */

// Pool returns the pool with this id, or nil if unknown.
func (p *Poverty) Pool(id string) *Pool { return p.doc.pool(id) }

// InsertPool validates the candidate, assigns an id when it has none, and
// appends it.
func (p *Poverty) InsertPool(pool Pool) (string, error) {
	if pool.ID == "" {
		pool.ID = newID(p.doc.poolIDs())
	}
	pool, err := pool.Validate(p.doc)
	if err != nil {
		return "", err
	}
	if p.doc.pool(pool.ID) != nil {
		return "", &DuplicateError{Kind: KindPool, ID: pool.ID}
	}
	if p.doc.currency(pool.Currency) == nil {
		return "", &NotExistError{Kind: KindCurrency, ID: pool.Currency}
	}
	p.doc.Pools = append(p.doc.Pools, pool)
	return pool.ID, nil
}

// UpdatePool merges the patch's present fields onto the existing record,
// re-validates, and commits in place.
func (p *Poverty) UpdatePool(patch PoolPatch) error {
	existing := p.doc.pool(patch.ID)
	if existing == nil {
		return &NotExistError{Kind: KindPool, ID: patch.ID}
	}
	merged, err := patch.apply(*existing).Validate(p.doc)
	if err != nil {
		return err
	}
	if p.doc.currency(merged.Currency) == nil {
		return &NotExistError{Kind: KindCurrency, ID: merged.Currency}
	}
	*existing = merged
	return nil
}

// DeletePool removes the pool unless a transaction or template still
// references it as source or target.
func (p *Poverty) DeletePool(id string) error {
	if p.doc.pool(id) == nil {
		return &NotExistError{Kind: KindPool, ID: id}
	}
	for _, t := range p.doc.Transactions {
		if t.Source == id || t.Target == id {
			return &InUseError{Kind: KindPool, ID: id}
		}
	}
	for _, t := range p.doc.Templates {
		if t.usesPool(id) {
			return &InUseError{Kind: KindPool, ID: id}
		}
	}
	kept := p.doc.Pools[:0]
	for _, pool := range p.doc.Pools {
		if pool.ID != id {
			kept = append(kept, pool)
		}
	}
	p.doc.Pools = kept
	return nil
}

/* Budgets */

// Budget returns the budget with this id, or nil if unknown.
func (p *Poverty) Budget(id string) *Budget { return p.doc.budget(id) }

// InsertBudget validates the candidate (including its nested accounts),
// assigns an id when it has none, and appends it. Account ids must be
// fresh across the union of all budgets' accounts.
func (p *Poverty) InsertBudget(b Budget) (string, error) {
	if b.ID == "" {
		b.ID = newID(p.doc.budgetIDs())
	}
	for i := range b.Accounts {
		if b.Accounts[i].ID == "" {
			b.Accounts[i].ID = newID(append(p.doc.accountIDs(), b.accountIDs()...))
		}
	}
	b, err := b.Validate(p.doc)
	if err != nil {
		return "", err
	}
	if p.doc.budget(b.ID) != nil {
		return "", &DuplicateError{Kind: KindBudget, ID: b.ID}
	}
	if p.doc.currency(b.Currency) == nil {
		return "", &NotExistError{Kind: KindCurrency, ID: b.Currency}
	}
	if hasDuplicates(b.accountIDs()) {
		return "", &DuplicatesError{Kind: KindAccount}
	}
	existing := p.doc.accountIDs()
	for _, id := range b.accountIDs() {
		if contains(existing, id) {
			return "", &DuplicateError{Kind: KindAccount, ID: id}
		}
	}
	p.doc.Budgets = append(p.doc.Budgets, b)
	return b.ID, nil
}

// UpdateBudget merges the patch's present fields onto the existing record,
// re-validates, and commits in place. Accounts are untouched, they have
// their own operations.
func (p *Poverty) UpdateBudget(patch BudgetPatch) error {
	existing := p.doc.budget(patch.ID)
	if existing == nil {
		return &NotExistError{Kind: KindBudget, ID: patch.ID}
	}
	merged, err := patch.apply(*existing).Validate(p.doc)
	if err != nil {
		return err
	}
	if p.doc.currency(merged.Currency) == nil {
		return &NotExistError{Kind: KindCurrency, ID: merged.Currency}
	}
	*existing = merged
	return nil
}

// DeleteBudget removes the budget unless a transaction still references the
// budget itself or any of its accounts.
func (p *Poverty) DeleteBudget(id string) error {
	b := p.doc.budget(id)
	if b == nil {
		return &NotExistError{Kind: KindBudget, ID: id}
	}
	refs := append([]string{id}, b.accountIDs()...)
	for _, t := range p.doc.Transactions {
		if t.Budget != "" && contains(refs, t.Budget) {
			return &InUseError{Kind: KindBudget, ID: id}
		}
	}
	kept := p.doc.Budgets[:0]
	for _, budget := range p.doc.Budgets {
		if budget.ID != id {
			kept = append(kept, budget)
		}
	}
	p.doc.Budgets = kept
	return nil
}

/* Accounts */

// Account returns the budget account with this id, or nil if unknown.
// Account ids are unique across all budgets, so no budget id is needed.
func (p *Poverty) Account(id string) *Account {
	a, _ := p.doc.account(id)
	return a
}

// InsertAccount validates the candidate and appends it to the budget named
// by its back-reference. The id must be fresh across all budgets' accounts.
func (p *Poverty) InsertAccount(a Account) (string, error) {
	owner := p.doc.budget(a.Budget)
	if owner == nil {
		return "", &NotExistError{Kind: KindBudget, ID: a.Budget}
	}
	if a.ID == "" {
		a.ID = newID(p.doc.accountIDs())
	}
	a, err := a.Validate(owner.ID)
	if err != nil {
		return "", err
	}
	if got, _ := p.doc.account(a.ID); got != nil {
		return "", &DuplicateError{Kind: KindAccount, ID: a.ID}
	}
	owner.Accounts = append(owner.Accounts, a)
	return a.ID, nil
}

// UpdateAccount merges the patch's present fields onto the existing record,
// re-validates, and commits. Patching the budget back-reference moves the
// account to the named budget.
func (p *Poverty) UpdateAccount(patch AccountPatch) error {
	existing, owner := p.doc.account(patch.ID)
	if existing == nil {
		return &NotExistError{Kind: KindAccount, ID: patch.ID}
	}
	merged := patch.apply(*existing)
	target := p.doc.budget(merged.Budget)
	if target == nil {
		return &NotExistError{Kind: KindBudget, ID: merged.Budget}
	}
	merged, err := merged.Validate(target.ID)
	if err != nil {
		return err
	}
	if target == owner {
		*existing = merged
		return nil
	}
	owner.Accounts = removeAccount(owner.Accounts, merged.ID)
	target.Accounts = append(target.Accounts, merged)
	return nil
}

// DeleteAccount removes the account from its owning budget unless a
// transaction still references it as budget.
func (p *Poverty) DeleteAccount(id string) error {
	existing, owner := p.doc.account(id)
	if existing == nil {
		return &NotExistError{Kind: KindAccount, ID: id}
	}
	for _, t := range p.doc.Transactions {
		if t.Budget == id {
			return &InUseError{Kind: KindAccount, ID: id}
		}
	}
	owner.Accounts = removeAccount(owner.Accounts, id)
	return nil
}

func remove(ids []string, id string) []string {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}

func removeAccount(accounts []Account, id string) []Account {
	kept := accounts[:0]
	for _, a := range accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return kept
}
