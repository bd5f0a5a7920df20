package poverty

// checkIntegrity verifies uniqueness and referential soundness across the
// whole document. Uniqueness comes first, then links, in a fixed order:
// transaction links, then the currency holders (pools, budgets), then the
// budget links (accounts). The first failure aborts, nothing is aggregated.
func checkIntegrity(doc *Document) error {
	idSets := []struct {
		kind Kind
		ids  []string
	}{
		{KindTransaction, doc.transactionIDs()},
		{KindTemplate, doc.templateIDs()},
		{KindCurrency, doc.currencyIDs()},
		{KindPool, doc.poolIDs()},
		{KindBudget, doc.budgetIDs()},
		{KindAccount, doc.accountIDs()},
	}
	for _, s := range idSets {
		if hasDuplicates(s.ids) {
			return &DuplicatesError{Kind: s.kind}
		}
	}

	// The default currency is a single document-wide slot.
	defaults := 0
	for _, c := range doc.Currencies {
		if c.Default {
			defaults++
		}
	}
	if defaults > 1 {
		return invalidf(KindCurrency, "more than one currency is flagged default")
	}

	for i := range doc.Transactions {
		if err := checkTransactionLinks(doc, &doc.Transactions[i]); err != nil {
			return err
		}
	}
	for _, p := range doc.Pools {
		if doc.currency(p.Currency) == nil {
			return &NotExistError{Kind: KindCurrency, ID: p.Currency}
		}
	}
	for _, b := range doc.Budgets {
		if doc.currency(b.Currency) == nil {
			return &NotExistError{Kind: KindCurrency, ID: b.Currency}
		}
	}
	for i := range doc.Budgets {
		b := &doc.Budgets[i]
		for _, a := range b.Accounts {
			if doc.budget(a.Budget) == nil {
				return &NotExistError{Kind: KindBudget, ID: a.Budget}
			}
		}
	}
	return nil
}

// checkTransactionLinks verifies that every non-null reference of a single
// transaction resolves. The budget reference may name a budget or one of
// its accounts, since account ids are unique across budgets. Source and
// target are checked against the pool set here as well, not only on insert,
// so a stored document cannot carry dangling pool references.
func checkTransactionLinks(doc *Document, t *Transaction) error {
	if doc.currency(t.Currency) == nil {
		return &NotExistError{Kind: KindCurrency, ID: t.Currency}
	}
	if t.Source != "" && doc.pool(t.Source) == nil {
		return &NotExistError{Kind: KindPool, ID: t.Source}
	}
	if t.Target != "" && doc.pool(t.Target) == nil {
		return &NotExistError{Kind: KindPool, ID: t.Target}
	}
	if t.Budget != "" {
		if a, _ := doc.account(t.Budget); a == nil && doc.budget(t.Budget) == nil {
			return &NotExistError{Kind: KindBudget, ID: t.Budget}
		}
	}
	if t.Parent != "" && doc.transaction(t.Parent) == nil {
		return &NotExistError{Kind: KindTransaction, ID: t.Parent}
	}
	for _, child := range t.Children {
		if doc.transaction(child) == nil {
			return &NotExistError{Kind: KindTransaction, ID: child}
		}
	}
	return nil
}
