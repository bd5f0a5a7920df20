package poverty

// validateDocument runs the two document-level passes in order: schema
// first (shape and defaults, per record), then integrity (uniqueness and
// links). It is used at load; CRUD operations re-check only the invariants
// a given mutation can break.
func validateDocument(doc *Document) error {
	if err := validateSchema(doc); err != nil {
		return err
	}
	return checkIntegrity(doc)
}

// validateSchema checks meta, then canonicalizes every record of the five
// collections in place. Validation is fail-fast on the first invalid record
// anywhere: the whole document is rejected, nothing is partially applied to
// an engine.
func validateSchema(doc *Document) error {
	if doc.Meta.Format != DocumentFormat {
		return invalidf(KindDocument, "format is %q, want %q", doc.Meta.Format, DocumentFormat)
	}
	if doc.Meta.Version != DocumentVersion {
		return invalidf(KindDocument, "version is %q, want %q", doc.Meta.Version, DocumentVersion)
	}
	if doc.Transactions == nil {
		doc.Transactions = []Transaction{}
	}
	if doc.Templates == nil {
		doc.Templates = []Template{}
	}
	if doc.Currencies == nil {
		doc.Currencies = []Currency{}
	}
	if doc.Pools == nil {
		doc.Pools = []Pool{}
	}
	if doc.Budgets == nil {
		doc.Budgets = []Budget{}
	}
	// Currencies go first so that default-currency resolution sees them
	// when the other collections canonicalize.
	for i, c := range doc.Currencies {
		vc, err := c.Validate()
		if err != nil {
			return err
		}
		doc.Currencies[i] = vc
	}
	for i, t := range doc.Transactions {
		vt, err := t.Validate(doc)
		if err != nil {
			return err
		}
		doc.Transactions[i] = vt
	}
	for i, p := range doc.Pools {
		vp, err := p.Validate(doc)
		if err != nil {
			return err
		}
		doc.Pools[i] = vp
	}
	for i, b := range doc.Budgets {
		vb, err := b.Validate(doc)
		if err != nil {
			return err
		}
		doc.Budgets[i] = vb
	}
	return nil
}
