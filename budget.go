package poverty

import (
	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence of a budget's automation.
type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodAnnual  BudgetPeriod = "annual"
)

// BudgetOver is the policy applied to unspent money at the end of a period.
type BudgetOver string

const (
	OverReturn BudgetOver = "return"
	OverKeep   BudgetOver = "keep"
)

// Automation is the recurrence policy of a budget. It is stored
// configuration only: the engine never runs a rollover.
type Automation struct {
	Period BudgetPeriod `json:"period"`
	Start  Timestamp    `json:"start"`
	End    Timestamp    `json:"end"`
	Over   BudgetOver   `json:"over"`
}

// MarshalJSON writes the automation with canonical field order, End as an
// explicit null when unset.
func (a Automation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("period", a.Period)
	w.Append("start", a.Start)
	w.Nullable("end", a.End)
	w.Append("over", a.Over)
	return w.MarshalJSON()
}

// Budget is a named spending plan with a recurrence policy and a set of
// sub-accounts.
type Budget struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Currency   string     `json:"currency"`
	Automation Automation `json:"automation"`
	Accounts   []Account  `json:"accounts"`
}

// Validate checks the budget's shape and returns a canonical copy with
// defaults applied: the document's default currency, a monthly period
// starting now, and the return-overflow policy. Nested accounts are
// validated with their back-reference forced to this budget.
func (b Budget) Validate(doc *Document) (Budget, error) {
	if b.ID == "" {
		return b, invalidf(KindBudget, "id is missing")
	}
	if b.Name == "" {
		return b, invalidf(KindBudget, "name is missing")
	}
	if b.Currency == "" {
		def := doc.defaultCurrency()
		if def == nil {
			return b, invalidf(KindBudget, "currency is missing and the document has no default currency")
		}
		b.Currency = def.ID
	}
	switch b.Automation.Period {
	case "":
		b.Automation.Period = PeriodMonthly
	case PeriodWeekly, PeriodMonthly, PeriodAnnual:
	default:
		return b, invalidf(KindBudget, "unknown automation period %q", b.Automation.Period)
	}
	switch b.Automation.Over {
	case "":
		b.Automation.Over = OverReturn
	case OverReturn, OverKeep:
	default:
		return b, invalidf(KindBudget, "unknown automation over policy %q", b.Automation.Over)
	}
	if b.Automation.Start.IsZero() {
		b.Automation.Start = Now()
	}
	if b.Accounts == nil {
		b.Accounts = []Account{}
	}
	for i, a := range b.Accounts {
		va, err := a.Validate(b.ID)
		if err != nil {
			return b, err
		}
		b.Accounts[i] = va
	}
	return b, nil
}

// MarshalJSON writes the budget with canonical field order.
func (b Budget) MarshalJSON() ([]byte, error) {
	accounts := b.Accounts
	if accounts == nil {
		accounts = []Account{}
	}
	var w jsonObjectWriter
	w.Append("id", b.ID)
	w.Append("name", b.Name)
	w.Append("currency", b.Currency)
	w.Append("automation", b.Automation)
	w.Append("accounts", accounts)
	return w.MarshalJSON()
}

func (b *Budget) accountIDs() []string {
	ids := make([]string, 0, len(b.Accounts))
	for _, a := range b.Accounts {
		ids = append(ids, a.ID)
	}
	return ids
}

// BudgetPatch carries the fields of an update; nil fields are left
// untouched on the existing record. Accounts are not patched here, they
// have their own CRUD operations.
type BudgetPatch struct {
	ID       string
	Name     *string
	Currency *string
	Period   *BudgetPeriod
	Start    *Timestamp
	End      *Timestamp
	Over     *BudgetOver
}

func (p BudgetPatch) apply(b Budget) Budget {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Currency != nil {
		b.Currency = *p.Currency
	}
	if p.Period != nil {
		b.Automation.Period = *p.Period
	}
	if p.Start != nil {
		b.Automation.Start = *p.Start
	}
	if p.End != nil {
		b.Automation.End = *p.End
	}
	if p.Over != nil {
		b.Automation.Over = *p.Over
	}
	return b
}

// Account is a sub-ledger within a budget, tracking its own balance and
// validity window. Account ids are unique across the union of all budgets'
// accounts, so a transaction's budget reference can name one directly.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Budget  string          `json:"budget"`
	Start   Timestamp       `json:"start"`
	End     Timestamp       `json:"end"`
	Balance decimal.Decimal `json:"balance"`
	Visible *bool           `json:"visible"`
}

// Validate checks the account's shape and returns a canonical copy. The
// budget back-reference defaults to the owning budget and must match it.
func (a Account) Validate(budgetID string) (Account, error) {
	if a.ID == "" {
		return a, invalidf(KindAccount, "id is missing")
	}
	if a.Name == "" {
		return a, invalidf(KindAccount, "name is missing")
	}
	if a.Budget == "" {
		a.Budget = budgetID
	} else if a.Budget != budgetID {
		return a, invalidf(KindAccount, "budget back-reference %q does not match owning budget %q", a.Budget, budgetID)
	}
	if a.Visible == nil {
		v := true
		a.Visible = &v
	}
	return a, nil
}

// MarshalJSON writes the account with canonical field order, the validity
// window bounds as explicit nulls when unset.
func (a Account) MarshalJSON() ([]byte, error) {
	visible := true
	if a.Visible != nil {
		visible = *a.Visible
	}
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("budget", a.Budget)
	w.Nullable("start", a.Start)
	w.Nullable("end", a.End)
	w.Append("balance", a.Balance)
	w.Append("visible", visible)
	return w.MarshalJSON()
}

// AccountPatch carries the fields of an update; nil fields are left
// untouched on the existing record. Setting Budget moves the account to
// another budget.
type AccountPatch struct {
	ID      string
	Name    *string
	Budget  *string
	Start   *Timestamp
	End     *Timestamp
	Balance *decimal.Decimal
	Visible *bool
}

func (p AccountPatch) apply(a Account) Account {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Budget != nil {
		a.Budget = *p.Budget
	}
	if p.Start != nil {
		a.Start = *p.Start
	}
	if p.End != nil {
		a.End = *p.End
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
	if p.Visible != nil {
		v := *p.Visible
		a.Visible = &v
	}
	return a
}
