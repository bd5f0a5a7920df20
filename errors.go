package poverty

import "fmt"

// Kind identifies the entity collection an error relates to.
type Kind string

const (
	KindDocument    Kind = "document"
	KindTransaction Kind = "transaction"
	KindTemplate    Kind = "template"
	KindCurrency    Kind = "currency"
	KindPool        Kind = "pool"
	KindBudget      Kind = "budget"
	KindAccount     Kind = "account"
)

// InvalidError reports a record that failed schema validation. The record
// never reaches the document.
type InvalidError struct {
	Kind   Kind
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Reason)
}

// DuplicateError reports an insert whose id collides with an existing id in
// the same collection.
type DuplicateError struct {
	Kind Kind
	ID   string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s id %q", e.Kind, e.ID)
}

// DuplicatesError reports a collection holding at least two records with the
// same id. It is the whole-set counterpart of DuplicateError, raised by
// document-level validation.
type DuplicatesError struct {
	Kind Kind
}

func (e *DuplicatesError) Error() string {
	return fmt.Sprintf("duplicate ids in %s collection", e.Kind)
}

// NotExistError reports a reference, or an update/delete target, naming an
// id absent from its collection.
type NotExistError struct {
	Kind Kind
	ID   string
}

func (e *NotExistError) Error() string {
	return fmt.Sprintf("%s %q does not exist", e.Kind, e.ID)
}

// InUseError reports a delete refused because another entity still
// references the id.
type InUseError struct {
	Kind Kind
	ID   string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s %q is still in use", e.Kind, e.ID)
}

func invalidf(kind Kind, format string, args ...any) *InvalidError {
	return &InvalidError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
