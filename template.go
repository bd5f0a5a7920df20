package poverty

import (
	"bytes"
	"encoding/json"
)

// Template is an opaque record carried through the document untouched. The
// engine never interprets templates beyond probing the few fields that
// matter for integrity: the id for uniqueness, and the currency, source and
// target references for in-use protection.
type Template struct {
	raw json.RawMessage
}

// templateProbe is the loosely decoded view of a template used by the
// integrity checks.
type templateProbe struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Source   string `json:"source"`
	Target   string `json:"target"`
}

func (t Template) probe() templateProbe {
	var p templateProbe
	// A template that is not even an object probes as empty.
	_ = json.Unmarshal(t.raw, &p)
	return p
}

// ID returns the template's id, or the empty string when it has none. The
// empty string participates in the uniqueness check like any other id, so a
// document may carry at most one id-less template.
func (t Template) ID() string { return t.probe().ID }

func (t Template) usesCurrency(id string) bool { return t.probe().Currency == id }

func (t Template) usesPool(id string) bool {
	p := t.probe()
	return p.Source == id || p.Target == id
}

// MarshalJSON writes the template bytes back exactly as they were read.
func (t Template) MarshalJSON() ([]byte, error) {
	if len(t.raw) == 0 {
		return []byte("null"), nil
	}
	return t.raw, nil
}

// UnmarshalJSON keeps the raw template bytes for pass-through.
func (t *Template) UnmarshalJSON(data []byte) error {
	t.raw = append(t.raw[:0], data...)
	return nil
}

// Equal compares two templates by their raw bytes.
func (t Template) Equal(o Template) bool {
	return bytes.Equal(t.raw, o.raw)
}
