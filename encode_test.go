package poverty

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := newTestEngine(t)
	mustInsertTransaction(t, p, Transaction{Name: "lunch", Source: "cash", Budget: "groceries", Tags: []string{"food", "out"}})

	var first bytes.Buffer
	if err := p.Encode(&first); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	reloaded, err := DecodePoverty(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("DecodePoverty() error = %v", err)
	}

	var second bytes.Buffer
	if err := reloaded.Encode(&second); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if first.String() != second.String() {
		t.Errorf("round trip not stable:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}

func TestDecodeAppliesDefaultsIdempotently(t *testing.T) {
	raw := `{
		"meta": {"format": "Poverty JSON", "version": "0.0.1"},
		"transactions": [{"id": "t1", "currency": "eur", "time": 1700000000000, "logtime": 1700000000000}],
		"templates": [],
		"currencies": [{"id": "eur", "name": "Euro", "default": true}],
		"pools": [],
		"budgets": []
	}`
	p, err := DecodePoverty(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("DecodePoverty() error = %v", err)
	}
	tx := p.Transaction("t1")
	if tx.Type != TypeTransfer {
		t.Errorf("Type = %q, want defaulted %q", tx.Type, TypeTransfer)
	}
	if tx.Tags == nil || tx.Children == nil {
		t.Error("lists not canonicalized on load")
	}

	// re-validating the already-defaulted document changes nothing
	var once bytes.Buffer
	if err := p.Encode(&once); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	again, err := DecodePoverty(bytes.NewReader(once.Bytes()))
	if err != nil {
		t.Fatalf("DecodePoverty() error = %v", err)
	}
	var twice bytes.Buffer
	if err := again.Encode(&twice); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if once.String() != twice.String() {
		t.Error("default filling is not idempotent")
	}
}

func TestDecodeRejectsBadVersion(t *testing.T) {
	raw := `{
		"meta": {"format": "Poverty JSON", "version": "9.9.9"},
		"transactions": [], "templates": [], "currencies": [], "pools": [], "budgets": []
	}`
	if _, err := DecodePoverty(strings.NewReader(raw)); err == nil {
		t.Fatal("DecodePoverty() accepted a document with a wrong version")
	}
}

func TestEncodeWritesExplicitNulls(t *testing.T) {
	p := newTestEngine(t)
	mustInsertTransaction(t, p, Transaction{Name: "lunch"})

	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := buf.String()
	for _, key := range []string{`"price": null`, `"source": null`, `"target": null`, `"budget": null`, `"parent": null`} {
		if !strings.Contains(out, key) {
			t.Errorf("encoded document misses %s:\n%s", key, out)
		}
	}
}

func TestTemplatePassThrough(t *testing.T) {
	raw := `{
		"meta": {"format": "Poverty JSON", "version": "0.0.1"},
		"transactions": [],
		"templates": [{"id": "tpl1", "anything": {"nested": [1, 2, 3]}, "currency": "eur"}],
		"currencies": [{"id": "eur", "name": "Euro", "default": true}],
		"pools": [], "budgets": []
	}`
	p, err := DecodePoverty(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("DecodePoverty() error = %v", err)
	}
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"anything"`) || !strings.Contains(out, `"tpl1"`) {
		t.Errorf("template content not passed through:\n%s", out)
	}
}
