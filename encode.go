package poverty

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeDocument decodes a raw Poverty JSON document from r. The document
// is not validated here; construct an engine with FromDocument for that.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode document: %w", err)
	}
	return &doc, nil
}

// EncodeDocument writes the document to w in canonical form: tab-indented,
// keys in schema order, nullable fields as explicit nulls. Encoding an
// already-canonical valid document reproduces it byte for byte.
func EncodeDocument(w io.Writer, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return fmt.Errorf("could not encode document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write document: %w", err)
	}
	return nil
}

// DecodePoverty decodes a document from r and validates it into an engine.
func DecodePoverty(r io.Reader) (*Poverty, error) {
	doc, err := DecodeDocument(r)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

// Encode writes the engine's current document to w in canonical form.
func (p *Poverty) Encode(w io.Writer) error {
	return EncodeDocument(w, p.doc)
}
