package poverty

import (
	"fmt"
	"os"
)

// LoadFile reads, decodes and validates the document at path into an
// engine.
func LoadFile(path string) (*Poverty, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open document %q: %w", path, err)
	}
	defer f.Close()

	p, err := DecodePoverty(f)
	if err != nil {
		return nil, fmt.Errorf("could not load document %q: %w", path, err)
	}
	return p, nil
}

// SaveFile writes the engine's document to path in canonical form.
func SaveFile(path string, p *Poverty) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create document %q: %w", path, err)
	}
	defer f.Close()

	if err := p.Encode(f); err != nil {
		return fmt.Errorf("could not save document %q: %w", path, err)
	}
	return f.Close()
}
