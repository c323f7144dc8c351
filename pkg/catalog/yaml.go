package catalog

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlCatalog is the on-disk shape of a catalog file:
//
//	languages:
//	  - name: English
//	    code: en
//	  - name: German
//	    code: de
type yamlCatalog struct {
	Languages []Entry `yaml:"languages"`
}

// ParseYAML reads a catalog definition from r and returns its entries in
// file order. The entries are not validated beyond YAML well-formedness;
// pass them to New, which enforces the catalog invariants.
func ParseYAML(r io.Reader) ([]Entry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidYAML, err)
	}

	var doc yamlCatalog
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(ErrInvalidYAML, err)
	}
	if len(doc.Languages) == 0 {
		return nil, ErrEmptyCatalog
	}
	return doc.Languages, nil
}

// NewFromYAML is a convenience that parses r and builds a Catalog from the
// result in one step.
func NewFromYAML(r io.Reader) (*Catalog, error) {
	entries, err := ParseYAML(r)
	if err != nil {
		return nil, err
	}
	return New(entries...)
}
