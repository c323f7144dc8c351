package catalog

import "errors"

var (
	ErrEmptyCatalog  = errors.New("catalog: no entries")
	ErrInvalidEntry  = errors.New("catalog: entry name and code must be non-empty")
	ErrDuplicateCode = errors.New("catalog: duplicate language code")
	ErrInvalidYAML   = errors.New("catalog: malformed YAML catalog")
)
