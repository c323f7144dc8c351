package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Entry is one supported language: a human-readable display name and the
// short code used on the wire.
type Entry struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// Catalog is an immutable, ordered set of language entries with
// case-insensitive lookup by name or code.
type Catalog struct {
	entries []Entry
	byToken map[string]int // lower-cased name and code -> index
}

// New builds a catalog from entries, preserving order. Entries must have
// non-empty names and codes, and no two entries may share a canonical
// (lower-cased) code. When a display name collides with another entry's
// token, the earlier entry wins lookups, matching declaration priority.
func New(entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byToken: make(map[string]int, len(entries)*2),
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == "" || e.Code == "" {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidEntry, e)
		}
		code := strings.ToLower(e.Code)
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, e.Code)
		}
		seen[code] = struct{}{}

		e.Code = code
		idx := len(c.entries)
		c.entries = append(c.entries, e)

		if _, taken := c.byToken[code]; !taken {
			c.byToken[code] = idx
		}
		if name := strings.ToLower(e.Name); name != code {
			if _, taken := c.byToken[name]; !taken {
				c.byToken[name] = idx
			}
		}
	}

	return c, nil
}

// MustNew is like New but panics on invalid entries. Intended for the
// package-level built-in table where a bad entry is a programming error.
func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup resolves a user-supplied token to a catalog entry. Matching is
// case-insensitive on both display name and code. If no entry matches
// directly, the token is parsed as a BCP 47 tag and its base language is
// tried, so regional variants like "en-US" resolve to "en".
func (c *Catalog) Lookup(token string) (Entry, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return Entry{}, false
	}
	if idx, ok := c.byToken[token]; ok {
		return c.entries[idx], true
	}

	tag, err := language.Parse(token)
	if err != nil {
		return Entry{}, false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return Entry{}, false
	}
	if idx, ok := c.byToken[base.String()]; ok {
		return c.entries[idx], true
	}
	return Entry{}, false
}

// List returns the entries in declaration order. The returned slice is a
// copy; mutating it does not affect the catalog.
func (c *Catalog) List() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
