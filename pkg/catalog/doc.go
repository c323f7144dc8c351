// Package catalog provides the table of languages the translation provider
// supports, with case-insensitive lookup by display name or short code.
//
// The built-in catalog covers the provider's supported languages and is
// immutable after construction; deployments that need to track provider
// additions without a rebuild can load a replacement table from YAML with
// ParseYAML and construct a Catalog from it.
//
// Lookup accepts either form of a language ("German" or "de", any case) and
// falls back to BCP 47 base-language matching, so "en-US" resolves to the
// "en" entry. Declaration order is preserved and defines both the output of
// List and the tie-break priority of Lookup.
//
// # Usage
//
//	c := catalog.Default()
//	entry, ok := c.Lookup("german")   // Entry{Name: "German", Code: "de"}
//	entry, ok = c.Lookup("EN")        // Entry{Name: "English", Code: "en"}
//
//	for _, e := range c.List() {
//		fmt.Println(e.Name, e.Code)
//	}
package catalog
