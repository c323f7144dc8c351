package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingokit/pkg/catalog"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid entries", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.New(
			catalog.Entry{Name: "English", Code: "en"},
			catalog.Entry{Name: "German", Code: "de"},
		)
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("empty catalog rejected", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New()
		assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(catalog.Entry{Name: "", Code: "en"})
		assert.ErrorIs(t, err, catalog.ErrInvalidEntry)
	})

	t.Run("duplicate code rejected regardless of case", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(
			catalog.Entry{Name: "Arabic", Code: "ar"},
			catalog.Entry{Name: "Arabic", Code: "AR"},
		)
		assert.ErrorIs(t, err, catalog.ErrDuplicateCode)
	})

	t.Run("codes canonicalized to lower case", func(t *testing.T) {
		t.Parallel()
		c, err := catalog.New(catalog.Entry{Name: "English", Code: "EN"})
		require.NoError(t, err)
		e, ok := c.Lookup("english")
		require.True(t, ok)
		assert.Equal(t, "en", e.Code)
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()
	c := catalog.Default()

	t.Run("every entry resolves by name and code in any case", func(t *testing.T) {
		t.Parallel()
		for _, e := range c.List() {
			byName, ok := c.Lookup(strings.ToUpper(e.Name))
			require.True(t, ok, "name lookup failed for %q", e.Name)
			byCode, ok := c.Lookup(strings.ToUpper(e.Code))
			require.True(t, ok, "code lookup failed for %q", e.Code)
			assert.Equal(t, e, byName)
			assert.Equal(t, e, byCode)
		}
	})

	t.Run("unknown code returns false", func(t *testing.T) {
		t.Parallel()
		_, ok := c.Lookup("xx")
		assert.False(t, ok)
	})

	t.Run("empty and whitespace tokens return false", func(t *testing.T) {
		t.Parallel()
		_, ok := c.Lookup("")
		assert.False(t, ok)
		_, ok = c.Lookup("   ")
		assert.False(t, ok)
	})

	t.Run("regional variant falls back to base language", func(t *testing.T) {
		t.Parallel()
		e, ok := c.Lookup("en-US")
		require.True(t, ok)
		assert.Equal(t, "en", e.Code)

		e, ok = c.Lookup("pt-BR")
		require.True(t, ok)
		assert.Equal(t, "pt", e.Code)
	})

	t.Run("garbage token returns false", func(t *testing.T) {
		t.Parallel()
		_, ok := c.Lookup("!!not-a-language!!")
		assert.False(t, ok)
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	// The provider table had a duplicate Arabic row and an empty padding
	// sentinel; both are data bugs and must not survive here.
	seen := make(map[string]int)
	for _, e := range c.List() {
		require.NotEmpty(t, e.Name)
		require.NotEmpty(t, e.Code)
		seen[e.Code]++
	}
	for code, n := range seen {
		assert.Equal(t, 1, n, "code %q appears %d times", code, n)
	}

	// Declaration order is stable and starts at the top of the table.
	list := c.List()
	assert.Equal(t, "Arabic", list[0].Name)
	assert.Equal(t, "English", list[6].Name)
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		doc := `
languages:
  - name: English
    code: en
  - name: Klingon
    code: tlh
`
		entries, err := catalog.ParseYAML(strings.NewReader(doc))
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, catalog.Entry{Name: "Klingon", Code: "tlh"}, entries[1])

		c, err := catalog.New(entries...)
		require.NoError(t, err)
		e, ok := c.Lookup("TLH")
		require.True(t, ok)
		assert.Equal(t, "Klingon", e.Name)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.ParseYAML(strings.NewReader("languages: ["))
		assert.ErrorIs(t, err, catalog.ErrInvalidYAML)
	})

	t.Run("no languages", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.ParseYAML(strings.NewReader("languages: []"))
		assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})

	t.Run("duplicate codes rejected by New", func(t *testing.T) {
		t.Parallel()
		doc := `
languages:
  - name: Arabic
    code: ar
  - name: Arabic
    code: ar
`
		entries, err := catalog.ParseYAML(strings.NewReader(doc))
		require.NoError(t, err)
		_, err = catalog.New(entries...)
		assert.ErrorIs(t, err, catalog.ErrDuplicateCode)
	})
}
