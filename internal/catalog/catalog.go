// Package catalog holds the static table of every cipher suite the
// resolver can reason about. The table is built once at package init and
// never mutated, so it is safe for unsynchronized concurrent reads.
package catalog

import (
	"fmt"
	"strings"

	"github.com/cipherlist/cipherlist/internal/model"
)

// Catalog is an immutable, ordered collection of cipher records.
// Declaration order is significant: it is the base ordering that keyword
// expansion and ADD directives iterate in.
type Catalog struct {
	ordered []*model.CipherRecord
	byAlias map[string]*model.CipherRecord
	byRef   map[*model.CipherRecord]int
}

// New builds a catalog from records, validating alias uniqueness and
// standard-name syntax. Data defects are build-time errors.
func New(records []*model.CipherRecord) (*Catalog, error) {
	c := &Catalog{
		ordered: records,
		byAlias: make(map[string]*model.CipherRecord, len(records)),
		byRef:   make(map[*model.CipherRecord]int, len(records)),
	}
	for i, r := range records {
		if r.Alias == "" {
			return nil, fmt.Errorf("catalog: record %q has empty alias", r.Name())
		}
		if _, dup := c.byAlias[r.Alias]; dup {
			return nil, fmt.Errorf("catalog: duplicate alias %q", r.Alias)
		}
		for _, name := range r.StandardNames {
			if !validStandardName(name) {
				return nil, fmt.Errorf("catalog: %s: malformed standard name %q", r.Alias, name)
			}
		}
		c.byAlias[r.Alias] = r
		c.byRef[r] = i
	}
	return c, nil
}

// validStandardName checks the registry-name shape: a TLS_ or SSL_ prefixed
// underscore-separated identifier.
func validStandardName(name string) bool {
	if !strings.HasPrefix(name, "TLS_") && !strings.HasPrefix(name, "SSL_") {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return len(name) > len("TLS_")
}

// Lookup returns the record for an OpenSSL alias.
func (c *Catalog) Lookup(alias string) (*model.CipherRecord, bool) {
	r, ok := c.byAlias[alias]
	return r, ok
}

// All returns every record in declaration order. The returned slice must
// not be modified.
func (c *Catalog) All() []*model.CipherRecord {
	return c.ordered
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Index returns the declaration position of a record, or -1 if the record
// is not part of this catalog.
func (c *Catalog) Index(r *model.CipherRecord) int {
	if i, ok := c.byRef[r]; ok {
		return i
	}
	return -1
}

var defaultCatalog *Catalog

func init() {
	c, err := New(records)
	if err != nil {
		// The embedded table is part of the build; a defect here can only
		// be fixed by changing the source.
		panic(err)
	}
	defaultCatalog = c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}
