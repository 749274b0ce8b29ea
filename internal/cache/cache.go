// Package cache implements the memoization cache keyed by (identifier,
// restricted context) that makes the evaluator terminate on recursive
// stream-style programs (spec.md §1, §4.2). Grounded on
// original_source/src/cache.rs's Cache<Key, Either<Value, Domain>>.
package cache

import (
	"github.com/translucid-lang/tlcore/internal/domain"
	"github.com/translucid-lang/tlcore/internal/either"
	"github.com/translucid-lang/tlcore/internal/value"
)

// Result is the two-armed outcome a cached evaluation can have: a value,
// or a missing-dimension domain that must be closed before retrying.
type Result = either.Either[value.Value, domain.Domain]

// Cache maps (identifier, context) to a Result. It grows monotonically
// for the duration of an evaluate call; nothing in this module evicts
// entries (spec.md §5 Resource policy).
type Cache struct {
	entries map[string]Result
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: map[string]Result{}}
}

func key(x string, k value.Context) string {
	return x + "|" + k.Key()
}

// Find returns the cached result for (x, k), or false if absent.
func (c *Cache) Find(x string, k value.Context) (Result, bool) {
	r, ok := c.entries[key(x, k)]
	return r, ok
}

// Insert stores (x, k) -> v, overwriting any previous entry (idempotent
// overwrite per spec.md §4.2), and returns v for convenient chaining at
// the call site.
func (c *Cache) Insert(x string, k value.Context, v Result) Result {
	if c.entries == nil {
		c.entries = map[string]Result{}
	}
	c.entries[key(x, k)] = v
	return v
}

// Len reports the number of cached entries.
func (c *Cache) Len() int { return len(c.entries) }
