package model

import (
	"sync/atomic"

	"github.com/kailas-cloud/jobmatch/internal/tfidf"
)

// Cache holds the model serving requests. Vocabulary, idf and vectors live in
// one immutable *tfidf.Model, so a swap never exposes a mixed pair.
type Cache struct {
	cur atomic.Pointer[tfidf.Model]
}

// Get returns the cached model or nil.
func (c *Cache) Get() *tfidf.Model { return c.cur.Load() }

// Store replaces the cached model.
func (c *Cache) Store(m *tfidf.Model) { c.cur.Store(m) }

// Clear drops the cached model.
func (c *Cache) Clear() { c.cur.Store(nil) }
