// SPDX-License-Identifier: MIT

package observe

import (
	"sync/atomic"

	"github.com/katalvlaran/pathsearch/store"
)

// CountingStore wraps a store and counts Lookup calls, the number of
// vertices a search expanded or probed.
type CountingStore[ID comparable, D any] struct {
	inner   store.VertexStore[ID, D]
	lookups atomic.Int64
}

// Count wraps s.
func Count[ID comparable, D any](s store.VertexStore[ID, D]) *CountingStore[ID, D] {
	return &CountingStore[ID, D]{inner: s}
}

// Lookup implements store.VertexStore.
func (c *CountingStore[ID, D]) Lookup(id ID) (store.View[ID, D], error) {
	c.lookups.Add(1)

	return c.inner.Lookup(id)
}

// Lookups returns the calls seen so far.
func (c *CountingStore[ID, D]) Lookups() int64 { return c.lookups.Load() }
