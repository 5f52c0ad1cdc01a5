package query

import (
	"container/list"
	"sync"

	"github.com/auto-stack/autolang/fragment"
)

// entry is one cached query result plus the fingerprint it was
// computed under.
type entry struct {
	key   Key
	value interface{}
	fp    fingerprint
}

// lru is a bounded least-recently-used cache keyed by Key, grounded on
// the map-plus-container/list shape used elsewhere in the corpus for
// capacity-bounded caches with hit/miss/eviction counters.
type lru struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	items    map[Key]*list.Element

	hits, misses, evictions uint64
}

func newLRU(capacity int) *lru {
	if capacity <= 0 {
		capacity = 4096
	}
	return &lru{
		capacity: capacity,
		ll:       list.New(),
		items:    map[Key]*list.Element{},
	}
}

func (c *lru) get(key Key) (*entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.ll.MoveToFront(el)
	c.hits++
	return el.Value.(*entry), true
}

func (c *lru) put(e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[e.key]; ok {
		el.Value = e
		c.ll.MoveToFront(el)
		return
	}
	el := c.ll.PushFront(e)
	c.items[e.key] = el
	for c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest == nil {
			break
		}
		c.ll.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
		c.evictions++
	}
}

// removeAllForFragment evicts every cached entry keyed to id,
// regardless of kind — used when a fragment is removed outright.
func (c *lru) removeAllForFragment(id fragment.FragId) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, el := range c.items {
		if key.Frag == id {
			c.ll.Remove(el)
			delete(c.items, key)
		}
	}
}

func (c *lru) stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Entries:   c.ll.Len(),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
