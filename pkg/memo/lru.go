package memo

import (
	"container/list"
	"sync"
)

// DefaultCapacity bounds the translation memory when the caller does not
// choose a size. Chat messages are short; a few hundred entries cover the
// repetitive share of a busy channel at negligible memory cost.
const DefaultCapacity = 256

// Key identifies one cached translation.
type Key struct {
	Source string
	Target string
	Text   string
}

type entry struct {
	key  Key
	text string
}

// Cache is a fixed-capacity LRU of translation results. The zero value is
// not usable; construct with New.
type Cache struct {
	mu       sync.Mutex
	capacity int
	items    map[Key]*list.Element
	order    *list.List // front is most recently used
}

// New creates a cache holding at most capacity entries. A non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		items:    make(map[Key]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached translation for key and marks it recently used.
func (c *Cache) Get(key Key) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry).text, true
}

// Put stores a translation, evicting the least recently used entry when the
// cache is full. Storing an existing key refreshes its value and recency.
func (c *Cache) Put(key Key, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*entry).text = text
		return
	}

	elem := c.order.PushFront(&entry{key: key, text: text})
	c.items[key] = elem

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*entry).key)
		}
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
