// Package imagecache provides a bounded in-memory cache for image bytes
// keyed by URL, a loader that fetches through it, and generation tokens
// for discarding stale async completions when a display slot is reused.
package imagecache

import (
	"container/list"
	"sync"
)

const (
	defaultCountLimit = 100
	defaultByteLimit  = 100 * 1024 * 1024
)

// Cache is an LRU cache of image bytes keyed by URL string. It is bounded
// both by entry count and by total byte size; inserting past either limit
// evicts the least recently used entries. Safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	countLimit int
	byteLimit  int
	bytes      int
	order      *list.List // front = most recently used
	entries    map[string]*list.Element
}

type entry struct {
	key  string
	data []byte
}

// NewCache returns a Cache bounded by countLimit entries and byteLimit
// total bytes. Non-positive limits fall back to the defaults
// (100 entries, 100 MB).
func NewCache(countLimit, byteLimit int) *Cache {
	if countLimit <= 0 {
		countLimit = defaultCountLimit
	}
	if byteLimit <= 0 {
		byteLimit = defaultByteLimit
	}
	return &Cache{
		countLimit: countLimit,
		byteLimit:  byteLimit,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
	}
}

// Get returns the cached bytes for url and marks the entry recently used.
func (c *Cache) Get(url string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[url]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).data, true
}

// Set stores data under url, evicting LRU entries as needed. Items larger
// than the byte limit are not cached at all.
func (c *Cache) Set(url string, data []byte) {
	if len(data) > c.byteLimit {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[url]; ok {
		c.bytes += len(data) - len(el.Value.(*entry).data)
		el.Value.(*entry).data = data
		c.order.MoveToFront(el)
	} else {
		el := c.order.PushFront(&entry{key: url, data: data})
		c.entries[url] = el
		c.bytes += len(data)
	}

	for c.order.Len() > c.countLimit || c.bytes > c.byteLimit {
		c.evictOldest()
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Bytes returns the total size of cached data.
func (c *Cache) Bytes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// evictOldest drops the least recently used entry. Callers must hold c.mu.
func (c *Cache) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	e := el.Value.(*entry)
	c.order.Remove(el)
	delete(c.entries, e.key)
	c.bytes -= len(e.data)
}
