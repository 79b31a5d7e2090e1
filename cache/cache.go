/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cache

import (
	"container/list"
	"sync"
)

// DefaultCapacity is the number of entries a cache holds when no
// explicit capacity is given.
const DefaultCapacity = 1000

type entry struct {
	key   string
	value string
}

// Cache is a thread-safe string-keyed cache bounded to a fixed capacity.
// When a new key is inserted at capacity, the oldest-inserted resident
// entry is evicted first (FIFO). Updating an existing key replaces its
// value but does not change its eviction position.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = oldest insertion
}

// New creates a cache bounded to the given capacity. A non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached value for key and whether it was resident.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	return el.Value.(*entry).value, true
}

// Put inserts or updates the value for key. Inserting a new key at
// capacity evicts exactly one entry, the earliest-inserted one, before
// the new entry becomes visible.
func (c *Cache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry).value = value
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
	}

	c.items[key] = c.order.PushBack(&entry{key: key, value: value})
}

// Invalidate removes key if present; it is a no-op otherwise.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return
	}
	c.order.Remove(el)
	delete(c.items, key)
}

// Len returns the number of resident entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Capacity returns the fixed capacity the cache was created with.
func (c *Cache) Capacity() int {
	return c.capacity
}
