package collection

import "sync"

// Keyed is a record addressable by its server-assigned id.
type Keyed interface {
	Key() string
}

// Collection is the session-local, insertion-ordered copy of the Record Store
// contents. It never performs I/O; callers feed it server responses.
type Collection[T Keyed] struct {
	mu    sync.RWMutex
	items []T
}

func New[T Keyed]() *Collection[T] {
	return &Collection[T]{}
}

// Load replaces the entire content with records.
func (c *Collection[T]) Load(records []T) {
	items := make([]T, len(records))
	copy(items, records)

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// Insert appends r. A record whose id is already present is refused and
// Insert returns false.
func (c *Collection[T]) Insert(r T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(r.Key()) >= 0 {
		return false
	}
	c.items = append(c.items, r)
	return true
}

// Replace swaps the record with the given id in place. Missing ids are a no-op.
func (c *Collection[T]) Replace(id string, r T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items[i] = r
	return true
}

// Remove deletes the record with the given id. Missing ids are a no-op.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return true
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Snapshot returns a copy of the records in insertion order.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear drops every record.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

func (c *Collection[T]) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].Key() == id {
			return i
		}
	}
	return -1
}
