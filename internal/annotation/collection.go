package annotation

import (
	"slices"
	"sync"
)

// Collection is a versioned set of annotations. Every mutation publishes a
// new slice, so a List result is never modified after it is returned.
type Collection struct {
	mu      sync.RWMutex
	items   []Annotation
	version uint64
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{items: []Annotation{}}
}

// List returns the current annotations in creation order and the version
// they belong to. The slice must be treated as read-only.
func (c *Collection) List() ([]Annotation, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items, c.version
}

// Version increases by one on every effective mutation.
func (c *Collection) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Len returns the number of annotations.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get looks up an annotation by id.
func (c *Collection) Get(id string) (Annotation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.index(id)
	if i < 0 {
		return Annotation{}, false
	}
	return c.items[i], true
}

// Add appends a.
func (c *Collection) Add(a Annotation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]Annotation, len(c.items), len(c.items)+1)
	copy(next, c.items)
	c.publish(append(next, a))
}

// Remove deletes the annotation with the given id. Removing an unknown id is
// a no-op and reports false.
func (c *Collection) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return false
	}
	next := make([]Annotation, 0, len(c.items)-1)
	next = append(next, c.items[:i]...)
	c.publish(append(next, c.items[i+1:]...))
	return true
}

// EditText replaces a comment's text. Highlights and unknown ids are left
// untouched and report false.
func (c *Collection) EditText(id, text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 || c.items[i].Kind != KindComment {
		return false
	}
	next := slices.Clone(c.items)
	next[i].Text = text
	c.publish(next)
	return true
}

// Clear drops every annotation.
func (c *Collection) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return
	}
	c.publish([]Annotation{})
}

func (c *Collection) publish(items []Annotation) {
	c.items = items
	c.version++
}

func (c *Collection) index(id string) int {
	return slices.IndexFunc(c.items, func(a Annotation) bool { return a.ID == id })
}
