package store

import (
	"iter"

	"campusconnect_backend/pkg/apperrors"
)

// Entity is anything the store can hold.
type Entity interface {
	EntityID() string
}

// Collection is an id-keyed set of entities that preserves insertion order,
// so iteration without an explicit sort is deterministic.
type Collection[E Entity] struct {
	order []string
	items map[string]E
}

func NewCollection[E Entity]() *Collection[E] {
	return &Collection[E]{items: make(map[string]E)}
}

// Insert appends e. The id must be fresh; a duplicate is a programming or
// seed error, surfaced rather than overwritten.
func (c *Collection[E]) Insert(e E) error {
	id := e.EntityID()
	if _, exists := c.items[id]; exists {
		return apperrors.DuplicateID(id)
	}
	c.items[id] = e
	c.order = append(c.order, id)
	return nil
}

// Get returns the entity and whether it exists. Absence is not an error;
// callers decide what a missing id means.
func (c *Collection[E]) Get(id string) (E, bool) {
	e, ok := c.items[id]
	return e, ok
}

// Remove deletes by id. Removing an absent id is a no-op.
func (c *Collection[E]) Remove(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Collection[E]) Len() int {
	return len(c.items)
}

// All iterates entities in insertion order. The sequence is restartable.
func (c *Collection[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, id := range c.order {
			if !yield(c.items[id]) {
				return
			}
		}
	}
}

// Query iterates entities matching pred, in insertion order.
func (c *Collection[E]) Query(pred func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, id := range c.order {
			if e := c.items[id]; pred(e) {
				if !yield(e) {
					return
				}
			}
		}
	}
}
