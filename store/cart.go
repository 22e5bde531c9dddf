package store

import "sync"

// Cart accumulates line items for the active session. At most one line item
// exists per product id; adding a product that is already present merges into
// the existing line instead of creating a second one.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add merges into an existing line item or inserts a new one with quantity 1.
// The product fields are copied by value, so later catalog changes leave the
// cart untouched.
func (c *Cart) Add(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{Product: p, Quantity: 1})
}

// Remove deletes the line item with the given id. No-op when absent.
func (c *Cart) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(id)
}

func (c *Cart) removeLocked(id int64) bool {
	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity replaces a line item's quantity with an absolute value. Zero or
// negative quantities remove the item, same as Remove.
func (c *Cart) SetQuantity(id int64, qty int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		return c.removeLocked(id)
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = qty
			return true
		}
	}
	return false
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]LineItem, len(c.items))
	copy(cp, c.items)
	return cp
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total returns the sum of price times quantity over all line items, 0 for an
// empty cart.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}

// Clear empties the cart. Used after a successful checkout commit.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
