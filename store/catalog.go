package store

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/creasty/defaults"
)

// FallbackImage is used when a product draft does not supply an image URI.
const FallbackImage = "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400"

// ProductDraft is the admin input for a new product. Optional fields receive
// their defaults from the struct tags when left empty.
type ProductDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" default:"Misc"`
	Image       string  `json:"image"`
}

// Catalog holds the sellable products in insertion order.
type Catalog struct {
	mu       sync.Mutex
	products []Product
	nextID   int64
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{nextID: 1}
}

// Add validates the draft, applies defaults and appends a new product. Ids
// come from a counter that only moves forward, so deleting a product can
// never lead to a duplicate id later.
func (c *Catalog) Add(draft ProductDraft) (Product, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return Product{}, &ValidationError{Field: "name", Reason: "required"}
	}
	if draft.Price < 0 || math.IsNaN(draft.Price) || math.IsInf(draft.Price, 0) {
		return Product{}, &ValidationError{Field: "price", Reason: "must be a non-negative number"}
	}
	if err := defaults.Set(&draft); err != nil {
		return Product{}, fmt.Errorf("apply draft defaults: %w", err)
	}
	if draft.Image == "" {
		draft.Image = FallbackImage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	p := Product{
		ID:          c.nextID,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Category:    draft.Category,
		Image:       draft.Image,
	}
	c.nextID++
	c.products = append(c.products, p)
	return p, nil
}

// Remove deletes the product with the given id. It reports false when the id
// is unknown and is otherwise idempotent.
func (c *Catalog) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int64) (Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// List returns a copy of the catalog in insertion order.
func (c *Catalog) List() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]Product, len(c.products))
	copy(cp, c.products)
	return cp
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.products)
}

// Replace swaps the whole catalog, used by snapshot import. The id counter
// advances past the highest imported id so later adds stay unique.
func (c *Catalog) Replace(products []Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = make([]Product, len(products))
	copy(c.products, products)
	for _, p := range products {
		if p.ID >= c.nextID {
			c.nextID = p.ID + 1
		}
	}
}
