// Package catalog holds the authoritative in-memory collection of products.
package catalog

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Category classifies a product. The set is open: a new category exists as
// soon as a product carries it.
type Category string

// Categories seeded with the initial inventory.
const (
	CategoryProcessors Category = "Processors"
	CategoryDisplays   Category = "Displays"
	CategoryComponents Category = "Components"
)

// Product represents a single inventory item.
type Product struct {
	ID          int
	Name        string
	Image       string
	Price       decimal.Decimal
	Stock       int
	Category    Category
	Description string
}

// Input holds the fields for creating a product; the catalog assigns the ID.
// Values are stored as given. Form-level validation (non-empty name,
// non-negative numbers) belongs to the view layer.
type Input struct {
	Name        string
	Image       string
	Price       decimal.Decimal
	Stock       int
	Category    Category
	Description string
}

// Patch holds optional replacement values for an edit. Nil fields keep the
// current value. The ID is immutable.
type Patch struct {
	Name        *string
	Image       *string
	Price       *decimal.Decimal
	Stock       *int
	Category    *Category
	Description *string
}

// Catalog is the single owner of product records. Products are created and
// edited, never deleted. Not goroutine safe: the owning session serializes
// access.
type Catalog struct {
	products []Product
}

// New creates a catalog holding the given seed products in order.
func New(seed ...Product) *Catalog {
	c := &Catalog{products: make([]Product, len(seed))}
	copy(c.products, seed)
	return c
}

// Add creates a product from in and appends it to the catalog. The new ID is
// one above the highest existing ID, or 1 for an empty catalog. Gaps are not
// reused.
func (c *Catalog) Add(in Input) Product {
	id := 1
	for _, p := range c.products {
		if p.ID >= id {
			id = p.ID + 1
		}
	}

	p := Product{
		ID:          id,
		Name:        in.Name,
		Image:       in.Image,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Description: in.Description,
	}
	c.products = append(c.products, p)
	return p
}

// Update applies patch to the product with the given ID in place and returns
// the updated record. It returns ErrNotFound for an unknown ID.
func (c *Catalog) Update(id int, patch Patch) (Product, error) {
	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}

		p := &c.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		return *p, nil
	}
	return Product{}, ErrNotFound
}

// Get returns the product with the given ID, or ErrNotFound.
func (c *Catalog) Get(id int) (Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// List returns a copy of the catalog in insertion order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
