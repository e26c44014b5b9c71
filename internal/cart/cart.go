// Package cart manages the shopping cart for one interactive session.
package cart

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/Karan1317/nexchain/internal/catalog"
)

// Sentinel errors for cart operations.
var (
	// ErrStockExceeded is returned when an operation would raise a line's
	// quantity above the product's available stock.
	ErrStockExceeded = errors.New("stock exceeded")
	// ErrNotFound is returned when an operation references a product that
	// has no line in the cart.
	ErrNotFound = errors.New("cart line not found")
)

// ProductSource provides live product lookups for stock ceiling checks.
type ProductSource interface {
	Get(id int) (catalog.Product, error)
}

// Line is one product's entry in the cart. The display fields are copied
// from the product when the line is created and deliberately never re-synced:
// the cart shows the name and price as they were at add time. Only the stock
// ceiling reads live catalog state.
type Line struct {
	ProductID int
	Name      string
	Image     string
	Price     decimal.Decimal
	Quantity  int
}

// Manager holds the cart lines for a session. Not goroutine safe: the owning
// session serializes access.
type Manager struct {
	products ProductSource
	lines    []Line
}

// NewManager creates an empty cart backed by the given product source.
func NewManager(products ProductSource) *Manager {
	return &Manager{products: products}
}

// Add puts one unit of p in the cart. A product already present has its
// quantity incremented. The operation fails with ErrStockExceeded, leaving
// the cart unchanged, when the resulting quantity would exceed p.Stock.
func (m *Manager) Add(p catalog.Product) error {
	if l := m.find(p.ID); l != nil {
		if l.Quantity+1 > p.Stock {
			return ErrStockExceeded
		}
		l.Quantity++
		return nil
	}

	if p.Stock < 1 {
		return ErrStockExceeded
	}
	m.lines = append(m.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  1,
	})
	return nil
}

// UpdateQuantity applies delta to the line matching id. The resulting
// quantity is checked against the product's current stock, looked up live:
// exceeding it fails with ErrStockExceeded and leaves the line unchanged.
// A result below 1 is silently ignored; the quantity floor is one unit, and
// removal is only ever explicit via Remove.
func (m *Manager) UpdateQuantity(id, delta int) error {
	l := m.find(id)
	if l == nil {
		return ErrNotFound
	}

	p, err := m.products.Get(id)
	if err != nil {
		return errors.Wrap(err, "lookup product")
	}

	next := l.Quantity + delta
	if next > p.Stock {
		return ErrStockExceeded
	}
	if next < 1 {
		return nil
	}
	l.Quantity = next
	return nil
}

// Remove deletes the line matching id, or returns ErrNotFound.
func (m *Manager) Remove(id int) error {
	for i, l := range m.lines {
		if l.ProductID == id {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Lines returns a copy of the cart lines in insertion order.
func (m *Manager) Lines() []Line {
	out := make([]Line, len(m.lines))
	copy(out, m.lines)
	return out
}

// Len reports the number of lines in the cart.
func (m *Manager) Len() int {
	return len(m.lines)
}

// Total sums snapshot price times quantity over all lines. It is recomputed
// on every call; the cart is small enough that caching would buy nothing.
func (m *Manager) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range m.lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func (m *Manager) find(id int) *Line {
	for i := range m.lines {
		if m.lines[i].ProductID == id {
			return &m.lines[i]
		}
	}
	return nil
}
