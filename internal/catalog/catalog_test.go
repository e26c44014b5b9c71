package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(id int, name string, price string, stock int) Product {
	return Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		Category: CategoryComponents,
	}
}

func TestAdd_EmptyCatalog(t *testing.T) {
	c := New()

	p := c.Add(Input{Name: "Widget", Price: decimal.NewFromInt(10), Stock: 5})

	assert.Equal(t, 1, p.ID)
	assert.Equal(t, 1, c.Len())
}

func TestAdd_GapNotReused(t *testing.T) {
	c := New(
		newTestProduct(1, "Widget", "10.00", 5),
		newTestProduct(3, "Gadget", "20.00", 2),
	)

	p := c.Add(Input{Name: "Gizmo"})

	assert.Equal(t, 4, p.ID)
}

func TestAdd_UnorderedIDs(t *testing.T) {
	c := New(
		newTestProduct(7, "Widget", "10.00", 5),
		newTestProduct(2, "Gadget", "20.00", 2),
	)

	p := c.Add(Input{Name: "Gizmo"})

	assert.Equal(t, 8, p.ID)
}

func TestUpdate_PatchesInPlace(t *testing.T) {
	c := New(newTestProduct(1, "Widget", "10.00", 5))

	name := "Widget Pro"
	stock := 12
	updated, err := c.Update(1, Patch{Name: &name, Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, "Widget Pro", updated.Name)
	assert.Equal(t, 12, updated.Stock)
	assert.True(t, decimal.RequireFromString("10.00").Equal(updated.Price), "unpatched fields keep their value")

	got, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdate_NotFound(t *testing.T) {
	c := New(newTestProduct(1, "Widget", "10.00", 5))

	_, err := c.Update(99, Patch{})

	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, c.Len())
}

func TestGet_NotFound(t *testing.T) {
	c := New()

	_, err := c.Get(1)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestList_ReturnsCopy(t *testing.T) {
	c := New(
		newTestProduct(1, "Widget", "10.00", 5),
		newTestProduct(2, "Gadget", "20.00", 2),
	)

	list := c.List()
	list[0].Name = "mutated"

	got, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
}

func TestSeed(t *testing.T) {
	products, err := Seed()
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Microprocessor X86", products[0].Name)
	assert.Equal(t, CategoryProcessors, products[0].Category)
	assert.True(t, decimal.RequireFromString("299.99").Equal(products[0].Price))
	assert.Equal(t, 150, products[0].Stock)

	assert.Equal(t, `LCD Display 24"`, products[1].Name)
	assert.Equal(t, "Circuit Board v2", products[2].Name)
}
