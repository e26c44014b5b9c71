package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karan1317/nexchain/internal/catalog"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Microprocessor X86", Price: decimal.RequireFromString("299.99"), Stock: 150, Category: catalog.CategoryProcessors},
		{ID: 2, Name: `LCD Display 24"`, Price: decimal.RequireFromString("199.99"), Stock: 75, Category: catalog.CategoryDisplays},
		{ID: 3, Name: "Circuit Board v2", Price: decimal.RequireFromString("49.99"), Stock: 300, Category: catalog.CategoryComponents},
	}
}

func ids(products []catalog.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApply_PassThrough(t *testing.T) {
	f := New()
	in := testProducts()

	out := f.Apply(in)

	// Empty search + "All" + no sort key returns the full catalog in
	// original relative order.
	assert.Equal(t, []int{1, 2, 3}, ids(out))
}

func TestApply_SearchCaseInsensitive(t *testing.T) {
	f := New()
	f.SetSearch("circuit")

	out := f.Apply(testProducts())

	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)
}

func TestApply_CategoryFilter(t *testing.T) {
	f := New()
	f.SetCategory(catalog.CategoryDisplays)

	out := f.Apply(testProducts())

	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].ID)
}

func TestApply_SearchAndCategoryCombine(t *testing.T) {
	f := New()
	f.SetSearch("x86")
	f.SetCategory(catalog.CategoryDisplays)

	assert.Empty(t, f.Apply(testProducts()))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	f := New()
	f.ToggleSort(SortByPrice)
	in := testProducts()

	f.Apply(in)

	assert.Equal(t, []int{1, 2, 3}, ids(in))
}

func TestToggleSort_FlipsDirection(t *testing.T) {
	f := New()
	in := testProducts()

	f.ToggleSort(SortByPrice)
	asc := f.Apply(in)
	assert.Equal(t, []int{3, 2, 1}, ids(asc))

	f.ToggleSort(SortByPrice)
	desc := f.Apply(in)
	assert.Equal(t, []int{1, 2, 3}, ids(desc))
	assert.ElementsMatch(t, ids(asc), ids(desc), "toggling only permutes")

	f.ToggleSort(SortByPrice)
	assert.Equal(t, []int{3, 2, 1}, ids(f.Apply(in)), "third toggle is ascending again")
}

func TestToggleSort_NewKeyRestartsAscending(t *testing.T) {
	f := New()
	f.ToggleSort(SortByPrice)
	f.ToggleSort(SortByPrice) // price descending

	f.ToggleSort(SortByStock)

	key, dir, ok := f.Sort()
	require.True(t, ok)
	assert.Equal(t, SortByStock, key)
	assert.Equal(t, Ascending, dir)
	assert.Equal(t, []int{2, 1, 3}, ids(f.Apply(testProducts())))
}

func TestApply_StableForEqualKeys(t *testing.T) {
	f := New()
	f.ToggleSort(SortByStock)
	in := []catalog.Product{
		{ID: 1, Name: "A", Stock: 5},
		{ID: 2, Name: "B", Stock: 5},
		{ID: 3, Name: "C", Stock: 5},
	}

	assert.Equal(t, []int{1, 2, 3}, ids(f.Apply(in)))
}

func TestApply_SortByName(t *testing.T) {
	f := New()
	f.ToggleSort(SortByName)

	out := f.Apply(testProducts())

	assert.Equal(t, []int{3, 2, 1}, ids(out))
}

func TestSetCategory_EmptyMeansAll(t *testing.T) {
	f := New()
	f.SetCategory(catalog.CategoryDisplays)
	f.SetCategory("")

	assert.Equal(t, CategoryAll, f.Category())
	assert.Len(t, f.Apply(testProducts()), 3)
}

func TestParseSortKey(t *testing.T) {
	k, ok := ParseSortKey("price")
	require.True(t, ok)
	assert.Equal(t, SortByPrice, k)

	_, ok = ParseSortKey("description")
	assert.False(t, ok)
}
