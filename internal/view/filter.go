// Package view derives display projections of the catalog. A projection is
// read-only: applying a filter never mutates or reorders the underlying
// product list.
package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Karan1317/nexchain/internal/catalog"
)

// SortKey names a sortable product field.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByPrice    SortKey = "price"
	SortByStock    SortKey = "stock"
	SortByCategory SortKey = "category"
)

// ParseSortKey reports whether s names a sortable field.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case SortByName, SortByPrice, SortByStock, SortByCategory:
		return k, true
	default:
		return "", false
	}
}

// Direction of a sort.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll catalog.Category = "All"

// Filter holds the projection state for one session: search term, category
// filter, and the sort toggle.
type Filter struct {
	search   string
	category catalog.Category
	sortKey  SortKey
	dir      Direction
	sorted   bool
}

// New creates a filter that passes everything through: empty search, all
// categories, no sort.
func New() *Filter {
	return &Filter{category: CategoryAll, dir: Ascending}
}

// SetSearch sets the case-insensitive name substring filter.
func (f *Filter) SetSearch(term string) {
	f.search = term
}

// Search returns the current search term.
func (f *Filter) Search() string {
	return f.search
}

// SetCategory sets the category filter. The empty string means CategoryAll.
func (f *Filter) SetCategory(c catalog.Category) {
	if c == "" {
		c = CategoryAll
	}
	f.category = c
}

// Category returns the current category filter.
func (f *Filter) Category() catalog.Category {
	return f.category
}

// ToggleSort advances the sort state machine for key:
// unsorted → {key, ascending} → {key, descending} → {key, ascending} → …
// Toggling a different key restarts at ascending.
func (f *Filter) ToggleSort(key SortKey) {
	if f.sorted && f.sortKey == key && f.dir == Ascending {
		f.dir = Descending
		return
	}
	f.sortKey = key
	f.dir = Ascending
	f.sorted = true
}

// Sort returns the active sort key and direction; ok is false when no sort
// key has been toggled yet.
func (f *Filter) Sort() (key SortKey, dir Direction, ok bool) {
	return f.sortKey, f.dir, f.sorted
}

// Apply returns the filtered and sorted projection of products. A product is
// kept iff its name contains the search term case-insensitively and its
// category matches the filter. The sort is stable, so equal keys keep their
// catalog order; with no sort key the catalog order is preserved as is.
func (f *Filter) Apply(products []catalog.Product) []catalog.Product {
	term := strings.ToLower(f.search)

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if f.category != CategoryAll && p.Category != f.category {
			continue
		}
		out = append(out, p)
	}

	if !f.sorted {
		return out
	}
	slices.SortStableFunc(out, func(a, b catalog.Product) int {
		c := compareBy(f.sortKey, a, b)
		if f.dir == Descending {
			return -c
		}
		return c
	})
	return out
}

// compareBy orders two products by key: numeric fields use natural numeric
// ordering, text fields lexicographic.
func compareBy(key SortKey, a, b catalog.Product) int {
	switch key {
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByPrice:
		return a.Price.Cmp(b.Price)
	case SortByStock:
		return cmp.Compare(a.Stock, b.Stock)
	case SortByCategory:
		return strings.Compare(string(a.Category), string(b.Category))
	default:
		return 0
	}
}
