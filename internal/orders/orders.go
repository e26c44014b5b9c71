// Package orders serves the order management listing. The data set is a
// fixed seed; there is no order placement or fulfillment flow behind it.
package orders

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Karan1317/nexchain/internal/view"
)

// Status of an order in the fulfillment pipeline.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusInTransit  Status = "In Transit"
	StatusDelivered  Status = "Delivered"
)

// ParseStatus reports whether s names a known status.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusProcessing, StatusInTransit, StatusDelivered:
		return st, true
	default:
		return "", false
	}
}

// Order is one row of the order listing.
type Order struct {
	ID       string
	Customer string
	Status   Status
	Date     time.Time
	Total    decimal.Decimal
}

// SortKey names a sortable order field.
type SortKey string

const (
	SortByID       SortKey = "id"
	SortByCustomer SortKey = "customer"
	SortByStatus   SortKey = "status"
	SortByDate     SortKey = "date"
	SortByTotal    SortKey = "total"
)

// ParseSortKey reports whether s names a sortable field.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case SortByID, SortByCustomer, SortByStatus, SortByDate, SortByTotal:
		return k, true
	default:
		return "", false
	}
}

// Query filters and orders the listing. The zero value of Status means all
// statuses; an empty SortKey falls back to id ascending, the listing's
// default order.
type Query struct {
	Search    string
	Status    Status
	SortKey   SortKey
	Direction view.Direction
}

// Service holds the seeded orders.
type Service struct {
	orders []Order
}

// NewService creates a Service over the given orders.
func NewService(orders []Order) *Service {
	s := &Service{orders: make([]Order, len(orders))}
	copy(s.orders, orders)
	return s
}

// Seed returns the reference order book.
func Seed() []Order {
	return []Order{
		{
			ID:       "ORD-2024-002",
			Customer: "Electronics Plus",
			Status:   StatusProcessing,
			Date:     time.Date(2024, time.November, 21, 0, 0, 0, 0, time.UTC),
			Total:    decimal.RequireFromString("5999.70"),
		},
		{
			ID:       "ORD-2024-001",
			Customer: "TechCorp Industries",
			Status:   StatusInTransit,
			Date:     time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC),
			Total:    decimal.RequireFromString("19999.50"),
		},
		{
			ID:       "ORD-2024-003",
			Customer: "SmartHome Solutions",
			Status:   StatusDelivered,
			Date:     time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC),
			Total:    decimal.RequireFromString("12499.50"),
		},
	}
}

// List returns the orders matching q, sorted by its sort key. The search
// term matches case-insensitively against the order id and the customer
// name. The sort is stable and never mutates the seed.
func (s *Service) List(q Query) []Order {
	term := strings.ToLower(q.Search)

	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		if q.Status != "" && o.Status != q.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(o.ID), term) &&
			!strings.Contains(strings.ToLower(o.Customer), term) {
			continue
		}
		out = append(out, o)
	}

	key := q.SortKey
	if key == "" {
		key = SortByID
	}
	slices.SortStableFunc(out, func(a, b Order) int {
		c := compareBy(key, a, b)
		if q.Direction == view.Descending {
			return -c
		}
		return c
	})
	return out
}

func compareBy(key SortKey, a, b Order) int {
	switch key {
	case SortByCustomer:
		return strings.Compare(a.Customer, b.Customer)
	case SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	case SortByDate:
		return a.Date.Compare(b.Date)
	case SortByTotal:
		return a.Total.Cmp(b.Total)
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}
