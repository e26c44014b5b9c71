// Package dashboard serves the operational overview: metric series, top
// sellers, and the activity feed. Everything except the low-stock count is a
// fixed seed; the low-stock count is derived live from the catalog.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/Karan1317/nexchain/internal/catalog"
)

// TimeRange selects the reporting window. The seeded series do not vary by
// range; the selection is echoed back for the client to render.
type TimeRange string

const (
	Range7Days  TimeRange = "7d"
	Range30Days TimeRange = "30d"
	Range90Days TimeRange = "90d"
)

// ParseTimeRange reports whether s names a known range.
func ParseTimeRange(s string) (TimeRange, bool) {
	switch r := TimeRange(s); r {
	case Range7Days, Range30Days, Range90Days:
		return r, true
	default:
		return "", false
	}
}

// ReorderPoint is the stock level below which a product counts as a
// low-stock alert.
const ReorderPoint = 50

// Point is one sample of a daily metric series.
type Point struct {
	Label string
	Total int
}

// TopProduct is one row of the top-sellers table.
type TopProduct struct {
	Name  string
	Units int
}

// ActivityKind tags an activity feed entry for icon selection client-side.
type ActivityKind string

const (
	ActivitySupplier ActivityKind = "supplier"
	ActivityRestock  ActivityKind = "restock"
	ActivityLowStock ActivityKind = "low_stock"
	ActivityShipment ActivityKind = "shipment"
	ActivityPayment  ActivityKind = "payment"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Kind ActivityKind
	Text string
}

// Summary holds the headline stats.
type Summary struct {
	TotalInventory int
	PendingOrders  int
	InTransit      int
	LowStockAlerts int
	Revenue        decimal.Decimal
}

// Stats is the full dashboard payload.
type Stats struct {
	Range      TimeRange
	Summary    Summary
	Inventory  []Point
	Orders     []Point
	TopSelling []TopProduct
	Activities []Activity
}

// ProductSource exposes the catalog products used for live stock alerts.
type ProductSource interface {
	List() []catalog.Product
}

// Service assembles dashboard stats.
type Service struct {
	products ProductSource
}

// NewService creates a Service reading stock levels from products.
func NewService(products ProductSource) *Service {
	return &Service{products: products}
}

var inventorySeries = []Point{
	{Label: "Mon", Total: 820},
	{Label: "Tue", Total: 932},
	{Label: "Wed", Total: 901},
	{Label: "Thu", Total: 934},
	{Label: "Fri", Total: 1290},
	{Label: "Sat", Total: 1330},
	{Label: "Sun", Total: 1320},
}

var orderSeries = []Point{
	{Label: "Mon", Total: 15},
	{Label: "Tue", Total: 22},
	{Label: "Wed", Total: 18},
	{Label: "Thu", Total: 25},
	{Label: "Fri", Total: 30},
	{Label: "Sat", Total: 12},
	{Label: "Sun", Total: 10},
}

var topSelling = []TopProduct{
	{Name: "Microprocessor X86", Units: 1250},
	{Name: `LCD Display 24"`, Units: 980},
	{Name: "Circuit Board v2", Units: 875},
	{Name: "IoT Sensor Kit", Units: 750},
	{Name: "Smart Hub v3", Units: 620},
}

var activities = []Activity{
	{Kind: ActivitySupplier, Text: "New supplier onboarded: Tech Solutions Inc."},
	{Kind: ActivityRestock, Text: "Inventory restocked: 500 units of Microprocessor X86"},
	{Kind: ActivityLowStock, Text: "Low stock alert: Circuit Board v2"},
	{Kind: ActivityShipment, Text: "Shipment dispatched: Order #ORD-2024-003"},
	{Kind: ActivityPayment, Text: "Payment received: ₹12,499.50 for Order #ORD-2024-003"},
}

// Stats returns the dashboard payload for r. Series and feed data are seeded;
// the low-stock alert count reflects the current catalog.
func (s *Service) Stats(r TimeRange) Stats {
	lowStock := 0
	totalUnits := 0
	for _, p := range s.products.List() {
		totalUnits += p.Stock
		if p.Stock < ReorderPoint {
			lowStock++
		}
	}

	return Stats{
		Range: r,
		Summary: Summary{
			TotalInventory: totalUnits,
			PendingOrders:  25,
			InTransit:      5,
			LowStockAlerts: lowStock,
			Revenue:        decimal.RequireFromString("38498.70"),
		},
		Inventory:  clonePoints(inventorySeries),
		Orders:     clonePoints(orderSeries),
		TopSelling: append([]TopProduct(nil), topSelling...),
		Activities: append([]Activity(nil), activities...),
	}
}

func clonePoints(points []Point) []Point {
	return append([]Point(nil), points...)
}
