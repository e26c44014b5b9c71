package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karan1317/nexchain/internal/catalog"
)

func TestStats_LowStockDerivedFromCatalog(t *testing.T) {
	c := catalog.New(
		catalog.Product{ID: 1, Name: "Widget", Stock: 150},
		catalog.Product{ID: 2, Name: "Gadget", Stock: 49},
		catalog.Product{ID: 3, Name: "Gizmo", Stock: 3},
	)
	s := NewService(c)

	stats := s.Stats(Range7Days)

	assert.Equal(t, 2, stats.Summary.LowStockAlerts)
	assert.Equal(t, 202, stats.Summary.TotalInventory)
	assert.Equal(t, Range7Days, stats.Range)
}

func TestStats_SeededSeries(t *testing.T) {
	s := NewService(catalog.New())

	stats := s.Stats(Range30Days)

	require.Len(t, stats.Inventory, 7)
	require.Len(t, stats.Orders, 7)
	assert.Equal(t, Point{Label: "Sat", Total: 1330}, stats.Inventory[5])
	assert.Len(t, stats.TopSelling, 5)
	assert.Len(t, stats.Activities, 5)
}

func TestStats_ReturnsCopies(t *testing.T) {
	s := NewService(catalog.New())

	first := s.Stats(Range7Days)
	first.Inventory[0].Total = -1
	first.TopSelling[0].Units = -1

	second := s.Stats(Range7Days)
	assert.Equal(t, 820, second.Inventory[0].Total)
	assert.Equal(t, 1250, second.TopSelling[0].Units)
}

func TestParseTimeRange(t *testing.T) {
	r, ok := ParseTimeRange("90d")
	require.True(t, ok)
	assert.Equal(t, Range90Days, r)

	_, ok = ParseTimeRange("1y")
	assert.False(t, ok)
}
