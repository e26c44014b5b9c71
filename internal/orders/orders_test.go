package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karan1317/nexchain/internal/view"
)

func orderIDs(orders []Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestList_DefaultSortIsIDAscending(t *testing.T) {
	s := NewService(Seed())

	out := s.List(Query{})

	assert.Equal(t, []string{"ORD-2024-001", "ORD-2024-002", "ORD-2024-003"}, orderIDs(out))
}

func TestList_SearchMatchesIDAndCustomer(t *testing.T) {
	s := NewService(Seed())

	byID := s.List(Query{Search: "2024-003"})
	require.Len(t, byID, 1)
	assert.Equal(t, "SmartHome Solutions", byID[0].Customer)

	byCustomer := s.List(Query{Search: "techcorp"})
	require.Len(t, byCustomer, 1)
	assert.Equal(t, "ORD-2024-001", byCustomer[0].ID)
}

func TestList_StatusFilter(t *testing.T) {
	s := NewService(Seed())

	out := s.List(Query{Status: StatusInTransit})

	require.Len(t, out, 1)
	assert.Equal(t, "ORD-2024-001", out[0].ID)

	assert.Len(t, s.List(Query{}), 3, "zero status means all")
}

func TestList_SortByTotalDescending(t *testing.T) {
	s := NewService(Seed())

	out := s.List(Query{SortKey: SortByTotal, Direction: view.Descending})

	assert.Equal(t, []string{"ORD-2024-001", "ORD-2024-003", "ORD-2024-002"}, orderIDs(out))
}

func TestList_SortByDate(t *testing.T) {
	s := NewService(Seed())

	out := s.List(Query{SortKey: SortByDate})

	assert.Equal(t, []string{"ORD-2024-003", "ORD-2024-001", "ORD-2024-002"}, orderIDs(out))
}

func TestList_DoesNotMutateSeed(t *testing.T) {
	s := NewService(Seed())

	s.List(Query{SortKey: SortByTotal, Direction: view.Descending})

	assert.Equal(t, "ORD-2024-002", s.orders[0].ID)
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("In Transit")
	require.True(t, ok)
	assert.Equal(t, StatusInTransit, st)

	_, ok = ParseStatus("Cancelled")
	assert.False(t, ok)
}

func TestParseSortKey(t *testing.T) {
	k, ok := ParseSortKey("total")
	require.True(t, ok)
	assert.Equal(t, SortByTotal, k)

	_, ok = ParseSortKey("weight")
	assert.False(t, ok)
}
