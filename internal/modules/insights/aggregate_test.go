package insights

import (
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
)

func TestSummarizeEmptySet(t *testing.T) {
	s := Summarize(testNow, nil)
	assert.Equal(t, 0, s.OrderCount)
	assert.Equal(t, int64(0), s.TotalRevenueCents)
	assert.Equal(t, float64(0), s.AvgOrderCents) // no division by zero
	assert.Empty(t, s.Delayed)
}

func TestSummarizeRevenueAndAverage(t *testing.T) {
	// amounts 100/200/300, all Delivered except one Cancelled 10 days old
	base := []orders.Order{
		order("a", func(o *orders.Order) {
			o.AmountCents = 10000
			o.Status = orders.StatusDelivered
		}),
		order("b", func(o *orders.Order) {
			o.AmountCents = 20000
			o.Status = orders.StatusDelivered
		}),
		order("c", func(o *orders.Order) {
			o.AmountCents = 30000
			o.Status = orders.StatusCancelled
			o.CreatedAt = testNow.Add(-10 * 24 * time.Hour)
		}),
	}

	s := Summarize(testNow, base)
	assert.Equal(t, int64(60000), s.TotalRevenueCents)
	assert.Equal(t, float64(20000), s.AvgOrderCents)
	assert.Equal(t, 2, s.DeliveredCount)
	assert.Equal(t, 0, s.PendingCount)
	// the cancelled order is old but terminal, so it is not delayed
	assert.Empty(t, s.Delayed)
}

func TestSummarizeAverageTimesCountEqualsRevenue(t *testing.T) {
	base := []orders.Order{
		order("a", func(o *orders.Order) { o.AmountCents = 3337 }),
		order("b", func(o *orders.Order) { o.AmountCents = 101 }),
		order("c", func(o *orders.Order) { o.AmountCents = 99999 }),
		order("d", func(o *orders.Order) { o.AmountCents = 1 }),
	}

	s := Summarize(testNow, base)
	got := s.AvgOrderCents * float64(s.OrderCount)
	assert.InDelta(t, float64(s.TotalRevenueCents), got, 1e-6)
	assert.True(t, !math.IsNaN(s.AvgOrderCents))
}

func TestSummarizeDelayedOrders(t *testing.T) {
	base := []orders.Order{
		order("stuck", func(o *orders.Order) {
			o.Status = orders.StatusPacking
			o.CreatedAt = testNow.Add(-4 * 24 * time.Hour)
		}),
		order("recent", func(o *orders.Order) {
			o.Status = orders.StatusPacking
			o.CreatedAt = testNow.Add(-1 * 24 * time.Hour)
		}),
		order("old-delivered", func(o *orders.Order) {
			o.Status = orders.StatusDelivered
			o.CreatedAt = testNow.Add(-20 * 24 * time.Hour)
		}),
	}

	s := Summarize(testNow, base)
	require.Len(t, s.Delayed, 1)
	assert.Equal(t, "stuck", s.Delayed[0].ID)
	assert.Equal(t, 2, s.PendingCount)
	assert.Equal(t, 1, s.DeliveredCount)
}

func TestTopProductsAccumulatesAndRanks(t *testing.T) {
	base := []orders.Order{
		order("o1", func(o *orders.Order) {
			o.Items = []orders.OrderItem{
				{ProductID: "A", Name: "Kurta", Quantity: 5, UnitPriceCents: 1000},
				{ProductID: "B", Name: "Scarf", Quantity: 10, UnitPriceCents: 500},
			}
		}),
		order("o2", func(o *orders.Order) {
			o.Items = []orders.OrderItem{
				{ProductID: "A", Name: "Kurta", Quantity: 3, UnitPriceCents: 1000},
			}
		}),
	}

	got := TopProducts(context.Background(), slog.Default(), base, 5)
	require.Len(t, got, 2)

	assert.Equal(t, "B", got[0].ProductID)
	assert.Equal(t, 10, got[0].TotalQuantity)

	assert.Equal(t, "A", got[1].ProductID)
	assert.Equal(t, 8, got[1].TotalQuantity)
	assert.Equal(t, 2, got[1].Occurrences)
	assert.Equal(t, int64(8000), got[1].RevenueCents)
}

func TestTopProductsFallbackAndSkip(t *testing.T) {
	base := []orders.Order{
		order("o1", func(o *orders.Order) {
			o.Items = []orders.OrderItem{
				{SKU: "SKU-1", Name: "Legacy item", Quantity: 2, UnitPriceCents: 100}, // id missing, SKU used
				{Name: "Orphan item", Quantity: 9, UnitPriceCents: 100},               // neither: skipped
			}
		}),
	}

	got := TopProducts(context.Background(), slog.Default(), base, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "SKU-1", got[0].ProductID)
	assert.Equal(t, 2, got[0].TotalQuantity)
}

func TestTopProductsTruncatesToN(t *testing.T) {
	var items []orders.OrderItem
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"} {
		items = append(items, orders.OrderItem{ProductID: id, Name: id, Quantity: 1})
	}
	base := []orders.Order{order("o1", func(o *orders.Order) { o.Items = items })}

	got := TopProducts(context.Background(), slog.Default(), base, 5)
	require.Len(t, got, 5)
	// all quantities tie, so first-seen order is preserved
	assert.Equal(t, "p1", got[0].ProductID)
	assert.Equal(t, "p5", got[4].ProductID)
}
