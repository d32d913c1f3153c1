package insights

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
)

// delayedAfter is how old a non-terminal order may get before the dashboard
// flags it.
const delayedAfter = 3 * 24 * time.Hour

// Summary is the dashboard widget payload, derived from the unfiltered base
// set.
type Summary struct {
	OrderCount        int
	TotalRevenueCents int64
	AvgOrderCents     float64 // 0 on an empty set, never NaN
	PendingCount      int
	DeliveredCount    int
	Delayed           []orders.Order
}

// Summarize is a pure function of its input record set.
func Summarize(now time.Time, base []orders.Order) Summary {
	s := Summary{OrderCount: len(base)}

	for _, o := range base {
		s.TotalRevenueCents += int64(o.AmountCents)

		switch {
		case o.Status == orders.StatusDelivered:
			s.DeliveredCount++
		case orders.IsPending(o.Status):
			s.PendingCount++
		}

		if !orders.IsTerminal(o.Status) && now.Sub(o.CreatedAt) > delayedAfter {
			s.Delayed = append(s.Delayed, o)
		}
	}

	if s.OrderCount > 0 {
		s.AvgOrderCents = float64(s.TotalRevenueCents) / float64(s.OrderCount)
	}
	return s
}

// ProductStat accumulates one product's line items across all orders.
type ProductStat struct {
	ProductID     string
	Name          string
	Occurrences   int // number of line items referencing the product
	TotalQuantity int
	RevenueCents  int64 // sum of unit price * qty
}

// TopProducts ranks products by total ordered quantity, descending, and
// returns the first n. Line items without a product id fall back to the SKU;
// items with neither are skipped and logged at debug level. Ties keep
// first-seen order (stable sort), so identical input gives identical output.
func TopProducts(ctx context.Context, log *slog.Logger, base []orders.Order, n int) []ProductStat {
	if n <= 0 {
		n = 5
	}

	stats := make(map[string]*ProductStat)
	var keys []string // first-seen order

	for _, o := range base {
		for _, it := range o.Items {
			key := it.ProductID
			if key == "" {
				key = it.SKU
			}
			if key == "" {
				log.LogAttrs(ctx, slog.LevelDebug, "top_products_skip_item",
					slog.String("order_id", o.ID),
					slog.String("item_name", it.Name),
				)
				continue
			}

			st, ok := stats[key]
			if !ok {
				st = &ProductStat{ProductID: key, Name: it.Name}
				stats[key] = st
				keys = append(keys, key)
			}
			st.Occurrences++
			st.TotalQuantity += it.Quantity
			st.RevenueCents += int64(it.UnitPriceCents) * int64(it.Quantity)
		}
	}

	ranked := make([]ProductStat, 0, len(keys))
	for _, k := range keys {
		ranked = append(ranked, *stats[k])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalQuantity > ranked[j].TotalQuantity
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
