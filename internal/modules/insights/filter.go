package insights

import (
	"strings"
	"time"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
)

// Customer types for the new/returning filter.
const (
	CustomerAny       = ""
	CustomerNew       = "new"       // exactly one order in the base set
	CustomerReturning = "returning" // more than one
)

// Age buckets. "older" is strictly more than the 7 day threshold.
const (
	AgeAny   = ""
	Age24h   = "24h"
	Age3Days = "3days"
	Age7Days = "7days"
	AgeOlder = "older"
)

// FilterState is one console session's predicate parameters plus sort key.
// Zero values mean "match all" for their predicate. It is recomputed on every
// control change and never persisted.
type FilterState struct {
	Status        string
	DateFrom      time.Time
	DateTo        time.Time
	PaymentMethod string
	City          string // substring, case-insensitive
	ProductName   string // substring against any line item, case-insensitive
	Search        string // order id OR customer name OR any item name
	CustomerType  string
	AgeBucket     string
	Sort          SortKey
}

// Apply evaluates every active predicate against the full base set and
// returns the records matching all of them. Predicates are pure and commute;
// each one is always checked against the base set, never a previously
// filtered subset. The input slice is not modified.
func (f FilterState) Apply(now time.Time, base []orders.Order) []orders.Order {
	// customer grouping is over the unfiltered base set
	var orderCounts map[string]int
	if f.CustomerType == CustomerNew || f.CustomerType == CustomerReturning {
		orderCounts = countOrdersByCustomer(base)
	}

	out := make([]orders.Order, 0, len(base))
	for _, o := range base {
		if !f.matches(now, o, orderCounts) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (f FilterState) matches(now time.Time, o orders.Order, orderCounts map[string]int) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.PaymentMethod != "" && o.PaymentMethod != f.PaymentMethod {
		return false
	}
	if !f.DateFrom.IsZero() && o.CreatedAt.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && o.CreatedAt.After(endOfDay(f.DateTo)) {
		return false
	}
	if f.City != "" && !containsFold(o.City, f.City) {
		return false
	}
	if f.ProductName != "" && !anyItemNameContains(o, f.ProductName) {
		return false
	}
	if f.Search != "" && !matchesSearch(o, f.Search) {
		return false
	}
	if f.CustomerType != "" && orderCounts != nil {
		n := orderCounts[o.CustomerID]
		switch f.CustomerType {
		case CustomerNew:
			if n != 1 {
				return false
			}
		case CustomerReturning:
			if n <= 1 {
				return false
			}
		}
	}
	if f.AgeBucket != "" && !inAgeBucket(now, o.CreatedAt, f.AgeBucket) {
		return false
	}
	return true
}

// endOfDay extends the inclusive "to" bound to 23:59:59.999, so a same-day
// from == to range still matches records timestamped earlier that day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyItemNameContains(o orders.Order, needle string) bool {
	for _, it := range o.Items {
		if containsFold(it.Name, needle) {
			return true
		}
	}
	return false
}

func matchesSearch(o orders.Order, q string) bool {
	if containsFold(o.ID, q) {
		return true
	}
	if containsFold(o.CustomerName(), q) {
		return true
	}
	return anyItemNameContains(o, q)
}

func inAgeBucket(now, createdAt time.Time, bucket string) bool {
	age := now.Sub(createdAt)
	switch bucket {
	case Age24h:
		return age <= 24*time.Hour
	case Age3Days:
		return age <= 3*24*time.Hour
	case Age7Days:
		return age <= 7*24*time.Hour
	case AgeOlder:
		return age > 7*24*time.Hour
	}
	return true
}

func countOrdersByCustomer(base []orders.Order) map[string]int {
	counts := make(map[string]int, len(base))
	for _, o := range base {
		counts[o.CustomerID]++
	}
	return counts
}
