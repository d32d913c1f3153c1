package insights

import (
	"sort"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
)

type SortKey string

const (
	SortDateDesc   SortKey = "date_desc" // default: newest first
	SortDateAsc    SortKey = "date_asc"
	SortAmountDesc SortKey = "amount_desc"
	SortAmountAsc  SortKey = "amount_asc"
	SortStatus     SortKey = "status"
)

func ValidSortKey(k SortKey) bool {
	switch k {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc, SortStatus, "":
		return true
	}
	return false
}

// Sort orders the slice in place. The sort is stable: records with equal keys
// keep their prior relative order.
func Sort(list []orders.Order, key SortKey) {
	var less func(a, b orders.Order) bool

	switch key {
	case SortDateAsc:
		less = func(a, b orders.Order) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortAmountAsc:
		less = func(a, b orders.Order) bool { return a.AmountCents < b.AmountCents }
	case SortAmountDesc:
		less = func(a, b orders.Order) bool { return a.AmountCents > b.AmountCents }
	case SortStatus:
		less = func(a, b orders.Order) bool { return a.Status < b.Status }
	default: // SortDateDesc
		less = func(a, b orders.Order) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
}
