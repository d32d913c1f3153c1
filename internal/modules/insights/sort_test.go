package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
)

func idsOf(list []orders.Order) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

func TestSortKeys(t *testing.T) {
	base := []orders.Order{
		order("old-cheap", func(o *orders.Order) {
			o.CreatedAt = testNow.Add(-72 * time.Hour)
			o.AmountCents = 100
			o.Status = orders.StatusShipped
		}),
		order("new-pricey", func(o *orders.Order) {
			o.CreatedAt = testNow.Add(-1 * time.Hour)
			o.AmountCents = 90000
			o.Status = orders.StatusPlaced
		}),
		order("mid", func(o *orders.Order) {
			o.CreatedAt = testNow.Add(-24 * time.Hour)
			o.AmountCents = 5000
			o.Status = orders.StatusDelivered
		}),
	}

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortDateDesc, []string{"new-pricey", "mid", "old-cheap"}},
		{SortDateAsc, []string{"old-cheap", "mid", "new-pricey"}},
		{SortAmountDesc, []string{"new-pricey", "mid", "old-cheap"}},
		{SortAmountAsc, []string{"old-cheap", "mid", "new-pricey"}},
		{SortStatus, []string{"mid", "new-pricey", "old-cheap"}}, // lexicographic
		{"", []string{"new-pricey", "mid", "old-cheap"}},         // default is date desc
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			list := append([]orders.Order(nil), base...)
			Sort(list, tt.key)
			assert.Equal(t, tt.want, idsOf(list))
		})
	}
}

func TestSortIsStable(t *testing.T) {
	at := testNow.Add(-5 * time.Hour)
	list := []orders.Order{
		order("first", func(o *orders.Order) { o.CreatedAt = at; o.AmountCents = 500 }),
		order("second", func(o *orders.Order) { o.CreatedAt = at; o.AmountCents = 500 }),
		order("third", func(o *orders.Order) { o.CreatedAt = at; o.AmountCents = 500 }),
	}

	Sort(list, SortAmountDesc)
	assert.Equal(t, []string{"first", "second", "third"}, idsOf(list))

	Sort(list, SortDateAsc)
	assert.Equal(t, []string{"first", "second", "third"}, idsOf(list))
}

func TestValidSortKey(t *testing.T) {
	assert.True(t, ValidSortKey(SortDateDesc))
	assert.True(t, ValidSortKey(""))
	assert.False(t, ValidSortKey("random"))
}
