package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func order(id string, mut ...func(*orders.Order)) orders.Order {
	o := orders.Order{
		ID:            id,
		CustomerID:    "cust-" + id,
		Status:        orders.StatusPlaced,
		AmountCents:   10000,
		PaymentMethod: orders.PaymentCOD,
		FirstName:     "Asha",
		LastName:      "Patel",
		City:          "Pune",
		CreatedAt:     testNow.Add(-2 * time.Hour),
	}
	for _, m := range mut {
		m(&o)
	}
	return o
}

func TestApplyEmptyStateMatchesAll(t *testing.T) {
	base := []orders.Order{order("a"), order("b"), order("c")}
	got := FilterState{}.Apply(testNow, base)
	assert.Equal(t, base, got)
}

func TestApplyStatusAndPaymentMethod(t *testing.T) {
	base := []orders.Order{
		order("a", func(o *orders.Order) { o.Status = orders.StatusDelivered }),
		order("b", func(o *orders.Order) { o.PaymentMethod = orders.PaymentStripe }),
		order("c", func(o *orders.Order) {
			o.Status = orders.StatusDelivered
			o.PaymentMethod = orders.PaymentStripe
		}),
	}

	got := FilterState{Status: orders.StatusDelivered, PaymentMethod: orders.PaymentStripe}.Apply(testNow, base)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestApplyDateRangeEndOfDayInclusive(t *testing.T) {
	// from == to must still match an order placed late that same day
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	base := []orders.Order{
		order("late", func(o *orders.Order) { o.CreatedAt = time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC) }),
		order("next-day", func(o *orders.Order) { o.CreatedAt = time.Date(2024, 1, 16, 0, 30, 0, 0, time.UTC) }),
		order("before", func(o *orders.Order) { o.CreatedAt = time.Date(2024, 1, 14, 23, 59, 0, 0, time.UTC) }),
	}

	got := FilterState{DateFrom: day, DateTo: day}.Apply(testNow, base)
	require.Len(t, got, 1)
	assert.Equal(t, "late", got[0].ID)
}

func TestApplyCitySubstringCaseInsensitive(t *testing.T) {
	base := []orders.Order{
		order("a", func(o *orders.Order) { o.City = "New Delhi" }),
		order("b", func(o *orders.Order) { o.City = "Mumbai" }),
	}

	got := FilterState{City: "delhi"}.Apply(testNow, base)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestApplyProductNameAcrossItems(t *testing.T) {
	base := []orders.Order{
		order("a", func(o *orders.Order) {
			o.Items = []orders.OrderItem{{Name: "Cotton Kurta"}, {Name: "Silk Scarf"}}
		}),
		order("b", func(o *orders.Order) {
			o.Items = []orders.OrderItem{{Name: "Denim Jacket"}}
		}),
	}

	got := FilterState{ProductName: "scarf"}.Apply(testNow, base)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestApplySearchMatchesIDNameOrItem(t *testing.T) {
	base := []orders.Order{
		order("ORD-1001", func(o *orders.Order) { o.FirstName, o.LastName = "Ravi", "Sharma" }),
		order("ORD-2002", func(o *orders.Order) {
			o.FirstName, o.LastName = "Meera", "Iyer"
			o.Items = []orders.OrderItem{{Name: "Linen Shirt"}}
		}),
		order("ORD-3003"),
	}

	byID := FilterState{Search: "1001"}.Apply(testNow, base)
	require.Len(t, byID, 1)
	assert.Equal(t, "ORD-1001", byID[0].ID)

	byName := FilterState{Search: "meera iyer"}.Apply(testNow, base)
	require.Len(t, byName, 1)
	assert.Equal(t, "ORD-2002", byName[0].ID)

	byItem := FilterState{Search: "linen"}.Apply(testNow, base)
	require.Len(t, byItem, 1)
	assert.Equal(t, "ORD-2002", byItem[0].ID)
}

func TestApplyCustomerTypeGroupsBaseSet(t *testing.T) {
	// customer X has one order, customer Y has two
	base := []orders.Order{
		order("x1", func(o *orders.Order) { o.CustomerID = "X" }),
		order("y1", func(o *orders.Order) { o.CustomerID = "Y" }),
		order("y2", func(o *orders.Order) { o.CustomerID = "Y" }),
	}

	newOnly := FilterState{CustomerType: CustomerNew}.Apply(testNow, base)
	require.Len(t, newOnly, 1)
	assert.Equal(t, "x1", newOnly[0].ID)

	returning := FilterState{CustomerType: CustomerReturning}.Apply(testNow, base)
	require.Len(t, returning, 2)

	// grouping must stay over the base set even when combined with another
	// predicate that excludes some of the customer's orders
	combined := FilterState{CustomerType: CustomerReturning, Search: "y1"}.Apply(testNow, base)
	require.Len(t, combined, 1)
	assert.Equal(t, "y1", combined[0].ID)
}

func TestApplyAgeBuckets(t *testing.T) {
	base := []orders.Order{
		order("fresh", func(o *orders.Order) { o.CreatedAt = testNow.Add(-6 * time.Hour) }),
		order("two-days", func(o *orders.Order) { o.CreatedAt = testNow.Add(-48 * time.Hour) }),
		order("six-days", func(o *orders.Order) { o.CreatedAt = testNow.Add(-6 * 24 * time.Hour) }),
		order("ancient", func(o *orders.Order) { o.CreatedAt = testNow.Add(-30 * 24 * time.Hour) }),
	}

	tests := []struct {
		bucket  string
		wantIDs []string
	}{
		{Age24h, []string{"fresh"}},
		{Age3Days, []string{"fresh", "two-days"}},
		{Age7Days, []string{"fresh", "two-days", "six-days"}},
		{AgeOlder, []string{"ancient"}},
	}

	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			got := FilterState{AgeBucket: tt.bucket}.Apply(testNow, base)
			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	base := []orders.Order{
		order("a", func(o *orders.Order) { o.Status = orders.StatusDelivered }),
		order("b"),
		order("c", func(o *orders.Order) { o.Status = orders.StatusDelivered }),
	}
	f := FilterState{Status: orders.StatusDelivered}

	once := f.Apply(testNow, base)
	twice := f.Apply(testNow, once)
	assert.Equal(t, once, twice)
}

func TestPredicatesCommute(t *testing.T) {
	base := []orders.Order{
		order("a", func(o *orders.Order) { o.City = "Pune"; o.PaymentMethod = orders.PaymentStripe }),
		order("b", func(o *orders.Order) { o.City = "Pune" }),
		order("c", func(o *orders.Order) { o.PaymentMethod = orders.PaymentStripe }),
	}

	// both predicates active in one state: order of evaluation is internal,
	// so compare against applying each alone and intersecting by hand
	both := FilterState{City: "pune", PaymentMethod: orders.PaymentStripe}.Apply(testNow, base)
	require.Len(t, both, 1)
	assert.Equal(t, "a", both[0].ID)

	cityFirst := FilterState{PaymentMethod: orders.PaymentStripe}.Apply(testNow,
		FilterState{City: "pune"}.Apply(testNow, base))
	methodFirst := FilterState{City: "pune"}.Apply(testNow,
		FilterState{PaymentMethod: orders.PaymentStripe}.Apply(testNow, base))
	assert.Equal(t, cityFirst, methodFirst)
	assert.Equal(t, both, cityFirst)
}
