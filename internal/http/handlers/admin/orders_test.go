package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/insights"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
)

func ctxWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/api/admin/orders?"+rawQuery, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestFilterFromQuery(t *testing.T) {
	c := ctxWithQuery(t, "status=Shipped&payment_method=COD&city=pune&product=kurta&q=ORD&customer_type=new&age=3days&sort=amount_desc&date_from=2026-08-01&date_to=2026-08-15")

	f, err := filterFromQuery(c)
	require.NoError(t, err)

	assert.Equal(t, orders.StatusShipped, f.Status)
	assert.Equal(t, orders.PaymentCOD, f.PaymentMethod)
	assert.Equal(t, "pune", f.City)
	assert.Equal(t, "kurta", f.ProductName)
	assert.Equal(t, "ORD", f.Search)
	assert.Equal(t, insights.CustomerNew, f.CustomerType)
	assert.Equal(t, insights.Age3Days, f.AgeBucket)
	assert.Equal(t, insights.SortAmountDesc, f.Sort)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), f.DateFrom)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local), f.DateTo)
}

func TestFilterFromQueryDefaults(t *testing.T) {
	c := ctxWithQuery(t, "")

	f, err := filterFromQuery(c)
	require.NoError(t, err)
	assert.Equal(t, insights.FilterState{}, f)
}

func TestFilterFromQueryRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown status", "status=OnHold"},
		{"bad date", "date_from=15-08-2026"},
		{"unknown sort", "sort=price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ctxWithQuery(t, tt.query)
			_, err := filterFromQuery(c)
			require.Error(t, err)
			ae, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, apperr.Invalid, ae.Kind)
		})
	}
}
