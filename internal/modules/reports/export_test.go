package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
)

func TestBuildOrdersWorkbook(t *testing.T) {
	list := []orders.Order{
		{
			ID:            "ORD-1",
			Status:        orders.StatusDelivered,
			PaymentMethod: orders.PaymentCOD,
			Paid:          true,
			FirstName:     "Asha",
			LastName:      "Patel",
			City:          "Pune",
			AmountCents:   129900,
			Items:         []orders.OrderItem{{Quantity: 2}, {Quantity: 1}},
			CreatedAt:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	f, err := BuildOrdersWorkbook(list)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(ordersSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", got)

	city, err := f.GetCellValue(ordersSheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "Pune", city)

	amount, err := f.GetCellValue(ordersSheet, "I2")
	require.NoError(t, err)
	assert.Equal(t, "1299", amount)

	header, err := f.GetCellValue(ordersSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Order ID", header)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "orders-2024-05-01.xlsx", Filename("orders", "2024-05-01"))
}
