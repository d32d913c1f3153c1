package inventory

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntryDelta(t *testing.T) {
	tests := []struct {
		name      string
		previous  int
		next      int
		wantDelta int
	}{
		{"increase", 5, 12, 7},
		{"decrease", 10, 3, -7},
		{"drain to zero", 4, 0, -4},
		{"no change", 6, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEntry("prod-1", ActionManualUpdate, tt.previous, tt.next, "admin", nil, nil)
			assert.Equal(t, tt.wantDelta, e.Delta)
			assert.Equal(t, e.NewStock-e.PreviousStock, e.Delta)
			assert.NotEmpty(t, e.ID)
			assert.False(t, e.CreatedAt.IsZero())
		})
	}
}

func TestNewEntryCarriesOrderRef(t *testing.T) {
	orderID := "order-9"
	e := newEntry("prod-1", ActionOrderDecrement, 10, 8, "system", nil, &orderID)
	require.NotNil(t, e.OrderID)
	assert.Equal(t, "order-9", *e.OrderID)
	assert.Equal(t, -2, e.Delta)
}

func TestUpdateStockRejectsNegative(t *testing.T) {
	// Validation runs before any database work, so a zero service is enough.
	s := NewService(nil, slog.Default())

	_, err := s.UpdateStock(context.Background(), "prod-1", -1, "admin", "")
	require.ErrorIs(t, err, ErrNegativeStock)
}

func TestInsufficientStockErrorMessage(t *testing.T) {
	err := &InsufficientStockError{Items: []InsufficientStockItem{
		{ProductID: "p1", Requested: 5, Available: 2},
	}}
	assert.Contains(t, err.Error(), "p1")
	assert.Contains(t, err.Error(), "requested=5")
}
