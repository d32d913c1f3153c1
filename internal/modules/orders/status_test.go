package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"placed to packing", StatusPlaced, StatusPacking, true},
		{"placed straight to shipped", StatusPlaced, StatusShipped, true},
		{"packing to delivered", StatusPacking, StatusDelivered, true},
		{"no going backwards", StatusShipped, StatusPacking, false},
		{"same status is a no-op", StatusShipped, StatusShipped, false},
		{"cancel from placed", StatusPlaced, StatusCancelled, true},
		{"cancel from out for delivery", StatusOutForDelivery, StatusCancelled, true},
		{"cannot cancel delivered", StatusDelivered, StatusCancelled, false},
		{"cannot cancel twice", StatusCancelled, StatusCancelled, false},
		{"no resurrection after cancel", StatusCancelled, StatusPlaced, false},
		{"unknown target", StatusPlaced, "Lost", false},
		{"unknown source", "Lost", StatusPacking, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsPending(t *testing.T) {
	assert.True(t, IsPending(StatusPlaced))
	assert.True(t, IsPending(StatusPacking))
	assert.True(t, IsPending(StatusShipped))
	assert.True(t, IsPending(StatusOutForDelivery))
	assert.False(t, IsPending(StatusDelivered))
	assert.False(t, IsPending(StatusCancelled))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusDelivered))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusOutForDelivery))
}

func TestCustomerName(t *testing.T) {
	assert.Equal(t, "Asha Patel", Order{FirstName: "Asha", LastName: "Patel"}.CustomerName())
	assert.Equal(t, "Asha", Order{FirstName: "Asha"}.CustomerName())
	assert.Equal(t, "Patel", Order{LastName: "Patel"}.CustomerName())
}
