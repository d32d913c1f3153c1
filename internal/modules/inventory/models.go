package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Ledger action tags. Each stock-affecting transition type maps to exactly one.
const (
	ActionManualUpdate     = "manual_update"     // admin edit from the console
	ActionOrderDecrement   = "order_decrement"   // order placement
	ActionCancelRestock    = "cancel_restock"    // order cancellation
	ActionStatusAdjustment = "status_adjustment" // bulk/status-driven adjustment
)

// StockHistoryEntry is one immutable row of the append-only stock ledger.
// Entries are never edited or deleted.
type StockHistoryEntry struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	ProductID string `gorm:"type:char(36);not null;index:ix_stock_history_product_id"`

	Action        string `gorm:"type:varchar(32);not null"`
	PreviousStock int    `gorm:"not null"`
	NewStock      int    `gorm:"not null"`
	Delta         int    `gorm:"not null"` // always new - previous

	Actor   string  `gorm:"type:varchar(64);not null"` // user id or "system"
	Note    *string `gorm:"type:varchar(500)"`
	OrderID *string `gorm:"type:char(36);index:ix_stock_history_order_id"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null;index:ix_stock_history_created_at"`
}

func (StockHistoryEntry) TableName() string { return "stock_history" }

// newEntry is the only constructor; it keeps the delta invariant in one place.
func newEntry(productID, action string, previous, next int, actor string, note, orderID *string) StockHistoryEntry {
	return StockHistoryEntry{
		ID:            uuid.NewString(),
		ProductID:     productID,
		Action:        action,
		PreviousStock: previous,
		NewStock:      next,
		Delta:         next - previous,
		Actor:         actor,
		Note:          note,
		OrderID:       orderID,
		CreatedAt:     time.Now(),
	}
}
