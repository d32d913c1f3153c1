package inventory

import (
	"errors"
	"fmt"
)

var ErrNegativeStock = errors.New("stock must be a non-negative integer")

type InsufficientStockItem struct {
	ProductID string
	Requested int
	Available int
}

type InsufficientStockError struct {
	Items []InsufficientStockItem
}

func (e *InsufficientStockError) Error() string {
	if len(e.Items) == 0 {
		return "insufficient stock"
	}
	it := e.Items[0]
	return fmt.Sprintf("insufficient stock: product=%s requested=%d available=%d", it.ProductID, it.Requested, it.Available)
}
