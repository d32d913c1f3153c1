package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
)

const ordersSheet = "Orders"

var ordersHeader = []string{
	"Order ID", "Created At", "Status", "Payment Method", "Paid",
	"Customer", "City", "Items", "Amount",
}

// BuildOrdersWorkbook renders an order list (usually the current filtered,
// sorted view) into an xlsx workbook. The caller owns closing/streaming it.
func BuildOrdersWorkbook(list []orders.Order) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(ordersSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, h := range ordersHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(ordersSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, o := range list {
		itemCount := 0
		for _, it := range o.Items {
			itemCount += it.Quantity
		}

		values := []any{
			o.ID,
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.Status,
			o.PaymentMethod,
			o.Paid,
			o.CustomerName(),
			o.City,
			itemCount,
			float64(o.AmountCents) / 100,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(ordersSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// Filename builds the attachment name for an export download.
func Filename(prefix, date string) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, date)
}
