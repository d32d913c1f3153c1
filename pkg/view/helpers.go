package view

import "fmt"

// MoneyFromCents renders an integer cent amount for display, e.g. "₹1299.00".
func MoneyFromCents(cents int, currency string) string {
	units := cents / 100
	remainder := cents % 100
	if remainder < 0 {
		remainder = -remainder
	}
	return fmt.Sprintf("%s%d.%02d", currencySymbol(currency), units, remainder)
}

func currencySymbol(code string) string {
	switch code {
	case "INR":
		return "₹"
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}
