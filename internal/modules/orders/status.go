package orders

// Order statuses as shown in the admin console. The string values are the wire
// format the store-front writes; do not rename them.
const (
	StatusPlaced         = "Order Placed"
	StatusPacking        = "Packing"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

// Payment methods. The set is extensible; these are the ones checkout produces.
const (
	PaymentCOD      = "COD"
	PaymentStripe   = "Stripe"
	PaymentRazorpay = "Razorpay"
)

// statusRank orders the forward progression. Cancelled is outside the chain.
var statusRank = map[string]int{
	StatusPlaced:         0,
	StatusPacking:        1,
	StatusShipped:        2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

func ValidStatus(s string) bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

func IsTerminal(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsPending reports whether the order still needs fulfilment work.
func IsPending(s string) bool {
	switch s {
	case StatusPlaced, StatusPacking, StatusShipped, StatusOutForDelivery:
		return true
	}
	return false
}

// CanTransition allows forward moves along the fulfilment chain and a jump to
// Cancelled from any non-terminal status.
func CanTransition(from, to string) bool {
	if !ValidStatus(from) || !ValidStatus(to) || from == to {
		return false
	}
	if to == StatusCancelled {
		return !IsTerminal(from)
	}
	fr, ok := statusRank[from]
	if !ok {
		return false // from Cancelled there is no way back
	}
	tr := statusRank[to]
	return tr > fr
}
