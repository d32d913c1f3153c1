package orders

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrNotActionable     = errors.New("order not actionable")
	ErrNotCOD            = errors.New("order is not cash on delivery")
	ErrAlreadyPaid       = errors.New("order is already paid")
)
