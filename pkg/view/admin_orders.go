package view

// View models serialized to the admin console.

type AdminOrderListItem struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	Paid          bool   `json:"paid"`
	City          string `json:"city"`
	ItemCount     int    `json:"itemCount"`
	Amount        string `json:"amount"`
	AmountCents   int    `json:"amountCents"`
	CreatedAt     string `json:"createdAt"`
}

type AdminOrderItem struct {
	ProductID string  `json:"productId"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Unit      string  `json:"unit"`
	Line      string  `json:"line"`
	ImageURL  *string `json:"imageUrl,omitempty"`
}

type AdminOrderTimelineEntry struct {
	Kind  string `json:"kind"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Actor string `json:"actor"`
	Note  string `json:"note,omitempty"`
	At    string `json:"at"`
}

type AdminOrderDetail struct {
	ID            string                    `json:"id"`
	CustomerName  string                    `json:"customerName"`
	Email         string                    `json:"email,omitempty"`
	Phone         string                    `json:"phone"`
	Status        string                    `json:"status"`
	PaymentMethod string                    `json:"paymentMethod"`
	Paid          bool                      `json:"paid"`
	Amount        string                    `json:"amount"`
	AmountCents   int                       `json:"amountCents"`
	Street        string                    `json:"street"`
	City          string                    `json:"city"`
	State         string                    `json:"state"`
	Zip           string                    `json:"zip"`
	Country       string                    `json:"country"`
	CreatedAt     string                    `json:"createdAt"`
	Items         []AdminOrderItem          `json:"items"`
	Timeline      []AdminOrderTimelineEntry `json:"timeline"`
}
