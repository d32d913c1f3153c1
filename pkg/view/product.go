package view

type ProductImage struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description"`
	Price         string         `json:"price"`
	PriceCents    int            `json:"priceCents"`
	Stock         int            `json:"stock"`
	CategoryID    string         `json:"categoryId"`
	SubcategoryID string         `json:"subcategoryId,omitempty"`
	Active        bool           `json:"active"`
	Bestseller    bool           `json:"bestseller"`
	Images        []ProductImage `json:"images"`
	CreatedAt     string         `json:"createdAt"`
}

type StockHistoryEntry struct {
	ID            string `json:"id"`
	Action        string `json:"action"`
	PreviousStock int    `json:"previousStock"`
	NewStock      int    `json:"newStock"`
	Delta         int    `json:"delta"`
	Actor         string `json:"actor"`
	Note          string `json:"note,omitempty"`
	OrderID       string `json:"orderId,omitempty"`
	At            string `json:"at"`
}
