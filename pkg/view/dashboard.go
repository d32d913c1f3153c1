package view

type DashboardSummary struct {
	OrderCount     int     `json:"orderCount"`
	TotalRevenue   string  `json:"totalRevenue"`
	RevenueCents   int64   `json:"revenueCents"`
	AvgOrderCents  float64 `json:"avgOrderCents"`
	PendingCount   int     `json:"pendingCount"`
	DeliveredCount int     `json:"deliveredCount"`
	DelayedCount   int     `json:"delayedCount"`
}

type TopProduct struct {
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	Occurrences   int    `json:"occurrences"`
	TotalQuantity int    `json:"totalQuantity"`
	Revenue       string `json:"revenue"`
}

type Dashboard struct {
	Summary     DashboardSummary `json:"summary"`
	TopProducts []TopProduct     `json:"topProducts"`
	RefreshedAt string           `json:"refreshedAt"`
}
