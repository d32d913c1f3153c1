package view

type Newsletter struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	Status      string `json:"status"`
	SentCount   int    `json:"sentCount"`
	FailedCount int    `json:"failedCount"`
	CreatedAt   string `json:"createdAt"`
}
