package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the admin backend.
var (
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trendify_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	OrderRefreshesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trendify_order_refreshes_total",
			Help: "Successful full refreshes of the in-memory order set",
		},
	)

	StockUpdatesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trendify_stock_updates_total",
			Help: "Manual stock updates applied through the console",
		},
	)

	NewsletterEmailsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendify_newsletter_emails_total",
			Help: "Newsletter emails by delivery outcome",
		},
		[]string{"outcome"},
	)

	ChatCompletionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trendify_chat_completions_total",
			Help: "Chatbot completions requested",
		},
	)
)

// Register registers all collectors with the default registry.
func Register() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		OrderRefreshesTotal,
		StockUpdatesTotal,
		NewsletterEmailsTotal,
		ChatCompletionsTotal,
	)
}
