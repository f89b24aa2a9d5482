package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatMessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_processed_total",
			Help: "Total number of chat messages processed, by classified intent",
		},
		[]string{"intent"},
	)

	ChatMessageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "chat_message_duration_seconds",
			Help: "Duration of chat message processing in seconds",
		},
		[]string{"intent"},
	)

	RecommendationRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation ranking requests",
		},
	)

	CatalogSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of catalog searches, by result presence",
		},
		[]string{"outcome"},
	)
)
