// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cafe_cart_cache_hits_total",
		Help: "Cart summary reads served from the cache.",
	})

	CartCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cafe_cart_cache_misses_total",
		Help: "Cart summary reads that fell through to MongoDB.",
	})

	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cafe_orders_placed_total",
		Help: "Orders created through checkout.",
	})

	PaymentRefusals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cafe_payment_refusals_total",
		Help: "Charges refused by the payment gateway.",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cafe_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
