package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paintshop_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paintshop_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// LotTransitions counts committed lot writes by operation.
	LotTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paintshop_lot_transitions_total",
		Help: "Committed lot transitions by operation.",
	}, []string{"op"})

	LotDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paintshop_lot_deliveries_total",
		Help: "Delivery attempts by outcome (delivered, not_ready, stale, partial).",
	}, []string{"outcome"})

	SettlementPrompts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paintshop_settlement_prompts_total",
		Help: "Settlement prompt outcomes.",
	}, []string{"outcome"})

	ObligationSettlements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paintshop_obligation_settlements_total",
		Help: "Obligation settlement attempts by outcome.",
	}, []string{"outcome"})

	LedgerRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paintshop_ledger_records_total",
		Help: "Financial records appended by source.",
	}, []string{"source"})

	RealtimeClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "paintshop_realtime_clients",
		Help: "Connected realtime feed clients.",
	})
)
