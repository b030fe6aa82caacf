package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições à API por método e status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	BackendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "votetrack_requests_total",
			Help: "Total de requisições ao backend de votos por operação e resultado",
		},
		[]string{"operation", "result"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "votetrack_request_duration_seconds",
			Help:    "Duração das requisições ao backend de votos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	FanOutFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fetcher_company_failures_total",
			Help: "Empresas que falharam durante a busca de todas as empresas",
		},
	)

	LookupRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_refreshes_total",
			Help: "Atualizações do cache de empresas e serviços por origem",
		},
		[]string{"source"},
	)

	AggregatedVotes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregated_votes_total",
			Help: "Votos processados pelo agregador",
		},
	)

	LiveUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monitor_live_updates_total",
			Help: "Mensagens de push processadas pelos monitores",
		},
		[]string{"kind", "result"},
	)

	StaleResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "monitor_stale_responses_total",
			Help: "Respostas de busca descartadas por estarem obsoletas",
		},
	)

	ActiveMonitors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "monitor_active_views",
			Help: "Monitores ao vivo abertos",
		},
	)

	PushMessagesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "livefeed_messages_dropped_total",
			Help: "Mensagens descartadas por assinantes lentos",
		},
	)

	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_generated_total",
			Help: "Relatórios exportados por formato e resultado",
		},
		[]string{"format", "result"},
	)

	ReportPages = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_pages",
			Help:    "Páginas por relatório PDF",
			Buckets: []float64{1, 2, 3, 5, 10},
		},
	)
)
