// Package observability expone las métricas Prometheus de la aplicación
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal cuenta las solicitudes HTTP atendidas
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "http_requests_total",
		Help:      "Total de solicitudes HTTP por método, ruta y estado",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration mide la latencia de las solicitudes HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dashboard",
		Name:      "http_request_duration_seconds",
		Help:      "Duración de las solicitudes HTTP en segundos",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	// ActivitySyncRuns cuenta las pasadas de sincronización de actividades
	ActivitySyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "activity_sync_runs_total",
		Help:      "Total de sincronizaciones de actividades por resultado",
	}, []string{"status"})

	// ActivitiesSynced cuenta las actividades guardadas por la sincronización
	ActivitiesSynced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "activities_synced_total",
		Help:      "Total de actividades sincronizadas desde la app de campo",
	})

	// AlertEvaluations cuenta las reevaluaciones periódicas de alertas
	AlertEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "alert_evaluations_total",
		Help:      "Total de reevaluaciones de alertas por resultado",
	}, []string{"status"})
)
