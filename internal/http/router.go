package http

import (
	"net/http"

	"weblog-analytics/internal/aggregators"
	"weblog-analytics/internal/pipelines"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/metrics"
	"weblog-analytics/internal/streams"

	"github.com/go-chi/chi/v5"
)

type RouterConfig struct {
	MaxDisplayedBuckets int
}

// NewRouter creates and configures the HTTP router.
func NewRouter(config RouterConfig, snapshotConsumer streams.SnapshotConsumer, aggregationService aggregators.AggregationService, pipeline pipelines.DashboardPipeline, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	dashboardHandler := NewDashboardHandler(snapshotConsumer, aggregationService, config.MaxDisplayedBuckets)
	auditHandler := NewAuditHandler(snapshotConsumer)
	refreshHandler := NewRefreshHandler(pipeline)

	router.Group(func(r chi.Router) {
		r.Use(mwNoStore)
		r.Get("/dashboard", errorHandlingAdapter(dashboardHandler))
		r.Get("/audit", errorHandlingAdapter(auditHandler))
		r.Post("/refresh", errorHandlingAdapter(refreshHandler))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
