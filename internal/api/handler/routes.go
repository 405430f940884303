package handler

import (
	"net/http"

	"github.com/brcanuto/beautybiz-insights-dashboard/internal/api/handler/router"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/config"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/usecases/advising"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/usecases/analyzing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analytics(analyzerService analyzing.Analyzer, adviserService advising.Adviser, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/summary",
			Method:  http.MethodGet,
			Handler: GetBusinessSummary(analyzerService, cfg),
		},
		{
			Path:    "/v1/analytics/insights",
			Method:  http.MethodGet,
			Handler: GetBusinessInsights(analyzerService, adviserService, cfg),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/catalog-sync/status",
			Method:  http.MethodGet,
			Handler: GetCatalogSyncStatus(services),
		},
		{
			Path:    "/v1/cron/catalog-sync/run",
			Method:  http.MethodPost,
			Handler: RunCatalogSync(services),
		},
	}
}
