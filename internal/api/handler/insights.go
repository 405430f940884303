package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/brcanuto/beautybiz-insights-dashboard/internal/config"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/usecases/advising"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/usecases/analyzing"
	"github.com/brcanuto/beautybiz-insights-dashboard/pkg/apiErrors"
	"github.com/brcanuto/beautybiz-insights-dashboard/pkg/log"
)

type insightsResponse struct {
	Filters  filtersResponse   `json:"filters"`
	Insights []*domain.Insight `json:"insights"`
}

// GetBusinessInsights recalcula o resumo do período e deriva os insights
// heurísticos. Gerado sob demanda a cada chamada, sem cache e sem
// persistência.
func GetBusinessInsights(analyzerService analyzing.Analyzer, adviserService advising.Adviser, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseInsightFilters(r, cfg)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("insights: parâmetros de data inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := analyzerService.GetBusinessSummary(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("insights: falha ao obter o catálogo da fonte externa")

			apiErrors.WriteError(w, apiErrors.ErrCatalogUnavailable, "não foi possível obter os dados do catálogo", nil)
			return
		}

		insights := adviserService.ComputeInsights(summary)

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
			"insights":   len(insights),
		}).Info("insights: insights gerados com sucesso")

		response := insightsResponse{
			Filters: filtersResponse{
				StartDate: filters.StartDate.Format(time.DateOnly),
				EndDate:   filters.EndDate.Format(time.DateOnly),
			},
			Insights: insights,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("insights: falha ao codificar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
