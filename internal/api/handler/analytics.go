package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/brcanuto/beautybiz-insights-dashboard/internal/config"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/usecases/analyzing"
	"github.com/brcanuto/beautybiz-insights-dashboard/pkg/apiErrors"
	"github.com/brcanuto/beautybiz-insights-dashboard/pkg/log"
	"github.com/brcanuto/beautybiz-insights-dashboard/pkg/utils"
)

// kpisResponse espelha domain.Kpis com valores arredondados para exibição
type kpisResponse struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalAppointments int     `json:"totalAppointments"`
	AvgOrderValue     float64 `json:"avgOrderValue"`
}

// categoryResponse acrescenta à receita por categoria um rótulo
// normalizado para exibição; o campo category permanece verbatim
type categoryResponse struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
}

type filtersResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type summaryResponse struct {
	Kpis       kpisResponse          `json:"kpis"`
	Series     []domain.RevenuePoint `json:"series"`
	ByCategory []categoryResponse    `json:"byCategory"`
	Filters    filtersResponse       `json:"filters"`
}

// GetBusinessSummary retorna o resumo analítico do período solicitado
func GetBusinessSummary(service analyzing.Analyzer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseInsightFilters(r, cfg)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("analytics: parâmetros de data inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Debug("analytics: calculando resumo do período")

		summary, err := service.GetBusinessSummary(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("analytics: falha ao obter o catálogo da fonte externa")

			apiErrors.WriteError(w, apiErrors.ErrCatalogUnavailable, "não foi possível obter os dados do catálogo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(buildSummaryResponse(summary, filters)); err != nil {
			logger.WithError(err).Error("analytics: falha ao codificar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// buildSummaryResponse monta o DTO de exibição: valores monetários
// arredondados a duas casas e rótulos de categoria normalizados. O
// resumo em si permanece intacto; arredondamento é responsabilidade
// da camada de apresentação.
func buildSummaryResponse(summary *domain.AnalyticsSummary, filters *domain.InsightFilters) summaryResponse {
	series := make([]domain.RevenuePoint, 0, len(summary.Series))
	for _, point := range summary.Series {
		series = append(series, domain.RevenuePoint{
			Date:    point.Date,
			Revenue: utils.RoundWithTwoDecimalPlace(point.Revenue),
		})
	}

	byCategory := make([]categoryResponse, 0, len(summary.ByCategory))
	for _, cat := range summary.ByCategory {
		byCategory = append(byCategory, categoryResponse{
			Category: cat.Category,
			Label:    utils.NormalizeCategory(cat.Category),
			Revenue:  utils.RoundWithTwoDecimalPlace(cat.Revenue),
		})
	}

	return summaryResponse{
		Kpis: kpisResponse{
			TotalRevenue:      utils.RoundWithTwoDecimalPlace(summary.Kpis.TotalRevenue),
			TotalAppointments: summary.Kpis.TotalAppointments,
			AvgOrderValue:     utils.RoundWithTwoDecimalPlace(summary.Kpis.AvgOrderValue),
		},
		Series:     series,
		ByCategory: byCategory,
		Filters: filtersResponse{
			StartDate: filters.StartDate.Format(time.DateOnly),
			EndDate:   filters.EndDate.Format(time.DateOnly),
		},
	}
}

// parseInsightFilters interpreta start_date/end_date da query string,
// usando a janela padrão da configuração quando ausentes. Um intervalo
// com início depois do fim não é erro: a agregação simplesmente não
// encontra carrinhos.
func parseInsightFilters(r *http.Request, cfg *config.Config) (*domain.InsightFilters, error) {
	startParam := r.URL.Query().Get("start_date")
	if startParam == "" {
		startParam = cfg.Analytics.DefaultStartDate
	}

	endParam := r.URL.Query().Get("end_date")
	if endParam == "" {
		endParam = cfg.Analytics.DefaultEndDate
	}

	startDate, err := utils.ParseDate(startParam)
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(endParam)
	if err != nil {
		return nil, err
	}

	return &domain.InsightFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
