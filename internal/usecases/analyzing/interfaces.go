package analyzing

import (
	"context"

	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/analyzer_mock.go -package=mocks

// Analyzer define a interface para obter o resumo analítico do negócio
type Analyzer interface {
	// GetBusinessSummary recalcula o resumo analítico completo para o
	// intervalo de datas dos filtros. Cada chamada refaz a agregação a
	// partir do catálogo inteiro; nada é memorizado entre chamadas.
	GetBusinessSummary(ctx context.Context, filters *domain.InsightFilters) (*domain.AnalyticsSummary, error)
}
