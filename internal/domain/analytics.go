package domain

import "time"

// Kpis são as três métricas escalares do resumo analítico.
// Invariante: AvgOrderValue == TotalRevenue / TotalAppointments quando
// TotalAppointments > 0, senão 0.
type Kpis struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalAppointments int     `json:"totalAppointments"`
	AvgOrderValue     float64 `json:"avgOrderValue"`
}

// RevenuePoint é um ponto da série temporal de receita, com a data no
// formato YYYY-MM-DD
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// CategoryRevenue é a receita acumulada de uma categoria
type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// AnalyticsSummary é o resumo derivado de produtos + carrinhos para um
// intervalo de datas. Recalculado por completo a cada chamada, nunca
// mutado após a construção.
//
// Series é estritamente crescente por data, uma entrada por dia com
// receita qualificada (sem preenchimento de lacunas com zero).
// ByCategory é ordenado por receita decrescente, empates resolvidos pela
// ordem de primeira aparição da categoria.
type AnalyticsSummary struct {
	Kpis       Kpis              `json:"kpis"`
	Series     []RevenuePoint    `json:"series"`
	ByCategory []CategoryRevenue `json:"byCategory"`
}

// InsightFilters carrega o intervalo de datas solicitado pelo cliente
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
