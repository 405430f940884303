package analyzing

import (
	"sort"
	"time"

	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
)

// Aggregate transforma o catálogo de produtos e a coleção de carrinhos em
// um AnalyticsSummary para o intervalo de datas informado. Função pura:
// não modifica as entradas, aloca uma saída nova a cada chamada e não
// produz erros para nenhuma entrada bem tipada (coleções vazias geram um
// resumo zerado).
//
// Um carrinho só conta como atendimento (e entra na série diária) se a
// receita calculada do pedido for estritamente positiva. A atribuição de
// receita por categoria acontece no grão de linha, antes dessa checagem
// de positividade, então carrinhos zerados ainda contribuem para ByCategory.
func Aggregate(products []*domain.Product, carts []*domain.Cart, dateRange domain.DateRange) *domain.AnalyticsSummary {
	// Índice de produtos por ID. IDs repetidos: o último sobrescreve.
	productByID := make(map[int]*domain.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	var totalRevenue float64
	totalAppointments := 0

	revenueByDay := make(map[string]float64)
	revenueByCategory := make(map[string]float64)

	// Ordem de primeira aparição das categorias, para desempate estável
	categoryOrder := make([]string, 0)

	for _, cart := range carts {
		if !dateRange.Contains(cart.Timestamp) {
			continue
		}

		var orderRevenue float64

		for _, line := range cart.Lines {
			product, ok := productByID[line.ProductID]
			if !ok {
				// Linha com produto não resolvível é ignorada em silêncio
				continue
			}

			lineRevenue := product.Price * float64(line.Quantity)
			orderRevenue += lineRevenue

			if _, seen := revenueByCategory[product.Category]; !seen {
				categoryOrder = append(categoryOrder, product.Category)
			}
			revenueByCategory[product.Category] += lineRevenue
		}

		if orderRevenue > 0 {
			totalRevenue += orderRevenue
			totalAppointments++

			// Chave de dia calendário na representação da própria data,
			// sem conversão de fuso
			dayKey := cart.Timestamp.Format(time.DateOnly)
			revenueByDay[dayKey] += orderRevenue
		}
	}

	avgOrderValue := 0.0
	if totalAppointments > 0 {
		avgOrderValue = totalRevenue / float64(totalAppointments)
	}

	series := make([]domain.RevenuePoint, 0, len(revenueByDay))
	for day, revenue := range revenueByDay {
		series = append(series, domain.RevenuePoint{Date: day, Revenue: revenue})
	}
	// A comparação lexicográfica de YYYY-MM-DD coincide com a ordem cronológica
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	byCategory := make([]domain.CategoryRevenue, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		byCategory = append(byCategory, domain.CategoryRevenue{
			Category: category,
			Revenue:  revenueByCategory[category],
		})
	}
	// Sort estável: empates preservam a ordem de primeira aparição
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Revenue > byCategory[j].Revenue
	})

	return &domain.AnalyticsSummary{
		Kpis: domain.Kpis{
			TotalRevenue:      totalRevenue,
			TotalAppointments: totalAppointments,
			AvgOrderValue:     avgOrderValue,
		},
		Series:     series,
		ByCategory: byCategory,
	}
}
