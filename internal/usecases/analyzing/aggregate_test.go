package analyzing

import (
	"testing"
	"time"

	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func fullRange() domain.DateRange {
	return domain.DateRange{
		From: day("2019-01-01"),
		To:   day("2022-12-31"),
	}
}

func TestAggregate(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Title: "Shampoo reparador", Price: 10.0, Category: "A"},
		{ID: 2, Title: "Kit coloração", Price: 50.0, Category: "B"},
	}

	tests := []struct {
		name      string
		products  []*domain.Product
		carts     []*domain.Cart
		dateRange domain.DateRange
		validate  func(t *testing.T, summary *domain.AnalyticsSummary)
	}{
		{
			name:     "Dois carrinhos em dias distintos - KPIs, série e categorias",
			products: products,
			carts: []*domain.Cart{
				{
					ID:        1,
					Timestamp: day("2020-01-01"),
					Lines:     []domain.CartLine{{ProductID: 1, Quantity: 2}},
				},
				{
					ID:        2,
					Timestamp: day("2020-01-02"),
					Lines:     []domain.CartLine{{ProductID: 2, Quantity: 1}},
				},
			},
			dateRange: fullRange(),
			validate: func(t *testing.T, summary *domain.AnalyticsSummary) {
				assert.Equal(t, 70.0, summary.Kpis.TotalRevenue)
				assert.Equal(t, 2, summary.Kpis.TotalAppointments)
				assert.Equal(t, 35.0, summary.Kpis.AvgOrderValue)

				assert.Equal(t, []domain.RevenuePoint{
					{Date: "2020-01-01", Revenue: 20.0},
					{Date: "2020-01-02", Revenue: 50.0},
				}, summary.Series)

				// Categoria B lidera por ter a maior receita
				assert.Equal(t, []domain.CategoryRevenue{
					{Category: "B", Revenue: 50.0},
					{Category: "A", Revenue: 20.0},
				}, summary.ByCategory)
			},
		},
		{
			name:     "Intervalo que exclui todos os carrinhos - resumo zerado",
			products: products,
			carts: []*domain.Cart{
				{
					ID:        1,
					Timestamp: day("2020-01-01"),
					Lines:     []domain.CartLine{{ProductID: 1, Quantity: 2}},
				},
			},
			dateRange: domain.DateRange{From: day("2024-01-01"), To: day("2024-12-31")},
			validate: func(t *testing.T, summary *domain.AnalyticsSummary) {
				assert.Equal(t, 0.0, summary.Kpis.TotalRevenue)
				assert.Equal(t, 0, summary.Kpis.TotalAppointments)
				assert.Equal(t, 0.0, summary.Kpis.AvgOrderValue)
				assert.Empty(t, summary.Series)
				assert.Empty(t, summary.ByCategory)
			},
		},
		{
			name:     "Limites do intervalo são inclusivos",
			products: products,
			carts: []*domain.Cart{
				{ID: 1, Timestamp: day("2020-01-01"), Lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}},
				{ID: 2, Timestamp: day("2020-01-31"), Lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}},
				{ID: 3, Timestamp: day("2020-02-01"), Lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}},
			},
			dateRange: domain.DateRange{From: day("2020-01-01"), To: day("2020-01-31")},
			validate: func(t *testing.T, summary *domain.AnalyticsSummary) {
				assert.Equal(t, 2, summary.Kpis.TotalAppointments)
				assert.Equal(t, 20.0, summary.Kpis.TotalRevenue)
			},
		},
		{
			name:     "Linha com produto inexistente é ignorada sem derrubar o carrinho",
			products: products,
			carts: []*domain.Cart{
				{
					ID:        1,
					Timestamp: day("2020-01-01"),
					Lines: []domain.CartLine{
						{ProductID: 999, Quantity: 3},
						{ProductID: 2, Quantity: 1},
					},
				},
			},
			dateRange: fullRange(),
			validate: func(t *testing.T, summary *domain.AnalyticsSummary) {
				assert.Equal(t, 50.0, summary.Kpis.TotalRevenue)
				assert.Equal(t, 1, summary.Kpis.TotalAppointments)
			},
		},
		{
			name:     "Carrinho só com produtos inexistentes não conta como atendimento",
			products: products,
			carts: []*domain.Cart{
				{
					ID:        1,
					Timestamp: day("2020-01-01"),
					Lines:     []domain.CartLine{{ProductID: 999, Quantity: 3}},
				},
			},
			dateRange: fullRange(),
			validate: func(t *testing.T, summary *domain.AnalyticsSummary) {
				assert.Equal(t, 0, summary.Kpis.TotalAppointments)
				assert.Empty(t, summary.Series)
				assert.Empty(t, summary.ByCategory)
			},
		},
		{
			name: "Carrinho de receita zero contribui para categorias mas não para KPIs",
			products: []*domain.Product{
				{ID: 1, Title: "Brinde", Price: 0.0, Category: "Brindes"},
			},
			carts: []*domain.Cart{
				{
					ID:        1,
					Timestamp: day("2020-01-01"),
					Lines:     []domain.CartLine{{ProductID: 1, Quantity: 5}},
				},
			},
			dateRange: fullRange(),
			validate: func(t *testing.T, summary *domain.AnalyticsSummary) {
				assert.Equal(t, 0, summary.Kpis.TotalAppointments)
				assert.Equal(t, 0.0, summary.Kpis.TotalRevenue)
				assert.Empty(t, summary.Series)

				// A atribuição por categoria acontece antes da checagem de positividade
				assert.Equal(t, []domain.CategoryRevenue{
					{Category: "Brindes", Revenue: 0.0},
				}, summary.ByCategory)
			},
		},
		{
			name: "Carrinho de receita negativa fica fora dos KPIs mas infla a categoria",
			products: []*domain.Product{
				{ID: 1, Title: "Shampoo", Price: 10.0, Category: "A"},
				{ID: 2, Title: "Estorno", Price: -5.0, Category: "B"},
			},
			carts: []*domain.Cart{
				{
					ID:        1,
					Timestamp: day("2020-01-01"),
					Lines:     []domain.CartLine{{ProductID: 1, Quantity: 2}},
				},
				{
					// Receita do pedido: 50 - 55 = -5, excluído dos KPIs e da série
					ID:        2,
					Timestamp: day("2020-01-02"),
					Lines: []domain.CartLine{
						{ProductID: 1, Quantity: 5},
						{ProductID: 2, Quantity: 11},
					},
				},
			},
			dateRange: fullRange(),
			validate: func(t *testing.T, summary *domain.AnalyticsSummary) {
				assert.Equal(t, 20.0, summary.Kpis.TotalRevenue)
				assert.Equal(t, 1, summary.Kpis.TotalAppointments)
				assert.Equal(t, []domain.RevenuePoint{
					{Date: "2020-01-01", Revenue: 20.0},
				}, summary.Series)

				// As linhas do carrinho excluído ainda contam por categoria,
				// então a receita de uma categoria pode exceder a receita total
				assert.Equal(t, []domain.CategoryRevenue{
					{Category: "A", Revenue: 70.0},
					{Category: "B", Revenue: -55.0},
				}, summary.ByCategory)
				assert.Greater(t, summary.ByCategory[0].Revenue, summary.Kpis.TotalRevenue)
			},
		},
		{
			name:     "Carrinhos do mesmo dia são somados em um único ponto da série",
			products: products,
			carts: []*domain.Cart{
				{ID: 1, Timestamp: day("2020-01-01"), Lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}},
				{ID: 2, Timestamp: day("2020-01-01"), Lines: []domain.CartLine{{ProductID: 2, Quantity: 1}}},
				{ID: 3, Timestamp: day("2019-06-15"), Lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}},
			},
			dateRange: fullRange(),
			validate: func(t *testing.T, summary *domain.AnalyticsSummary) {
				assert.Equal(t, []domain.RevenuePoint{
					{Date: "2019-06-15", Revenue: 10.0},
					{Date: "2020-01-01", Revenue: 60.0},
				}, summary.Series)
			},
		},
		{
			name: "Empate de receita entre categorias preserva a ordem de primeira aparição",
			products: []*domain.Product{
				{ID: 1, Title: "Esmalte", Price: 25.0, Category: "Unhas"},
				{ID: 2, Title: "Máscara capilar", Price: 25.0, Category: "Cabelo"},
			},
			carts: []*domain.Cart{
				{
					ID:        1,
					Timestamp: day("2020-01-01"),
					Lines: []domain.CartLine{
						{ProductID: 1, Quantity: 2},
						{ProductID: 2, Quantity: 2},
					},
				},
			},
			dateRange: fullRange(),
			validate: func(t *testing.T, summary *domain.AnalyticsSummary) {
				assert.Equal(t, []domain.CategoryRevenue{
					{Category: "Unhas", Revenue: 50.0},
					{Category: "Cabelo", Revenue: 50.0},
				}, summary.ByCategory)
			},
		},
		{
			name:      "Coleções vazias geram resumo zerado",
			products:  nil,
			carts:     nil,
			dateRange: fullRange(),
			validate: func(t *testing.T, summary *domain.AnalyticsSummary) {
				assert.NotNil(t, summary)
				assert.Equal(t, 0.0, summary.Kpis.TotalRevenue)
				assert.Equal(t, 0, summary.Kpis.TotalAppointments)
				assert.Equal(t, 0.0, summary.Kpis.AvgOrderValue)
				assert.Empty(t, summary.Series)
				assert.Empty(t, summary.ByCategory)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(tt.products, tt.carts, tt.dateRange)
			tt.validate(t, summary)
		})
	}
}

func TestAggregateInvariants(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Title: "Shampoo", Price: 13.37, Category: "Cabelo"},
		{ID: 2, Title: "Base", Price: 42.9, Category: "Maquiagem"},
		{ID: 3, Title: "Perfume", Price: 199.9, Category: "Perfumaria"},
	}
	carts := []*domain.Cart{
		{ID: 1, Timestamp: day("2020-03-01"), Lines: []domain.CartLine{{ProductID: 1, Quantity: 3}, {ProductID: 3, Quantity: 1}}},
		{ID: 2, Timestamp: day("2020-03-02"), Lines: []domain.CartLine{{ProductID: 2, Quantity: 2}}},
		{ID: 3, Timestamp: day("2020-03-02"), Lines: []domain.CartLine{{ProductID: 2, Quantity: 1}, {ProductID: 1, Quantity: 1}}},
		{ID: 4, Timestamp: day("2020-02-28"), Lines: []domain.CartLine{{ProductID: 3, Quantity: 2}}},
	}

	summary := Aggregate(products, carts, fullRange())

	// Ticket médio vezes atendimentos reconstrói a receita total
	assert.InDelta(t, summary.Kpis.TotalRevenue, summary.Kpis.AvgOrderValue*float64(summary.Kpis.TotalAppointments), 1e-9)

	// Datas da série estritamente crescentes, sem repetição
	for i := 1; i < len(summary.Series); i++ {
		assert.Less(t, summary.Series[i-1].Date, summary.Series[i].Date)
	}

	// Receita por categoria em ordem não crescente
	for i := 1; i < len(summary.ByCategory); i++ {
		assert.GreaterOrEqual(t, summary.ByCategory[i-1].Revenue, summary.ByCategory[i].Revenue)
	}

	// A soma da série bate com a receita total
	var seriesTotal float64
	for _, point := range summary.Series {
		seriesTotal += point.Revenue
	}
	assert.InDelta(t, summary.Kpis.TotalRevenue, seriesTotal, 1e-9)
}

func TestAggregateDuplicateProductIDs(t *testing.T) {
	// IDs repetidos no catálogo: o último vence
	products := []*domain.Product{
		{ID: 1, Title: "Preço antigo", Price: 10.0, Category: "A"},
		{ID: 1, Title: "Preço novo", Price: 30.0, Category: "B"},
	}
	carts := []*domain.Cart{
		{ID: 1, Timestamp: day("2020-01-01"), Lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}},
	}

	summary := Aggregate(products, carts, fullRange())

	assert.Equal(t, 30.0, summary.Kpis.TotalRevenue)
	assert.Equal(t, []domain.CategoryRevenue{{Category: "B", Revenue: 30.0}}, summary.ByCategory)
}

func TestAggregateDoesNotMutateInputs(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Title: "Shampoo", Price: 10.0, Category: "Cabelo"},
	}
	carts := []*domain.Cart{
		{ID: 1, Timestamp: day("2020-01-01"), Lines: []domain.CartLine{{ProductID: 1, Quantity: 2}}},
	}

	first := Aggregate(products, carts, fullRange())
	second := Aggregate(products, carts, fullRange())

	// Função pura: chamadas repetidas produzem resultados idênticos e independentes
	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)

	assert.Equal(t, 10.0, products[0].Price)
	assert.Equal(t, 2, carts[0].Lines[0].Quantity)
}
