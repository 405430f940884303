package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	fakestoremocks "github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/integrator/fakestore/mocks"
	repomocks "github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/repository/mocks"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/config"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func testFilters() *domain.InsightFilters {
	return &domain.InsightFilters{
		StartDate: timePtr(day("2019-01-01")),
		EndDate:   timePtr(day("2022-12-31")),
	}
}

func TestServiceGetBusinessSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	products := []*domain.Product{
		{ID: 1, Title: "Shampoo", Price: 10.0, Category: "Cabelo"},
	}
	carts := []*domain.Cart{
		{ID: 1, Timestamp: day("2020-01-01"), Lines: []domain.CartLine{{ProductID: 1, Quantity: 2}}},
	}

	mockIntegrator := fakestoremocks.NewMockCatalogIntegrator(ctrl)
	mockIntegrator.EXPECT().GetProducts(gomock.Any()).Return(products, nil)
	mockIntegrator.EXPECT().GetCarts(gomock.Any()).Return(carts, nil)

	service := NewService(&config.Config{}, mockIntegrator)

	summary, err := service.GetBusinessSummary(context.Background(), testFilters())

	assert.NoError(t, err)
	assert.Equal(t, 20.0, summary.Kpis.TotalRevenue)
	assert.Equal(t, 1, summary.Kpis.TotalAppointments)
}

func TestServiceGetBusinessSummaryRequiresFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := fakestoremocks.NewMockCatalogIntegrator(ctrl)
	service := NewService(&config.Config{}, mockIntegrator)

	tests := []struct {
		name    string
		filters *domain.InsightFilters
	}{
		{name: "Filtros nulos", filters: nil},
		{name: "Sem data de início", filters: &domain.InsightFilters{EndDate: timePtr(day("2022-12-31"))}},
		{name: "Sem data de fim", filters: &domain.InsightFilters{StartDate: timePtr(day("2019-01-01"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := service.GetBusinessSummary(context.Background(), tt.filters)
			assert.Error(t, err)
			assert.Nil(t, summary)
		})
	}
}

func TestServiceGetBusinessSummaryUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamErr := errors.New("fake store fora do ar")

	mockIntegrator := fakestoremocks.NewMockCatalogIntegrator(ctrl)
	mockIntegrator.EXPECT().GetProducts(gomock.Any()).Return(nil, upstreamErr)
	mockIntegrator.EXPECT().GetCarts(gomock.Any()).Return(nil, nil)

	// Sem fallback configurado, o erro da fonte externa é propagado
	service := NewService(&config.Config{}, mockIntegrator)

	summary, err := service.GetBusinessSummary(context.Background(), testFilters())

	assert.Error(t, err)
	assert.ErrorIs(t, err, upstreamErr)
	assert.Nil(t, summary)
}

func TestServiceGetBusinessSummarySnapshotFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamErr := errors.New("fake store fora do ar")

	snapshot := &domain.CatalogSnapshot{
		Day: day("2022-06-01"),
		Products: []*domain.Product{
			{ID: 1, Title: "Shampoo", Price: 10.0, Category: "Cabelo"},
		},
		Carts: []*domain.Cart{
			{ID: 1, Timestamp: day("2020-01-01"), Lines: []domain.CartLine{{ProductID: 1, Quantity: 3}}},
		},
	}

	tests := []struct {
		name     string
		setup    func(repo *repomocks.MockCatalogSnapshotRepository)
		validate func(t *testing.T, summary *domain.AnalyticsSummary, err error)
	}{
		{
			name: "Fonte externa fora do ar - responde com o último snapshot",
			setup: func(repo *repomocks.MockCatalogSnapshotRepository) {
				repo.EXPECT().GetLatest().Return(snapshot, nil)
			},
			validate: func(t *testing.T, summary *domain.AnalyticsSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 30.0, summary.Kpis.TotalRevenue)
				assert.Equal(t, 1, summary.Kpis.TotalAppointments)
			},
		},
		{
			name: "Erro ao ler o snapshot - propaga o erro original da fonte",
			setup: func(repo *repomocks.MockCatalogSnapshotRepository) {
				repo.EXPECT().GetLatest().Return(nil, errors.New("banco indisponível"))
			},
			validate: func(t *testing.T, summary *domain.AnalyticsSummary, err error) {
				assert.Error(t, err)
				assert.ErrorIs(t, err, upstreamErr)
				assert.Nil(t, summary)
			},
		},
		{
			name: "Nenhum snapshot persistido - propaga o erro original da fonte",
			setup: func(repo *repomocks.MockCatalogSnapshotRepository) {
				repo.EXPECT().GetLatest().Return(nil, nil)
			},
			validate: func(t *testing.T, summary *domain.AnalyticsSummary, err error) {
				assert.Error(t, err)
				assert.ErrorIs(t, err, upstreamErr)
				assert.Nil(t, summary)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIntegrator := fakestoremocks.NewMockCatalogIntegrator(ctrl)
			mockIntegrator.EXPECT().GetProducts(gomock.Any()).Return(nil, upstreamErr)
			mockIntegrator.EXPECT().GetCarts(gomock.Any()).Return(nil, nil)

			mockRepo := repomocks.NewMockCatalogSnapshotRepository(ctrl)
			tt.setup(mockRepo)

			service := NewService(&config.Config{}, mockIntegrator).(*Service).WithSnapshotFallback(mockRepo)

			summary, err := service.GetBusinessSummary(context.Background(), testFilters())
			tt.validate(t, summary, err)
		})
	}
}
