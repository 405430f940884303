package analyzing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/integrator/fakestore"
	"github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/repository"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/config"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
)

// Service implementa a interface Analyzer
type Service struct {
	cfg            *config.Config
	catalogService fakestore.CatalogIntegrator
	snapshotRepo   repository.CatalogSnapshotRepository
	useFallback    bool
}

// NewService cria uma nova instância do serviço de análise
func NewService(cfg *config.Config, catalogService fakestore.CatalogIntegrator) Analyzer {
	return &Service{
		cfg:            cfg,
		catalogService: catalogService,
		snapshotRepo:   nil,   // Inicialmente null
		useFallback:    false, // Inicialmente não usa fallback de snapshot
	}
}

// WithSnapshotFallback habilita o uso do snapshot persistido como
// fallback quando a fonte externa está indisponível
func (s *Service) WithSnapshotFallback(snapshotRepo repository.CatalogSnapshotRepository) *Service {
	s.snapshotRepo = snapshotRepo
	s.useFallback = snapshotRepo != nil
	return s
}

// GetBusinessSummary busca produtos e carrinhos da fonte externa e agrega
// tudo no resumo analítico do período
func (s *Service) GetBusinessSummary(ctx context.Context, filters *domain.InsightFilters) (*domain.AnalyticsSummary, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	products, carts, err := s.fetchCatalog(ctx)
	if err != nil {
		// A fonte externa falhou; tentar o último snapshot persistido
		if !s.useFallback {
			return nil, err
		}

		logrus.WithError(err).Warn("Fonte externa indisponível, usando snapshot do catálogo")

		snapshot, snapErr := s.snapshotRepo.GetLatest()
		if snapErr != nil {
			logrus.WithError(snapErr).Error("Erro ao buscar snapshot do catálogo no banco")
			return nil, err
		}
		if snapshot == nil {
			return nil, err
		}

		products = snapshot.Products
		carts = snapshot.Carts
	}

	dateRange := domain.DateRange{
		From: *filters.StartDate,
		To:   *filters.EndDate,
	}

	summary := Aggregate(products, carts, dateRange)

	logrus.WithFields(logrus.Fields{
		"start_date":         filters.StartDate.Format(time.DateOnly),
		"end_date":           filters.EndDate.Format(time.DateOnly),
		"total_appointments": summary.Kpis.TotalAppointments,
		"series_points":      len(summary.Series),
		"categories":         len(summary.ByCategory),
	}).Debug("Resumo analítico calculado")

	return summary, nil
}

// fetchCatalog busca produtos e carrinhos da fonte externa em paralelo
func (s *Service) fetchCatalog(ctx context.Context) ([]*domain.Product, []*domain.Cart, error) {
	var (
		products    []*domain.Product
		carts       []*domain.Cart
		productsErr error
		cartsErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		products, productsErr = s.catalogService.GetProducts(ctx)
	}()

	go func() {
		defer wg.Done()
		carts, cartsErr = s.catalogService.GetCarts(ctx)
	}()

	wg.Wait()

	if productsErr != nil {
		return nil, nil, fmt.Errorf("erro ao obter produtos da fonte externa: %w", productsErr)
	}
	if cartsErr != nil {
		return nil, nil, fmt.Errorf("erro ao obter carrinhos da fonte externa: %w", cartsErr)
	}

	return products, carts, nil
}
