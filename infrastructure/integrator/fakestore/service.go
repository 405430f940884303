package fakestore

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/integrator/fakestore/fakestoreclient"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/config"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
	"github.com/brcanuto/beautybiz-insights-dashboard/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// CatalogIntegrator define a interface para obter o catálogo bruto
// (produtos e carrinhos) da fonte externa
type CatalogIntegrator interface {
	GetProducts(ctx context.Context) ([]*domain.Product, error)
	GetCarts(ctx context.Context) ([]*domain.Cart, error)
}

type FakeStoreService struct {
	cfg    *config.Config
	Client fakestoreclient.Client
}

func New(cfg *config.Config, client fakestoreclient.Client) CatalogIntegrator {
	return &FakeStoreService{
		cfg:    cfg,
		Client: client,
	}
}

// GetProducts obtém o catálogo de produtos e o converte para o domínio
// interno. O título passa por normalização de texto; a categoria é
// preservada como veio, pois a agregação agrupa pela string crua.
func (s *FakeStoreService) GetProducts(ctx context.Context) ([]*domain.Product, error) {
	resp, err := s.Client.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(resp))
	for _, p := range resp {
		products = append(products, &domain.Product{
			ID:       p.ID,
			Title:    utils.NormalizeText(p.Title),
			Price:    p.Price,
			Category: p.Category,
		})
	}

	return products, nil
}

// GetCarts obtém os carrinhos e converte as datas ISO 8601 da API para
// time.Time. Carrinhos com data não interpretável são descartados com
// log de aviso em vez de derrubar a busca inteira.
func (s *FakeStoreService) GetCarts(ctx context.Context) ([]*domain.Cart, error) {
	resp, err := s.Client.GetCarts(ctx)
	if err != nil {
		return nil, err
	}

	carts := make([]*domain.Cart, 0, len(resp))
	for _, c := range resp {
		timestamp, err := time.Parse(time.RFC3339, c.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"cart_id": c.ID,
				"date":    c.Date,
			}).Warn("Carrinho com data inválida descartado")
			continue
		}

		lines := make([]domain.CartLine, 0, len(c.Products))
		for _, line := range c.Products {
			lines = append(lines, domain.CartLine{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		}

		carts = append(carts, &domain.Cart{
			ID:        c.ID,
			Timestamp: timestamp,
			Lines:     lines,
		})
	}

	return carts, nil
}
