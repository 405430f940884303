package fakestoreclient

import (
	"context"

	fakestoredomain "github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/integrator/fakestore/domain"
)

// GetProducts busca o catálogo completo de produtos da Fake Store API
func (c *FakeStoreClient) GetProducts(ctx context.Context) ([]fakestoredomain.Product, error) {
	var products []fakestoredomain.Product

	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}

	return products, nil
}
