package fakestoreclient

import (
	"context"

	fakestoredomain "github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/integrator/fakestore/domain"
)

// GetCarts busca todos os carrinhos (pedidos) da Fake Store API
func (c *FakeStoreClient) GetCarts(ctx context.Context) ([]fakestoredomain.Cart, error) {
	var carts []fakestoredomain.Cart

	if err := c.get(ctx, "/carts", &carts); err != nil {
		return nil, err
	}

	return carts, nil
}
