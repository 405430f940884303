package fakestoreclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	fakestoredomain "github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/integrator/fakestore/domain"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	GetProducts(ctx context.Context) ([]fakestoredomain.Product, error)
	GetCarts(ctx context.Context) ([]fakestoredomain.Cart, error)
}

type FakeStoreClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da Fake Store API
func NewClient(cfg *config.Config) Client {
	return &FakeStoreClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.FakeStore.TimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

// get executa um GET no endpoint indicado e decodifica a resposta JSON em out
func (c *FakeStoreClient) get(ctx context.Context, resource string, out any) error {
	endpoint, err := url.Parse(c.config.FakeStore.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
