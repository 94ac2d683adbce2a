// Package catalogclient provides HTTP clients for the product catalog and
// customer directory services. Both are synchronous JSON APIs owned by other
// teams; every call carries a per-attempt timeout and transient failures are
// retried with bounded exponential backoff.
package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"

	"github.com/cenkalti/backoff/v4"
)

// productResponse mirrors the catalog service's product JSON.
type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// ProductCatalogClient implements the product catalog port over HTTP.
type ProductCatalogClient struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxElapsed time.Duration
}

// NewProductCatalogClient creates a catalog client.
// timeout bounds each attempt; maxElapsed bounds the whole retry loop.
func NewProductCatalogClient(baseURL string, timeout, maxElapsed time.Duration) *ProductCatalogClient {
	return &ProductCatalogClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
		maxElapsed: maxElapsed,
	}
}

// GetByIDs resolves a batch of product identifiers in one request.
// Identifiers the catalog does not know are simply absent from the result.
// Server errors and transport failures are retried; a 4xx response is not,
// since repeating a bad request cannot fix it.
func (c *ProductCatalogClient) GetByIDs(ctx context.Context, ids []string) ([]*product.Product, error) {
	requestURL := fmt.Sprintf(
		"%s/api/v1/produtos?ids=%s",
		c.baseURL,
		url.QueryEscape(strings.Join(ids, ",")),
	)

	var responses []productResponse
	operation := func() error {
		return c.fetch(ctx, requestURL, &responses)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.maxElapsed
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("product catalog request failed: %w", err)
	}

	products := make([]*product.Product, 0, len(responses))
	for _, response := range responses {
		price, err := kernel.NewMoneyFromFloat(response.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s has invalid price: %w", response.ID, err)
		}

		resolved, err := product.NewProduct(
			response.ID,
			response.Name,
			price,
			product.Category(response.Category),
			response.Description,
			response.Image,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, resolved)
	}

	return products, nil
}

// fetch runs one attempt with its own timeout and decodes the response body.
func (c *ProductCatalogClient) fetch(ctx context.Context, requestURL string, out *[]productResponse) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, requestURL, nil)
	if err != nil {
		return backoff.Permanent(err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusOK:
		if err = json.NewDecoder(response.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding catalog response: %w", err))
		}
		return nil
	case response.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("catalog returned status %d", response.StatusCode)
	default:
		return backoff.Permanent(fmt.Errorf("catalog returned status %d", response.StatusCode))
	}
}
