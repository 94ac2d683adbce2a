package catalogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pedidos/internal/core/domain/model/customer"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/cenkalti/backoff/v4"
)

// customerResponse mirrors the customer directory's JSON.
type customerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	TaxID string `json:"taxId"`
}

// errCustomerNotFound flows through the retry loop to distinguish a clean
// 404 from a transport failure.
var errCustomerNotFound = errors.New("customer not found")

// CustomerDirectoryClient implements the customer directory port over HTTP.
type CustomerDirectoryClient struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxElapsed time.Duration
}

// NewCustomerDirectoryClient creates a directory client.
// timeout bounds each attempt; maxElapsed bounds the whole retry loop.
func NewCustomerDirectoryClient(baseURL string, timeout, maxElapsed time.Duration) *CustomerDirectoryClient {
	return &CustomerDirectoryClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
		maxElapsed: maxElapsed,
	}
}

// GetByID resolves a customer by directory identifier.
// A 404 yields (nil, nil): the caller treats the order as anonymous.
func (c *CustomerDirectoryClient) GetByID(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	requestURL := fmt.Sprintf("%s/api/v1/clientes/%s", c.baseURL, id.String())

	var response customerResponse
	operation := func() error {
		return c.fetch(ctx, requestURL, &response)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.maxElapsed
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		if errors.Is(err, errCustomerNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("customer directory request failed: %w", err)
	}

	return c.toDomain(response)
}

// fetch runs one attempt with its own timeout and decodes the response body.
func (c *CustomerDirectoryClient) fetch(ctx context.Context, requestURL string, out *customerResponse) error {
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
			return backoff.Permanent(fmt.Errorf("decoding directory response: %w", err))
		}
		return nil
	case response.StatusCode == http.StatusNotFound:
		return backoff.Permanent(errCustomerNotFound)
	case response.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("directory returned status %d", response.StatusCode)
	default:
		return backoff.Permanent(fmt.Errorf("directory returned status %d", response.StatusCode))
	}
}

func (c *CustomerDirectoryClient) toDomain(response customerResponse) (*customer.Customer, error) {
	id, err := kernel.UUIDFromString(response.ID)
	if err != nil {
		return nil, fmt.Errorf("directory returned invalid customer id %q: %w", response.ID, err)
	}

	email, err := customer.NewEmail(response.Email)
	if err != nil {
		return nil, err
	}

	taxID, err := customer.NewTaxID(response.TaxID)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, response.Name, email, taxID)
}
