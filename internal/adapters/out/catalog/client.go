// Package catalog implements the ProductCatalog port against the remote
// catalog service's HTTP API (GET {base}/produtos/{id}).
//
// The client translates the remote's responses into the port's three
// outcomes: a 200 with a product body, a 404 into ProductNotFoundError, and
// everything else (transport errors, timeouts, unexpected statuses,
// malformed bodies) into CatalogUnavailableError.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pedido/internal/core/ports"
)

// Ensure Client implements the port at compile time.
var _ ports.ProductCatalog = (*Client)(nil)

// Client is an HTTP client for the catalog service.
// Every lookup is bounded by the configured timeout; an expired lookup
// surfaces as CatalogUnavailableError.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL.
// The timeout bounds each price lookup.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetProduct looks up the product with the given identifier and returns its
// identity, name, and current price.
func (c *Client) GetProduct(ctx context.Context, productID int64) (ports.Product, error) {
	url := fmt.Sprintf("%s/produtos/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.Product{}, ports.NewCatalogUnavailableError(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Product{}, ports.NewCatalogUnavailableError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ports.Product{}, ports.NewProductNotFoundError(productID)
	case resp.StatusCode != http.StatusOK:
		return ports.Product{}, ports.NewCatalogUnavailableError(
			fmt.Errorf("unexpected status %d from catalog", resp.StatusCode))
	}

	var dto productDTO
	if err = json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return ports.Product{}, ports.NewCatalogUnavailableError(
			fmt.Errorf("decoding catalog response: %w", err))
	}

	return dto.toPort(), nil
}
