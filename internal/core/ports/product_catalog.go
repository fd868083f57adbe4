package ports

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for catalog lookup outcomes. The distinction is
// load-bearing: "the product does not exist" is user-actionable, while
// "the catalog could not be consulted" is transient and retryable by the
// caller. The two map to different HTTP responses at the boundary.
var (
	ErrProductNotFound    = errors.New("product not found in catalog")
	ErrCatalogUnavailable = errors.New("catalog is unavailable")
)

// Product is the read model of a catalog entry as returned by the remote
// catalog service: identity, display name, and current price.
type Product struct {
	ID    int64
	Name  string
	Price float64
}

// ProductCatalog is the capability consumed by the order orchestration to
// resolve the authoritative price of each line item. Implementations must
// distinguish three outcomes per lookup:
//   - success: the Product is returned
//   - the catalog answered that the product does not exist:
//     a ProductNotFoundError
//   - anything else (network failure, timeout, unexpected response):
//     a CatalogUnavailableError
//
// Implementations must bound each lookup with a timeout; an expired lookup
// counts as unavailable. Retry policy, if any, belongs to the
// implementation, never to the orchestration.
type ProductCatalog interface {
	GetProduct(ctx context.Context, productID int64) (Product, error)
}

// ProductNotFoundError reports that the catalog has no product with the
// given identifier.
type ProductNotFoundError struct {
	ProductID int64
}

// NewProductNotFoundError creates a ProductNotFoundError for the given product.
func NewProductNotFoundError(productID int64) *ProductNotFoundError {
	return &ProductNotFoundError{ProductID: productID}
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", ErrProductNotFound, e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error {
	return ErrProductNotFound
}

// CatalogUnavailableError reports that the catalog could not be consulted:
// transport failure, timeout, or an unexpected response.
type CatalogUnavailableError struct {
	Cause error
}

// NewCatalogUnavailableError creates a CatalogUnavailableError wrapping the given cause.
func NewCatalogUnavailableError(cause error) *CatalogUnavailableError {
	return &CatalogUnavailableError{Cause: cause}
}

func (e *CatalogUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrCatalogUnavailable, e.Cause)
	}
	return ErrCatalogUnavailable.Error()
}

func (e *CatalogUnavailableError) Unwrap() error {
	return ErrCatalogUnavailable
}
