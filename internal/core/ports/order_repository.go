package ports

import (
	"context"

	"pedido/internal/core/domain/model/kernel"
	"pedido/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository owns identity assignment: on Add it mints identifiers for
// the order and all of its items, and persists them as one unit.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// Identifiers are assigned to the order and to each item if absent.
	// The aggregate and its items are written atomically.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all of its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves the full current set of persisted orders.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
