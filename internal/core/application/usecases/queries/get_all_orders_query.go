// Package queries contains read-only operations over the order store.
// Read models go straight to the database and bypass the aggregate,
// following the CQRS split used on the write side.
package queries

import (
	"errors"

	"pedido/internal/core/domain/model/kernel"
	"pedido/internal/core/domain/model/order"
	"pedido/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every persisted order with its items.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all persisted orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderItemResponse represents one line item in a read model.
type OrderItemResponse struct {
	ID        kernel.UUID
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// OrderResponse represents a persisted order in a read model: identity,
// customer, items, computed total, and lifecycle status.
type OrderResponse struct {
	ID          kernel.UUID
	CustomerID  string
	Items       []OrderItemResponse
	TotalAmount float64
	Status      order.Status
}
