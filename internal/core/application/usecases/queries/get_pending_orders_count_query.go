package queries

import (
	"errors"

	"pedido/internal/pkg/guard"
)

var (
	ErrGetPendingOrdersCountQueryIsNotConstructed = errors.New(
		"GetPendingOrdersCountQuery must be created via NewGetPendingOrdersCountQuery constructor",
	)
)

// GetPendingOrdersCountQuery counts orders that are still in Pending status.
type GetPendingOrdersCountQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersCountQuery creates a query to count pending orders.
// This is a parameterless query.
func NewGetPendingOrdersCountQuery() GetPendingOrdersCountQuery {
	return GetPendingOrdersCountQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersCountQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersCountQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersCountQueryIsNotConstructed)
}
