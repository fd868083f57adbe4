package queries

import (
	"context"

	"pedido/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrdersCountQueryHandler counts orders awaiting payment.
type GetPendingOrdersCountQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersCountQueryHandler creates a handler for the pending count.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersCountQueryHandler(db *gorm.DB) GetPendingOrdersCountQueryHandler {
	return GetPendingOrdersCountQueryHandler{db: db}
}

// Handle executes the count query.
func (h GetPendingOrdersCountQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersCountQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	result := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM orders WHERE status = ?",
		int(order.Pending),
	).Scan(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
