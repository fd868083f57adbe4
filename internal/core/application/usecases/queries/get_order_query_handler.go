package queries

import (
	"context"
	"database/sql"
	"errors"

	"pedido/internal/core/domain/model/kernel"
	"pedido/internal/core/domain/model/order"
	"pedido/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its items.
// Returns errs.ObjectNotFoundError when no order exists for the identifier.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for the requested order.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var customerID string
	var totalAmount float64
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			total_amount,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	if err := row.Scan(&customerID, &totalAmount, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	response := OrderResponse{
		ID:          query.OrderID(),
		CustomerID:  customerID,
		Items:       make([]OrderItemResponse, 0),
		TotalAmount: totalAmount,
		Status:      order.Status(status),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var productID int64
		var quantity int
		var unitPrice float64

		if err = rows.Scan(&id, &productID, &quantity, &unitPrice); err != nil {
			return OrderResponse{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}

		response.Items = append(response.Items, OrderItemResponse{
			ID:        itemID,
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}

	if err = rows.Err(); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}
