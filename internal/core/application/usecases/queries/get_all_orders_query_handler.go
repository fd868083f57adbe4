package queries

import (
	"context"

	"pedido/internal/core/domain/model/kernel"
	"pedido/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all persisted orders from the database.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query := NewGetAllOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for listing orders.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their items.
// Results are sorted by order ID for consistent output; items keep their
// insertion order within each order.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			total_amount,
			status
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var customerID string
		var totalAmount float64
		var status int

		if err = rows.Scan(&id, &customerID, &totalAmount, &status); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		index[id] = len(orders)
		orders = append(orders, OrderResponse{
			ID:          orderID,
			CustomerID:  customerID,
			Items:       make([]OrderItemResponse, 0),
			TotalAmount: totalAmount,
			Status:      order.Status(status),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			quantity,
			unit_price
		FROM order_items
		ORDER BY order_id, position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var id, orderID uuid.UUID
		var productID int64
		var quantity int
		var unitPrice float64

		if err = itemRows.Scan(&id, &orderID, &productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		pos, ok := index[orderID]
		if !ok {
			continue
		}

		orders[pos].Items = append(orders[pos].Items, OrderItemResponse{
			ID:        itemID,
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}

	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
