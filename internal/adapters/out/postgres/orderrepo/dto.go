// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"pedido/internal/core/domain/model/kernel"
	"pedido/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items cascade with their order: creating the order inserts its items,
// deleting it removes them.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  string    `gorm:"index"`
	Items       []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount float64
	Status      int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted line item. Position preserves the
// request order of items within their order.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID int64
	Quantity  int
	UnitPrice float64
	Position  int
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Identifiers must already be assigned.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Position:  i,
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID(),
		Items:       items,
		TotalAmount: aggregate.TotalAmount(),
		Status:      int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order aggregate.
// Items must be loaded in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemID, itemDTO.ProductID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.CustomerID, items, dto.TotalAmount, order.Status(dto.Status))
}
