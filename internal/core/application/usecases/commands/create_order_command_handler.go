package commands

import (
	"context"
	"log/slog"

	"pedido/internal/core/domain/model/order"
	"pedido/internal/core/ports"
)

// CreateOrderCommandHandler orchestrates order placement: it resolves the
// catalog price of every requested line, computes the total, and commits
// the priced order in a single transaction.
//
// The handling is two-phase. Phase one consults the catalog for each line
// and builds priced items in memory; no write happens yet, so a failing
// lookup aborts the whole placement with nothing persisted. Phase two runs
// only when every lookup succeeded: the aggregate is created in PENDING
// status and written together with its items in one unit of work.
//
// Lookup failures propagate typed (ports.ProductNotFoundError,
// ports.CatalogUnavailableError) and are never retried here.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a
// ProductCatalog for price resolution.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		logger:     logger.With("component", "create_order_command_handler"),
	}
}

// Handle processes the order placement command and returns the persisted
// aggregate with its store-assigned identifiers.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Placing order", "customerId", cmd.CustomerID(), "lines", len(cmd.Lines()))

	items, err := h.resolvePrices(ctx, cmd.Lines())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.CustomerID(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order placed",
		"orderId", placed.ID().String(), "totalAmount", placed.TotalAmount())
	return placed, nil
}

// resolvePrices consults the catalog for every requested line, in request
// order, and returns priced items. The first failing lookup aborts the
// whole resolution.
func (h *CreateOrderCommandHandler) resolvePrices(
	ctx context.Context,
	lines []CreateOrderLine,
) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		product, err := h.catalog.GetProduct(ctx, line.ProductID)
		if err != nil {
			h.logger.WarnContext(ctx, "Catalog lookup failed", "productId", line.ProductID, "error", err)
			return nil, err
		}

		item, err := order.NewItem(product.ID, line.Quantity, product.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
