package http

import (
	"errors"
	"net/http"

	"pedido/internal/core/application/usecases/commands"
	"pedido/internal/core/application/usecases/queries"
	"pedido/internal/core/domain/model/kernel"
	"pedido/internal/core/domain/model/order"
	"pedido/internal/core/ports"
	"pedido/internal/generated/servers"
	"pedido/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderHandler     queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		getOrderHandler:     getOrderHandler,
	}
}

// CreateOrder handles POST /api/pedidos - places a new order.
//
// Failures map onto status codes by class: a malformed body, an invalid
// command, or an unknown product is the caller's fault (400); a catalog
// that cannot be consulted is a dependency outage (503); anything else,
// persistence included, is a server fault (500).
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.CreateOrderLine, len(newOrder.Items))
	for i, item := range newOrder.Items {
		lines[i] = commands.CreateOrderLine{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.CustomerId, lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		code, message := mapPlacementError(err)
		return ctx.JSON(code, servers.Error{
			Code:    int32(code),
			Message: message,
		})
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(placed))
}

// GetOrders handles GET /api/pedidos - retrieves all persisted orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, resp := range orders {
		response[i] = orderFromReadModel(resp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/pedidos/{id} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found: " + orderID.String(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(resp))
}

// mapPlacementError classifies a placement failure into an HTTP status
// and a client-facing message.
func mapPlacementError(err error) (int, string) {
	switch {
	case errors.Is(err, ports.ErrProductNotFound):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ports.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "Catalog is unavailable, try again later"
	case errors.Is(err, commands.ErrCustomerIsRequired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, "Invalid order data: " + err.Error()
	default:
		return http.StatusInternalServerError, "Failed to create order"
	}
}

func orderFromAggregate(placed *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(placed.Items()))
	for i, item := range placed.Items() {
		items[i] = servers.OrderItem{
			Id:        item.ID().Bytes(),
			ProductId: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		}
	}

	return servers.Order{
		Id:          placed.ID().Bytes(),
		CustomerId:  placed.CustomerID(),
		Items:       items,
		TotalAmount: placed.TotalAmount(),
		Status:      servers.OrderStatus(placed.Status().String()),
	}
}

func orderFromReadModel(resp queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = servers.OrderItem{
			Id:        item.ID.Bytes(),
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return servers.Order{
		Id:          resp.ID.Bytes(),
		CustomerId:  resp.CustomerID,
		Items:       items,
		TotalAmount: resp.TotalAmount,
		Status:      servers.OrderStatus(resp.Status.String()),
	}
}
