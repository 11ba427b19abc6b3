// Package http exposes the fulfillment use cases over a REST API built on
// echo. Request and response shapes are local to this package; the domain
// model never crosses the wire.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Error is the common error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItem is one cart line in an order placement request. The catalog data
// travels with the request: the caller supplies each product's price and
// available stock alongside the wanted quantity.
type OrderItem struct {
	Name              string `json:"name"`
	Price             string `json:"price"`
	AvailableQuantity int    `json:"available_quantity"`
	Quantity          int    `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	OrderID      string      `json:"order_id,omitempty"`
	ShippingType string      `json:"shipping_type"`
	DueAt        *time.Time  `json:"due_at,omitempty"`
	Items        []OrderItem `json:"items"`
}

// PlaceOrderResponse returns the shipping identifier of the registered
// shipment.
type PlaceOrderResponse struct {
	ShippingID string `json:"shipping_id"`
}

// ShipmentStatusResponse is the body of GET /api/v1/shipments/:id/status.
type ShipmentStatusResponse struct {
	ShippingID string `json:"shipping_id"`
	Status     string `json:"status"`
}

// ShippingTypesResponse is the body of GET /api/v1/shipping-types.
type ShippingTypesResponse struct {
	ShippingTypes []string `json:"shipping_types"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	completeShipmentHandler commands.CompleteShipmentCommandHandler
	failShipmentHandler     commands.FailShipmentCommandHandler

	// Query handlers
	getShipmentStatusHandler queries.GetShipmentStatusQueryHandler
	listShippingTypesHandler queries.ListShippingTypesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	completeShipmentHandler commands.CompleteShipmentCommandHandler,
	failShipmentHandler commands.FailShipmentCommandHandler,
	getShipmentStatusHandler queries.GetShipmentStatusQueryHandler,
	listShippingTypesHandler queries.ListShippingTypesQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		completeShipmentHandler:  completeShipmentHandler,
		failShipmentHandler:      failShipmentHandler,
		getShipmentStatusHandler: getShipmentStatusHandler,
		listShippingTypesHandler: listShippingTypesHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/shipments/:id/status", s.GetShipmentStatus)
	v1.POST("/shipments/:id/complete", s.CompleteShipment)
	v1.POST("/shipments/:id/fail", s.FailShipment)
	v1.GET("/shipping-types", s.ListShippingTypes)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders. Stages the request items into a
// cart, commits the reservations and registers a shipment.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	reservationCart := cart.NewCart()
	for _, item := range request.Items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid price for item " + item.Name,
			})
		}

		p, err := product.NewProduct(item.Name, price, item.AvailableQuantity)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid item data: " + err.Error(),
			})
		}

		if err = reservationCart.SetItem(p, item.Quantity); err != nil {
			return s.domainError(ctx, err)
		}
	}

	dueAt := time.Time{}
	if request.DueAt != nil {
		dueAt = request.DueAt.UTC()
	}

	cmd, err := commands.NewPlaceOrderCommand(reservationCart, request.ShippingType, request.OrderID, dueAt)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	shippingID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ShippingID: shippingID.String()})
}

// GetShipmentStatus handles GET /api/v1/shipments/:id/status.
func (s *Server) GetShipmentStatus(ctx echo.Context) error {
	shippingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipping identifier",
		})
	}

	query, err := queries.NewGetShipmentStatusQuery(shippingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipping identifier",
		})
	}

	response, err := s.getShipmentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentStatusResponse{
		ShippingID: response.ShippingID.String(),
		Status:     response.Status.String(),
	})
}

// CompleteShipment handles POST /api/v1/shipments/:id/complete.
func (s *Server) CompleteShipment(ctx echo.Context) error {
	shippingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipping identifier",
		})
	}

	cmd, err := commands.NewCompleteShipmentCommand(shippingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipping identifier",
		})
	}

	if err = s.completeShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailShipment handles POST /api/v1/shipments/:id/fail.
func (s *Server) FailShipment(ctx echo.Context) error {
	shippingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipping identifier",
		})
	}

	cmd, err := commands.NewFailShipmentCommand(shippingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipping identifier",
		})
	}

	if err = s.failShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListShippingTypes handles GET /api/v1/shipping-types.
func (s *Server) ListShippingTypes(ctx echo.Context) error {
	response, err := s.listShippingTypesHandler.Handle(
		ctx.Request().Context(), queries.NewListShippingTypesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list shipping types",
		})
	}

	return ctx.JSON(http.StatusOK, ShippingTypesResponse{ShippingTypes: response.ShippingTypes})
}

// domainError maps domain and application errors to HTTP status codes.
func (s *Server) domainError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	switch {
	case errors.Is(err, commands.ErrEmptyCart),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, shipment.ErrInvalidShippingType),
		errors.Is(err, shipment.ErrInvalidDueDate):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrQueueUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
