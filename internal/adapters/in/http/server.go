// Package http exposes the order service's public API over echo: order
// placement, order lookup, a health probe, and the published OpenAPI
// document. Handlers translate between wire shapes and the application's
// commands and queries, and map typed failures onto the documented error
// codes.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/application/validation"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrderHandler runs the order placement flow.
type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

// GetOrderHandler reads one order with its items.
type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

// Server handles the public HTTP surface of the order service.
type Server struct {
	createOrderHandler CreateOrderHandler
	getOrderHandler    GetOrderHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	getOrderHandler GetOrderHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		getOrderHandler:    getOrderHandler,
	}
}

// CreateOrderRequest is the wire shape of POST /v1/orders.
type CreateOrderRequest struct {
	CustomerID    int64              `json:"customer_id"`
	RestaurantID  int64              `json:"restaurant_id"`
	AddressID     *int64             `json:"address_id,omitempty"`
	Items         []OrderItemRequest `json:"items"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	CustomerEmail string             `json:"customer_email,omitempty"`
}

// OrderItemRequest is one requested line of an order, unpriced.
type OrderItemRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// OrderResponse is the wire shape of a full order, items included.
type OrderResponse struct {
	OrderID       string              `json:"order_id"`
	CustomerID    int64               `json:"customer_id"`
	RestaurantID  int64               `json:"restaurant_id"`
	AddressID     *int64              `json:"address_id"`
	OrderStatus   string              `json:"order_status"`
	PaymentStatus string              `json:"payment_status"`
	OrderTotal    float64             `json:"order_total"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one priced line of an order as persisted.
type OrderItemResponse struct {
	OrderItemID string  `json:"order_item_id"`
	ItemID      int64   `json:"item_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// ErrorResponse is the wire shape of every error the API returns. The
// correlation id is always present so failures can be traced across
// services; the order id appears only on payment failures, where a failed
// order row exists for the caller to inspect.
type ErrorResponse struct {
	Code          string `json:"code"`
	Message       string `json:"message,omitempty"`
	OrderID       string `json:"order_id,omitempty"`
	CorrelationID string `json:"correlationId"`
}

// CreateOrder handles POST /v1/orders - runs the order placement flow.
func (s *Server) CreateOrder(ctx echo.Context) error {
	cid := correlationID(ctx)

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:          "INVALID_REQUEST",
			Message:       "Invalid request body",
			CorrelationID: cid.String(),
		})
	}

	items := make([]ports.ItemRequest, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, ports.ItemRequest{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.CustomerID,
		request.RestaurantID,
		request.AddressID,
		items,
		request.PaymentMethod,
		request.CustomerEmail,
		cid,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:          "INVALID_REQUEST",
			Message:       err.Error(),
			CorrelationID: cid.String(),
		})
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.createOrderError(ctx, err, cid)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// createOrderError maps placement failures onto the documented error codes.
func (s *Server) createOrderError(ctx echo.Context, err error, cid kernel.CorrelationID) error {
	var paymentErr *commands.PaymentFailedError
	if errors.As(err, &paymentErr) {
		return ctx.JSON(http.StatusPaymentRequired, ErrorResponse{
			Code:          "PAYMENT_FAILED",
			OrderID:       paymentErr.OrderID.String(),
			CorrelationID: cid.String(),
		})
	}

	var selectionErr *validation.InvalidMenuSelectionError
	if errors.As(err, &selectionErr) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:          "INVALID_MENU_SELECTION",
			Message:       selectionErr.Reason,
			CorrelationID: cid.String(),
		})
	}

	switch {
	case errors.Is(err, validation.ErrInvalidCustomer):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:          "INVALID_CUSTOMER",
			CorrelationID: cid.String(),
		})
	case errors.Is(err, validation.ErrInvalidAddressForCustomer):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:          "INVALID_ADDRESS_FOR_CUSTOMER",
			CorrelationID: cid.String(),
		})
	case errors.Is(err, validation.ErrEmptyOrder):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:          "EMPTY_ORDER",
			CorrelationID: cid.String(),
		})
	case errors.Is(err, validation.ErrMenuValidationFailed):
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:          "MENU_VALIDATION_FAILED",
			CorrelationID: cid.String(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:          "INTERNAL_ERROR",
			CorrelationID: cid.String(),
		})
	}
}

// GetOrder handles GET /v1/orders/{order_id} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	cid := correlationID(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:          "INVALID_REQUEST",
			Message:       "order_id must be a valid UUID",
			CorrelationID: cid.String(),
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:          "INVALID_REQUEST",
			Message:       err.Error(),
			CorrelationID: cid.String(),
		})
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:          "ORDER_NOT_FOUND",
				CorrelationID: cid.String(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:          "INTERNAL_ERROR",
			CorrelationID: cid.String(),
		})
	}

	return ctx.JSON(http.StatusOK, queryToResponse(result))
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "order-service"})
}

func orderToResponse(placed *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(placed.Items()))
	for _, item := range placed.Items() {
		items = append(items, OrderItemResponse{
			OrderItemID: item.ID().String(),
			ItemID:      item.MenuItemID(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
		})
	}

	return OrderResponse{
		OrderID:       placed.ID().String(),
		CustomerID:    placed.CustomerID(),
		RestaurantID:  placed.RestaurantID(),
		AddressID:     placed.AddressID(),
		OrderStatus:   placed.Status().String(),
		PaymentStatus: placed.PaymentStatus().String(),
		OrderTotal:    placed.Total(),
		CreatedAt:     placed.CreatedAt(),
		Items:         items,
	}
}

func queryToResponse(result queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemResponse{
			OrderItemID: item.ID.String(),
			ItemID:      item.ItemID,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return OrderResponse{
		OrderID:       result.ID.String(),
		CustomerID:    result.CustomerID,
		RestaurantID:  result.RestaurantID,
		AddressID:     result.AddressID,
		OrderStatus:   result.Status,
		PaymentStatus: result.PaymentStatus,
		OrderTotal:    result.Total,
		CreatedAt:     result.CreatedAt,
		Items:         items,
	}
}
