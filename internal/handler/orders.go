package handler

import (
	"fmt"
	"time"

	"cornerstore/internal/domain"
	"cornerstore/internal/server"
	"cornerstore/internal/service"
	"cornerstore/internal/validation"

	"github.com/labstack/echo/v4"
)

// OrdersHandler exposes the order resource endpoints.
type OrdersHandler struct {
	Handler
	orders *service.OrdersService
}

// NewOrdersHandler constructs an OrdersHandler.
func NewOrdersHandler(s *server.Server, orders *service.OrdersService) *OrdersHandler {
	return &OrdersHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

// GetOrderRequest is the payload of GET /orders/:id. Like the other
// path ids, the id is not validated; a miss on any value is a 404.
type GetOrderRequest struct {
	ID int `param:"id"`
}

func (r *GetOrderRequest) Validate() error {
	return validation.Struct(r)
}

// ListOrdersRequest is the payload of GET /orders.
type ListOrdersRequest struct {
	OrderDate string `query:"orderDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r *ListOrdersRequest) Validate() error {
	return validation.Struct(r)
}

// CreateOrderLineItem is one line item inside an order creation request.
type CreateOrderLineItem struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity" validate:"min=0"`
}

// CreateOrderRequest is the payload of POST /orders. Line items are
// created atomically alongside the order; they have no endpoint of
// their own.
type CreateOrderRequest struct {
	CashierID     int                   `json:"cashierId" validate:"required"`
	PaidOnDate    *time.Time            `json:"paidOnDate"`
	OrderProducts []CreateOrderLineItem `json:"orderProducts" validate:"omitempty,dive"`
}

func (r *CreateOrderRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteOrderRequest is the payload of DELETE /orders/:id.
type DeleteOrderRequest struct {
	ID int `param:"id"`
}

func (r *DeleteOrderRequest) Validate() error {
	return validation.Struct(r)
}

// Get returns one order projected null-safely.
func (h *OrdersHandler) Get(c echo.Context, req *GetOrderRequest) (*domain.OrderDTO, error) {
	return h.orders.Get(c.Request().Context(), req.ID)
}

// List returns all orders, optionally filtered to one calendar date.
func (h *OrdersHandler) List(c echo.Context, req *ListOrdersRequest) ([]domain.OrderDTO, error) {
	return h.orders.List(c.Request().Context(), req.OrderDate)
}

// Create persists an order with its line items and points Location at it.
func (h *OrdersHandler) Create(c echo.Context, req *CreateOrderRequest) (*domain.OrderDTO, error) {
	order := &domain.Order{
		CashierID:  req.CashierID,
		PaidOnDate: req.PaidOnDate,
	}
	for _, item := range req.OrderProducts {
		order.OrderProducts = append(order.OrderProducts, domain.OrderProduct{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	dto, err := h.orders.Create(c.Request().Context(), order)
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/orders/%d", dto.ID))
	return dto, nil
}

// Delete removes an order and its line items.
func (h *OrdersHandler) Delete(c echo.Context, req *DeleteOrderRequest) error {
	return h.orders.Delete(c.Request().Context(), req.ID)
}
