package handler

import (
	"fmt"

	"cornerstore/internal/domain"
	"cornerstore/internal/server"
	"cornerstore/internal/service"
	"cornerstore/internal/validation"

	"github.com/labstack/echo/v4"
)

// CashiersHandler exposes the cashier resource endpoints.
type CashiersHandler struct {
	Handler
	cashiers *service.CashiersService
}

// NewCashiersHandler constructs a CashiersHandler.
func NewCashiersHandler(s *server.Server, cashiers *service.CashiersService) *CashiersHandler {
	return &CashiersHandler{
		Handler:  NewHandler(s),
		cashiers: cashiers,
	}
}

// GetCashierRequest is the payload of GET /cashiers/:id. The id carries
// no validation rules: any id that matches no row, zero included, is a
// lookup miss and becomes a 404.
type GetCashierRequest struct {
	ID int `param:"id"`
}

func (r *GetCashierRequest) Validate() error {
	return validation.Struct(r)
}

// CreateCashierRequest is the payload of POST /cashiers. Any client-sent
// id is ignored; the store assigns one.
type CreateCashierRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

func (r *CreateCashierRequest) Validate() error {
	return validation.Struct(r)
}

// Get returns one cashier with the full nested order graph.
func (h *CashiersHandler) Get(c echo.Context, req *GetCashierRequest) (*domain.CashierDTO, error) {
	return h.cashiers.Get(c.Request().Context(), req.ID)
}

// Create persists a new cashier and points Location at it.
func (h *CashiersHandler) Create(c echo.Context, req *CreateCashierRequest) (*domain.CashierDTO, error) {
	cashier := &domain.Cashier{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	dto, err := h.cashiers.Create(c.Request().Context(), cashier)
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/cashiers/%d", dto.ID))
	return dto, nil
}
