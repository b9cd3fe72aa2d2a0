package handler

import (
	"fmt"

	"cornerstore/internal/domain"
	"cornerstore/internal/server"
	"cornerstore/internal/service"
	"cornerstore/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ProductsHandler exposes the product resource endpoints.
type ProductsHandler struct {
	Handler
	products *service.ProductsService
}

// NewProductsHandler constructs a ProductsHandler.
func NewProductsHandler(s *server.Server, products *service.ProductsService) *ProductsHandler {
	return &ProductsHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

// ListProductsRequest is the payload of GET /products.
type ListProductsRequest struct {
	Search string `query:"search"`
}

func (r *ListProductsRequest) Validate() error {
	return validation.Struct(r)
}

// CreateProductRequest is the payload of POST /products.
type CreateProductRequest struct {
	ProductName string          `json:"productName" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  int             `json:"categoryId" validate:"required"`
}

func (r *CreateProductRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateProductRequest is the payload of PUT /products/:id. The body id
// must match the path id; the service rejects a mismatch.
type UpdateProductRequest struct {
	PathID      int             `param:"id" json:"-"`
	ID          int             `json:"id"`
	ProductName string          `json:"productName" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  int             `json:"categoryId" validate:"required"`
}

func (r *UpdateProductRequest) Validate() error {
	return validation.Struct(r)
}

// List returns products with their category, optionally filtered by the
// search query parameter.
func (h *ProductsHandler) List(c echo.Context, req *ListProductsRequest) ([]domain.ProductDTO, error) {
	return h.products.List(c.Request().Context(), req.Search)
}

// Create persists a new product and points Location at it.
func (h *ProductsHandler) Create(c echo.Context, req *CreateProductRequest) (*domain.ProductDTO, error) {
	product := &domain.Product{
		ProductName: req.ProductName,
		Price:       req.Price,
		Brand:       req.Brand,
		CategoryID:  req.CategoryID,
	}

	dto, err := h.products.Create(c.Request().Context(), product)
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/products/%d", dto.ID))
	return dto, nil
}

// Update overwrites an existing product's scalar fields.
func (h *ProductsHandler) Update(c echo.Context, req *UpdateProductRequest) error {
	product := &domain.Product{
		ID:          req.ID,
		ProductName: req.ProductName,
		Price:       req.Price,
		Brand:       req.Brand,
		CategoryID:  req.CategoryID,
	}

	return h.products.Update(c.Request().Context(), req.PathID, product)
}
