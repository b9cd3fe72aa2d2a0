package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashierDTO is the wire shape for a cashier. Orders is only populated on
// the cashier detail read; when a cashier is embedded inside an order it
// stays empty.
type CashierDTO struct {
	ID        int        `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Orders    []OrderDTO `json:"orders,omitempty"`
}

// CategoryDTO is the wire shape for a category.
type CategoryDTO struct {
	ID           int    `json:"id"`
	CategoryName string `json:"categoryName"`
}

// ProductDTO is the wire shape for a product with its embedded category.
type ProductDTO struct {
	ID          int             `json:"id"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  int             `json:"categoryId"`
	Category    *CategoryDTO    `json:"category"`
}

// OrderProductDTO is the wire shape for a line item.
type OrderProductDTO struct {
	ID        int         `json:"id"`
	OrderID   int         `json:"orderId"`
	ProductID int         `json:"productId"`
	Quantity  int         `json:"quantity"`
	Product   *ProductDTO `json:"product"`
}

// OrderDTO is the wire shape for an order. Total is recomputed from the
// entity at projection time and carried as a plain field.
type OrderDTO struct {
	ID            int               `json:"id"`
	CashierID     int               `json:"cashierId"`
	Cashier       *CashierDTO       `json:"cashier"`
	PaidOnDate    *time.Time        `json:"paidOnDate"`
	OrderProducts []OrderProductDTO `json:"orderProducts"`
	Total         decimal.Decimal   `json:"total"`
}

// NewCategoryDTO projects a category.
func NewCategoryDTO(c Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, CategoryName: c.CategoryName}
}

// NewProductDTO projects a product, embedding its category when loaded.
func NewProductDTO(p Product) ProductDTO {
	dto := ProductDTO{
		ID:          p.ID,
		ProductName: p.ProductName,
		Price:       p.Price,
		Brand:       p.Brand,
		CategoryID:  p.CategoryID,
	}
	if p.Category != nil {
		category := NewCategoryDTO(*p.Category)
		dto.Category = &category
	}
	return dto
}

// NewOrderDTO projects an order null-safely at every hop: a missing
// cashier, product, or category simply stays null in the output, and a
// null paid date is passed through as stored.
func NewOrderDTO(o Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID,
		CashierID:     o.CashierID,
		PaidOnDate:    o.PaidOnDate,
		OrderProducts: make([]OrderProductDTO, 0, len(o.OrderProducts)),
		Total:         o.Total(),
	}
	if o.Cashier != nil {
		dto.Cashier = &CashierDTO{
			ID:        o.Cashier.ID,
			FirstName: o.Cashier.FirstName,
			LastName:  o.Cashier.LastName,
		}
	}
	for _, op := range o.OrderProducts {
		opDTO := OrderProductDTO{
			ID:        op.ID,
			OrderID:   op.OrderID,
			ProductID: op.ProductID,
			Quantity:  op.Quantity,
		}
		if op.Product != nil {
			product := NewProductDTO(*op.Product)
			opDTO.Product = &product
		}
		dto.OrderProducts = append(dto.OrderProducts, opDTO)
	}
	return dto
}

// NewCashierDTO projects a cashier with the fully eager order graph.
//
// Unlike NewOrderDTO this path assumes every line item's product and
// category were loaded; an order whose paid date is null gets `now`
// substituted in the response only, nothing is persisted.
func NewCashierDTO(c Cashier, now time.Time) CashierDTO {
	dto := CashierDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Orders:    make([]OrderDTO, 0, len(c.Orders)),
	}
	for _, o := range c.Orders {
		orderDTO := NewOrderDTO(o)
		orderDTO.Cashier = nil
		if orderDTO.PaidOnDate == nil {
			paidOn := now
			orderDTO.PaidOnDate = &paidOn
		}
		dto.Orders = append(dto.Orders, orderDTO)
	}
	return dto
}
