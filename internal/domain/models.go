package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cashier is a store employee who processes orders.
type Cashier struct {
	ID        int
	FirstName string
	LastName  string
	Orders    []Order
}

// Category is a classification grouping for products.
type Category struct {
	ID           int
	CategoryName string
}

// Product is a sellable catalog item. It belongs to exactly one Category;
// Category is a non-owning reference and may be nil when not loaded.
type Product struct {
	ID          int
	ProductName string
	Price       decimal.Decimal
	Brand       string
	CategoryID  int
	Category    *Category
}

// Order is a transaction processed by a cashier. A nil PaidOnDate means
// the order is still open.
type Order struct {
	ID            int
	CashierID     int
	Cashier       *Cashier
	PaidOnDate    *time.Time
	OrderProducts []OrderProduct
}

// OrderProduct is a line item: a quantity of one product within one order.
// Product is a read-only reference, not owned by the line item.
type OrderProduct struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	Product   *Product
}

// Total computes the order total from the current line items:
// Σ quantity × product price. It is derived, never stored, so it can
// never go stale. Line items without a loaded product contribute zero.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, op := range o.OrderProducts {
		if op.Product == nil {
			continue
		}
		qty := decimal.NewFromInt(int64(op.Quantity))
		total = total.Add(op.Product.Price.Mul(qty))
	}
	return total
}
