package handler

import (
	"cornerstore/internal/server"
	"cornerstore/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health   *HealthHandler
	Cashiers *CashiersHandler
	Products *ProductsHandler
	Orders   *OrdersHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Cashiers: NewCashiersHandler(s, services.Cashiers),
		Products: NewProductsHandler(s, services.Products),
		Orders:   NewOrdersHandler(s, services.Orders),
	}
}
