package service

import (
	"cornerstore/internal/repository"
	"cornerstore/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Cashiers *CashiersService
	Products *ProductsService
	Orders   *OrdersService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Cashiers: NewCashiersService(s, repos),
		Products: NewProductsService(s, repos),
		Orders:   NewOrdersService(s, repos),
	}
}
