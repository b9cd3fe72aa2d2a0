package repository

import (
	"cornerstore/internal/server"
)

// Repositories is a container for all repository instances. It keeps the
// dependency injection shape in one place: services accept this container
// instead of individual repositories.
type Repositories struct {
	Cashiers CashiersRepository
	Products ProductsRepository
	Orders   OrdersRepository
}

// NewRepositories constructs the repository container over the app's
// database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Cashiers: NewCashiersRepo(s.DB),
		Products: NewProductsRepo(s.DB),
		Orders:   NewOrdersRepo(s.DB),
	}
}
