package service

import (
	"context"
	"fmt"
	"time"

	"cornerstore/internal/domain"
	"cornerstore/internal/errs"
	"cornerstore/internal/repository"
	"cornerstore/internal/server"
)

// CashiersService implements the cashier resource operations.
type CashiersService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewCashiersService constructs the cashiers service.
func NewCashiersService(s *server.Server, repos *repository.Repositories) *CashiersService {
	return &CashiersService{server: s, repos: repos}
}

// Get returns one cashier with the eagerly loaded order graph projected
// into a nested DTO.
//
// This is the eager, non-null-safe read: the seed guarantees every line
// item resolves to a product and category, and an order whose paid date
// is null gets the current time substituted in the response only;
// nothing is written back.
func (s *CashiersService) Get(ctx context.Context, id int) (*domain.CashierDTO, error) {
	cashier, err := s.repos.Cashiers.GetWithOrders(ctx, id)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Cashier %d not found", id), false, nil)
	}

	dto := domain.NewCashierDTO(*cashier, time.Now())
	return &dto, nil
}

// Create persists a new cashier. The store assigns the id; any id in the
// input is ignored.
func (s *CashiersService) Create(ctx context.Context, cashier *domain.Cashier) (*domain.CashierDTO, error) {
	cashier.ID = 0
	if err := s.repos.Cashiers.Create(ctx, cashier); err != nil {
		return nil, err
	}

	dto := domain.CashierDTO{
		ID:        cashier.ID,
		FirstName: cashier.FirstName,
		LastName:  cashier.LastName,
	}
	return &dto, nil
}
