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

// orderDateLayout is the calendar-date format of the orderDate filter.
const orderDateLayout = "2006-01-02"

// OrdersService implements the order resource operations.
type OrdersService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewOrdersService constructs the orders service.
func NewOrdersService(s *server.Server, repos *repository.Repositories) *OrdersService {
	return &OrdersService{server: s, repos: repos}
}

// Get returns one order projected null-safely at every hop: a missing
// cashier, product, or category stays null in the output and the paid
// date is passed through as stored.
func (s *OrdersService) Get(ctx context.Context, id int) (*domain.OrderDTO, error) {
	order, err := s.repos.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Order %d not found", id), false, nil)
	}

	dto := domain.NewOrderDTO(*order)
	return &dto, nil
}

// List returns all orders with their relations. When orderDate is set
// (YYYY-MM-DD), only orders paid on that calendar date are kept; the
// time of day is ignored, and unpaid orders never match. An empty result
// is returned as an empty list, not a NotFound.
func (s *OrdersService) List(ctx context.Context, orderDate string) ([]domain.OrderDTO, error) {
	var filterDate *time.Time
	if orderDate != "" {
		parsed, err := time.Parse(orderDateLayout, orderDate)
		if err != nil {
			return nil, errs.NewBadRequestError(
				fmt.Sprintf("orderDate must be a date in %s format", orderDateLayout),
				false, nil, nil)
		}
		filterDate = &parsed
	}

	orders, err := s.repos.Orders.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]domain.OrderDTO, 0, len(orders))
	for _, o := range orders {
		if filterDate != nil {
			if o.PaidOnDate == nil || o.PaidOnDate.Format(orderDateLayout) != filterDate.Format(orderDateLayout) {
				continue
			}
		}
		dtos = append(dtos, domain.NewOrderDTO(o))
	}

	return dtos, nil
}

// Create persists an order together with its line items.
//
// Every referenced product must exist: the ids are resolved up front, and
// the first unknown one fails the whole request with a BadRequest naming
// the missing product, and nothing is persisted in that case. The resolved
// products also give the line items their prices for the response total.
// On success the order is reloaded with its relations and returned.
func (s *OrdersService) Create(ctx context.Context, order *domain.Order) (*domain.OrderDTO, error) {
	order.ID = 0
	for i := range order.OrderProducts {
		item := &order.OrderProducts[i]
		product, err := s.repos.Products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, errs.NewBadRequestError(
				fmt.Sprintf("Product with ID %d does not exist.", item.ProductID),
				false, nil, nil)
		}
		item.Product = product
	}

	if err := s.repos.Orders.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}

	created, err := s.repos.Orders.GetByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		// Deleted between commit and reload.
		return nil, errs.NewNotFoundError(fmt.Sprintf("Order %d not found", order.ID), false, nil)
	}
	dto := domain.NewOrderDTO(*created)
	return &dto, nil
}

// Delete removes an order and, through the cascade rule, its line items.
func (s *OrdersService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repos.Orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewNotFoundError(fmt.Sprintf("Order %d not found", id), false, nil)
	}
	return nil
}
