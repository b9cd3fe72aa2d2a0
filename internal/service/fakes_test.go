package service

import (
	"context"

	"cornerstore/internal/domain"
	"cornerstore/internal/repository"
)

// The fakes below stand in for the pgx-backed repositories. They share
// the repositories' absence contract: nil entity or false flag, never an
// error. Call counters let tests assert that short-circuit paths really
// skip the store.

type fakeCashiersRepo struct {
	cashiers map[int]domain.Cashier
	created  []domain.Cashier
	nextID   int
}

func (f *fakeCashiersRepo) GetWithOrders(ctx context.Context, id int) (*domain.Cashier, error) {
	c, ok := f.cashiers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCashiersRepo) Create(ctx context.Context, cashier *domain.Cashier) error {
	f.nextID++
	cashier.ID = f.nextID
	f.created = append(f.created, *cashier)
	return nil
}

type fakeProductsRepo struct {
	products    map[int]domain.Product
	updateCalls int
	createCalls int
	nextID      int
}

func (f *fakeProductsRepo) ListWithCategory(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	// Stable order keeps assertions simple.
	for id := 1; id <= f.nextID; id++ {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductsRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductsRepo) Create(ctx context.Context, product *domain.Product) error {
	f.createCalls++
	f.nextID++
	product.ID = f.nextID
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductsRepo) Update(ctx context.Context, product *domain.Product) (bool, error) {
	f.updateCalls++
	if _, ok := f.products[product.ID]; !ok {
		return false, nil
	}
	f.products[product.ID] = *product
	return true, nil
}

type fakeOrdersRepo struct {
	orders      map[int]domain.Order
	createCalls int
	nextID      int
}

func (f *fakeOrdersRepo) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeOrdersRepo) List(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(f.orders))
	for id := 1; id <= f.nextID; id++ {
		if o, ok := f.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrdersRepo) CreateWithItems(ctx context.Context, order *domain.Order) error {
	f.createCalls++
	f.nextID++
	order.ID = f.nextID
	for i := range order.OrderProducts {
		order.OrderProducts[i].OrderID = order.ID
		order.OrderProducts[i].ID = i + 1
	}
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeOrdersRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	delete(f.orders, id)
	return true, nil
}

func newFakeRepos() (*repository.Repositories, *fakeCashiersRepo, *fakeProductsRepo, *fakeOrdersRepo) {
	cashiers := &fakeCashiersRepo{cashiers: make(map[int]domain.Cashier)}
	products := &fakeProductsRepo{products: make(map[int]domain.Product)}
	orders := &fakeOrdersRepo{orders: make(map[int]domain.Order)}

	repos := &repository.Repositories{
		Cashiers: cashiers,
		Products: products,
		Orders:   orders,
	}
	return repos, cashiers, products, orders
}
