package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cornerstore/internal/domain"
	"cornerstore/internal/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashiersGetNotFound(t *testing.T) {
	repos, _, _, _ := newFakeRepos()
	svc := NewCashiersService(nil, repos)

	dto, err := svc.Get(context.Background(), 42)

	require.Nil(t, dto)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Cashier 42 not found", httpErr.Message)
}

func TestCashiersGetProjectsOrderGraph(t *testing.T) {
	repos, cashiers, _, _ := newFakeRepos()

	soda := &domain.Product{
		ID:          3,
		ProductName: "Sad Apple Soda",
		Price:       decimal.RequireFromString("1.50"),
		CategoryID:  2,
		Category:    &domain.Category{ID: 2, CategoryName: "Drinks"},
	}
	cashiers.cashiers[1] = domain.Cashier{
		ID:        1,
		FirstName: "Bluey",
		LastName:  "Heeler",
		Orders: []domain.Order{
			{
				ID:        1,
				CashierID: 1,
				OrderProducts: []domain.OrderProduct{
					{ID: 1, OrderID: 1, ProductID: 3, Quantity: 2, Product: soda},
				},
			},
		},
	}

	svc := NewCashiersService(nil, repos)
	before := time.Now()

	dto, err := svc.Get(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, "Bluey", dto.FirstName)
	require.Len(t, dto.Orders, 1)

	order := dto.Orders[0]
	assert.Nil(t, order.Cashier)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("3.00")),
		"got %s", order.Total)
	require.Len(t, order.OrderProducts, 1)
	require.NotNil(t, order.OrderProducts[0].Product)
	require.NotNil(t, order.OrderProducts[0].Product.Category)
	assert.Equal(t, "Drinks", order.OrderProducts[0].Product.Category.CategoryName)

	// The unpaid order's date was filled in with "now" for the response.
	require.NotNil(t, order.PaidOnDate)
	assert.False(t, order.PaidOnDate.Before(before))
}

func TestCashiersCreateIgnoresClientID(t *testing.T) {
	repos, cashiers, _, _ := newFakeRepos()
	svc := NewCashiersService(nil, repos)

	dto, err := svc.Create(context.Background(), &domain.Cashier{
		ID:        99,
		FirstName: "Scruff",
		LastName:  "McGruff",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, dto.ID, "store assigns the id, client input is ignored")
	assert.Equal(t, "Scruff", dto.FirstName)
	assert.Empty(t, dto.Orders)
	require.Len(t, cashiers.created, 1)
}
