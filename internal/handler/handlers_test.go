package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"cornerstore/internal/domain"
	"cornerstore/internal/middleware"
	"cornerstore/internal/repository"
	"cornerstore/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Matches main.go: prices serialize as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

// In-memory repositories with the same absence contract as the pgx ones:
// nil entity or false flag, never an error.

type memCashiersRepo struct {
	cashiers map[int]domain.Cashier
	nextID   int
}

func (m *memCashiersRepo) GetWithOrders(ctx context.Context, id int) (*domain.Cashier, error) {
	c, ok := m.cashiers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memCashiersRepo) Create(ctx context.Context, cashier *domain.Cashier) error {
	m.nextID++
	cashier.ID = m.nextID
	m.cashiers[cashier.ID] = *cashier
	return nil
}

type memProductsRepo struct {
	products map[int]domain.Product
	nextID   int
}

func (m *memProductsRepo) ListWithCategory(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(m.products))
	for id := 1; id <= m.nextID; id++ {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProductsRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memProductsRepo) Create(ctx context.Context, product *domain.Product) error {
	m.nextID++
	product.ID = m.nextID
	m.products[product.ID] = *product
	return nil
}

func (m *memProductsRepo) Update(ctx context.Context, product *domain.Product) (bool, error) {
	if _, ok := m.products[product.ID]; !ok {
		return false, nil
	}
	m.products[product.ID] = *product
	return true, nil
}

type memOrdersRepo struct {
	orders map[int]domain.Order
	nextID int
}

func (m *memOrdersRepo) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *memOrdersRepo) List(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(m.orders))
	for id := 1; id <= m.nextID; id++ {
		if o, ok := m.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrdersRepo) CreateWithItems(ctx context.Context, order *domain.Order) error {
	m.nextID++
	order.ID = m.nextID
	for i := range order.OrderProducts {
		order.OrderProducts[i].ID = i + 1
		order.OrderProducts[i].OrderID = order.ID
	}
	m.orders[order.ID] = *order
	return nil
}

func (m *memOrdersRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := m.orders[id]; !ok {
		return false, nil
	}
	delete(m.orders, id)
	return true, nil
}

type testApp struct {
	e        *echo.Echo
	cashiers *memCashiersRepo
	products *memProductsRepo
	orders   *memOrdersRepo
}

// newTestApp wires the real handler pipeline (binding, validation, error
// handling) over in-memory repositories.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cashiers := &memCashiersRepo{cashiers: make(map[int]domain.Cashier)}
	products := &memProductsRepo{products: make(map[int]domain.Product)}
	orders := &memOrdersRepo{orders: make(map[int]domain.Order)}

	repos := &repository.Repositories{
		Cashiers: cashiers,
		Products: products,
		Orders:   orders,
	}
	services := service.NewServices(nil, repos)
	handlers := NewHandlers(nil, services)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(nil).GlobalErrorHandler

	e.GET("/cashiers/:id", Handle(handlers.Cashiers.Handler, handlers.Cashiers.Get, http.StatusOK))
	e.POST("/cashiers", Handle(handlers.Cashiers.Handler, handlers.Cashiers.Create, http.StatusCreated))
	e.GET("/products", Handle(handlers.Products.Handler, handlers.Products.List, http.StatusOK))
	e.POST("/products", Handle(handlers.Products.Handler, handlers.Products.Create, http.StatusCreated))
	e.PUT("/products/:id", HandleNoContent(handlers.Products.Handler, handlers.Products.Update, http.StatusNoContent))
	e.GET("/orders", Handle(handlers.Orders.Handler, handlers.Orders.List, http.StatusOK))
	e.GET("/orders/:id", Handle(handlers.Orders.Handler, handlers.Orders.Get, http.StatusOK))
	e.POST("/orders", Handle(handlers.Orders.Handler, handlers.Orders.Create, http.StatusCreated))
	e.DELETE("/orders/:id", HandleNoContent(handlers.Orders.Handler, handlers.Orders.Delete, http.StatusNoContent))

	return &testApp{e: e, cashiers: cashiers, products: products, orders: orders}
}

func (a *testApp) request(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) seedCatalog() {
	food := &domain.Category{ID: 1, CategoryName: "Food"}
	drinks := &domain.Category{ID: 2, CategoryName: "Drinks"}

	a.products.products[1] = domain.Product{
		ID: 1, ProductName: "Bubblegum (used)", Brand: "Chewie's",
		Price: decimal.RequireFromString("0.50"), CategoryID: 1, Category: food,
	}
	a.products.products[2] = domain.Product{
		ID: 2, ProductName: "Sad Apple Soda", Brand: "FizzFizz",
		Price: decimal.RequireFromString("1.50"), CategoryID: 2, Category: drinks,
	}
	a.products.nextID = 2
}

func TestGetCashierNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodGet, "/cashiers/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{
		"code": "NOT_FOUND",
		"message": "Cashier 42 not found",
		"status": 404,
		"override": false,
		"errors": null
	}`, rec.Body.String())
}

func TestGetCashierZeroID(t *testing.T) {
	app := newTestApp(t)

	// Zero is an id like any other: no row matches, so it is a 404, not
	// a validation failure.
	rec := app.request(http.MethodGet, "/cashiers/0", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cashier 0 not found")
}

func TestCreateCashier(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodPost, "/cashiers",
		`{"firstName": "Bluey", "lastName": "Heeler"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/cashiers/1", rec.Header().Get(echo.HeaderLocation))
	assert.JSONEq(t, `{"id": 1, "firstName": "Bluey", "lastName": "Heeler"}`,
		rec.Body.String())
}

func TestCreateCashierMissingFields(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodPost, "/cashiers", `{"firstName": "Bluey"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"lastname"`)
	assert.Empty(t, app.cashiers.cashiers)
}

func TestGetCashierNestedGraph(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog()

	paid := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	bubblegum := app.products.products[1]
	app.cashiers.cashiers[1] = domain.Cashier{
		ID: 1, FirstName: "Bluey", LastName: "Heeler",
		Orders: []domain.Order{
			{
				ID: 1, CashierID: 1, PaidOnDate: &paid,
				OrderProducts: []domain.OrderProduct{
					{ID: 1, OrderID: 1, ProductID: 1, Quantity: 5, Product: &bubblegum},
				},
			},
		},
	}
	app.cashiers.nextID = 1

	rec := app.request(http.MethodGet, "/cashiers/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"total":2.5`)
	assert.Contains(t, body, `"categoryName":"Food"`)
	assert.Contains(t, body, `"cashier":null`, "nested orders must not embed the cashier again")
}

func TestListProducts(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog()

	rec := app.request(http.MethodGet, "/products?search=soda", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": 2,
		"productName": "Sad Apple Soda",
		"price": 1.5,
		"brand": "FizzFizz",
		"categoryId": 2,
		"category": {"id": 2, "categoryName": "Drinks"}
	}]`, rec.Body.String())
}

func TestListProductsNoMatch(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog()

	rec := app.request(http.MethodGet, "/products?search=zzz", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog()

	rec := app.request(http.MethodPost, "/products",
		`{"productName": "Puppy", "price": 300.00, "brand": "", "categoryId": 1}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/products/3", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Body.String(), `"price":300`)
}

func TestUpdateProductIDMismatch(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog()

	rec := app.request(http.MethodPut, "/products/1",
		`{"id": 2, "productName": "Renamed", "price": 1.00, "brand": "x", "categoryId": 1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Bubblegum (used)", app.products.products[1].ProductName)
}

func TestUpdateProduct(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog()

	rec := app.request(http.MethodPut, "/products/1",
		`{"id": 1, "productName": "Bubblegum (new)", "price": 0.75, "brand": "Chewie's", "categoryId": 1}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "Bubblegum (new)", app.products.products[1].ProductName)
}

func TestUpdateProductNotFound(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog()

	rec := app.request(http.MethodPut, "/products/77",
		`{"id": 77, "productName": "Ghost", "price": 1.00, "brand": "x", "categoryId": 1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProductZeroID(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog()

	rec := app.request(http.MethodPut, "/products/0",
		`{"id": 0, "productName": "Ghost", "price": 1.00, "brand": "x", "categoryId": 1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderNullCashier(t *testing.T) {
	app := newTestApp(t)
	app.orders.orders[1] = domain.Order{ID: 1, CashierID: 9}
	app.orders.nextID = 1

	rec := app.request(http.MethodGet, "/orders/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 1,
		"cashierId": 9,
		"cashier": null,
		"paidOnDate": null,
		"orderProducts": [],
		"total": 0
	}`, rec.Body.String())
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog()

	rec := app.request(http.MethodPost, "/orders",
		`{"cashierId": 1, "orderProducts": [{"productId": 123, "quantity": 1}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product with ID 123 does not exist.")
	assert.Empty(t, app.orders.orders)
}

func TestCreateOrder(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog()

	rec := app.request(http.MethodPost, "/orders",
		`{"cashierId": 1, "paidOnDate": "2023-05-01T12:00:00Z", "orderProducts": [
			{"productId": 1, "quantity": 5},
			{"productId": 2, "quantity": 3}
		]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/orders/1", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Body.String(), `"total":7`)
}

func TestListOrdersByDate(t *testing.T) {
	app := newTestApp(t)

	onDay := time.Date(2023, 5, 1, 23, 0, 0, 0, time.UTC)
	offDay := time.Date(2023, 5, 2, 1, 0, 0, 0, time.UTC)
	app.orders.orders[1] = domain.Order{ID: 1, CashierID: 1, PaidOnDate: &onDay}
	app.orders.orders[2] = domain.Order{ID: 2, CashierID: 1, PaidOnDate: &offDay}
	app.orders.nextID = 2

	rec := app.request(http.MethodGet, "/orders?orderDate=2023-05-01", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
	assert.NotContains(t, rec.Body.String(), `"id":2`)
}

func TestListOrdersBadDateFormat(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodGet, "/orders?orderDate=05-01-2023", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "2006-01-02")
}

func TestListOrdersEmpty(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodGet, "/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDeleteOrder(t *testing.T) {
	app := newTestApp(t)
	app.orders.orders[1] = domain.Order{ID: 1, CashierID: 1}
	app.orders.nextID = 1

	rec := app.request(http.MethodDelete, "/orders/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = app.request(http.MethodDelete, "/orders/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderZeroID(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodGet, "/orders/0", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order 0 not found")

	rec = app.request(http.MethodDelete, "/orders/0", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
