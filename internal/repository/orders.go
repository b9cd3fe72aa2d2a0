package repository

import (
	"context"
	"fmt"
	"time"

	"cornerstore/internal/database"
	"cornerstore/internal/domain"

	"github.com/shopspring/decimal"
)

// OrdersRepository loads and persists sales orders with their line items.
type OrdersRepository interface {
	// GetByID returns one order with cashier, line items, products, and
	// categories loaded null-safely, or nil when absent.
	GetByID(ctx context.Context, id int) (*domain.Order, error)

	// List returns all orders with the same relations as GetByID.
	List(ctx context.Context) ([]domain.Order, error)

	// CreateWithItems persists the order and all its line items inside a
	// single transaction and sets the store-assigned ids. Either the whole
	// write lands or none of it does.
	CreateWithItems(ctx context.Context, order *domain.Order) error

	// Delete removes an order; its line items go with it via the cascade
	// rule. It reports false when no row with that id exists.
	Delete(ctx context.Context, id int) (bool, error)
}

type ordersRepo struct {
	db *database.Database
}

// NewOrdersRepo constructs the pgx-backed orders repository.
func NewOrdersRepo(db *database.Database) OrdersRepository {
	return &ordersRepo{db: db}
}

const orderGraphQuery = `
	SELECT o.id, o.cashier_id, o.paid_on_date,
	       ca.first_name, ca.last_name,
	       op.id, op.product_id, op.quantity,
	       p.product_name, p.price, p.brand, p.category_id,
	       c.category_name
	FROM orders o
	LEFT JOIN cashiers ca ON ca.id = o.cashier_id
	LEFT JOIN order_products op ON op.order_id = o.id
	LEFT JOIN products p ON p.id = op.product_id
	LEFT JOIN categories c ON c.id = p.category_id
`

// queryOrderGraph runs the shared relation-loading query with an optional
// filter and assembles the flat rows back into Order entities. Rows are
// ordered by parent id so grouping is a single pass.
func (r *ordersRepo) queryOrderGraph(ctx context.Context, where string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Pool.Query(ctx, orderGraphQuery+where+` ORDER BY o.id, op.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			orderID, cashierID   int
			paidOnDate           *time.Time
			firstName, lastName  *string
			opID, productID, qty *int
			productName          *string
			price                *decimal.Decimal
			brand                *string
			categoryID           *int
			categoryName         *string
		)
		err := rows.Scan(&orderID, &cashierID, &paidOnDate,
			&firstName, &lastName,
			&opID, &productID, &qty,
			&productName, &price, &brand, &categoryID,
			&categoryName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		if len(orders) == 0 || orders[len(orders)-1].ID != orderID {
			order := domain.Order{
				ID:         orderID,
				CashierID:  cashierID,
				PaidOnDate: paidOnDate,
			}
			if firstName != nil {
				order.Cashier = &domain.Cashier{
					ID:        cashierID,
					FirstName: *firstName,
					LastName:  *lastName,
				}
			}
			orders = append(orders, order)
		}

		if opID == nil {
			continue
		}
		order := &orders[len(orders)-1]
		item := domain.OrderProduct{
			ID:        *opID,
			OrderID:   orderID,
			ProductID: *productID,
			Quantity:  *qty,
		}
		if productName != nil {
			item.Product = &domain.Product{
				ID:          *productID,
				ProductName: *productName,
				Price:       *price,
				Brand:       *brand,
				CategoryID:  *categoryID,
			}
			if categoryName != nil {
				item.Product.Category = &domain.Category{
					ID:           *categoryID,
					CategoryName: *categoryName,
				}
			}
		}
		order.OrderProducts = append(order.OrderProducts, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order rows: %w", err)
	}

	return orders, nil
}

func (r *ordersRepo) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	orders, err := r.queryOrderGraph(ctx, ` WHERE o.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

func (r *ordersRepo) List(ctx context.Context) ([]domain.Order, error) {
	return r.queryOrderGraph(ctx, ``)
}

func (r *ordersRepo) CreateWithItems(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// No-op once the transaction is committed.
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (cashier_id, paid_on_date)
		VALUES ($1, $2)
		RETURNING id
	`, order.CashierID, order.PaidOnDate).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.OrderProducts {
		item := &order.OrderProducts[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_products (order_id, product_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING id
		`, item.OrderID, item.ProductID, item.Quantity).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item for product %d: %w", item.ProductID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *ordersRepo) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
