package repository

import (
	"context"
	"fmt"
	"time"

	"cornerstore/internal/database"
	"cornerstore/internal/domain"

	"github.com/shopspring/decimal"
)

// CashiersRepository loads and persists cashiers.
type CashiersRepository interface {
	// GetWithOrders returns one cashier with the full order graph loaded
	// (orders, line items, products, categories), or nil when absent.
	GetWithOrders(ctx context.Context, id int) (*domain.Cashier, error)

	// Create persists a new cashier and sets its store-assigned id.
	Create(ctx context.Context, cashier *domain.Cashier) error
}

type cashiersRepo struct {
	db *database.Database
}

// NewCashiersRepo constructs the pgx-backed cashiers repository.
func NewCashiersRepo(db *database.Database) CashiersRepository {
	return &cashiersRepo{db: db}
}

// GetWithOrders loads the whole graph in one query. LEFT JOINs keep a
// cashier without orders visible (one row with NULL order columns), and
// the ORDER BY lets assembly group child rows in a single pass.
func (r *cashiersRepo) GetWithOrders(ctx context.Context, id int) (*domain.Cashier, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT ca.id, ca.first_name, ca.last_name,
		       o.id, o.paid_on_date,
		       op.id, op.product_id, op.quantity,
		       p.product_name, p.price, p.brand, p.category_id,
		       c.category_name
		FROM cashiers ca
		LEFT JOIN orders o ON o.cashier_id = ca.id
		LEFT JOIN order_products op ON op.order_id = o.id
		LEFT JOIN products p ON p.id = op.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE ca.id = $1
		ORDER BY o.id, op.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cashier %d: %w", id, err)
	}
	defer rows.Close()

	var cashier *domain.Cashier
	for rows.Next() {
		var (
			caID                int
			firstName, lastName string
			orderID             *int
			paidOnDate          *time.Time
			opID, productID     *int
			quantity            *int
			productName         *string
			price               *decimal.Decimal
			brand               *string
			categoryID          *int
			categoryName        *string
		)
		err := rows.Scan(&caID, &firstName, &lastName,
			&orderID, &paidOnDate,
			&opID, &productID, &quantity,
			&productName, &price, &brand, &categoryID,
			&categoryName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cashier row: %w", err)
		}

		if cashier == nil {
			cashier = &domain.Cashier{ID: caID, FirstName: firstName, LastName: lastName}
		}

		if orderID == nil {
			continue
		}
		if len(cashier.Orders) == 0 || cashier.Orders[len(cashier.Orders)-1].ID != *orderID {
			cashier.Orders = append(cashier.Orders, domain.Order{
				ID:         *orderID,
				CashierID:  caID,
				PaidOnDate: paidOnDate,
			})
		}

		if opID == nil {
			continue
		}
		order := &cashier.Orders[len(cashier.Orders)-1]
		item := domain.OrderProduct{
			ID:        *opID,
			OrderID:   *orderID,
			ProductID: *productID,
			Quantity:  *quantity,
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
		return nil, fmt.Errorf("failed to read cashier rows: %w", err)
	}

	return cashier, nil
}

func (r *cashiersRepo) Create(ctx context.Context, cashier *domain.Cashier) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO cashiers (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id
	`, cashier.FirstName, cashier.LastName).Scan(&cashier.ID)
	if err != nil {
		return fmt.Errorf("failed to create cashier: %w", err)
	}
	return nil
}
