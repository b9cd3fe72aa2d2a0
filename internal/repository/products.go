package repository

import (
	"context"
	"errors"
	"fmt"

	"cornerstore/internal/database"
	"cornerstore/internal/domain"

	"github.com/jackc/pgx/v5"
)

// ProductsRepository loads and persists catalog products.
type ProductsRepository interface {
	// ListWithCategory returns all products with their category loaded.
	ListWithCategory(ctx context.Context) ([]domain.Product, error)

	// GetByID returns one product with its category, or nil when absent.
	GetByID(ctx context.Context, id int) (*domain.Product, error)

	// Create persists a new product and sets its store-assigned id.
	Create(ctx context.Context, product *domain.Product) error

	// Update overwrites all scalar fields of an existing row. It reports
	// false when no row with that id exists.
	Update(ctx context.Context, product *domain.Product) (bool, error)
}

type productsRepo struct {
	db *database.Database
}

// NewProductsRepo constructs the pgx-backed products repository.
func NewProductsRepo(db *database.Database) ProductsRepository {
	return &productsRepo{db: db}
}

const productColumns = `p.id, p.product_name, p.price, p.brand, p.category_id, c.id, c.category_name`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var cat domain.Category
	err := row.Scan(&p.ID, &p.ProductName, &p.Price, &p.Brand, &p.CategoryID, &cat.ID, &cat.CategoryName)
	if err != nil {
		return nil, err
	}
	p.Category = &cat
	return &p, nil
}

func (r *productsRepo) ListWithCategory(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}

func (r *productsRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	row := r.db.Pool.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, id)

	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return p, nil
}

func (r *productsRepo) Create(ctx context.Context, product *domain.Product) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO products (product_name, price, brand, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, product.ProductName, product.Price, product.Brand, product.CategoryID).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productsRepo) Update(ctx context.Context, product *domain.Product) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE products
		SET product_name = $2, price = $3, brand = $4, category_id = $5
		WHERE id = $1
	`, product.ID, product.ProductName, product.Price, product.Brand, product.CategoryID)
	if err != nil {
		return false, fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return tag.RowsAffected() > 0, nil
}
