package service

import (
	"context"
	"fmt"
	"strings"

	"cornerstore/internal/domain"
	"cornerstore/internal/errs"
	"cornerstore/internal/repository"
	"cornerstore/internal/server"
)

// ProductsService implements the product resource operations.
type ProductsService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewProductsService constructs the products service.
func NewProductsService(s *server.Server, repos *repository.Repositories) *ProductsService {
	return &ProductsService{server: s, repos: repos}
}

// List returns all products with their category, optionally filtered by a
// case-insensitive substring match against the product name or the
// category name. An empty result is a NotFound, even when no filter was
// given.
func (s *ProductsService) List(ctx context.Context, search string) ([]domain.ProductDTO, error) {
	products, err := s.repos.Products.ListWithCategory(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(search)
	dtos := make([]domain.ProductDTO, 0, len(products))
	for _, p := range products {
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		dtos = append(dtos, domain.NewProductDTO(p))
	}

	if len(dtos) == 0 {
		return nil, errs.NewNotFoundError("No products matched", false, nil)
	}
	return dtos, nil
}

// matchesSearch reports whether the lowercased needle occurs in the
// product name or its category name.
func matchesSearch(p domain.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.ProductName), needle) {
		return true
	}
	return p.Category != nil && strings.Contains(strings.ToLower(p.Category.CategoryName), needle)
}

// Create persists a new product and returns it reloaded with its
// category embedded.
func (s *ProductsService) Create(ctx context.Context, product *domain.Product) (*domain.ProductDTO, error) {
	product.ID = 0
	if err := s.repos.Products.Create(ctx, product); err != nil {
		return nil, err
	}

	created, err := s.repos.Products.GetByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		// Deleted between insert and reload.
		return nil, errs.NewNotFoundError(fmt.Sprintf("Product %d not found", product.ID), false, nil)
	}
	dto := domain.NewProductDTO(*created)
	return &dto, nil
}

// Update overwrites all scalar fields of an existing product.
//
// The path id must equal the body id; the check runs before any store
// access, so a mismatch mutates nothing. A missing row is a NotFound.
func (s *ProductsService) Update(ctx context.Context, pathID int, product *domain.Product) error {
	if pathID != product.ID {
		return errs.NewBadRequestError(
			fmt.Sprintf("Product id %d in path does not match id %d in body", pathID, product.ID),
			false, nil, nil)
	}

	updated, err := s.repos.Products.Update(ctx, product)
	if err != nil {
		return err
	}
	if !updated {
		return errs.NewNotFoundError(fmt.Sprintf("Product %d not found", pathID), false, nil)
	}
	return nil
}
