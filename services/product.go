// product.go - Product catalogue operations

package services

import (
	"context" // Request-scoped cancellation
	"fmt"     // Error wrapping

	"go-review-backend/models" // Records and domain errors

	"go.uber.org/zap" // Logging
)

type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) error
	Find(ctx context.Context, conds ...interface{}) ([]models.Product, error)
	UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error)
	DeleteByID(ctx context.Context, id string) error
}

// ProductService manages products. Any caller may mutate them, and deleting a
// product leaves its reviews in place.
type ProductService struct {
	products ProductStore
	logger   *zap.Logger
}

func NewProductService(products ProductStore, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.Find(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, name, description string) (*models.Product, error) {
	if name == "" || description == "" {
		return nil, fmt.Errorf("product_name and description are required: %w", models.ErrValidation)
	}

	product := &models.Product{ProductName: name, Description: description}
	if err := s.products.Insert(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update replaces the non-empty fields of product id.
func (s *ProductService) Update(ctx context.Context, id, name, description string) (*models.Product, error) {
	fields := map[string]interface{}{}
	if name != "" {
		fields["product_name"] = name // Column names, not JSON keys
	}
	if description != "" {
		fields["description"] = description
	}

	product, err := s.products.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.DeleteByID(ctx, id); err != nil { // Reviews are left in place
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	s.logger.Debug("Product deleted", zap.String("productID", id))
	return nil
}
