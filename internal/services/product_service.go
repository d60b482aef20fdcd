package services

import (
	"grocer/internal/models"
	"grocer/internal/repositories"

	"github.com/shopspring/decimal"
)

// ProductService handles catalog reads and admin catalog management.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ListProducts returns the active catalog, optionally narrowed by category
// (case-insensitive exact) and search (case-insensitive substring over name
// or description).
func (s *ProductService) ListProducts(category, search string) ([]models.Product, error) {
	return s.repo.Find(repositories.ProductFilter{
		Category:   category,
		Search:     search,
		ActiveOnly: true,
	})
}

// ListAllProducts returns the full catalog, inactive products included.
// Admin-only.
func (s *ProductService) ListAllProducts() ([]models.Product, error) {
	return s.repo.Find(repositories.ProductFilter{})
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Categories returns the distinct categories present in the catalog.
func (s *ProductService) Categories() ([]string, error) {
	return s.repo.Categories()
}

// CreateProduct creates a new product, defaulting the image when none is
// given. New products are active.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Image == "" {
		product.Image = models.DefaultProductImage
	}
	product.IsActive = true
	return s.repo.Create(product)
}

// ProductPatch carries a partial product update. Unset fields keep the
// stored value; Stock is a pointer so an explicit zero can be told apart
// from "not provided".
type ProductPatch struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Stock       *int
	Image       string
	IsActive    *bool
}

// UpdateProduct applies a partial update to an existing product.
func (s *ProductService) UpdateProduct(id string, patch ProductPatch) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != "" {
		product.Name = patch.Name
	}
	if patch.Description != "" {
		product.Description = patch.Description
	}
	if patch.Price.GreaterThan(decimal.Zero) {
		product.Price = patch.Price
	}
	if patch.Category != "" {
		product.Category = patch.Category
	}
	if patch.Stock != nil && *patch.Stock >= 0 {
		product.Stock = *patch.Stock
	}
	if patch.Image != "" {
		product.Image = patch.Image
	}
	if patch.IsActive != nil {
		product.IsActive = *patch.IsActive
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
