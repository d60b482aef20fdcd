package services_test

import (
	"testing"

	"grocer/internal/models"
	"grocer/internal/repositories"
	"grocer/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{*testProduct("1", 2.99, 50)}

	// Public listing is active-only and passes the filters through.
	mockRepo.On("Find", repositories.ProductFilter{
		Category:   "Fruits",
		Search:     "banana",
		ActiveOnly: true,
	}).Return(expected, nil).Once()

	products, err := service.ListProducts("Fruits", "banana")
	assert.NoError(t, err)
	assert.Equal(t, expected, products)

	// Admin listing has no filters at all.
	mockRepo.On("Find", repositories.ProductFilter{}).Return(expected, nil).Once()
	_, err = service.ListAllProducts()
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product := &models.Product{
		Name:        "New Product",
		Description: "something new",
		Price:       decimal.NewFromFloat(5.00),
		Category:    "Pantry",
		Stock:       20,
	}
	err := service.CreateProduct(product)
	assert.NoError(t, err)
	// Image defaults and the product starts active.
	assert.Equal(t, models.DefaultProductImage, product.Image)
	assert.True(t, product.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_Partial(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	stored := testProduct("1", 2.99, 50)
	stored.Image = "original.jpg"
	mockRepo.On("GetByID", "1").Return(stored, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil)

	// Only the name changes; everything else keeps its stored value.
	updated, err := service.UpdateProduct("1", services.ProductPatch{Name: "Renamed"})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 50, updated.Stock)
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(2.99)))
	assert.Equal(t, "original.jpg", updated.Image)

	// An explicit zero stock applies.
	zero := 0
	updated, err = service.UpdateProduct("1", services.ProductPatch{Stock: &zero})
	assert.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)

	// Deactivation applies.
	inactive := false
	updated, err = service.UpdateProduct("1", services.ProductPatch{IsActive: &inactive})
	assert.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetByID", "99").Return(nil, notFound("product with ID 99")).Once()

	_, err := service.UpdateProduct("99", services.ProductPatch{Name: "x"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", "1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct("1"))

	mockRepo.On("Delete", "99").Return(notFound("product with ID 99")).Once()
	assert.ErrorIs(t, service.DeleteProduct("99"), models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Categories(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Categories").Return([]string{"Dairy", "Fruits"}, nil).Once()
	categories, err := service.Categories()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Dairy", "Fruits"}, categories)
}
