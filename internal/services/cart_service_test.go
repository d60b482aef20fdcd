package services_test

import (
	"fmt"
	"testing"

	"grocer/internal/models"
	"grocer/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, models.ErrNotFound)
}

func testProduct(id string, price float64, stock int) *models.Product {
	return &models.Product{
		ID:          id,
		Name:        "Product " + id,
		Description: "test product",
		Price:       decimal.NewFromFloat(price),
		Category:    "Fruits",
		Stock:       stock,
		IsActive:    true,
	}
}

func TestCartService_GetCart_NoCartIsEmptyShape(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	cartRepo.On("GetByUserID", "u1").Return(nil, notFound("cart for user u1")).Once()

	view, err := service.GetCart("u1")
	assert.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.TotalAmount.IsZero())
	cartRepo.AssertExpectations(t)
}

func TestCartService_AddItem(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	product := testProduct("p1", 2.99, 50)

	// First add creates the cart lazily and freezes the current price.
	productRepo.On("GetByID", "p1").Return(product, nil)
	cartRepo.On("GetByUserID", "u1").Return(nil, notFound("cart for user u1")).Once()
	cartRepo.On("Save", mock.AnythingOfType("*models.Cart")).Return(nil).Once()

	view, err := service.AddItem("u1", "p1", 2)
	assert.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.True(t, view.Items[0].Price.Equal(decimal.NewFromFloat(2.99)))
	assert.True(t, view.TotalAmount.Equal(decimal.NewFromFloat(5.98)))

	// Adding the same product again merges into one line item.
	existing := &models.Cart{ID: "c1", UserID: "u1", Items: []models.CartItem{
		{ProductID: "p1", Quantity: 2, Price: decimal.NewFromFloat(2.99)},
	}}
	cartRepo.On("GetByUserID", "u1").Return(existing, nil).Once()
	cartRepo.On("Save", mock.AnythingOfType("*models.Cart")).Return(nil).Once()

	view, err = service.AddItem("u1", "p1", 3)
	assert.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	cartRepo.AssertExpectations(t)
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	product := testProduct("p1", 2.99, 4)
	productRepo.On("GetByID", "p1").Return(product, nil)

	// Requested quantity alone exceeds stock.
	_, err := service.AddItem("u1", "p1", 5)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	// The merged total exceeds stock even though the increment alone fits.
	existing := &models.Cart{ID: "c1", UserID: "u1", Items: []models.CartItem{
		{ProductID: "p1", Quantity: 3, Price: decimal.NewFromFloat(2.99)},
	}}
	cartRepo.On("GetByUserID", "u1").Return(existing, nil).Once()
	_, err = service.AddItem("u1", "p1", 2)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	// Unknown product.
	productRepo.On("GetByID", "missing").Return(nil, notFound("product with ID missing")).Once()
	_, err = service.AddItem("u1", "missing", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCartService_AddItem_PriceStaysFrozen(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	// The catalog price went up after the item was added; the line keeps
	// its add-time price.
	repriced := testProduct("p1", 3.99, 50)
	productRepo.On("GetByID", "p1").Return(repriced, nil)

	existing := &models.Cart{ID: "c1", UserID: "u1", Items: []models.CartItem{
		{ProductID: "p1", Quantity: 1, Price: decimal.NewFromFloat(2.99)},
	}}
	cartRepo.On("GetByUserID", "u1").Return(existing, nil).Once()
	cartRepo.On("Save", mock.AnythingOfType("*models.Cart")).Return(nil).Once()

	view, err := service.UpdateItem("u1", "p1", 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, view.Items[0].Quantity)
	assert.True(t, view.Items[0].Price.Equal(decimal.NewFromFloat(2.99)))
}

func TestCartService_UpdateItem(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	product := testProduct("p1", 2.99, 10)
	productRepo.On("GetByID", "p1").Return(product, nil)

	cart := func() *models.Cart {
		return &models.Cart{ID: "c1", UserID: "u1", Items: []models.CartItem{
			{ProductID: "p1", Quantity: 2, Price: decimal.NewFromFloat(2.99)},
		}}
	}

	// Overwrite, not merge.
	cartRepo.On("GetByUserID", "u1").Return(cart(), nil).Once()
	cartRepo.On("Save", mock.AnythingOfType("*models.Cart")).Return(nil).Once()
	view, err := service.UpdateItem("u1", "p1", 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, view.Items[0].Quantity)

	// Quantity above stock is rejected.
	cartRepo.On("GetByUserID", "u1").Return(cart(), nil).Once()
	_, err = service.UpdateItem("u1", "p1", 11)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	// Zero removes the line item.
	cartRepo.On("GetByUserID", "u1").Return(cart(), nil).Once()
	cartRepo.On("Save", mock.MatchedBy(func(c *models.Cart) bool {
		return len(c.Items) == 0
	})).Return(nil).Once()
	view, err = service.UpdateItem("u1", "p1", 0)
	assert.NoError(t, err)
	assert.Empty(t, view.Items)

	// Negative behaves like zero.
	cartRepo.On("GetByUserID", "u1").Return(cart(), nil).Once()
	cartRepo.On("Save", mock.AnythingOfType("*models.Cart")).Return(nil).Once()
	view, err = service.UpdateItem("u1", "p1", -3)
	assert.NoError(t, err)
	assert.Empty(t, view.Items)

	// Product not in the cart.
	cartRepo.On("GetByUserID", "u1").Return(cart(), nil).Once()
	_, err = service.UpdateItem("u1", "p2", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// No cart at all.
	cartRepo.On("GetByUserID", "u2").Return(nil, notFound("cart for user u2")).Once()
	_, err = service.UpdateItem("u2", "p1", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
	cartRepo.AssertExpectations(t)
}

func TestCartService_RemoveItem_IsIdempotent(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	product := testProduct("p1", 2.99, 10)
	productRepo.On("GetByID", "p1").Return(product, nil)

	cart := &models.Cart{ID: "c1", UserID: "u1", Items: []models.CartItem{
		{ProductID: "p1", Quantity: 2, Price: decimal.NewFromFloat(2.99)},
	}}
	cartRepo.On("GetByUserID", "u1").Return(cart, nil)
	cartRepo.On("Save", mock.AnythingOfType("*models.Cart")).Return(nil)

	// Removing a product that is not in the cart leaves it unchanged.
	view, err := service.RemoveItem("u1", "p9")
	assert.NoError(t, err)
	assert.Len(t, view.Items, 1)

	// Removing the real product empties the cart.
	view, err = service.RemoveItem("u1", "p1")
	assert.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartService_Clear(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	cart := &models.Cart{ID: "c1", UserID: "u1", Items: []models.CartItem{
		{ProductID: "p1", Quantity: 2, Price: decimal.NewFromFloat(2.99)},
	}}
	cartRepo.On("GetByUserID", "u1").Return(cart, nil).Once()
	cartRepo.On("Save", mock.MatchedBy(func(c *models.Cart) bool {
		return len(c.Items) == 0
	})).Return(nil).Once()

	assert.NoError(t, service.Clear("u1"))

	// Clearing a nonexistent cart is an error, unlike GetCart.
	cartRepo.On("GetByUserID", "u2").Return(nil, notFound("cart for user u2")).Once()
	assert.ErrorIs(t, service.Clear("u2"), models.ErrNotFound)
	cartRepo.AssertExpectations(t)
}
