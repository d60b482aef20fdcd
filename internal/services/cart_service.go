package services

import (
	"errors"
	"fmt"

	"grocer/internal/models"
	"grocer/internal/repositories"

	"github.com/shopspring/decimal"
)

// CartService owns all mutations of a user's cart. Stock availability is
// checked against the catalog at mutation time; there is no reservation.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the user's cart resolved against current product data.
// A user without a cart gets the empty shape, not an error.
func (s *CartService) GetCart(userID string) (*models.CartView, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &models.CartView{Items: []models.CartItemView{}, TotalAmount: decimal.Zero}, nil
		}
		return nil, err
	}
	return s.resolve(cart)
}

// AddItem puts quantity units of a product into the cart, merging with an
// existing line for the same product. The unit price is captured from the
// catalog now and stays frozen for the life of the line item.
func (s *CartService) AddItem(userID, productID string, quantity int) (*models.CartView, error) {
	if quantity < 1 {
		quantity = 1
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, fmt.Errorf("product %s: %w", productID, models.ErrInsufficientStock)
	}

	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		cart = &models.Cart{UserID: userID}
	}

	if item := cart.Item(productID); item != nil {
		merged := item.Quantity + quantity
		if merged > product.Stock {
			return nil, fmt.Errorf("product %s: %w", productID, models.ErrInsufficientStock)
		}
		item.Quantity = merged
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}
	return s.resolve(cart)
}

// UpdateItem overwrites a line item's quantity. A quantity of zero or below
// removes the line; the frozen unit price is never refreshed here.
func (s *CartService) UpdateItem(userID, productID string, quantity int) (*models.CartView, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	item := cart.Item(productID)
	if item == nil {
		return nil, fmt.Errorf("item %s not in cart: %w", productID, models.ErrNotFound)
	}

	if quantity <= 0 {
		cart.RemoveItem(productID)
	} else {
		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if quantity > product.Stock {
			return nil, fmt.Errorf("product %s: %w", productID, models.ErrInsufficientStock)
		}
		item.Quantity = quantity
	}

	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}
	return s.resolve(cart)
}

// RemoveItem filters a product out of the cart. Removing something that is
// not there is a no-op, not an error.
func (s *CartService) RemoveItem(userID, productID string) (*models.CartView, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(productID)
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}
	return s.resolve(cart)
}

// Clear empties the cart, leaving the cart entity itself in place.
func (s *CartService) Clear(userID string) error {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	cart.Items = nil
	return s.cartRepo.Save(cart)
}

// resolve joins each line against the live product record. Lines whose
// product has been removed from the catalog are dropped from the view.
func (s *CartService) resolve(cart *models.Cart) (*models.CartView, error) {
	view := &models.CartView{Items: []models.CartItemView{}, TotalAmount: decimal.Zero}
	for _, item := range cart.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			return nil, err
		}
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, models.CartItemView{
			ProductID: item.ProductID,
			Name:      product.Name,
			Image:     product.Image,
			Stock:     product.Stock,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  subtotal,
		})
		view.TotalAmount = view.TotalAmount.Add(subtotal)
	}
	return view, nil
}
