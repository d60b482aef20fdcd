package services

import (
	"encoding/json"
	"fmt"
	"log"

	"grocer/internal/models"
	"grocer/internal/repositories"
	"grocer/pkg/rabbitmq"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest is the checkout payload. TotalAmount comes from the
// caller because shipping and tax are computed client-side; line prices are
// snapshotted server-side from the catalog.
type PlaceOrderRequest struct {
	Items           []PlaceOrderItem       `json:"items" validate:"required,min=1,dive"`
	TotalAmount     decimal.Decimal        `json:"totalAmount" validate:"required"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required,oneof=cod card"`
	DeliveryAddress models.DeliveryAddress `json:"deliveryAddress" validate:"required"`
}

// PlaceOrderItem is one requested line at checkout.
type PlaceOrderItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderService handles checkout, order listing and status transitions.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cartRepo    repositories.CartRepository
	payments    PaymentProcessor
	mqClient    *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case event publication is skipped.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	cartRepo repositories.CartRepository,
	payments PaymentProcessor,
	mqClient *rabbitmq.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		payments:    payments,
		mqClient:    mqClient,
	}
}

// PlaceOrder runs the checkout sequence: resolve and conditionally decrement
// stock per line, charge card payments, persist the order snapshot, and
// empty the cart. Any failure after a decrement restores every unit already
// taken, so stock is left unmodified on a failed order and an order is never
// recorded without its stock having been taken.
func (s *OrderService) PlaceOrder(userID string, req PlaceOrderRequest) (*models.Order, error) {
	var (
		items       []models.OrderItem
		decremented []models.OrderItem
	)

	restore := func() {
		for _, it := range decremented {
			if err := s.productRepo.IncrementStock(it.ProductID, it.Quantity); err != nil {
				log.Printf("failed to restore %d units of product %s: %v", it.Quantity, it.ProductID, err)
			}
		}
	}

	for _, line := range req.Items {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			restore()
			return nil, err
		}
		if err := s.productRepo.DecrementStock(line.ProductID, line.Quantity); err != nil {
			restore()
			return nil, err
		}
		item := models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			Price:     product.Price,
		}
		decremented = append(decremented, item)
		items = append(items, item)
	}

	if req.PaymentMethod == models.PaymentCard {
		if err := s.payments.Charge(userID, req.TotalAmount); err != nil {
			restore()
			return nil, err
		}
	}

	order := &models.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		Status:          models.StatusPending,
	}
	if err := s.orderRepo.Create(order); err != nil {
		restore()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Best effort: a user checking out without a cart is fine.
	if cart, err := s.cartRepo.GetByUserID(userID); err == nil {
		cart.Items = nil
		if err := s.cartRepo.Save(cart); err != nil {
			log.Printf("failed to clear cart for user %s after order %s: %v", userID, order.ID, err)
		}
	}

	s.publish("order.created", map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
	})
	return order, nil
}

// ListOrders returns all orders for admins and only the caller's own
// otherwise.
func (s *OrderService) ListOrders(userID, role string) ([]models.Order, error) {
	if role == models.RoleAdmin {
		return s.orderRepo.GetAll()
	}
	return s.orderRepo.GetByUserID(userID)
}

// GetOrder returns a single order, visible to its owner and to admins.
func (s *OrderService) GetOrder(id, userID, role string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && order.UserID != userID {
		return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
	}
	return order, nil
}

// UpdateStatus moves an order through its lifecycle. Only transitions in
// the table are accepted; anything else is rejected.
func (s *OrderService) UpdateStatus(id, status string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("order %s cannot move from %s to %s: %w",
			id, order.Status, status, models.ErrInvalidTransition)
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.publish("order.status_updated", map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  status,
	})
	return order, nil
}

// publish sends an order event to the message queue, logging rather than
// failing the request when the broker is unavailable.
func (s *OrderService) publish(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.mqClient.Publish(event, body); err != nil {
		log.Printf("failed to publish %s event: %v", event, err)
	}
}
