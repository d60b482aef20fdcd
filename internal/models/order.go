package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Transitions are validated against the table below; any
// other value is rejected.
const (
	StatusPending   = "pending"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// statusTransitions maps each status to the statuses it may move to.
// Delivered and cancelled are terminal.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// CanTransition reports whether an order may move from one status to
// another. Unknown statuses never transition.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Payment methods accepted at checkout.
const (
	PaymentCOD  = "cod"
	PaymentCard = "card"
)

// DeliveryAddress is the structured shipping destination on an order.
type DeliveryAddress struct {
	Name       string `json:"name" gorm:"column:addr_name" validate:"required"`
	Email      string `json:"email" gorm:"column:addr_email" validate:"required,email"`
	Phone      string `json:"phone" gorm:"column:addr_phone" validate:"required"`
	Street     string `json:"street" gorm:"column:addr_street" validate:"required"`
	City       string `json:"city" gorm:"column:addr_city" validate:"required"`
	PostalCode string `json:"postalCode" gorm:"column:addr_postal_code" validate:"required"`
}

// OrderItem is an immutable snapshot of one purchased line: the product
// reference, quantity, and the unit price at order time.
type OrderItem struct {
	ID        uint            `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string          `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36)"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}

// Order is the record of a completed checkout. Immutable except for Status.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount     decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2)"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"type:varchar(16)"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress" gorm:"embedded"`
	Status          string          `json:"status" gorm:"type:varchar(16)"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
