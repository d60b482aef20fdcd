package services

import (
	"fmt"
	"math/rand"

	"grocer/internal/models"

	"github.com/shopspring/decimal"
)

// PaymentProcessor charges a card payment at checkout. Cash-on-delivery
// orders never touch it.
type PaymentProcessor interface {
	Charge(userID string, amount decimal.Decimal) error
}

// SimulatedProcessor stands in for a real gateway: roughly one in five
// charges is declined.
type SimulatedProcessor struct{}

// Charge approves or declines a payment at random.
func (SimulatedProcessor) Charge(userID string, amount decimal.Decimal) error {
	if rand.Float64() > 0.8 {
		return fmt.Errorf("card charge of %s for user %s: %w", amount, userID, models.ErrPaymentDeclined)
	}
	return nil
}

// ApproveAllProcessor accepts every charge. Used in tests.
type ApproveAllProcessor struct{}

// Charge always succeeds.
func (ApproveAllProcessor) Charge(string, decimal.Decimal) error { return nil }
