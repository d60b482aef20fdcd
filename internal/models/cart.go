package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a single purchase intent inside a cart. Price is the unit
// price captured when the item was first added; it is intentionally never
// refreshed on later quantity changes.
type CartItem struct {
	ID        uint            `json:"-" gorm:"primaryKey;autoIncrement"`
	CartID    string          `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}

// Cart is the per-user collection of pending purchase intents. One cart per
// user, created lazily on first add; emptied, never deleted.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Item returns a pointer to the line item for productID, or nil.
func (c *Cart) Item(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// RemoveItem filters productID out of the cart. Removing an absent product
// is a no-op.
func (c *Cart) RemoveItem(productID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// CartItemView is a cart line resolved against current catalog data. The
// price stays the frozen add-time price; name, image and stock reflect the
// product as it is now.
type CartItemView struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Stock     int             `json:"stock"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartView is what GET /api/cart returns.
type CartView struct {
	Items       []CartItemView  `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
