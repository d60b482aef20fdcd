package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Categories form a closed set; products outside it are rejected at
// validation time.
var Categories = []string{
	"Fruits", "Vegetables", "Dairy", "Meat", "Bakery",
	"Beverages", "Snacks", "Frozen", "Pantry",
}

// Rating is the aggregate review score carried on a product.
type Rating struct {
	Average float64 `json:"average" gorm:"default:0" validate:"gte=0,lte=5"`
	Count   int     `json:"count" gorm:"default:0" validate:"gte=0"`
}

// NutritionInfo holds the optional per-product nutrition facts.
type NutritionInfo struct {
	Calories int    `json:"calories" gorm:"default:0"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// Product represents a catalog entry.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Description string          `json:"description" validate:"required,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Category    string          `json:"category" validate:"required,oneof=Fruits Vegetables Dairy Meat Bakery Beverages Snacks Frozen Pantry"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Image       string          `json:"image"`
	IsActive    bool            `json:"isActive" gorm:"default:true"`
	Rating      Rating          `json:"rating" gorm:"embedded;embeddedPrefix:rating_"`
	Nutrition   NutritionInfo   `json:"nutrition" gorm:"embedded;embeddedPrefix:nutrition_"`
	gorm.Model  `json:"-"`
}

// DefaultProductImage is used when an admin creates a product without one.
const DefaultProductImage = "https://images.pexels.com/photos/264636/pexels-photo-264636.jpeg?auto=compress&cs=tinysrgb&w=500"
