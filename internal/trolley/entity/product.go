package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry independent of any specific trolley.
type Product struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	Name          string           `json:"name" gorm:"size:255;not null"`
	Description   *string          `json:"description" gorm:"type:text"`
	SKU           string           `json:"sku" gorm:"size:100;not null;uniqueIndex"`
	StockQuantity int              `json:"stock_quantity" gorm:"not null;default:0"`
	ImageURL      *string          `json:"image_url" gorm:"size:512"`
	Price         *decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Category      string           `json:"category" gorm:"size:100;index"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
