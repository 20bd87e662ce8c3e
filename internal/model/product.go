package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name          string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Category      string          `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"purchase_price" validate:"gte=0"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"selling_price" validate:"gte=0"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	ExpiryDate    *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
}
