package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a stock-decreasing event. SellingPrice is the price charged at
// sale time.
type Sale struct {
	BaseModel
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product      Product         `json:"product" validate:"-"`
	Quantity     int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"selling_price" validate:"gte=0"`
	Date         time.Time       `gorm:"type:date;not null" json:"date" validate:"required"`
}
