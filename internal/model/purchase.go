package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is a stock-increasing event. PurchasePrice is the price paid at
// purchase time and is independent of the product's current purchase price.
type Purchase struct {
	BaseModel
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product       Product         `json:"product" validate:"-"`
	Quantity      int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"purchase_price" validate:"gte=0"`
	Date          time.Time       `gorm:"type:date;not null" json:"date" validate:"required"`
	SupplierName  string          `gorm:"type:varchar(255)" json:"supplier_name"`
}
