package repository

import (
	"go-inventory-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// stockTx carries the product-side statements every purchase/sale mutation
// needs: a row-locked read for the guard, and a relative stock write.
type stockTx struct {
	db *gorm.DB
}

// ProductForUpdate reads the product row under FOR UPDATE so the stock
// guard and the adjustment below cannot interleave with a concurrent
// mutation of the same product.
func (t *stockTx) ProductForUpdate(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := t.db.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", id).Error
	return &product, err
}

// AdjustStock applies stock_quantity = stock_quantity + delta. The update
// is relative on purpose: two concurrent adjustments compose correctly
// regardless of interleaving, which an absolute overwrite would not.
func (t *stockTx) AdjustStock(productID uuid.UUID, delta int) error {
	res := t.db.Model(&model.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
