package repository

import (
	"go-inventory-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	FindAll() ([]model.Purchase, error)
	FindByID(id uuid.UUID) (*model.Purchase, error)
	// WithTx runs fn inside one store transaction; all statements issued
	// through the PurchaseTx commit or roll back together.
	WithTx(fn func(tx PurchaseTx) error) error
}

// PurchaseTx is the transaction-scoped slice of the store a purchase
// mutation touches: the purchase row plus the product stock it owns.
type PurchaseTx interface {
	Get(id uuid.UUID) (*model.Purchase, error)
	Insert(purchase *model.Purchase) error
	Update(purchase *model.Purchase) error
	Delete(id uuid.UUID) error
	ProductForUpdate(id uuid.UUID) (*model.Product, error)
	AdjustStock(productID uuid.UUID, delta int) error
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) FindAll() ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Product").Order("date DESC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) FindByID(id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Preload("Product").First(&purchase, "id = ?", id).Error
	return &purchase, err
}

func (r *purchaseRepo) WithTx(fn func(tx PurchaseTx) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&purchaseTx{stockTx{tx}})
	})
}

type purchaseTx struct {
	stockTx
}

func (t *purchaseTx) Get(id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	err := t.db.First(&purchase, "id = ?", id).Error
	return &purchase, err
}

func (t *purchaseTx) Insert(purchase *model.Purchase) error {
	return t.db.Create(purchase).Error
}

func (t *purchaseTx) Update(purchase *model.Purchase) error {
	return t.db.Save(purchase).Error
}

func (t *purchaseTx) Delete(id uuid.UUID) error {
	res := t.db.Where("id = ?", id).Delete(&model.Purchase{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
