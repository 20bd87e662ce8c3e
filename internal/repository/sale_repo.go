package repository

import (
	"go-inventory-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	FindAll() ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	// WithTx runs fn inside one store transaction; all statements issued
	// through the SaleTx commit or roll back together.
	WithTx(fn func(tx SaleTx) error) error
}

// SaleTx is the transaction-scoped slice of the store a sale mutation
// touches: the sale row plus the product stock it owns.
type SaleTx interface {
	Get(id uuid.UUID) (*model.Sale, error)
	Insert(sale *model.Sale) error
	Update(sale *model.Sale) error
	Delete(id uuid.UUID) error
	ProductForUpdate(id uuid.UUID) (*model.Product, error)
	AdjustStock(productID uuid.UUID, delta int) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Product").Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Product").First(&sale, "id = ?", id).Error
	return &sale, err
}

func (r *saleRepo) WithTx(fn func(tx SaleTx) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&saleTx{stockTx{tx}})
	})
}

type saleTx struct {
	stockTx
}

func (t *saleTx) Get(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := t.db.First(&sale, "id = ?", id).Error
	return &sale, err
}

func (t *saleTx) Insert(sale *model.Sale) error {
	return t.db.Create(sale).Error
}

func (t *saleTx) Update(sale *model.Sale) error {
	return t.db.Save(sale).Error
}

func (t *saleTx) Delete(id uuid.UUID) error {
	res := t.db.Where("id = ?", id).Delete(&model.Sale{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
