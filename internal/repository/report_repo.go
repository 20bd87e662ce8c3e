package repository

import (
	"go-inventory-admin/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportRepository interface {
	MonthlyRevenue(month string) (decimal.Decimal, error)
	MonthlyExpenses(month string) (decimal.Decimal, error)
	Upsert(report *model.Report) error
	FindAll() ([]model.Report, error)
	DeleteByMonth(month string) error
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

// MonthlyRevenue sums quantity * selling_price over the month's sales.
func (r *reportRepo) MonthlyRevenue(month string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.Sale{}).
		Where("to_char(date, 'YYYY-MM') = ?", month).
		Select("COALESCE(SUM(quantity * selling_price), 0)").
		Scan(&total).Error
	return total, err
}

// MonthlyExpenses sums quantity * purchase_price over the month's purchases.
func (r *reportRepo) MonthlyExpenses(month string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.Purchase{}).
		Where("to_char(date, 'YYYY-MM') = ?", month).
		Select("COALESCE(SUM(quantity * purchase_price), 0)").
		Scan(&total).Error
	return total, err
}

// Upsert inserts the report or, when the month already has one, overwrites
// its stored values in place.
func (r *reportRepo) Upsert(report *model.Report) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_revenue", "total_expenses", "profit", "generated_at"}),
	}).Create(report).Error
}

func (r *reportRepo) FindAll() ([]model.Report, error) {
	var reports []model.Report
	err := r.db.Order("month DESC").Find(&reports).Error
	return reports, err
}

func (r *reportRepo) DeleteByMonth(month string) error {
	return r.db.Where("month = ?", month).Delete(&model.Report{}).Error
}
