package repository

import (
	"sort"
	"time"

	"go-inventory-admin/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const lowStockThreshold = 10

// StockMovementData for chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats for overview stats
type DashboardStats struct {
	TotalProducts  int64           `json:"total_products"`
	LowStockCount  int64           `json:"low_stock_count"`
	StockValuation decimal.Decimal `json:"stock_valuation"`
}

type DashboardRepository interface {
	GetStats() (*DashboardStats, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

func (r *dashboardRepo) GetStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("stock_quantity < ?", lowStockThreshold).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	// Valuation at selling price (what the stock on hand would sell for).
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(stock_quantity * selling_price), 0)").
		Scan(&stats.StockValuation).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetStockMovement aggregates purchased (inbound) and sold (outbound)
// quantities per day over the window.
func (r *dashboardRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	byDay := map[string]*StockMovementData{}

	type row struct {
		Day string
		Qty int
	}

	var inbound []row
	if err := r.db.Model(&model.Purchase{}).
		Select("to_char(date, 'YYYY-MM-DD') AS day, COALESCE(SUM(quantity), 0) AS qty").
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("day").
		Scan(&inbound).Error; err != nil {
		return nil, err
	}
	for _, in := range inbound {
		byDay[in.Day] = &StockMovementData{Date: in.Day, Inbound: in.Qty}
	}

	var outbound []row
	if err := r.db.Model(&model.Sale{}).
		Select("to_char(date, 'YYYY-MM-DD') AS day, COALESCE(SUM(quantity), 0) AS qty").
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("day").
		Scan(&outbound).Error; err != nil {
		return nil, err
	}
	for _, out := range outbound {
		if entry, ok := byDay[out.Day]; ok {
			entry.Outbound = out.Qty
		} else {
			byDay[out.Day] = &StockMovementData{Date: out.Day, Outbound: out.Qty}
		}
	}

	results := make([]StockMovementData, 0, len(byDay))
	for _, entry := range byDay {
		results = append(results, *entry)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Date < results[j].Date })
	return results, nil
}
