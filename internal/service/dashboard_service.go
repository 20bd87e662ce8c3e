package service

import (
	"time"

	"go-inventory-admin/internal/repository"
)

type DashboardService interface {
	GetStats() (*repository.DashboardStats, error)
	GetStockMovement(days int) ([]repository.StockMovementData, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) GetStats() (*repository.DashboardStats, error) {
	return s.repo.GetStats()
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.repo.GetStockMovement(startDate, endDate)
}
