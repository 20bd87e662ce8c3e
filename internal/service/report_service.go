package service

import (
	"time"

	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/repository"
)

type ReportService interface {
	// Generate aggregates the month's sales and purchases into a stored
	// profit/loss snapshot, overwriting any previous snapshot for that
	// month. Accepts "YYYY-MM" or any date within the month.
	Generate(monthOrDate string) (*model.Report, error)
	Delete(month string) error
	GetAll() ([]model.Report, error)
}

type reportService struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) Generate(monthOrDate string) (*model.Report, error) {
	month, err := normalizeMonth(monthOrDate)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.MonthlyRevenue(month)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.MonthlyExpenses(month)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Month:         month,
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		Profit:        revenue.Sub(expenses),
		GeneratedAt:   time.Now(),
	}
	if err := s.repo.Upsert(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) Delete(month string) error {
	normalized, err := normalizeMonth(month)
	if err != nil {
		return err
	}
	return s.repo.DeleteByMonth(normalized)
}

func (s *reportService) GetAll() ([]model.Report, error) {
	return s.repo.FindAll()
}

func normalizeMonth(s string) (string, error) {
	if t, err := time.Parse("2006-01", s); err == nil {
		return t.Format("2006-01"), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01"), nil
	}
	return "", invalidf("invalid month '%s': want YYYY-MM or a date within the month", s)
}
