package service

import (
	"fmt"

	"go-inventory-admin/internal/ledger"
	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/repository"
	"go-inventory-admin/internal/ws"

	"github.com/google/uuid"
)

type SaleService interface {
	Create(req *model.Sale) error
	Update(id uuid.UUID, req *model.Sale) (*model.Sale, error)
	Delete(id uuid.UUID) error
	GetAll() ([]model.Sale, error)
	GetByID(id uuid.UUID) (*model.Sale, error)
}

type saleService struct {
	repo   repository.SaleRepository
	events Publisher
}

func NewSaleService(repo repository.SaleRepository, events Publisher) SaleService {
	return &saleService{repo: repo, events: events}
}

// Create inserts the sale row and removes its quantity from product stock,
// as one transaction. Selling more than is on hand is rejected.
func (s *saleService) Create(req *model.Sale) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	var evt ws.StockEvent
	err := s.repo.WithTx(func(tx repository.SaleTx) error {
		product, err := tx.ProductForUpdate(req.ProductID)
		if err != nil {
			return orNotFound(err, "product", req.ProductID)
		}

		delta := ledger.Delta(ledger.Sale, 0, req.Quantity)
		if err := ledger.Check(product.StockQuantity, delta); err != nil {
			return fmt.Errorf("not enough stock available: %w", err)
		}

		if err := tx.Insert(req); err != nil {
			return err
		}
		if err := tx.AdjustStock(req.ProductID, delta); err != nil {
			return err
		}

		evt = s.stockEvent("sale_created", product, delta)
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(evt)
	return nil
}

// Update recomputes the stock delta against the previous quantity; an
// increase removes more stock and must be covered by what is on hand.
func (s *saleService) Update(id uuid.UUID, req *model.Sale) (*model.Sale, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var updated *model.Sale
	var evt ws.StockEvent
	err := s.repo.WithTx(func(tx repository.SaleTx) error {
		prev, err := tx.Get(id)
		if err != nil {
			return orNotFound(err, "sale", id)
		}

		delta := ledger.Delta(ledger.Sale, prev.Quantity, req.Quantity)

		product, err := tx.ProductForUpdate(req.ProductID)
		if err != nil {
			return orNotFound(err, "product", req.ProductID)
		}

		if delta < 0 {
			if err := ledger.Check(product.StockQuantity, delta); err != nil {
				return fmt.Errorf("not enough stock available to increase quantity: %w", err)
			}
		}

		prev.ProductID = req.ProductID
		prev.Quantity = req.Quantity
		prev.SellingPrice = req.SellingPrice
		prev.Date = req.Date

		if err := tx.Update(prev); err != nil {
			return err
		}
		if delta != 0 {
			if err := tx.AdjustStock(req.ProductID, delta); err != nil {
				return err
			}
		}

		updated = prev
		evt = s.stockEvent("sale_updated", product, delta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(evt)
	return updated, nil
}

// Delete removes the sale and restores its quantity to stock. Restoring
// stock cannot go negative, so no guard is needed.
func (s *saleService) Delete(id uuid.UUID) error {
	var evt ws.StockEvent
	err := s.repo.WithTx(func(tx repository.SaleTx) error {
		sale, err := tx.Get(id)
		if err != nil {
			return orNotFound(err, "sale", id)
		}

		product, err := tx.ProductForUpdate(sale.ProductID)
		if err != nil {
			return orNotFound(err, "product", sale.ProductID)
		}

		delta := ledger.Delta(ledger.Sale, sale.Quantity, 0)
		if err := tx.AdjustStock(sale.ProductID, delta); err != nil {
			return err
		}
		if err := tx.Delete(id); err != nil {
			return err
		}

		evt = s.stockEvent("sale_deleted", product, delta)
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(evt)
	return nil
}

func (s *saleService) GetAll() ([]model.Sale, error) {
	return s.repo.FindAll()
}

func (s *saleService) GetByID(id uuid.UUID) (*model.Sale, error) {
	sale, err := s.repo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err, "sale", id)
	}
	return sale, nil
}

func (s *saleService) stockEvent(action string, product *model.Product, delta int) ws.StockEvent {
	return ws.StockEvent{
		Action:      action,
		ProductID:   product.ID,
		ProductName: product.Name,
		Stock:       product.StockQuantity + delta,
		Message:     fmt.Sprintf("Stock of '%s' adjusted by %+d", product.Name, delta),
	}
}

func (s *saleService) publish(evt ws.StockEvent) {
	if s.events == nil {
		return
	}
	s.events.PublishStock(evt)
}
