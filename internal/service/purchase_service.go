package service

import (
	"fmt"

	"go-inventory-admin/internal/ledger"
	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/repository"
	"go-inventory-admin/internal/ws"

	"github.com/google/uuid"
)

type PurchaseService interface {
	Create(req *model.Purchase) error
	Update(id uuid.UUID, req *model.Purchase) (*model.Purchase, error)
	Delete(id uuid.UUID) error
	GetAll() ([]model.Purchase, error)
	GetByID(id uuid.UUID) (*model.Purchase, error)
}

// PurchaseConfig groups optional settings.
type PurchaseConfig struct {
	// LegacyShrinkGuard switches quantity-reduction guards back to the
	// historical inequality (see ledger.LegacyShrinkCheck), which rejects
	// every reduction. Off by default: the standard rule only requires the
	// resulting stock to stay non-negative.
	LegacyShrinkGuard bool
}

type purchaseService struct {
	repo   repository.PurchaseRepository
	cfg    PurchaseConfig
	events Publisher
}

func NewPurchaseService(repo repository.PurchaseRepository, cfg PurchaseConfig, events Publisher) PurchaseService {
	return &purchaseService{repo: repo, cfg: cfg, events: events}
}

// Create inserts the purchase row and adds its quantity to product stock,
// as one transaction.
func (s *purchaseService) Create(req *model.Purchase) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	var evt ws.StockEvent
	err := s.repo.WithTx(func(tx repository.PurchaseTx) error {
		product, err := tx.ProductForUpdate(req.ProductID)
		if err != nil {
			return orNotFound(err, "product", req.ProductID)
		}

		delta := ledger.Delta(ledger.Purchase, 0, req.Quantity)
		if err := tx.Insert(req); err != nil {
			return err
		}
		if err := tx.AdjustStock(req.ProductID, delta); err != nil {
			return err
		}

		evt = s.stockEvent("purchase_created", product, delta)
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(evt)
	return nil
}

// Update recomputes the stock delta against the previous quantity. A net
// reduction must be absorbable by the stock on hand, or (legacy mode) is
// rejected outright.
func (s *purchaseService) Update(id uuid.UUID, req *model.Purchase) (*model.Purchase, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var updated *model.Purchase
	var evt ws.StockEvent
	err := s.repo.WithTx(func(tx repository.PurchaseTx) error {
		prev, err := tx.Get(id)
		if err != nil {
			return orNotFound(err, "purchase", id)
		}

		delta := ledger.Delta(ledger.Purchase, prev.Quantity, req.Quantity)

		product, err := tx.ProductForUpdate(req.ProductID)
		if err != nil {
			return orNotFound(err, "product", req.ProductID)
		}

		if delta < 0 {
			if s.cfg.LegacyShrinkGuard {
				err = ledger.LegacyShrinkCheck(product.StockQuantity, delta)
			} else {
				err = ledger.Check(product.StockQuantity, delta)
			}
			if err != nil {
				return err
			}
		}

		prev.ProductID = req.ProductID
		prev.Quantity = req.Quantity
		prev.PurchasePrice = req.PurchasePrice
		prev.Date = req.Date
		prev.SupplierName = req.SupplierName

		if err := tx.Update(prev); err != nil {
			return err
		}
		if delta != 0 {
			if err := tx.AdjustStock(req.ProductID, delta); err != nil {
				return err
			}
		}

		updated = prev
		evt = s.stockEvent("purchase_updated", product, delta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(evt)
	return updated, nil
}

// Delete removes the purchase and subtracts its quantity from stock. When
// stock cannot absorb the subtraction the whole operation is rejected and
// the row is kept.
func (s *purchaseService) Delete(id uuid.UUID) error {
	var evt ws.StockEvent
	err := s.repo.WithTx(func(tx repository.PurchaseTx) error {
		purchase, err := tx.Get(id)
		if err != nil {
			return orNotFound(err, "purchase", id)
		}

		product, err := tx.ProductForUpdate(purchase.ProductID)
		if err != nil {
			return orNotFound(err, "product", purchase.ProductID)
		}

		delta := ledger.Delta(ledger.Purchase, purchase.Quantity, 0)
		if err := ledger.Check(product.StockQuantity, delta); err != nil {
			return err
		}

		if err := tx.AdjustStock(purchase.ProductID, delta); err != nil {
			return err
		}
		if err := tx.Delete(id); err != nil {
			return err
		}

		evt = s.stockEvent("purchase_deleted", product, delta)
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(evt)
	return nil
}

func (s *purchaseService) GetAll() ([]model.Purchase, error) {
	return s.repo.FindAll()
}

func (s *purchaseService) GetByID(id uuid.UUID) (*model.Purchase, error) {
	purchase, err := s.repo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err, "purchase", id)
	}
	return purchase, nil
}

func (s *purchaseService) stockEvent(action string, product *model.Product, delta int) ws.StockEvent {
	return ws.StockEvent{
		Action:      action,
		ProductID:   product.ID,
		ProductName: product.Name,
		Stock:       product.StockQuantity + delta,
		Message:     fmt.Sprintf("Stock of '%s' adjusted by %+d", product.Name, delta),
	}
}

func (s *purchaseService) publish(evt ws.StockEvent) {
	if s.events == nil {
		return
	}
	s.events.PublishStock(evt)
}
