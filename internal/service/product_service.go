package service

import (
	"fmt"

	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/repository"
	"go-inventory-admin/internal/ws"

	"github.com/google/uuid"
)

type ProductService interface {
	Create(req *model.Product) error
	Update(id uuid.UUID, req *model.Product) (*model.Product, error)
	Delete(id uuid.UUID) error
	GetAll(query string) ([]model.Product, error)
	GetByID(id uuid.UUID) (*model.Product, error)
}

type productService struct {
	repo   repository.ProductRepository
	events Publisher
}

func NewProductService(repo repository.ProductRepository, events Publisher) ProductService {
	return &productService{repo: repo, events: events}
}

func (s *productService) Create(req *model.Product) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	// Product names are unique; reject duplicates before writing.
	if existing, err := s.repo.FindByName(req.Name); err == nil && existing.ID != uuid.Nil {
		return invalidf("product '%s' already exists", req.Name)
	}

	if err := s.repo.Create(req); err != nil {
		return err
	}

	s.publish("product_created", req, fmt.Sprintf("Product '%s' created", req.Name))
	return nil
}

func (s *productService) Update(id uuid.UUID, req *model.Product) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err, "product", id)
	}

	if other, err := s.repo.FindByName(req.Name); err == nil && other.ID != uuid.Nil && other.ID != id {
		return nil, invalidf("product name '%s' already exists for another product", req.Name)
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.PurchasePrice = req.PurchasePrice
	existing.SellingPrice = req.SellingPrice
	existing.StockQuantity = req.StockQuantity
	existing.ExpiryDate = req.ExpiryDate

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}

	s.publish("product_updated", existing, fmt.Sprintf("Product '%s' updated", existing.Name))
	return existing, nil
}

// Delete is unconditional: referencing purchases/sales are left in place
// (orphaning is permitted; the soft-deleted product row keeps their joins
// resolving).
func (s *productService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return orNotFound(err, "product", id)
	}
	return nil
}

func (s *productService) GetAll(query string) ([]model.Product, error) {
	return s.repo.FindAll(query)
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err, "product", id)
	}
	return product, nil
}

func (s *productService) publish(action string, product *model.Product, message string) {
	if s.events == nil {
		return
	}
	s.events.PublishStock(ws.StockEvent{
		Action:      action,
		ProductID:   product.ID,
		ProductName: product.Name,
		Stock:       product.StockQuantity,
		Message:     message,
	})
}
