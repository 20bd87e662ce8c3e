package handler

import (
	"strings"

	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	service  service.PurchaseService
	products service.ProductService
}

func NewPurchaseHandler(s service.PurchaseService, products service.ProductService) *PurchaseHandler {
	return &PurchaseHandler{service: s, products: products}
}

// PurchasePage carries the listing plus the product dropdown the form
// needs (names with current stock).
type PurchasePage struct {
	Purchases []model.Purchase `json:"purchases"`
	Products  []model.Product  `json:"products"`
	Edit      *model.Purchase  `json:"edit,omitempty"`
	Message   string           `json:"message,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Page handles GET /purchases. delete_id deletes the purchase and rolls its
// quantity out of stock (rejected if stock cannot absorb it); edit_id
// prefills the form.
func (h *PurchaseHandler) Page(c *fiber.Ctx) error {
	var page PurchasePage
	status := fiber.StatusOK

	if v := c.Query("delete_id"); v != "" {
		if id, err := uuid.Parse(v); err != nil {
			status, page.Error = fiber.StatusBadRequest, invalidErr("delete_id", v).Error()
		} else if err := h.service.Delete(id); err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Message = "Purchase deleted successfully, and stock adjusted."
		}
	}

	if v := c.Query("edit_id"); v != "" && page.Error == "" {
		if id, err := uuid.Parse(v); err != nil {
			status, page.Error = fiber.StatusBadRequest, invalidErr("edit_id", v).Error()
		} else if purchase, err := h.service.GetByID(id); err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Edit = purchase
		}
	}

	return h.render(c, status, page)
}

// Submit handles POST /purchases with an add_purchase or update_purchase
// action marker.
func (h *PurchaseHandler) Submit(c *fiber.Ctx) error {
	var page PurchasePage
	status := fiber.StatusOK

	switch {
	case c.FormValue("add_purchase") != "":
		req, err := parsePurchaseForm(c)
		if err == nil {
			err = h.service.Create(req)
		}
		if err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Message = "Purchase added successfully!"
		}

	case c.FormValue("update_purchase") != "":
		id, err := formUUID(c, "id")
		var req *model.Purchase
		if err == nil {
			req, err = parsePurchaseForm(c)
		}
		if err == nil {
			_, err = h.service.Update(id, req)
		}
		if err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Message = "Purchase updated successfully!"
		}

	default:
		status, page.Error = fiber.StatusBadRequest, "unknown form action"
	}

	return h.render(c, status, page)
}

func (h *PurchaseHandler) render(c *fiber.Ctx, status int, page PurchasePage) error {
	purchases, err := h.service.GetAll()
	if err == nil {
		page.Purchases = purchases
		page.Products, err = h.products.GetAll("")
	}
	if err != nil && page.Error == "" {
		status, page.Error = statusFor(err), messageFor(err)
	}
	return c.Status(status).JSON(page)
}

func parsePurchaseForm(c *fiber.Ctx) (*model.Purchase, error) {
	productID, err := formUUID(c, "product_id")
	if err != nil {
		return nil, err
	}
	quantity, err := formInt(c, "quantity")
	if err != nil {
		return nil, err
	}
	price, err := formDecimal(c, "purchase_price")
	if err != nil {
		return nil, err
	}
	date, err := formDate(c, "date")
	if err != nil {
		return nil, err
	}

	return &model.Purchase{
		ProductID:     productID,
		Quantity:      quantity,
		PurchasePrice: price,
		Date:          date,
		SupplierName:  strings.TrimSpace(c.FormValue("supplier_name")),
	}, nil
}
