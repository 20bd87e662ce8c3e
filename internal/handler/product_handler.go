package handler

import (
	"strings"

	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// ProductPage is the data-only page state the presentation layer renders:
// the listing, an optional edit prefill, and the outcome message.
type ProductPage struct {
	Products []model.Product `json:"products"`
	Edit     *model.Product  `json:"edit,omitempty"`
	Message  string          `json:"message,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Page handles GET /products. delete_id performs the delete action,
// edit_id prefills the form, q filters the listing by name.
func (h *ProductHandler) Page(c *fiber.Ctx) error {
	var page ProductPage
	status := fiber.StatusOK

	if v := c.Query("delete_id"); v != "" {
		if id, err := uuid.Parse(v); err != nil {
			status, page.Error = fiber.StatusBadRequest, invalidErr("delete_id", v).Error()
		} else if err := h.service.Delete(id); err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Message = "Product deleted successfully!"
		}
	}

	if v := c.Query("edit_id"); v != "" && page.Error == "" {
		if id, err := uuid.Parse(v); err != nil {
			status, page.Error = fiber.StatusBadRequest, invalidErr("edit_id", v).Error()
		} else if product, err := h.service.GetByID(id); err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Edit = product
		}
	}

	return h.render(c, status, page)
}

// Submit handles POST /products. The pressed button's name selects the
// write path: add_product or update_product.
func (h *ProductHandler) Submit(c *fiber.Ctx) error {
	var page ProductPage
	status := fiber.StatusOK

	switch {
	case c.FormValue("add_product") != "":
		req, err := parseProductForm(c)
		if err == nil {
			err = h.service.Create(req)
		}
		if err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Message = "Product added successfully!"
		}

	case c.FormValue("update_product") != "":
		id, err := formUUID(c, "id")
		var req *model.Product
		if err == nil {
			req, err = parseProductForm(c)
		}
		if err == nil {
			_, err = h.service.Update(id, req)
		}
		if err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Message = "Product updated successfully!"
		}

	default:
		status, page.Error = fiber.StatusBadRequest, "unknown form action"
	}

	return h.render(c, status, page)
}

func (h *ProductHandler) render(c *fiber.Ctx, status int, page ProductPage) error {
	products, err := h.service.GetAll(c.Query("q"))
	if err != nil {
		if page.Error == "" {
			status, page.Error = statusFor(err), messageFor(err)
		}
	} else {
		page.Products = products
	}
	return c.Status(status).JSON(page)
}

func parseProductForm(c *fiber.Ctx) (*model.Product, error) {
	purchasePrice, err := formDecimal(c, "purchase_price")
	if err != nil {
		return nil, err
	}
	sellingPrice, err := formDecimal(c, "selling_price")
	if err != nil {
		return nil, err
	}
	stock, err := formIntDefault(c, "stock_quantity", 0)
	if err != nil {
		return nil, err
	}
	expiry, err := formDatePtr(c, "expiry_date")
	if err != nil {
		return nil, err
	}

	return &model.Product{
		Name:          strings.TrimSpace(c.FormValue("name")),
		Category:      strings.TrimSpace(c.FormValue("category")),
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		StockQuantity: stock,
		ExpiryDate:    expiry,
	}, nil
}
