package handler

import (
	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SaleHandler struct {
	service  service.SaleService
	products service.ProductService
}

func NewSaleHandler(s service.SaleService, products service.ProductService) *SaleHandler {
	return &SaleHandler{service: s, products: products}
}

type SalePage struct {
	Sales    []model.Sale    `json:"sales"`
	Products []model.Product `json:"products"`
	Edit     *model.Sale     `json:"edit,omitempty"`
	Message  string          `json:"message,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Page handles GET /sales. delete_id deletes the sale and restores its
// quantity to stock; edit_id prefills the form.
func (h *SaleHandler) Page(c *fiber.Ctx) error {
	var page SalePage
	status := fiber.StatusOK

	if v := c.Query("delete_id"); v != "" {
		if id, err := uuid.Parse(v); err != nil {
			status, page.Error = fiber.StatusBadRequest, invalidErr("delete_id", v).Error()
		} else if err := h.service.Delete(id); err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Message = "Sale deleted successfully!"
		}
	}

	if v := c.Query("edit_id"); v != "" && page.Error == "" {
		if id, err := uuid.Parse(v); err != nil {
			status, page.Error = fiber.StatusBadRequest, invalidErr("edit_id", v).Error()
		} else if sale, err := h.service.GetByID(id); err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Edit = sale
		}
	}

	return h.render(c, status, page)
}

// Submit handles POST /sales with an add_sale or update_sale action marker.
func (h *SaleHandler) Submit(c *fiber.Ctx) error {
	var page SalePage
	status := fiber.StatusOK

	switch {
	case c.FormValue("add_sale") != "":
		req, err := parseSaleForm(c)
		if err == nil {
			err = h.service.Create(req)
		}
		if err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Message = "Sale added successfully!"
		}

	case c.FormValue("update_sale") != "":
		id, err := formUUID(c, "id")
		var req *model.Sale
		if err == nil {
			req, err = parseSaleForm(c)
		}
		if err == nil {
			_, err = h.service.Update(id, req)
		}
		if err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Message = "Sale updated successfully!"
		}

	default:
		status, page.Error = fiber.StatusBadRequest, "unknown form action"
	}

	return h.render(c, status, page)
}

func (h *SaleHandler) render(c *fiber.Ctx, status int, page SalePage) error {
	sales, err := h.service.GetAll()
	if err == nil {
		page.Sales = sales
		page.Products, err = h.products.GetAll("")
	}
	if err != nil && page.Error == "" {
		status, page.Error = statusFor(err), messageFor(err)
	}
	return c.Status(status).JSON(page)
}

func parseSaleForm(c *fiber.Ctx) (*model.Sale, error) {
	productID, err := formUUID(c, "product_id")
	if err != nil {
		return nil, err
	}
	quantity, err := formInt(c, "quantity")
	if err != nil {
		return nil, err
	}
	price, err := formDecimal(c, "selling_price")
	if err != nil {
		return nil, err
	}
	date, err := formDate(c, "date")
	if err != nil {
		return nil, err
	}

	return &model.Sale{
		ProductID:    productID,
		Quantity:     quantity,
		SellingPrice: price,
		Date:         date,
	}, nil
}
