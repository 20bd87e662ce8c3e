package handler

import (
	"strings"
	"time"

	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

type ReportPage struct {
	Reports   []model.Report `json:"reports"`
	Generated *model.Report  `json:"generated,omitempty"`
	Message   string         `json:"message,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Page handles GET /reports. delete_month removes that month's snapshot.
func (h *ReportHandler) Page(c *fiber.Ctx) error {
	var page ReportPage
	status := fiber.StatusOK

	if month := c.Query("delete_month"); month != "" {
		if err := h.service.Delete(month); err != nil {
			status, page.Error = statusFor(err), messageFor(err)
		} else {
			page.Message = "Report for " + month + " deleted successfully!"
		}
	}

	return h.render(c, status, page)
}

// Submit handles POST /reports with a generate_report action marker. The
// month comes from a 'month' field ("YYYY-MM") or a 'selected_date' within
// the month; with neither, the current month is generated.
func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var page ReportPage
	status := fiber.StatusOK

	if c.FormValue("generate_report") == "" {
		status, page.Error = fiber.StatusBadRequest, "unknown form action"
		return h.render(c, status, page)
	}

	monthOrDate := strings.TrimSpace(c.FormValue("month"))
	if monthOrDate == "" {
		monthOrDate = strings.TrimSpace(c.FormValue("selected_date"))
	}
	if monthOrDate == "" {
		monthOrDate = time.Now().Format("2006-01-02")
	}

	report, err := h.service.Generate(monthOrDate)
	if err != nil {
		status, page.Error = statusFor(err), messageFor(err)
	} else {
		page.Generated = report
		page.Message = "Report for " + report.Month + " generated successfully!"
	}

	return h.render(c, status, page)
}

func (h *ReportHandler) render(c *fiber.Ctx, status int, page ReportPage) error {
	reports, err := h.service.GetAll()
	if err != nil {
		if page.Error == "" {
			status, page.Error = statusFor(err), messageFor(err)
		}
	} else {
		page.Reports = reports
	}
	return c.Status(status).JSON(page)
}
