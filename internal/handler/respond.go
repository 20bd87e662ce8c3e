package handler

import (
	"errors"

	"go-inventory-admin/internal/ledger"
	"go-inventory-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service error kinds onto HTTP statuses: validation 400,
// stock conflict 409, missing record 404, anything else 500.
func statusFor(err error) int {
	var validation *service.ValidationError
	var conflict *ledger.ConflictError
	switch {
	case errors.As(err, &validation):
		return fiber.StatusBadRequest
	case errors.As(err, &conflict):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// messageFor keeps store errors generic; everything else is safe to show.
func messageFor(err error) string {
	if statusFor(err) == fiber.StatusInternalServerError {
		return "Internal Server Error"
	}
	return err.Error()
}
