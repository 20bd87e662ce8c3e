package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-inventory-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field parsing for the submitted create/edit forms. Required fields reject
// the whole submission when empty; the typed value never reaches a service
// half-parsed.

const dateLayout = "2006-01-02"

func formUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return uuid.Nil, requiredErr(name)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, invalidErr(name, v)
	}
	return id, nil
}

func formInt(c *fiber.Ctx, name string) (int, error) {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return 0, requiredErr(name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalidErr(name, v)
	}
	return n, nil
}

// formIntDefault is for optional integers (product stock defaults to 0).
func formIntDefault(c *fiber.Ctx, name string, def int) (int, error) {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalidErr(name, v)
	}
	return n, nil
}

func formDecimal(c *fiber.Ctx, name string) (decimal.Decimal, error) {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return decimal.Zero, requiredErr(name)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, invalidErr(name, v)
	}
	return d, nil
}

func formDate(c *fiber.Ctx, name string) (time.Time, error) {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return time.Time{}, requiredErr(name)
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, invalidErr(name, v)
	}
	return t, nil
}

// formDatePtr is for optional dates (product expiry).
func formDatePtr(c *fiber.Ctx, name string) (*time.Time, error) {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, invalidErr(name, v)
	}
	return &t, nil
}

func requiredErr(name string) error {
	return &service.ValidationError{Msg: fmt.Sprintf("please fill in all required fields: '%s' is missing", name)}
}

func invalidErr(name, value string) error {
	return &service.ValidationError{Msg: fmt.Sprintf("field '%s' has invalid value '%s'", name, value)}
}
