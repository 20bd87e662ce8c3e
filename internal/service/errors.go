package service

import (
	"errors"
	"fmt"

	"go-inventory-admin/pkg/validator"

	"gorm.io/gorm"
)

// ErrNotFound marks a referenced product/purchase/sale/report that does not
// exist. Wrapped with the entity and id for the page message.
var ErrNotFound = errors.New("not found")

// ValidationError reports missing or malformed input. It is raised before
// any store access.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// validateStruct runs the shared validator and surfaces the first failure.
func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return invalidf("validation failed: field '%s' failed on '%s'", first.FailedField, first.Tag)
	}
	return nil
}

// orNotFound translates the store's missing-record error into ErrNotFound
// with context; other errors pass through untouched.
func orNotFound(err error, entity string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
	}
	return err
}
