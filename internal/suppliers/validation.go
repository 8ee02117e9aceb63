package suppliers

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rossilindo/estoque/internal/platform/httpx"
)

var validate = validator.New()

func validateCreate(req CreateSupplierRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		return fmt.Errorf("field %q is required: %w", fieldErrs[0].Field(), httpx.ErrValidation)
	}
	return fmt.Errorf("%s: %w", err, httpx.ErrValidation)
}
