package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wagneradl/mission-control/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct validation and converts the first failure into
// the domain validation error surfaced to callers.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			return domain.NewValidationError(field, "is required")
		case "gt", "gte", "lte", "oneof", "email":
			return domain.NewValidationError(field, "has an invalid value")
		default:
			return domain.NewValidationError(field, "failed validation: "+fe.Tag())
		}
	}
	return domain.NewValidationError("", err.Error())
}
