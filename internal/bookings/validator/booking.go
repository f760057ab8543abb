package validator

import (
	"fitstudio/pkg/errors"
	"fitstudio/pkg/model"

	"github.com/go-playground/validator/v10"
)

// BookingValidator checks POST /book payloads. Missing fields and bad
// email formats are the two client-facing failure messages; everything
// else (length caps, non-positive ids) reports the offending fields.
type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator() *BookingValidator {
	return &BookingValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *BookingValidator) ValidateRequest(req *model.BookingRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Internal("Validation failed", err)
	}

	var missing []string
	var invalid []string
	emailInvalid := false

	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			missing = append(missing, jsonFieldName(fieldErr.Field()))
		case "email":
			emailInvalid = true
		default:
			invalid = append(invalid, jsonFieldName(fieldErr.Field()))
		}
	}

	if len(missing) > 0 {
		return errors.Validation("Missing required fields", map[string]any{
			"fields": missing,
		})
	}
	if emailInvalid {
		return errors.Validation("Invalid email address format", nil)
	}

	return errors.Validation("Invalid field values", map[string]any{
		"fields": invalid,
	})
}

func jsonFieldName(structField string) string {
	switch structField {
	case "ClassID":
		return "class_id"
	case "ClientName":
		return "client_name"
	case "ClientEmail":
		return "client_email"
	}
	return structField
}
