package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagULID validates that a string is a canonical ULID, e.g. an analysis id.
const TagULID = "ulid"

// New creates a new validator instance with the project's custom tags registered.
func New() *Validate {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(TagULID, isULID)
	return v
}

func isULID(fl validator.FieldLevel) bool {
	_, err := ulid.ParseStrict(fl.Field().String())
	return err == nil
}
