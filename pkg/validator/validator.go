package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	if err := v.RegisterValidation("areacode", validateAreaCode); err != nil {
		panic(err)
	}
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// IsAreaCode reports whether s is a three digit area code
func IsAreaCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validateAreaCode accepts empty values so it can be combined with omitempty
func validateAreaCode(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || IsAreaCode(s)
}
