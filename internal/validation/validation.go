// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator. Field names in errors follow
// the json (or query) tag so they match what the client sent.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
		_ = validate.RegisterValidation("money", isMoney)
	})
	return validate
}

// Struct validates s against its struct tags.
func Struct(s any) error {
	return Validator().Struct(s)
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "query", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// isMoney accepts a non-negative decimal amount with at most two
// fractional digits that fits the stored cents range, e.g. "150" or
// "89.99". Empty strings pass so the rule can sit behind omitempty.
func isMoney(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return amount.Exponent() >= -2 && model.CentsInRange(amount)
}
