// Package service implements the application's operations on top of the
// storage layer: request validation, domain invariants and the settlement
// engine's orchestration. Services are constructed once at process start and
// injected into the HTTP handlers.
package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
)

// validate is shared by all services; it is configured once and read-only
// afterwards. Field names in errors come from json tags so callers see the
// names they sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkInput runs struct validation and converts the first failure into a
// ValidationError naming the offending field.
func checkInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperr.Validationf(fe.Field(), "%s", constraintMessage(fe))
	}
	return err
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match %s", datePatternName(fe.Param()))
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "unique":
		return "must not contain duplicates"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

func datePatternName(layout string) string {
	switch layout {
	case "2006-01-02":
		return "YYYY-MM-DD"
	case "2006-01":
		return "YYYY-MM"
	default:
		return layout
	}
}
