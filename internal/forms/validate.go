// Package forms holds the create dialogs of the dashboard: their field
// schemas, validation rules and the open/submit lifecycle.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"inmogestor-backend/internal/models"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so errors match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Money fields compare as numbers under gt/gte.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "paymentstatus", func(fl validator.FieldLevel) bool {
		_, ok := models.ParsePaymentStatus(fl.Field().String())
		return ok
	})
	mustRegister(v, "userrole", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), models.UserRoles)
	})
	mustRegister(v, "userstatus", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), models.UserStatuses)
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func oneOf[T ~string](s string, allowed []T) bool {
	for _, a := range allowed {
		if string(a) == s {
			return true
		}
	}
	return false
}

// Check validates v and maps each failing field to messages[field], where
// field is the JSON path below v ("workingHours.start"). A field reports only
// its first failure. Fields without a message get generic text.
func Check(v any, messages map[string]string) map[string]string {
	errs := map[string]string{}

	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		// Namespace is "Struct.a.b"; nested fields keep their dotted path.
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		if _, seen := errs[field]; seen {
			continue
		}
		if msg, ok := messages[field]; ok {
			errs[field] = msg
			continue
		}
		errs[field] = "Valor inválido"
	}
	return errs
}
