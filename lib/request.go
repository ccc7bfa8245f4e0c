package lib

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"labisco_server/structs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so clients can map errors back onto form fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return structs.IsProductCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return contains(structs.Currencies, fl.Field().String())
	})
	_ = v.RegisterValidation("image_ref", func(fl validator.FieldLevel) bool {
		return IsImageRef(fl.Field().String())
	})
	_ = v.RegisterValidation("timezone_option", func(fl validator.FieldLevel) bool {
		return contains(structs.Timezones, fl.Field().String())
	})

	return v
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// FieldError represents a clean validation error for APIs
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a structured validation error
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no field errors were collected.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// ValidateStruct runs the tag validations on v and maps failures to a ValidationError.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return mapValidationErrors(ve)
		}
		return err
	}
	return nil
}

// ExtractAndValidateBody extracts and validates the request body into the provided struct type T
func ExtractAndValidateBody[T any](r *http.Request) (*T, error) {
	body, err := ExtractBody[T](r)
	if err != nil {
		return nil, err
	}

	if err := ValidateStruct(body); err != nil {
		return nil, err
	}

	return body, nil
}

// ExtractBody decodes the JSON body without running validations.
func ExtractBody[T any](r *http.Request) (*T, error) {
	defer r.Body.Close()

	var body T

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func mapValidationErrors(errs validator.ValidationErrors) *ValidationError {
	out := &ValidationError{}

	for _, e := range errs {
		field := fieldPath(e.Namespace())

		var message string
		switch e.Tag() {
		case "required":
			message = "is required"
		case "min":
			if e.Kind() == reflect.Slice {
				message = "must have at least " + e.Param() + " item(s)"
			} else {
				message = "must be at least " + e.Param() + " characters"
			}
		case "max":
			message = "must be at most " + e.Param() + " characters"
		case "gte":
			message = "must be greater than or equal to " + e.Param()
		case "lte":
			message = "must be less than or equal to " + e.Param()
		case "unique":
			message = "must not repeat " + strings.ToLower(e.Param()) + " values"
		case "image_ref":
			message = "must be an uploaded image"
		case "oneof":
			message = "must be one of: " + e.Param()
		case "category":
			message = "must be one of: " + strings.Join(structs.ProductCategories, ", ")
		case "currency":
			message = "must be one of: " + strings.Join(structs.Currencies, ", ")
		case "timezone_option":
			message = "must be one of the supported timezones"
		case "dive":
			continue
		default:
			message = "is invalid"
		}

		out.Add(field, message)
	}

	return out
}

// fieldPath drops the root struct name: "Product.variants[0].name" -> "variants[0].name".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
