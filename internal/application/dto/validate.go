package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/domain/value"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json names, the way clients send them
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the struct tags of req and returns an errs.ValidationError
// listing every failing field.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("err validating request, %v", err)
	}

	fields := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, errs.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return errs.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "url":
		return "must be a valid URL"
	case "hostname_rfc1123":
		return "must be a valid subdomain label"
	case "fqdn":
		return "must be a fully qualified domain name"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}

// Document checks that an optional JSON document is an object or an array.
// Null is accepted and treated as absent.
type DocumentCheck struct {
	field    string
	doc      *value.Value
	required bool
}

func Document(field string, doc *value.Value) DocumentCheck {
	return DocumentCheck{field: field, doc: doc}
}

func RequiredDocument(field string, doc *value.Value) DocumentCheck {
	return DocumentCheck{field: field, doc: doc, required: true}
}

// ValidateWithDocuments runs Validate and appends document shape failures to
// the same error.
func ValidateWithDocuments(req any, docs ...DocumentCheck) error {
	var fields []errs.FieldError
	if err := Validate(req); err != nil {
		var validationErr errs.ValidationError
		if !errors.As(err, &validationErr) {
			return err
		}
		fields = append(fields, validationErr.Fields...)
	}

	for _, d := range docs {
		switch {
		case d.doc == nil || d.doc.IsNull():
			if d.required {
				fields = append(fields, errs.FieldError{Field: d.field, Message: "is required"})
			}
		case !d.doc.IsContainer():
			fields = append(fields, errs.FieldError{
				Field:   d.field,
				Message: fmt.Sprintf("must be an object or an array, got %s", d.doc.Kind()),
			})
		}
	}

	if len(fields) > 0 {
		return errs.ValidationError{Fields: fields}
	}
	return nil
}
