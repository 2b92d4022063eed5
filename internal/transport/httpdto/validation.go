package httpdto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	parley_errors "parley-chat/pkg/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var tagNameOnce sync.Once

// RegisterTagNames makes the binding validator report json field names instead
// of Go struct field names, so validation errors line up with the wire format.
func RegisterTagNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// BindingError converts a ShouldBindJSON failure into the per-field error
// list surfaced to clients.
func BindingError(err error) *parley_errors.ValidationError {
	ve := parley_errors.NewValidationError()

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			ve.Add(fe.Field(), bindingMessage(fe))
		}
		return ve
	}

	ve.Add("non_field_errors", "malformed request body")
	return ve
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return "is invalid"
	}
}
