package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/george-593/microsoft-bank-website/model"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrMalformedBody means the request body was not valid JSON.
	ErrMalformedBody = errors.New("invalid request body")
	// ErrMissingFields means a required field was absent or empty.
	ErrMissingFields = errors.New("missing required fields")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Teach the validator about the flexible Number type so that
	// `validate:"required"` fails on absent, null, or empty-string values.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if n, ok := field.Interface().(model.Number); ok {
			if n.Empty() {
				return ""
			}
			return n.Raw
		}
		return nil
	}, model.Number{})
	return v
}

// ValidateAndDecode decodes the JSON request body into payload and runs the
// struct validation tags. An empty body is treated as an empty object, which
// the required-field checks then reject with the same error a caller who sent
// {} would get.
func ValidateAndDecode(r *http.Request, payload interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil && !errors.Is(err, io.EOF) {
		return ErrMalformedBody
	}

	if err := validate.Struct(payload); err != nil {
		return ErrMissingFields
	}

	return nil
}
