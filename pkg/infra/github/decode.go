package github

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
)

var (
	errEmptyBody       = errors.New("JSON string is empty")
	errNullObject      = errors.New("JSON document is null")
	errUnsupportedType = errors.New("no JSON decoder for target type")
)

// decode parses body into a T. The returned value is non-nil only when the
// outcome is success; the error describes the fault otherwise.
func decode[T any](body []byte) (*T, model.Outcome, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, model.OutcomeJSONStringNull, errEmptyBody
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, model.OutcomeObjectNull, errNullObject
	}

	target := reflect.TypeFor[T]()
	if !decodable(target, map[reflect.Type]bool{}) {
		return nil, model.OutcomeUnsupportedDecodeType,
			goerr.Wrap(errUnsupportedType, "cannot decode JSON", goerr.V("type", target.String()))
	}

	var value T
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return nil, classifyDecodeFault(err), err
	}
	return &value, model.OutcomeSuccess, nil
}

// classifyDecodeFault maps a json.Unmarshal error to an Outcome
func classifyDecodeFault(err error) model.Outcome {
	var (
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
		timeErr        *time.ParseError
		unsupportedErr *json.UnsupportedTypeError
		invalidErr     *json.InvalidUnmarshalError
	)
	switch {
	case errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.As(err, &timeErr),
		errors.Is(err, io.ErrUnexpectedEOF):
		return model.OutcomeInvalidJSON
	case errors.As(err, &unsupportedErr),
		errors.As(err, &invalidErr):
		return model.OutcomeUnsupportedDecodeType
	default:
		return model.OutcomeUnknownDecodeFault
	}
}

// decodable reports whether encoding/json can populate a value of type t.
// Channels, functions, complex numbers and unsafe pointers have no decoder.
func decodable(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return true
	}
	seen[t] = true

	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return false
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return decodable(t.Elem(), seen)
	case reflect.Map:
		return decodable(t.Elem(), seen)
	case reflect.Struct:
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() || field.Tag.Get("json") == "-" {
				continue
			}
			if !decodable(field.Type, seen) {
				return false
			}
		}
	}
	return true
}
