package httperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindState      Kind = "state"
	KindDisabled   Kind = "disabled"
)

type BusinessError struct {
	Code string
	Kind Kind
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return BusinessError{Code: code, Kind: KindValidation}
}

func ErrNotFound(code string) error {
	return BusinessError{Code: code, Kind: KindNotFound}
}

func ErrConflict(code string) error {
	return BusinessError{Code: code, Kind: KindConflict}
}

func ErrState(code string) error {
	return BusinessError{Code: code, Kind: KindState}
}

func ErrDisabled(code string) error {
	return BusinessError{Code: code, Kind: KindDisabled}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extracts the BusinessError from err's chain, if any.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// StatusOf maps an error to the HTTP status a handler should answer with.
// Anything that is not a BusinessError is a 500.
func StatusOf(err error) int {
	be, ok := AsBusiness(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch be.Kind {
	case KindValidation, KindState:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindDisabled:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
