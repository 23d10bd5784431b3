package store

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// Error kinds. Every failure returned by a collection matches exactly one via errors.Is.
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("record already exists")
	ErrNotFound         = errors.New("record not found")
)

// Error describes a failed collection operation
type Error struct {
	Op         string
	Collection string
	ID         string
	Kind       error
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Collection)
	b.WriteString(": ")
	b.WriteString(e.Op)
	if e.ID != "" {
		b.WriteString(" ")
		b.WriteString(e.ID)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError builds a failure of the given kind
func NewError(op, collection, id string, kind, err error) *Error {
	return &Error{Op: op, Collection: collection, ID: id, Kind: kind, Err: err}
}

// classify maps a gorm error onto an error kind
func classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return ErrStoreUnavailable
	}
}

// StatusCode maps an error kind to the HTTP status the API answers with
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
