package catalog

import "errors"

var (
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("property not found")
	ErrInvalidPropertyType = errors.New("invalid property type")
	ErrValidation          = errors.New("validation error")
)
