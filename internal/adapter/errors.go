package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("record already exists")
	ErrUnprocessable       = errors.New("record could not be processed")
	ErrInternalServerError = errors.New("internal server error")
)
