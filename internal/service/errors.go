package service

import "errors"

var (
	ErrValidationInvalidParty = errors.New("party identifiers must be positive")
	ErrValidationNoContent    = errors.New("no content provided")
	ErrValidationNoSummary    = errors.New("no post summary provided")
	ErrValidationNoPayment    = errors.New("no payment details provided")
)
