package product

import "errors"

var (
	// -- Validation & input --
	ErrNameRequired = errors.New("product name is required")
	ErrInvalidPrice = errors.New("product price cannot be negative")
	ErrNoFields     = errors.New("no fields to update")

	// -- Resource state --
	ErrProductNotFound = errors.New("product not found")
	ErrSellerNotFound  = errors.New("seller not found")
)
