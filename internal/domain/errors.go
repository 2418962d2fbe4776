package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrProductNotFound   = errors.New("product not found")
	ErrItemNotInCart     = errors.New("item not in cart")
	ErrInvalidOrUsedCode = errors.New("invalid or used discount code")
	ErrEmptyCart         = errors.New("cannot create an order with an empty cart")
	ErrOrderNotFound     = errors.New("order not found")
)
