// internal/inventory/errors.go
package inventory

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBlankName        = errors.New("name must not be blank")
	ErrInvalidPrice     = errors.New("price must be greater than zero")
	ErrInvalidQuantity  = errors.New("quantity must not be negative")
	ErrInvalidSale      = errors.New("sale quantity must be positive and at most the current stock")
	ErrCategoryInUse    = errors.New("category still has items assigned")
)
