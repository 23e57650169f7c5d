package cart

import "belanja-be/internal/apperr"

var (
	ErrProductNotFound    = apperr.NotFound("product not found")
	ErrProductUnavailable = apperr.BadRequest("product out of stock")
	ErrInvalidQuantity    = apperr.BadRequest("quantity must be at least 1")
	ErrItemNotFound       = apperr.NotFound("cart item not found")
)
