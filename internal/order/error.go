package order

import "belanja-be/internal/apperr"

var (
	ErrOrderNotFound     = apperr.NotFound("order not found")
	ErrCartEmpty         = apperr.BadRequest("cart empty")
	ErrItemsUnavailable  = apperr.BadRequest("items unavailable")
	ErrCannotCancel      = apperr.BadRequest("cannot cancel")
	ErrInvalidStatus     = apperr.BadRequest("unrecognized order status")
	ErrInvalidTransition = apperr.BadRequest("invalid status transition")
	ErrForbidden         = apperr.Forbidden("cannot access others' orders")
	ErrAdminOnly         = apperr.Forbidden("admin role required")
)
