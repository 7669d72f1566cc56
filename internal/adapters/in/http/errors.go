package http

import (
	"errors"
	"net/http"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes exposed on the wire. Stable; clients match on them.
const (
	codeOrderNotFound           = "ORDER_NOT_FOUND"
	codeCustomerNotFound        = "CUSTOMER_NOT_FOUND"
	codeServiceUnavailable      = "SERVICE_UNAVAILABLE"
	codeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	codeOrderCannotBeCancelled  = "ORDER_CANNOT_BE_CANCELLED"
	codeIllegalOrderState       = "ILLEGAL_ORDER_STATE"
	codeInvalidItems            = "INVALID_ITEMS"
	codeValidationError         = "VALIDATION_ERROR"
	codeInternalError           = "INTERNAL_ERROR"
)

// writeError translates an application error into the failure envelope.
// Classification runs on sentinel identity via errors.Is, so wrapped errors
// from any layer map the same way.
func writeError(ctx echo.Context, err error) error {
	status, code := classify(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return errorResponse(ctx, status, code, message)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ports.ErrCustomerNotFound):
		return http.StatusNotFound, codeCustomerNotFound
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, codeOrderNotFound
	case errors.Is(err, ports.ErrCustomerServiceUnavailable):
		return http.StatusServiceUnavailable, codeServiceUnavailable
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return http.StatusBadRequest, codeInvalidStatusTransition
	case errors.Is(err, order.ErrOrderCannotBeCancelled):
		return http.StatusBadRequest, codeOrderCannotBeCancelled
	case errors.Is(err, order.ErrIllegalOrderState):
		return http.StatusBadRequest, codeIllegalOrderState
	case errors.Is(err, order.ErrInvalidItems):
		return http.StatusBadRequest, codeInvalidItems
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, codeValidationError
	default:
		return http.StatusInternalServerError, codeInternalError
	}
}
