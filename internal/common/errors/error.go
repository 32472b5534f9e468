package errors

import (
	"errors"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNotAuthenticated    = errors.New("user is not authenticated")
	ErrValidation          = errors.New("invalid request")
	ErrAddressRequired     = errors.New("address required")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrNotFound            = errors.New("not found")
	ErrCheckoutInProgress  = errors.New("checkout already in progress")
	ErrEmptyAuth           = errors.New("missing authorization")
	ErrTokenInvalid        = errors.New("invalid token")
	ErrNotAdmin            = errors.New("user is not an admin")
	ErrUserBanned          = errors.New("user is not allowed to login")
	ErrPasswordMismatch    = errors.New("password mismatch")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrOtpMismatch         = errors.New("otp is invalid or expired")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrForbiddenTransition = errors.New("order status transition is not allowed")
	ErrAlreadyInWishlist   = errors.New("item already in wishlist")
	ErrProductUnlisted     = errors.New("product is not available")
)

func HandleError(err error, span trace.Span) {
	if err == nil {
		return
	}
	span.AddEvent(err.Error())
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}
