package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrLiquidityNotPositive maps a non-positive liquidity input to a 400 error.
var ErrLiquidityNotPositive = fiber.NewError(fiber.StatusBadRequest, "liquidity must be greater than zero")

// ErrPriceNotPositive maps a non-positive price input to a 400 error.
var ErrPriceNotPositive = fiber.NewError(fiber.StatusBadRequest, "prices must be greater than zero")

// ErrFeePercentOutOfRange maps an out-of-range fee input to a 400 error.
var ErrFeePercentOutOfRange = fiber.NewError(fiber.StatusBadRequest, "fee_percent must be in [0, 100)")

// ErrDecadesNotPositive is returned when the slider span is zero or negative.
var ErrDecadesNotPositive = fiber.NewError(fiber.StatusBadRequest, "decades must be greater than zero")

// ErrUnknownDirection is returned when the slider conversion direction is not
// to_price or to_slider.
var ErrUnknownDirection = fiber.NewError(fiber.StatusBadRequest, "direction must be to_price or to_slider")

// ErrResultNotFinite is returned when a slider conversion overflows the
// float64 range and cannot be represented in the JSON response.
var ErrResultNotFinite = fiber.NewError(fiber.StatusBadRequest, "conversion result is not finite")

// ErrQuoteFailedInternal signals a generic server-side quote error.
var ErrQuoteFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "quote failed")

// NewFieldRequired returns a 400 Bad Request for a missing numeric field.
func NewFieldRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" is required")
}

// NewInvalidNumber returns a 400 Bad Request for a field that does not parse
// as a finite float.
func NewInvalidNumber(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+": expected a finite number")
}
