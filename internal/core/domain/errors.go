package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyUtterance indicates a blank or whitespace-only utterance.
	// No turn starts and no state changes.
	ErrEmptyUtterance = errors.New("empty utterance")

	// ErrTurnInFlight indicates a turn is already being processed.
	// Turns are strictly serialized.
	ErrTurnInFlight = errors.New("turn in flight")

	// ErrCartEmpty indicates checkout was started with no cart lines.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrCheckoutStage indicates an operation invalid for the current
	// checkout stage (e.g. submitting payment before shipping).
	ErrCheckoutStage = errors.New("invalid checkout stage")

	// ErrCheckoutDisabled indicates cart/checkout operations were
	// attempted in catalog mode.
	ErrCheckoutDisabled = errors.New("checkout disabled in catalog mode")
)
