package driving

import "github.com/atelier-labs/stylist-cli/internal/core/domain"

// CheckoutService is the linear checkout stage machine:
// shipping, payment, processing, success.
type CheckoutService interface {
	// Begin starts checkout at the shipping stage.
	// Returns domain.ErrCartEmpty when the cart has no lines and
	// domain.ErrCheckoutDisabled in catalog mode.
	Begin() error

	// SubmitShipping records the shipping form and moves to payment.
	// Returns domain.ErrCheckoutStage outside the shipping stage.
	SubmitShipping(form domain.ShippingForm) error

	// SubmitPayment records the payment form and moves to processing.
	// The simulated payment succeeds after a delay, advancing to
	// success and scheduling Complete.
	// Returns domain.ErrCheckoutStage outside the payment stage.
	SubmitPayment(form domain.PaymentForm) error

	// Complete finalises the order, clears the cart and resets the
	// sequencer to the shipping stage.
	// Returns domain.ErrCheckoutStage outside the success stage.
	Complete() error

	// Cancel abandons an in-progress checkout without touching the cart.
	Cancel()

	// Stage returns the current checkout stage.
	Stage() domain.CheckoutStage

	// Active reports whether a checkout is in progress.
	Active() bool

	// LastOrder returns the most recently completed order, or nil.
	LastOrder() *domain.Order
}
