package domain

// CheckoutStage is one step of the linear checkout sequence.
type CheckoutStage string

// Checkout stages, in order.
const (
	// StageShipping collects the shipping address.
	StageShipping CheckoutStage = "shipping"

	// StagePayment collects payment details.
	StagePayment CheckoutStage = "payment"

	// StageProcessing is the simulated payment step.
	StageProcessing CheckoutStage = "processing"

	// StageSuccess confirms the completed order.
	StageSuccess CheckoutStage = "success"
)

// IsValid returns true if the stage is recognised.
func (s CheckoutStage) IsValid() bool {
	switch s {
	case StageShipping, StagePayment, StageProcessing, StageSuccess:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s CheckoutStage) String() string {
	return string(s)
}

// Description returns a human-readable description of the stage.
func (s CheckoutStage) Description() string {
	switch s {
	case StageShipping:
		return "Shipping details"
	case StagePayment:
		return "Payment details"
	case StageProcessing:
		return "Processing payment"
	case StageSuccess:
		return "Order confirmed"
	default:
		return "Unknown"
	}
}

// ShippingForm holds the shipping details collected at checkout.
// Field validation happens at the presentation layer; the core
// sequencer never inspects the contents.
type ShippingForm struct {
	FirstName string
	LastName  string
	Email     string
	Address   string
	City      string
	State     string
	Zip       string
}

// PaymentForm holds the payment details collected at checkout.
// Never validated or transmitted: payment is simulated.
type PaymentForm struct {
	CardNumber string
	Expiry     string
	CVV        string
	NameOnCard string
}

// Order is the outcome of a completed checkout.
type Order struct {
	// ID is the unique order identifier.
	ID string

	// Items are the purchased cart lines.
	Items []CartItem

	// Totals are the money values at completion time.
	Totals CartTotals

	// Shipping is the shipping form as submitted.
	Shipping ShippingForm
}
