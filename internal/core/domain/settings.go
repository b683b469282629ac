package domain

import "time"

// StoreMode toggles whether cart and checkout affordances are active.
// It is read once at session start and never mutated by the engine.
type StoreMode string

const (
	// ModeFull enables cart and checkout.
	ModeFull StoreMode = "full"

	// ModeCatalog is browse-only: cart and checkout are disabled and
	// each product's external retailer links are surfaced instead.
	ModeCatalog StoreMode = "catalog"
)

// IsValid returns true if the mode is recognised.
func (m StoreMode) IsValid() bool {
	switch m {
	case ModeFull, ModeCatalog:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m StoreMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m StoreMode) Description() string {
	switch m {
	case ModeFull:
		return "Full (cart and checkout enabled)"
	case ModeCatalog:
		return "Catalog (browse only, retailer links)"
	default:
		return "Unknown"
	}
}

// Delays are the timing constants driving the staged assistant
// response and the filter-prompt advancement.
type Delays struct {
	// Step is the delay before each thinking step is revealed.
	Step time.Duration

	// Settle is the pause after the last step before all steps
	// flip to complete.
	Settle time.Duration

	// Emit is the pause between the settle and the final message.
	Emit time.Duration

	// Advance is the pause between a filter selection and the
	// prompt cursor advancing.
	Advance time.Duration

	// Processing is the simulated payment processing time.
	Processing time.Duration

	// Confirm is how long the checkout success screen shows before
	// the order completes and the cart clears.
	Confirm time.Duration
}

// DefaultDelays returns the standard timing profile.
func DefaultDelays() Delays {
	return Delays{
		Step:       600 * time.Millisecond,
		Settle:     500 * time.Millisecond,
		Emit:       300 * time.Millisecond,
		Advance:    800 * time.Millisecond,
		Processing: 2 * time.Second,
		Confirm:    2 * time.Second,
	}
}

// Suggestions are the canned opening queries offered while the
// conversation holds only the greeting.
func Suggestions() []string {
	return []string{
		"Show me elegant dresses for a wedding",
		"I need comfortable everyday outfits",
		"Help me build a work wardrobe",
		"Find me statement accessories",
	}
}

// Greeting is the assistant's opening message.
const Greeting = "Hi! I'm your personal fashion stylist. Tell me about your style, " +
	"occasion, or what you're looking for, and I'll curate the perfect pieces for you."
