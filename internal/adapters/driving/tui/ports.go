// Package tui provides the interactive terminal user interface for the
// stylist. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Stylist is the conversational turn engine.
	Stylist driving.StylistService

	// Filters is the product filter pipeline.
	Filters driving.FilterService

	// Cart manages the shopping cart.
	Cart driving.CartService

	// Checkout drives the checkout stage machine.
	Checkout driving.CheckoutService

	// Mode selects full or catalog presentation.
	Mode domain.StoreMode

	// Changed signals that engine state changed off the UI loop,
	// typically from a scheduler callback.
	Changed <-chan struct{}

	// Theme names the colour theme to start with. Empty selects the
	// default.
	Theme string

	// ThemeChanges delivers new theme names when the configuration
	// file is edited while the TUI is running.
	ThemeChanges <-chan string
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Stylist == nil {
		return ErrMissingStylistService
	}
	if p.Filters == nil {
		return ErrMissingFilterService
	}
	if p.Cart == nil {
		return ErrMissingCartService
	}
	if p.Checkout == nil {
		return ErrMissingCheckoutService
	}
	return nil
}
