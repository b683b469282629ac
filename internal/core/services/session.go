package services

import (
	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driven"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driving"
)

// Session bundles the engine services for one shopping session and
// wires them together: the turn engine resets the filter pipeline,
// the pipeline narrates back into the turn engine, checkout drains
// the cart, and every service signals the same change channel.
type Session struct {
	Stylist  driving.StylistService
	Filters  driving.FilterService
	Cart     driving.CartService
	Checkout driving.CheckoutService

	// Mode is the session's store mode, read once at start.
	Mode domain.StoreMode
}

// NewSession wires a complete engine session.
func NewSession(
	catalog driven.CatalogStore,
	sched driven.Scheduler,
	mode domain.StoreMode,
	delays domain.Delays,
) *Session {
	conv := NewConversation(catalog, sched, delays)
	pipeline := NewFilterPipeline()
	cart := NewCartLedger()
	checkout := NewCheckoutSequencer(cart, sched, delays, mode)

	conv.SetFilterPipeline(pipeline)
	pipeline.SetNarrator(conv)
	pipeline.SetNotify(conv.notify.Notify)
	cart.SetNotify(conv.notify.Notify)
	checkout.SetNotify(conv.notify.Notify)

	return &Session{
		Stylist:  conv,
		Filters:  pipeline,
		Cart:     cart,
		Checkout: checkout,
		Mode:     mode,
	}
}

// Changed returns the session's coalesced change-signal channel.
func (s *Session) Changed() <-chan struct{} {
	return s.Stylist.Subscribe()
}
