package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driven"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driving"
	"github.com/atelier-labs/stylist-cli/internal/logger"
)

// Ensure CheckoutSequencer implements the interface.
var _ driving.CheckoutService = (*CheckoutSequencer)(nil)

// CheckoutSequencer gates cart completion through the linear stage
// sequence shipping -> payment -> processing -> success. The payment
// step is simulated: processing always succeeds after a delay, and
// the success screen auto-completes shortly after, clearing the cart.
type CheckoutSequencer struct {
	cart   driving.CartService
	sched  driven.Scheduler
	delays domain.Delays
	mode   domain.StoreMode
	notify func()

	mu         sync.Mutex
	stage      domain.CheckoutStage
	active     bool
	shipping   domain.ShippingForm
	lastOrder  *domain.Order
	generation uint64
}

// NewCheckoutSequencer creates the stage machine.
func NewCheckoutSequencer(
	cart driving.CartService,
	sched driven.Scheduler,
	delays domain.Delays,
	mode domain.StoreMode,
) *CheckoutSequencer {
	return &CheckoutSequencer{
		cart:   cart,
		sched:  sched,
		delays: delays,
		mode:   mode,
		stage:  domain.StageShipping,
		notify: func() {},
	}
}

// SetNotify binds the session change-signal hook.
func (s *CheckoutSequencer) SetNotify(fn func()) {
	s.notify = fn
}

// Begin starts checkout at the shipping stage.
func (s *CheckoutSequencer) Begin() error {
	if s.mode == domain.ModeCatalog {
		return domain.ErrCheckoutDisabled
	}
	if len(s.cart.Items()) == 0 {
		return domain.ErrCartEmpty
	}

	s.mu.Lock()
	s.generation++
	s.active = true
	s.stage = domain.StageShipping
	s.shipping = domain.ShippingForm{}
	s.mu.Unlock()

	logger.Section("Checkout")
	s.notify()
	return nil
}

// SubmitShipping records the shipping form and moves to payment.
func (s *CheckoutSequencer) SubmitShipping(form domain.ShippingForm) error {
	s.mu.Lock()
	if !s.active || s.stage != domain.StageShipping {
		s.mu.Unlock()
		return domain.ErrCheckoutStage
	}
	s.shipping = form
	s.stage = domain.StagePayment
	s.mu.Unlock()

	s.notify()
	return nil
}

// SubmitPayment records the payment form and moves to processing.
// Processing always succeeds after the processing delay; success
// auto-completes after the confirm delay.
func (s *CheckoutSequencer) SubmitPayment(_ domain.PaymentForm) error {
	s.mu.Lock()
	if !s.active || s.stage != domain.StagePayment {
		s.mu.Unlock()
		return domain.ErrCheckoutStage
	}
	s.stage = domain.StageProcessing
	gen := s.generation
	s.mu.Unlock()

	logger.Info("Payment submitted, simulating processing")
	s.notify()

	s.sched.After(s.delays.Processing, func() {
		s.mu.Lock()
		if gen != s.generation || s.stage != domain.StageProcessing {
			// Checkout was cancelled or restarted while processing.
			s.mu.Unlock()
			return
		}
		s.stage = domain.StageSuccess
		s.lastOrder = &domain.Order{
			ID:       uuid.NewString(),
			Items:    s.cart.Items(),
			Totals:   s.cart.Totals(),
			Shipping: s.shipping,
		}
		s.mu.Unlock()
		s.notify()

		s.sched.After(s.delays.Confirm, func() {
			s.mu.Lock()
			stale := gen != s.generation || s.stage != domain.StageSuccess
			s.mu.Unlock()
			if !stale {
				_ = s.Complete()
			}
		})
	})
	return nil
}

// Complete finalises the order, clears the cart and resets the
// sequencer to the shipping stage.
func (s *CheckoutSequencer) Complete() error {
	s.mu.Lock()
	if !s.active || s.stage != domain.StageSuccess {
		s.mu.Unlock()
		return domain.ErrCheckoutStage
	}
	s.active = false
	s.stage = domain.StageShipping
	order := s.lastOrder
	s.mu.Unlock()

	s.cart.Clear()
	if order != nil {
		logger.Info("Order %s completed: total %.2f", order.ID, order.Totals.Total)
	}
	s.notify()
	return nil
}

// Cancel abandons an in-progress checkout without touching the cart.
// Any pending processing timer becomes a harmless no-op.
func (s *CheckoutSequencer) Cancel() {
	s.mu.Lock()
	s.generation++
	s.active = false
	s.stage = domain.StageShipping
	s.mu.Unlock()
	s.notify()
}

// Stage returns the current checkout stage.
func (s *CheckoutSequencer) Stage() domain.CheckoutStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Active reports whether a checkout is in progress.
func (s *CheckoutSequencer) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// LastOrder returns the most recently completed order, or nil.
func (s *CheckoutSequencer) LastOrder() *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOrder
}
