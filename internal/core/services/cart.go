package services

import (
	"sync"

	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driving"
	"github.com/atelier-labs/stylist-cli/internal/logger"
)

// Ensure CartLedger implements the interface.
var _ driving.CartService = (*CartLedger)(nil)

// CartLedger is the ordered cart line collection. Lines are keyed by
// the composite (product ID, size, colour) identity; adding the same
// identity twice merges into one line.
type CartLedger struct {
	mu     sync.RWMutex
	items  []domain.CartItem
	notify func()
}

// NewCartLedger creates an empty cart.
func NewCartLedger() *CartLedger {
	return &CartLedger{notify: func() {}}
}

// SetNotify binds the session change-signal hook.
func (c *CartLedger) SetNotify(fn func()) {
	c.notify = fn
}

// Add inserts a line or increments the quantity of an existing line
// with the same composite identity. Never fails: the same product in
// a different size or colour is a distinct line.
func (c *CartLedger) Add(product domain.Product, size, color string) {
	c.mu.Lock()
	merged := false
	for i := range c.items {
		if c.items[i].Is(product.ID, size, color) {
			c.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, domain.CartItem{
			Product:  product,
			Quantity: 1,
			Size:     size,
			Color:    color,
		})
	}
	c.mu.Unlock()

	logger.Debug("Cart add: %s size=%q color=%q merged=%t", product.ID, size, color, merged)
	c.notify()
}

// SetQuantity replaces a line's quantity. Quantity <= 0 removes the
// line entirely; a line never survives at zero. No-op when no line
// matches.
func (c *CartLedger) SetQuantity(productID string, quantity int, size, color string) {
	if quantity <= 0 {
		c.Remove(productID, size, color)
		return
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].Is(productID, size, color) {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

// Remove deletes the matching line. No-op when absent.
func (c *CartLedger) Remove(productID, size, color string) {
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].Is(productID, size, color) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

// Items returns the cart lines in insertion order.
func (c *CartLedger) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the total unit count across lines.
func (c *CartLedger) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for i := range c.items {
		count += c.items[i].Quantity
	}
	return count
}

// Totals derives the money values. Pure and recomputed on every read.
func (c *CartLedger) Totals() domain.CartTotals {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.ComputeTotals(c.items)
}

// Clear empties the cart.
func (c *CartLedger) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
	c.notify()
}
