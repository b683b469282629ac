package driving

import "github.com/atelier-labs/stylist-cli/internal/core/domain"

// CartService is the ordered cart ledger.
type CartService interface {
	// Add inserts a line for (product, size, color), or increments
	// the quantity of an existing line with the same identity.
	Add(product domain.Product, size, color string)

	// SetQuantity replaces a line's quantity. Quantity <= 0 removes
	// the line. No-op when no line matches.
	SetQuantity(productID string, quantity int, size, color string)

	// Remove deletes the matching line. No-op when absent.
	Remove(productID, size, color string)

	// Items returns the cart lines in insertion order.
	Items() []domain.CartItem

	// Count returns the total unit count across lines.
	Count() int

	// Totals derives subtotal, tax, shipping and total.
	Totals() domain.CartTotals

	// Clear empties the cart.
	Clear()
}
