package domain

// CartItem is one cart line. Its identity is the composite
// (product ID, size, colour): the same product in a different size
// or colour is a distinct line.
type CartItem struct {
	// Product is a snapshot of the product at add time.
	Product Product

	// Quantity is the number of units. Always positive; a line
	// whose quantity would reach zero is removed, never kept.
	Quantity int

	// Size is the chosen size, empty if none was chosen.
	Size string

	// Color is the chosen colour, empty if none was chosen.
	Color string
}

// Is reports whether the line matches the composite identity.
func (c *CartItem) Is(productID, size, color string) bool {
	return c.Product.ID == productID && c.Size == size && c.Color == color
}

// Subtotal returns the line's price contribution.
func (c *CartItem) Subtotal() float64 {
	return c.Product.Price * float64(c.Quantity)
}

// Tax and shipping policy for cart totals.
const (
	// TaxRate is applied to the subtotal.
	TaxRate = 0.08

	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 100

	// FlatShipping is charged when the subtotal does not exceed the threshold.
	FlatShipping = 10
)

// CartTotals are the derived money values for a cart. They are
// recomputed on every read, never stored.
type CartTotals struct {
	// Subtotal is the sum of line subtotals.
	Subtotal float64

	// Tax is Subtotal * TaxRate.
	Tax float64

	// Shipping is zero above the free-shipping threshold, flat otherwise.
	Shipping float64

	// Total is Subtotal + Tax + Shipping.
	Total float64
}

// ComputeTotals derives the totals for a set of cart lines.
func ComputeTotals(items []CartItem) CartTotals {
	var subtotal float64
	for i := range items {
		subtotal += items[i].Subtotal()
	}

	var shipping float64
	if subtotal <= FreeShippingThreshold {
		shipping = FlatShipping
	}

	tax := subtotal * TaxRate
	return CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
