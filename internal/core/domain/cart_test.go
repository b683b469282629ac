package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartItem_Is(t *testing.T) {
	item := CartItem{
		Product:  Product{ID: "d1", Price: 395},
		Quantity: 1,
		Size:     "M",
		Color:    "Black",
	}

	assert.True(t, item.Is("d1", "M", "Black"))
	assert.False(t, item.Is("d1", "L", "Black"))
	assert.False(t, item.Is("d1", "M", "Navy"))
	assert.False(t, item.Is("d2", "M", "Black"))
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []CartItem
		expected CartTotals
	}{
		{
			name:     "empty cart still charges flat shipping",
			items:    nil,
			expected: CartTotals{Subtotal: 0, Tax: 0, Shipping: 10, Total: 10},
		},
		{
			name: "small order pays flat shipping",
			items: []CartItem{
				{Product: Product{ID: "c9", Price: 52}, Quantity: 1},
			},
			expected: CartTotals{Subtotal: 52, Tax: 4.16, Shipping: 10, Total: 66.16},
		},
		{
			name: "subtotal exactly at threshold still pays shipping",
			items: []CartItem{
				{Product: Product{ID: "x", Price: 100}, Quantity: 1},
			},
			expected: CartTotals{Subtotal: 100, Tax: 8, Shipping: 10, Total: 118},
		},
		{
			name: "subtotal above threshold ships free",
			items: []CartItem{
				{Product: Product{ID: "d1", Price: 395}, Quantity: 1},
			},
			expected: CartTotals{Subtotal: 395, Tax: 31.6, Shipping: 0, Total: 426.6},
		},
		{
			name: "quantities multiply into the subtotal",
			items: []CartItem{
				{Product: Product{ID: "c1", Price: 68}, Quantity: 2},
				{Product: Product{ID: "c9", Price: 52}, Quantity: 1},
			},
			expected: CartTotals{Subtotal: 188, Tax: 15.04, Shipping: 0, Total: 203.04},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items)
			assert.InDelta(t, tt.expected.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.expected.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.expected.Shipping, got.Shipping, 1e-9)
			assert.InDelta(t, tt.expected.Total, got.Total, 1e-9)
		})
	}
}

func TestComputeTotals_Law(t *testing.T) {
	// total == subtotal + subtotal*0.08 + (subtotal > 100 ? 0 : 10)
	for _, price := range []float64{0, 10, 52.5, 100, 100.01, 395, 1000} {
		var items []CartItem
		if price > 0 {
			items = []CartItem{{Product: Product{ID: "p", Price: price}, Quantity: 1}}
		}

		got := ComputeTotals(items)

		shipping := float64(FlatShipping)
		if got.Subtotal > FreeShippingThreshold {
			shipping = 0
		}
		assert.InDelta(t, got.Subtotal+got.Subtotal*TaxRate+shipping, got.Total, 1e-9,
			"subtotal %v", got.Subtotal)
	}
}

func TestProduct_HasColorAndSize(t *testing.T) {
	p := Product{Colors: []string{"Navy", "Black"}, Sizes: []string{"S", "M"}}

	assert.True(t, p.HasColor("Navy"))
	assert.False(t, p.HasColor("Red"))
	assert.True(t, p.HasSize("M"))
	assert.False(t, p.HasSize("XL"))
}

func TestUniqueBrandsAndCategories(t *testing.T) {
	products := []Product{
		{Brand: "MAISON", Category: "Dresses"},
		{Brand: "LUXE", Category: "Dresses"},
		{Brand: "MAISON", Category: "Tops"},
	}

	assert.Equal(t, []string{"MAISON", "LUXE"}, UniqueBrands(products))
	assert.Equal(t, []string{"Dresses", "Tops"}, UniqueCategories(products))
}
