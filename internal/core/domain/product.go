package domain

// Product represents a single catalog item.
// It is immutable once created and owned by the catalog store
// for the lifetime of the process.
type Product struct {
	// ID is the unique identifier within the catalog.
	ID string

	// Name is the human-readable product name.
	Name string

	// Price is the unit price in whole currency units.
	Price float64

	// Category groups the product (e.g. "Dresses", "Tops").
	Category string

	// Brand is the product's brand name.
	Brand string

	// Colors lists the available colours. Never empty.
	Colors []string

	// Sizes lists the available sizes. Never empty.
	Sizes []string

	// Description is optional marketing copy.
	Description string

	// Retailers lists external stores carrying the product.
	// Surfaced instead of cart affordances in catalog mode.
	Retailers []Retailer
}

// Retailer is an external store listing for a product.
type Retailer struct {
	// Name is the retailer's display name.
	Name string

	// LogoRef is a reference to the retailer's logo asset.
	LogoRef string

	// URL is the product page at the retailer.
	URL string
}

// HasColor reports whether the product is available in the given colour.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// HasSize reports whether the product is available in the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// UniqueBrands returns the distinct brands across products, in first-seen order.
func UniqueBrands(products []Product) []string {
	seen := make(map[string]bool)
	var brands []string
	for i := range products {
		if !seen[products[i].Brand] {
			seen[products[i].Brand] = true
			brands = append(brands, products[i].Brand)
		}
	}
	return brands
}

// UniqueCategories returns the distinct categories across products, in first-seen order.
func UniqueCategories(products []Product) []string {
	seen := make(map[string]bool)
	var categories []string
	for i := range products {
		if !seen[products[i].Category] {
			seen[products[i].Category] = true
			categories = append(categories, products[i].Category)
		}
	}
	return categories
}
