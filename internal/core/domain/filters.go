package domain

// Default price range bounds.
const (
	// DefaultPriceMin is the lower bound of the default price range.
	DefaultPriceMin = 0

	// DefaultPriceMax is the upper bound of the default price range.
	DefaultPriceMax = 1000
)

// PriceRange is an inclusive [Min, Max] price interval.
type PriceRange struct {
	// Min is the lower bound, inclusive.
	Min float64

	// Max is the upper bound, inclusive.
	Max float64
}

// Contains reports whether price falls within the range, inclusive.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// IsDefault reports whether the range equals the default [0, 1000].
func (r PriceRange) IsDefault() bool {
	return r.Min == DefaultPriceMin && r.Max == DefaultPriceMax
}

// Filters holds the five-attribute filter state for a session.
//
// An empty set for a dimension means "no constraint": every value
// passes. Absence of a constraint is permissive, never exclusionary.
type Filters struct {
	// PriceRange restricts product prices. Always constrains.
	PriceRange PriceRange

	// Colors restricts products to those sharing at least one colour.
	Colors []string

	// Sizes restricts products to those sharing at least one size.
	Sizes []string

	// Categories restricts products to member categories.
	Categories []string

	// Brands restricts products to member brands.
	Brands []string
}

// DefaultFilters returns the unconstrained filter state.
func DefaultFilters() Filters {
	return Filters{
		PriceRange: PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
	}
}

// HasColor reports whether the colour is currently selected.
func (f *Filters) HasColor(color string) bool {
	return contains(f.Colors, color)
}

// HasSize reports whether the size is currently selected.
func (f *Filters) HasSize(size string) bool {
	return contains(f.Sizes, size)
}

// Matches reports whether the product passes every filter dimension.
// Unknown colour or size values simply never match any product; they
// yield an empty result, not an error.
func (f *Filters) Matches(p *Product) bool {
	if !f.PriceRange.Contains(p.Price) {
		return false
	}
	if len(f.Categories) > 0 && !contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(f.Colors, p.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !intersects(f.Sizes, p.Sizes) {
		return false
	}
	return true
}

// ApplyFilters returns the products passing all filter dimensions,
// preserving catalog order. It is a pure function: the input slice
// is never modified.
func ApplyFilters(catalog []Product, filters Filters) []Product {
	visible := make([]Product, 0, len(catalog))
	for i := range catalog {
		if filters.Matches(&catalog[i]) {
			visible = append(visible, catalog[i])
		}
	}
	return visible
}

// FilterPatch carries partial filter changes. Nil fields leave the
// corresponding dimension untouched.
type FilterPatch struct {
	// PriceRange replaces the price range when non-nil.
	PriceRange *PriceRange

	// Colors replaces the colour set when non-nil.
	Colors []string

	// Sizes replaces the size set when non-nil.
	Sizes []string

	// Categories replaces the category set when non-nil.
	Categories []string

	// Brands replaces the brand set when non-nil.
	Brands []string
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
