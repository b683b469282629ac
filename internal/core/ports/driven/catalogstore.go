package driven

import "github.com/atelier-labs/stylist-cli/internal/core/domain"

// CatalogStore provides read-only access to the product catalog.
// The catalog is immutable shared data: implementations must return
// products that callers can hold without copying.
type CatalogStore interface {
	// Bucket returns the product bucket for a style intent.
	// IntentDefault yields the first 50 items of the union of all buckets.
	Bucket(intent domain.StyleIntent) []domain.Product

	// All returns the union of all buckets in bucket order.
	All() []domain.Product

	// Get returns a product by ID from any bucket.
	// Returns domain.ErrNotFound if no product has the ID.
	Get(id string) (*domain.Product, error)
}
