package memory

import (
	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// defaultBucketCap limits the default bucket to the first N products
// of the union.
const defaultBucketCap = 50

// CatalogStore is the in-memory implementation of driven.CatalogStore.
// All data is immutable after construction, so reads need no locking.
type CatalogStore struct {
	formal []domain.Product
	casual []domain.Product
	work   []domain.Product
	all    []domain.Product
	byID   map[string]*domain.Product
}

// NewCatalogStore creates the catalog with the built-in dataset.
func NewCatalogStore() *CatalogStore {
	s := &CatalogStore{
		formal: dressProducts(),
		casual: casualProducts(),
		work:   workProducts(),
	}

	s.all = make([]domain.Product, 0, len(s.formal)+len(s.casual)+len(s.work))
	s.all = append(s.all, s.formal...)
	s.all = append(s.all, s.casual...)
	s.all = append(s.all, s.work...)

	s.byID = make(map[string]*domain.Product, len(s.all))
	for i := range s.all {
		s.byID[s.all[i].ID] = &s.all[i]
	}

	return s
}

// Bucket returns the product bucket for a style intent. Unknown
// intents fall back to the default bucket.
func (s *CatalogStore) Bucket(intent domain.StyleIntent) []domain.Product {
	switch intent {
	case domain.IntentFormal:
		return s.formal
	case domain.IntentCasual:
		return s.casual
	case domain.IntentWork:
		return s.work
	default:
		if len(s.all) > defaultBucketCap {
			return s.all[:defaultBucketCap]
		}
		return s.all
	}
}

// All returns the union of all buckets in bucket order.
func (s *CatalogStore) All() []domain.Product {
	return s.all
}

// Get returns a product by ID from any bucket.
func (s *CatalogStore) Get(id string) (*domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
